// ABOUTME: Turns a SimpleFIN account response into a one-line status message.
// ABOUTME: Also owns the date window sent as start-date/end-date.

package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
)

const (
	noErrorsMessage = "No SimpleFin Accounts in Error State"
	dateLayout      = "2006-01-02"
)

type Window struct {
	Start time.Time
	End   time.Time
}

// ParseWindow reads two YYYY-MM-DD dates as UTC midnights.
func ParseWindow(start, end string) (Window, error) {
	s, err := time.ParseInLocation(dateLayout, strings.TrimSpace(start), time.UTC)
	if err != nil {
		return Window{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.ParseInLocation(dateLayout, strings.TrimSpace(end), time.UTC)
	if err != nil {
		return Window{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if e.Before(s) {
		return Window{}, errors.New("end date is before start date")
	}
	return Window{Start: s, End: e}, nil
}

func (w Window) Query() url.Values {
	return url.Values{
		"start-date": []string{strconv.FormatInt(w.Start.Unix(), 10)},
		"end-date":   []string{strconv.FormatInt(w.End.Unix(), 10)},
	}
}

// joinErrors reports false for an empty or nil list.
func joinErrors(errs []string) (string, bool) {
	if len(errs) == 0 {
		return "", false
	}
	return strings.Join(errs, " "), true
}

func (r *StatusResponse) InError() bool {
	return len(r.Errors) > 0
}

func (r *StatusResponse) Message() string {
	if msg, ok := joinErrors(r.Errors); ok {
		return msg
	}
	return noErrorsMessage
}

func printStatus(w io.Writer, r *StatusResponse) {
	c := color.New(color.FgGreen)
	if r.InError() {
		c = color.New(color.FgRed, color.Bold)
	}
	c.Fprintln(w, r.Message())
}
