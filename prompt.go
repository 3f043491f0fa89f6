// ABOUTME: Interactive question/answer input used by setup.
// ABOUTME: The terminal implementation hides secret answers when stdin is a TTY.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var errPrompterClosed = errors.New("prompter closed")

type Prompter interface {
	Ask(question string) (string, error)
	Close() error
}

// secretAsker is implemented by prompters that can read without echo.
type secretAsker interface {
	AskSecret(question string) (string, error)
}

func askSecret(p Prompter, question string) (string, error) {
	if s, ok := p.(secretAsker); ok {
		return s.AskSecret(question)
	}
	return p.Ask(question)
}

type TerminalPrompter struct {
	in     *os.File
	reader *bufio.Reader
	out    io.Writer
}

func NewTerminalPrompter(in *os.File, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask reads one line. End of input counts as a blank answer.
func (p *TerminalPrompter) Ask(question string) (string, error) {
	if p.reader == nil {
		return "", errPrompterClosed
	}

	fmt.Fprint(p.out, question)
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *TerminalPrompter) AskSecret(question string) (string, error) {
	if p.reader == nil {
		return "", errPrompterClosed
	}

	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		return p.Ask(question)
	}

	fmt.Fprint(p.out, question)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}

func (p *TerminalPrompter) Close() error {
	p.reader = nil
	return nil
}
