// ABOUTME: Terminal output helpers for simplefin-status.
// ABOUTME: Renders the account summary table and shows progress spinners on TTYs.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"
	"golang.org/x/term"
)

// startSpinner returns the function that stops it. Nothing is drawn unless w is a terminal.
func startSpinner(w io.Writer, suffix string) func() {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(f))
	s.Suffix = " " + suffix
	s.Start()
	return s.Stop
}

func terminalWidth(w io.Writer) int {
	const minWidth = 80

	width := 120 // default
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			width = cols
		}
	}
	if width < minWidth {
		width = minWidth
	}
	return width
}

// accountWidths returns nil when the table fits, leaving tablewriter to size columns.
func accountWidths(accounts []Account, termWidth int) map[int]int {
	const (
		balanceWidth = 20
		dateWidth    = 12
		// 4 column separators + 2 padding per column
		overhead = 13
	)

	maxOrg := lo.Max(lo.Map(accounts, func(a Account, _ int) int { return len(a.Org) }))
	maxName := lo.Max(lo.Map(accounts, func(a Account, _ int) int { return len(a.Name) }))

	flexible := termWidth - balanceWidth - dateWidth - overhead
	if maxOrg+maxName <= flexible {
		return nil
	}

	orgWidth := flexible * maxOrg / (maxOrg + maxName)
	return map[int]int{
		0: orgWidth,
		1: flexible - orgWidth,
		2: balanceWidth,
		3: dateWidth,
	}
}

func formatBalance(a Account) string {
	if a.Currency == "" || len(a.Currency) > 3 {
		return a.Balance
	}
	return a.Balance + " " + a.Currency
}

func printAccounts(w io.Writer, accounts []Account) {
	fmt.Fprintln(w)
	color.New(color.FgCyan, color.Bold).Fprintln(w, "ACCOUNTS")

	if len(accounts) == 0 {
		color.New(color.Faint).Fprintln(w, "  No accounts returned.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Formatting.AutoWrap = tw.WrapTruncate
		cfg.Row.Alignment.PerColumn = []tw.Align{
			tw.AlignLeft,  // Institution
			tw.AlignLeft,  // Account
			tw.AlignRight, // Balance
			tw.AlignLeft,  // As of
		}
		if widths := accountWidths(accounts, terminalWidth(w)); widths != nil {
			cfg.Widths.PerColumn = widths
		}
	})
	table.Header("Institution", "Account", "Balance", "As of")

	for _, a := range accounts {
		asOf := ""
		if !a.BalanceDate.IsZero() {
			asOf = a.BalanceDate.Local().Format("Jan 2 2006")
		}
		table.Append(a.Org, a.Name, formatBalance(a), asOf)
	}

	table.Render()
}
