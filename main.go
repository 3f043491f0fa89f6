// ABOUTME: CLI entry point for simplefin-status.
// ABOUTME: Loads or creates config, checks SimpleFIN for account errors, and relays the result to Apprise.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
)

// runError tags a failure with the stage of the run it came from.
type runError struct {
	stage string
	err   error
}

func (e *runError) Error() string {
	return e.stage + ": " + e.err.Error()
}

func (e *runError) Unwrap() error {
	return e.err
}

const (
	stageLoad   = "Error loading config"
	stageSetup  = "Setup failed"
	stageAccess = "Invalid access URL"
	stageFetch  = "Error fetching data"
	stageNotify = "Error sending notification"
)

type options struct {
	forceSetup   bool
	showAccounts bool
}

func parseArgs(args []string) options {
	var opts options
	for _, arg := range args {
		switch arg {
		case "--setup":
			opts.forceSetup = true
		case "--accounts":
			opts.showAccounts = true
		}
	}
	return opts
}

type App struct {
	store    *ConfigStore
	prompter Prompter
	client   *SimpleFinClient
	notifier *AppriseNotifier
	window   Window
	opts     options
	stdout   io.Writer
	stderr   io.Writer
}

func (a *App) Run(ctx context.Context) error {
	cfg, err := a.loadOrSetup(ctx)
	if err != nil {
		return err
	}

	access, err := ParseAccessURL(cfg.AccessURL)
	if err != nil {
		return &runError{stage: stageAccess, err: err}
	}

	stop := startSpinner(a.stderr, "checking SimpleFIN accounts...")
	status, err := a.client.Accounts(ctx, access, a.window)
	stop()
	if err != nil {
		return &runError{stage: stageFetch, err: err}
	}

	printStatus(a.stdout, status)
	if a.opts.showAccounts {
		printAccounts(a.stdout, status.Accounts)
	}

	if cfg.AppriseURL == "" {
		return nil
	}

	if err := a.notifier.Notify(ctx, cfg.AppriseURL, cfg.AppriseTag, status.Message()); err != nil {
		return &runError{stage: stageNotify, err: err}
	}
	return nil
}

func (a *App) loadOrSetup(ctx context.Context) (Config, error) {
	if !a.opts.forceSetup {
		loaded, err := a.store.Load()
		if err != nil {
			return Config{}, &runError{stage: stageLoad, err: err}
		}
		if cfg, ok := loaded.Get(); ok && cfg.HasAccess() {
			return cfg, nil
		}
	}

	cfg, err := a.newSetup().Run(ctx)
	if err != nil {
		return Config{}, &runError{stage: stageSetup, err: err}
	}
	return cfg, nil
}

// newSetup prompts on stdout and shows claim progress on stderr.
func (a *App) newSetup() *Setup {
	return &Setup{
		prompter: a.prompter,
		client:   a.client,
		store:    a.store,
		out:      a.stdout,
		progress: a.stderr,
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	window, err := ParseWindow(settings.StartDate, settings.EndDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	prompter := NewTerminalPrompter(os.Stdin, os.Stdout)
	app := &App{
		store:    NewConfigStore(settings.ConfigPath),
		prompter: prompter,
		client:   NewSimpleFinClient(nil),
		notifier: NewAppriseNotifier(nil),
		window:   window,
		opts:     parseArgs(os.Args[1:]),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}

	err = app.Run(ctx)
	prompter.Close()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%v\n", err)
		cancel()
		os.Exit(1)
	}
}
