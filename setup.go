// ABOUTME: First-run setup for simplefin-status.
// ABOUTME: Claims a SimpleFIN setup token and records the access URL and Apprise settings.

package main

import (
	"context"
	"fmt"
	"io"
)

const (
	setupTokenQuestion = "SimpleFin Setup Token? "
	appriseURLQuestion = "Apprise URL? (leave blank to skip) "
	appriseTagQuestion = "Apprise Tag? (leave blank to skip) "
)

type Setup struct {
	prompter Prompter
	client   *SimpleFinClient
	store    *ConfigStore
	out      io.Writer
	progress io.Writer
}

func (s *Setup) Run(ctx context.Context) (Config, error) {
	fmt.Fprintln(s.out, "Setting up SimpleFIN access.")
	fmt.Fprintln(s.out)

	token, err := askSecret(s.prompter, setupTokenQuestion)
	if err != nil {
		return Config{}, err
	}

	claimURL, err := DecodeSetupToken(token)
	if err != nil {
		return Config{}, err
	}

	stop := startSpinner(s.progress, "claiming setup token...")
	accessURL, err := s.client.Claim(ctx, claimURL)
	stop()
	if err != nil {
		return Config{}, fmt.Errorf("could not claim setup token: %w", err)
	}

	appriseURL, err := s.prompter.Ask(appriseURLQuestion)
	if err != nil {
		return Config{}, err
	}
	appriseTag, err := s.prompter.Ask(appriseTagQuestion)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AccessURL:  accessURL,
		AppriseURL: appriseURL,
		AppriseTag: appriseTag,
	}

	if err := s.store.Save(cfg); err != nil {
		return Config{}, fmt.Errorf("could not save config: %w", err)
	}
	fmt.Fprintf(s.out, "\nConfiguration saved to %s\n\n", s.store.Path())

	return cfg, nil
}
