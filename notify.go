// ABOUTME: Sends status messages to an Apprise API endpoint.
// ABOUTME: Posts body and tag as a URL-encoded form.

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type AppriseNotifier struct {
	httpClient *http.Client
}

func NewAppriseNotifier(httpClient *http.Client) *AppriseNotifier {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &AppriseNotifier{httpClient: httpClient}
}

func (n *AppriseNotifier) Notify(ctx context.Context, appriseURL, tag, message string) error {
	form := url.Values{
		"body": []string{message},
		"tag":  []string{tag},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, appriseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Apprise error: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
