package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/config"
)

// ErrWebhookNotConfigured is returned by Post when no webhook URL is set.
// No network call is attempted in that case.
var ErrWebhookNotConfigured = errors.New("slack webhook URL is not configured")

// Client posts Block Kit messages to a Slack incoming webhook
type Client struct {
	webhookURL string
	client     *http.Client
}

// NewClient creates a Slack webhook client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewClient(cfg *config.SlackConfig) *Client {
	var url string
	if cfg != nil {
		url = cfg.WebhookURL
	}
	if url == "" {
		url = os.Getenv("SLACK_WEBHOOK_URL")
	}

	return &Client{
		webhookURL: url,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether a webhook URL is configured
func (c *Client) Enabled() bool {
	return c.webhookURL != ""
}

// Post sends the message to the configured webhook. One attempt, no retry.
func (c *Client) Post(ctx context.Context, msg Message) error {
	if c.webhookURL == "" {
		return ErrWebhookNotConfigured
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("slack webhook returned status %d", resp.StatusCode)
	}
	return nil
}
