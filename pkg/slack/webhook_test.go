package slack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/config"
)

func TestPost_Success(t *testing.T) {
	var received Message
	calls := 0

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(&config.SlackConfig{WebhookURL: ts.URL})

	msg := Message{Blocks: []Block{
		Header("🤖 AI Meeting Summary"),
		Section("*Summary:*\n>done"),
		Divider(),
		Section("*Action Items:*\n_No action items identified._"),
	}}
	if err := client.Post(context.Background(), msg); err != nil {
		t.Fatalf("post failed: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected exactly one webhook call, got %d", calls)
	}
	if len(received.Blocks) != 4 {
		t.Fatalf("expected 4 blocks on the wire, got %d", len(received.Blocks))
	}
	if received.Blocks[0].Type != "header" || received.Blocks[0].Text.Type != "plain_text" {
		t.Fatalf("unexpected header block: %+v", received.Blocks[0])
	}
	if received.Blocks[2].Type != "divider" || received.Blocks[2].Text != nil {
		t.Fatalf("divider block must not carry text: %+v", received.Blocks[2])
	}
}

func TestPost_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	client := NewClient(&config.SlackConfig{WebhookURL: ts.URL})

	if err := client.Post(context.Background(), Message{}); err == nil {
		t.Fatalf("expected error for 400 response")
	}
}

func TestPost_NotConfigured(t *testing.T) {
	t.Setenv("SLACK_WEBHOOK_URL", "")

	client := NewClient(&config.SlackConfig{})
	if client.Enabled() {
		t.Fatalf("expected disabled client without webhook URL")
	}

	err := client.Post(context.Background(), Message{})
	if !errors.Is(err, ErrWebhookNotConfigured) {
		t.Fatalf("expected ErrWebhookNotConfigured, got %v", err)
	}
}
