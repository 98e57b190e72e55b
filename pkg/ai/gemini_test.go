package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/config"
)

func TestGenerateAnalysis_Success(t *testing.T) {
	// Mock Gemini server
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, "gemini-1.5-flash-latest:generateContent") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Fatalf("missing api key header")
		}

		var payload GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if len(payload.Contents) != 1 || len(payload.Contents[0].Parts) != 1 {
			t.Fatalf("unexpected contents shape: %+v", payload.Contents)
		}
		if payload.GenerationConfig == nil || payload.GenerationConfig.ResponseMIMEType != "application/json" {
			t.Fatalf("JSON output mode not requested")
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": `{"summary":"ok","action_items":[]}`}},
				}},
			},
		})
	}))
	defer ts.Close()

	client := NewGeminiClient(&config.GeminiConfig{APIKey: "test-key", BaseURL: ts.URL})

	text, err := client.GenerateAnalysis(context.Background(), "analyze this")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if text != `{"summary":"ok","action_items":[]}` {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestGenerateAnalysis_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewGeminiClient(&config.GeminiConfig{APIKey: "test-key", BaseURL: ts.URL})

	if _, err := client.GenerateAnalysis(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error for 500 response")
	}
}

func TestGenerateAnalysis_EmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer ts.Close()

	client := NewGeminiClient(&config.GeminiConfig{APIKey: "test-key", BaseURL: ts.URL})

	if _, err := client.GenerateAnalysis(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error for empty candidates")
	}
}

func TestGenerateAnalysis_NoAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	client := NewGeminiClient(&config.GeminiConfig{BaseURL: "http://localhost:1"})
	if client.Enabled() {
		t.Fatalf("expected disabled client without api key")
	}
	if _, err := client.GenerateAnalysis(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error without api key")
	}
}
