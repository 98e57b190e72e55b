package analysis

import (
	"strings"
	"testing"
	"time"
)

func TestBuildPrompt_EmbedsTranscriptVerbatim(t *testing.T) {
	transcript := "Alice will send the report by Friday.\nBob: sounds good."
	today := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	prompt := BuildPrompt(transcript, today)

	if !strings.Contains(prompt, transcript) {
		t.Fatalf("prompt does not embed transcript verbatim")
	}
	if !strings.Contains(prompt, "2024-06-10") {
		t.Fatalf("prompt does not anchor today's date")
	}
}

func TestBuildPrompt_NamesOutputContract(t *testing.T) {
	prompt := BuildPrompt("a transcript", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

	for _, want := range []string{
		`"summary"`,
		`"action_items"`,
		`"task"`,
		`"owner"`,
		`"deadline"`,
		`"completed"`,
		`"Not specified"`,
		"`false`",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %s", want)
		}
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	a := BuildPrompt("same input", today)
	b := BuildPrompt("same input", today)
	if a != b {
		t.Fatalf("prompt construction is not deterministic")
	}
}
