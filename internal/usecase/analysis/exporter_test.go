package analysis

import (
	"strings"
	"testing"

	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/entities"
)

func TestBuildSlackMessage_EmptyActionItems(t *testing.T) {
	msg := BuildSlackMessage(&entities.AnalysisResult{
		Summary:     "Quick standup, no blockers.",
		ActionItems: []entities.ActionItem{},
	})

	if len(msg.Blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(msg.Blocks))
	}
	if msg.Blocks[0].Type != "header" || msg.Blocks[0].Text.Text != "🤖 AI Meeting Summary" {
		t.Fatalf("unexpected header block: %+v", msg.Blocks[0])
	}
	if msg.Blocks[1].Type != "section" || !strings.Contains(msg.Blocks[1].Text.Text, "Quick standup, no blockers.") {
		t.Fatalf("summary block missing summary text: %+v", msg.Blocks[1])
	}
	if msg.Blocks[2].Type != "divider" {
		t.Fatalf("expected divider, got %+v", msg.Blocks[2])
	}
	if !strings.Contains(msg.Blocks[3].Text.Text, "_No action items identified._") {
		t.Fatalf("expected no-items placeholder, got %q", msg.Blocks[3].Text.Text)
	}
}

func TestBuildSlackMessage_QuotesMultilineSummary(t *testing.T) {
	msg := BuildSlackMessage(&entities.AnalysisResult{
		Summary: "Line one.\nLine two.",
	})

	text := msg.Blocks[1].Text.Text
	if !strings.Contains(text, ">Line one.\n> Line two.") {
		t.Fatalf("summary lines not quoted: %q", text)
	}
}

func TestBuildSlackMessage_ActionItemLines(t *testing.T) {
	msg := BuildSlackMessage(&entities.AnalysisResult{
		Summary: "Planning meeting.",
		ActionItems: []entities.ActionItem{
			{Task: "Send the report", Owner: "Alice", Deadline: "2024-06-14"},
			{Task: "Book venue", Owner: entities.NotSpecified, Deadline: entities.NotSpecified},
			{Task: "Ping legal", Owner: "Bob"},
		},
	})

	text := msg.Blocks[3].Text.Text
	if !strings.Contains(text, "• *Send the report* - Owner: Alice, Deadline: 2024-06-14") {
		t.Fatalf("missing full item line: %q", text)
	}
	if !strings.Contains(text, "• *Book venue* - Owner: Not specified, Deadline: Not specified") {
		t.Fatalf("sentinel values not rendered verbatim: %q", text)
	}
	// Empty deadline omits the deadline segment entirely
	if !strings.Contains(text, "• *Ping legal* - Owner: Bob\n") || strings.Contains(text, "Ping legal* - Owner: Bob, Deadline") {
		t.Fatalf("empty deadline not omitted: %q", text)
	}
}

func TestBuildSlackMessage_NilResult(t *testing.T) {
	msg := BuildSlackMessage(nil)
	if len(msg.Blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(msg.Blocks))
	}
	if !strings.Contains(msg.Blocks[1].Text.Text, "No summary available.") {
		t.Fatalf("expected summary fallback, got %q", msg.Blocks[1].Text.Text)
	}
}
