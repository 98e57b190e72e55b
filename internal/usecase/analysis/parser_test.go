package analysis

import (
	"testing"
)

func TestParseModelResponse_Valid(t *testing.T) {
	raw := `{"summary":"The team agreed on the Q3 plan.","action_items":[{"task":"Send the report","owner":"Alice","deadline":"2024-06-14","completed":false}]}`

	result, err := NewParser().ParseModelResponse(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.Summary != "The team agreed on the Q3 plan." {
		t.Fatalf("unexpected summary %q", result.Summary)
	}
	if len(result.ActionItems) != 1 {
		t.Fatalf("expected 1 action item, got %d", len(result.ActionItems))
	}
	if result.ActionItems[0].Deadline != "2024-06-14" {
		t.Fatalf("unexpected deadline %q", result.ActionItems[0].Deadline)
	}
}

func TestParseModelResponse_MarkdownWrapped(t *testing.T) {
	raw := "```json\n{\"summary\":\"Short sync.\",\"action_items\":[]}\n```"

	result, err := NewParser().ParseModelResponse(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.Summary != "Short sync." {
		t.Fatalf("unexpected summary %q", result.Summary)
	}
}

func TestParseModelResponse_NullActionItems(t *testing.T) {
	result, err := NewParser().ParseModelResponse(`{"summary":"No tasks.","action_items":null}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.ActionItems == nil || len(result.ActionItems) != 0 {
		t.Fatalf("expected initialized empty action items, got %v", result.ActionItems)
	}
}

func TestParseModelResponse_Invalid(t *testing.T) {
	parser := NewParser()

	for _, raw := range []string{
		"",
		"this is not json",
		"```\nbroken\n```",
		`{"action_items":[]}`, // missing summary
	} {
		if _, err := parser.ParseModelResponse(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
