package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/entities"
)

// Parser handles parsing and validation of Gemini responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseModelResponse parses the model's JSON reply into an AnalysisResult.
// The error branch is explicit; callers decide whether to recover with the
// sentinel result.
func (p *Parser) ParseModelResponse(raw string) (*entities.AnalysisResult, error) {
	// Extract JSON from response (the model might wrap it in markdown code blocks)
	raw = extractJSON(raw)

	var result entities.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	// Validate required fields
	if result.Summary == "" {
		return nil, fmt.Errorf("missing summary in response")
	}

	// ActionItems can be empty for short meetings. Just ensure it's initialized.
	if result.ActionItems == nil {
		result.ActionItems = make([]entities.ActionItem, 0)
	}

	return &result, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
