package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProcessTranscriptRequest is the request to analyze a raw transcript
type ProcessTranscriptRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// ActionItemDTO represents one action item on the wire
type ActionItemDTO struct {
	Task      string `json:"task"`
	Owner     string `json:"owner"`
	Deadline  string `json:"deadline"`
	Completed bool   `json:"completed"`
}

// AnalysisResultResponse is a processed (not necessarily saved) result
type AnalysisResultResponse struct {
	Summary     string          `json:"summary"`
	ActionItems []ActionItemDTO `json:"action_items"`
}

// SaveAnalysisRequest is the request to persist a processed result
type SaveAnalysisRequest struct {
	Transcript  string          `json:"transcript" validate:"required"`
	Summary     string          `json:"summary" validate:"required"`
	ActionItems []ActionItemDTO `json:"action_items"`
}

// MeetingAnalysisResponse is a stored analysis record
type MeetingAnalysisResponse struct {
	ID          uuid.UUID       `json:"id"`
	UserID      *uuid.UUID      `json:"user_id,omitempty"`
	Transcript  string          `json:"transcript"`
	Summary     string          `json:"summary"`
	ActionItems []ActionItemDTO `json:"action_items"`
	CreatedAt   time.Time       `json:"created_at"`
}

// HistoryResponse is the owner's saved analyses, newest first
type HistoryResponse struct {
	Analyses []*MeetingAnalysisResponse `json:"analyses"`
	Total    int                        `json:"total"`
}

// ExportResultRequest is the request to export an unsaved result to Slack
type ExportResultRequest struct {
	Summary     string          `json:"summary" validate:"required"`
	ActionItems []ActionItemDTO `json:"action_items"`
}

// PrefillResponse carries a transcript decoded from a base64 query parameter
type PrefillResponse struct {
	Transcript string `json:"transcript"`
}
