package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotSpecified is the sentinel the model is instructed to use for an
// action-item owner or deadline the transcript never mentions.
const NotSpecified = "Not specified"

// FailedSummary is the summary text of the sentinel result returned when
// transcript processing fails for any reason.
const FailedSummary = "Error: Could not process the transcript."

// ActionItem is a single task extracted from a transcript
type ActionItem struct {
	Task      string `json:"task"`
	Owner     string `json:"owner"`
	Deadline  string `json:"deadline"`
	Completed bool   `json:"completed"`
}

// AnalysisResult is the structured output contract with the LLM:
// a prose summary plus an ordered list of action items.
type AnalysisResult struct {
	Summary     string       `json:"summary"`
	ActionItems []ActionItem `json:"action_items"`
}

// FailedAnalysisResult returns the sentinel result used when processing fails
func FailedAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		Summary:     FailedSummary,
		ActionItems: make([]ActionItem, 0),
	}
}

// MeetingAnalysis is a persisted transcript analysis owned by a user
type MeetingAnalysis struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      *uuid.UUID     `json:"user_id,omitempty" gorm:"type:uuid;index"`
	Transcript  string         `json:"transcript" gorm:"type:text;not null"`
	Summary     string         `json:"summary" gorm:"type:text;not null"`
	ActionItems datatypes.JSON `json:"action_items,omitempty" gorm:"type:jsonb"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName specifies the table name for MeetingAnalysis
func (MeetingAnalysis) TableName() string {
	return "meeting_analyses"
}

// NewMeetingAnalysis creates a MeetingAnalysis from a processed result.
// ID and CreatedAt are assigned at save time by the repository.
func NewMeetingAnalysis(userID *uuid.UUID, transcript string, result *AnalysisResult) *MeetingAnalysis {
	items := make([]ActionItem, 0)
	summary := ""
	if result != nil {
		summary = result.Summary
		if result.ActionItems != nil {
			items = result.ActionItems
		}
	}
	raw, _ := json.Marshal(items)

	return &MeetingAnalysis{
		UserID:      userID,
		Transcript:  transcript,
		Summary:     summary,
		ActionItems: datatypes.JSON(raw),
	}
}

// Items returns the action items as a native slice, whatever encoding the
// stored column uses.
func (m *MeetingAnalysis) Items() []ActionItem {
	return NormalizeActionItems(m.ActionItems)
}

// Result returns the analysis in its normalized in-memory shape
func (m *MeetingAnalysis) Result() *AnalysisResult {
	return &AnalysisResult{
		Summary:     m.Summary,
		ActionItems: m.Items(),
	}
}
