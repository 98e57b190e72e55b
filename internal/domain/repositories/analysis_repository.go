package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/entities"
)

// AnalysisRepository defines persistence operations for meeting analyses.
// A nil userID scopes operations to the single-user (anonymous) history.
type AnalysisRepository interface {
	// Save inserts the analysis, assigning ID and CreatedAt when unset
	Save(ctx context.Context, analysis *entities.MeetingAnalysis) error

	// ListByUser returns the owner's analyses ordered by created_at descending.
	// An owner with no history gets an empty slice, not an error.
	ListByUser(ctx context.Context, userID *uuid.UUID) ([]*entities.MeetingAnalysis, error)

	// FindByID returns one analysis scoped to the owner.
	// Returns entities.ErrAnalysisNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*entities.MeetingAnalysis, error)
}
