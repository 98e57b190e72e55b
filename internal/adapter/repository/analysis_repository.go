package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/entities"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/repositories"
)

// AnalysisRepository implements the analysis repository interface using GORM
type AnalysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *gorm.DB) repositories.AnalysisRepository {
	return &AnalysisRepository{
		db: db,
	}
}

// Save inserts a new meeting analysis, assigning ID and CreatedAt when unset
func (r *AnalysisRepository) Save(ctx context.Context, analysis *entities.MeetingAnalysis) error {
	if analysis.ID == uuid.Nil {
		analysis.ID = uuid.New()
	}
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to save meeting analysis: %w", err)
	}
	return nil
}

// ListByUser returns the owner's analyses, newest first
func (r *AnalysisRepository) ListByUser(ctx context.Context, userID *uuid.UUID) ([]*entities.MeetingAnalysis, error) {
	analyses := make([]*entities.MeetingAnalysis, 0)

	query := r.db.WithContext(ctx).Model(&entities.MeetingAnalysis{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	} else {
		query = query.Where("user_id IS NULL")
	}

	if err := query.Order("created_at DESC").Find(&analyses).Error; err != nil {
		return nil, fmt.Errorf("failed to list meeting analyses: %w", err)
	}
	return analyses, nil
}

// FindByID finds one analysis scoped to the owner
func (r *AnalysisRepository) FindByID(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*entities.MeetingAnalysis, error) {
	var analysis entities.MeetingAnalysis

	query := r.db.WithContext(ctx).Where("id = ?", id)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	} else {
		query = query.Where("user_id IS NULL")
	}

	if err := query.First(&analysis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to find meeting analysis by ID: %w", err)
	}
	return &analysis, nil
}
