package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/entities"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/repositories"
	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/slack"
)

// ErrStorageDisabled is returned by persistence operations when no database
// was configured at startup.
var ErrStorageDisabled = errors.New("persistence is disabled: no database configured")

// LLMClient generates model text for an analysis prompt
type LLMClient interface {
	Enabled() bool
	GenerateAnalysis(ctx context.Context, prompt string) (string, error)
}

// SlackPoster delivers a Block Kit message to a webhook
type SlackPoster interface {
	Enabled() bool
	Post(ctx context.Context, msg slack.Message) error
}

// Service defines transcript analysis orchestration methods
type Service interface {
	// ProcessTranscript always returns a well-shaped result: any LLM-path
	// failure (missing key, transport, parse) yields the sentinel result.
	ProcessTranscript(ctx context.Context, transcript string) *entities.AnalysisResult

	SaveAnalysis(ctx context.Context, userID *uuid.UUID, transcript string, result *entities.AnalysisResult) (*entities.MeetingAnalysis, error)
	History(ctx context.Context, userID *uuid.UUID) ([]*entities.MeetingAnalysis, error)
	GetAnalysis(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*entities.MeetingAnalysis, error)

	// ExportResult sends a processed result to Slack. Returns
	// slack.ErrWebhookNotConfigured without any network call when the
	// webhook URL is unset.
	ExportResult(ctx context.Context, result *entities.AnalysisResult) error
	ExportSaved(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error
}

type analysisService struct {
	repo        repositories.AnalysisRepository
	llm         LLMClient
	slackClient SlackPoster
	parser      *Parser
	logger      *zap.Logger
	now         func() time.Time
}

// NewService constructs a new analysis service. repo may be nil when
// persistence is disabled; llm and slackClient report their own availability
// via Enabled.
func NewService(
	repo repositories.AnalysisRepository,
	llm LLMClient,
	slackClient SlackPoster,
	logger *zap.Logger,
) Service {
	return &analysisService{
		repo:        repo,
		llm:         llm,
		slackClient: slackClient,
		parser:      NewParser(),
		logger:      logger,
		now:         time.Now,
	}
}

// ProcessTranscript builds the prompt, calls the model once and parses the
// reply. Every failure is recovered here into the sentinel result so the
// caller never special-cases errors.
func (s *analysisService) ProcessTranscript(ctx context.Context, transcript string) *entities.AnalysisResult {
	if s.llm == nil || !s.llm.Enabled() {
		if s.logger != nil {
			s.logger.Warn("transcript analysis requested but no LLM is configured")
		}
		return entities.FailedAnalysisResult()
	}

	prompt := BuildPrompt(transcript, s.now())

	raw, err := s.llm.GenerateAnalysis(ctx, prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("LLM call failed", zap.Error(err))
		}
		return entities.FailedAnalysisResult()
	}

	result, err := s.parser.ParseModelResponse(raw)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("failed to parse model response", zap.Error(err))
		}
		return entities.FailedAnalysisResult()
	}

	return result
}

// SaveAnalysis persists a processed result under the owner
func (s *analysisService) SaveAnalysis(ctx context.Context, userID *uuid.UUID, transcript string, result *entities.AnalysisResult) (*entities.MeetingAnalysis, error) {
	if s.repo == nil {
		return nil, ErrStorageDisabled
	}

	record := entities.NewMeetingAnalysis(userID, transcript, result)
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("meeting analysis saved",
			zap.String("analysis_id", record.ID.String()),
			zap.Int("action_items", len(record.Items())),
		)
	}
	return record, nil
}

// History returns the owner's analyses, newest first
func (s *analysisService) History(ctx context.Context, userID *uuid.UUID) ([]*entities.MeetingAnalysis, error) {
	if s.repo == nil {
		return nil, ErrStorageDisabled
	}
	return s.repo.ListByUser(ctx, userID)
}

// GetAnalysis returns one stored analysis scoped to the owner
func (s *analysisService) GetAnalysis(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*entities.MeetingAnalysis, error) {
	if s.repo == nil {
		return nil, ErrStorageDisabled
	}
	return s.repo.FindByID(ctx, id, userID)
}

// ExportResult renders the result and posts it to the Slack webhook
func (s *analysisService) ExportResult(ctx context.Context, result *entities.AnalysisResult) error {
	if s.slackClient == nil || !s.slackClient.Enabled() {
		return slack.ErrWebhookNotConfigured
	}

	msg := BuildSlackMessage(result)
	if err := s.slackClient.Post(ctx, msg); err != nil {
		if s.logger != nil {
			s.logger.Error("slack export failed", zap.Error(err))
		}
		return err
	}

	if s.logger != nil {
		s.logger.Info("analysis exported to slack")
	}
	return nil
}

// ExportSaved loads a stored analysis and exports its normalized result
func (s *analysisService) ExportSaved(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error {
	record, err := s.GetAnalysis(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.ExportResult(ctx, record.Result())
}
