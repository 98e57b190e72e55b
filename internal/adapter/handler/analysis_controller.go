package handler

import (
	"encoding/base64"
	stdErrors "errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meeting-summarizer-team/meeting-summarizer/errors"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/adapter/dto"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/adapter/presenter"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/entities"
	analysisuse "github.com/meeting-summarizer-team/meeting-summarizer/internal/usecase/analysis"
	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/slack"
)

// AnalysisController handles transcript analysis API endpoints
type AnalysisController struct {
	svc    analysisuse.Service
	logger *zap.Logger
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(svc analysisuse.Service, logger *zap.Logger) *AnalysisController {
	return &AnalysisController{svc: svc, logger: logger}
}

// ProcessTranscript analyzes a raw transcript with the LLM
// @Summary      Process a meeting transcript
// @Description  Sends the transcript to the language model and returns a summary with action items. Processing failures yield the sentinel error result, not an HTTP error.
// @Tags         Analyses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.ProcessTranscriptRequest  true  "Transcript to analyze"
// @Success      200      {object}  dto.AnalysisResultResponse
// @Failure      400      {object}  map[string]interface{}  "Missing transcript"
// @Router       /analyses/process [post]
func (ac *AnalysisController) ProcessTranscript(c echo.Context) error {
	var req dto.ProcessTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if req.Transcript == "" {
		return HandleError(ac.logger, c, errors.ErrMissingTranscript())
	}

	result := ac.svc.ProcessTranscript(c.Request().Context(), req.Transcript)
	return HandleSuccess(ac.logger, c, presenter.ToAnalysisResultResponse(result))
}

// SaveAnalysis persists a processed result under the authenticated user
// @Summary      Save a processed analysis
// @Tags         Analyses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.SaveAnalysisRequest  true  "Analysis to save"
// @Success      200      {object}  dto.MeetingAnalysisResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid payload"
// @Failure      503      {object}  map[string]interface{}  "Persistence not configured"
// @Router       /analyses [post]
func (ac *AnalysisController) SaveAnalysis(c echo.Context) error {
	var req dto.SaveAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result := &entities.AnalysisResult{
		Summary:     req.Summary,
		ActionItems: presenter.ToActionItemEntities(req.ActionItems),
	}

	record, err := ac.svc.SaveAnalysis(c.Request().Context(), UserIDFromContext(c), req.Transcript, result)
	if err != nil {
		if stdErrors.Is(err, analysisuse.ErrStorageDisabled) {
			return HandleError(ac.logger, c, errors.ErrStorageNotConfigured())
		}
		return HandleError(ac.logger, c, errors.ErrDBQueryFailed(err))
	}

	return HandleSuccess(ac.logger, c, presenter.ToMeetingAnalysisResponse(record))
}

// History lists the authenticated user's saved analyses, newest first
// @Summary      List saved analyses
// @Tags         Analyses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.HistoryResponse
// @Failure      503  {object}  map[string]interface{}  "Persistence not configured"
// @Router       /analyses [get]
func (ac *AnalysisController) History(c echo.Context) error {
	analyses, err := ac.svc.History(c.Request().Context(), UserIDFromContext(c))
	if err != nil {
		if stdErrors.Is(err, analysisuse.ErrStorageDisabled) {
			return HandleError(ac.logger, c, errors.ErrStorageNotConfigured())
		}
		return HandleError(ac.logger, c, errors.ErrDBQueryFailed(err))
	}
	return HandleSuccess(ac.logger, c, presenter.ToHistoryResponse(analyses))
}

// GetAnalysis returns a single saved analysis
// @Summary      Get one saved analysis
// @Tags         Analyses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Analysis ID (UUID)"
// @Success      200  {object}  dto.MeetingAnalysisResponse
// @Failure      404  {object}  map[string]interface{}  "Analysis not found"
// @Router       /analyses/{id} [get]
func (ac *AnalysisController) GetAnalysis(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("invalid analysis ID"))
	}

	record, err := ac.svc.GetAnalysis(c.Request().Context(), id, UserIDFromContext(c))
	if err != nil {
		return HandleError(ac.logger, c, ac.mapStorageError(err))
	}
	return HandleSuccess(ac.logger, c, presenter.ToMeetingAnalysisResponse(record))
}

// ExportResult sends a processed (unsaved) result to the Slack webhook
// @Summary      Export an analysis result to Slack
// @Tags         Export
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.ExportResultRequest  true  "Result to export"
// @Success      200      {object}  map[string]interface{}   "Exported"
// @Failure      502      {object}  map[string]interface{}   "Slack delivery failed"
// @Failure      503      {object}  map[string]interface{}   "Slack not configured"
// @Router       /analyses/export [post]
func (ac *AnalysisController) ExportResult(c echo.Context) error {
	var req dto.ExportResultRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result := &entities.AnalysisResult{
		Summary:     req.Summary,
		ActionItems: presenter.ToActionItemEntities(req.ActionItems),
	}

	if err := ac.svc.ExportResult(c.Request().Context(), result); err != nil {
		return HandleError(ac.logger, c, ac.mapExportError(err))
	}
	return HandleSuccess(ac.logger, c, map[string]interface{}{"status": "exported"})
}

// ExportSaved sends a stored analysis to the Slack webhook
// @Summary      Export a saved analysis to Slack
// @Tags         Export
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Analysis ID (UUID)"
// @Success      200  {object}  map[string]interface{}  "Exported"
// @Failure      404  {object}  map[string]interface{}  "Analysis not found"
// @Failure      503  {object}  map[string]interface{}  "Slack not configured"
// @Router       /analyses/{id}/export [post]
func (ac *AnalysisController) ExportSaved(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("invalid analysis ID"))
	}

	if err := ac.svc.ExportSaved(c.Request().Context(), id, UserIDFromContext(c)); err != nil {
		if stdErrors.Is(err, entities.ErrAnalysisNotFound) || stdErrors.Is(err, analysisuse.ErrStorageDisabled) {
			return HandleError(ac.logger, c, ac.mapStorageError(err))
		}
		return HandleError(ac.logger, c, ac.mapExportError(err))
	}
	return HandleSuccess(ac.logger, c, map[string]interface{}{"status": "exported"})
}

// Prefill decodes a base64-encoded transcript supplied as a query parameter
// @Summary      Decode a prefilled transcript
// @Description  Decodes the base64 "t" query parameter into transcript text
// @Tags         Analyses
// @Produce      json
// @Param        t    query     string  true  "Base64-encoded transcript"
// @Success      200  {object}  dto.PrefillResponse
// @Failure      400  {object}  map[string]interface{}  "Malformed base64"
// @Router       /analyses/prefill [get]
func (ac *AnalysisController) Prefill(c echo.Context) error {
	encoded := c.QueryParam("t")
	if encoded == "" {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("missing t query parameter"))
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrPrefillDecodeFailed(err))
	}

	return HandleSuccess(ac.logger, c, &dto.PrefillResponse{Transcript: string(decoded)})
}

// mapStorageError converts service storage errors to AppErrors
func (ac *AnalysisController) mapStorageError(err error) error {
	switch {
	case stdErrors.Is(err, analysisuse.ErrStorageDisabled):
		return errors.ErrStorageNotConfigured()
	case stdErrors.Is(err, entities.ErrAnalysisNotFound):
		return errors.ErrNotFound("Meeting analysis")
	default:
		return errors.ErrDBQueryFailed(err)
	}
}

// mapExportError converts service export errors to AppErrors
func (ac *AnalysisController) mapExportError(err error) error {
	if stdErrors.Is(err, slack.ErrWebhookNotConfigured) {
		return errors.ErrSlackNotConfigured()
	}
	return errors.ErrSlackDeliveryFailed(err)
}
