package presenter

import (
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/adapter/dto"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/entities"
)

// ToActionItemDTOs converts action item entities to DTOs
func ToActionItemDTOs(items []entities.ActionItem) []dto.ActionItemDTO {
	out := make([]dto.ActionItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ActionItemDTO{
			Task:      item.Task,
			Owner:     item.Owner,
			Deadline:  item.Deadline,
			Completed: item.Completed,
		})
	}
	return out
}

// ToActionItemEntities converts wire DTOs to action item entities
func ToActionItemEntities(items []dto.ActionItemDTO) []entities.ActionItem {
	out := make([]entities.ActionItem, 0, len(items))
	for _, item := range items {
		out = append(out, entities.ActionItem{
			Task:      item.Task,
			Owner:     item.Owner,
			Deadline:  item.Deadline,
			Completed: item.Completed,
		})
	}
	return out
}

// ToAnalysisResultResponse converts a processed result to its response DTO
func ToAnalysisResultResponse(result *entities.AnalysisResult) *dto.AnalysisResultResponse {
	if result == nil {
		return nil
	}
	return &dto.AnalysisResultResponse{
		Summary:     result.Summary,
		ActionItems: ToActionItemDTOs(result.ActionItems),
	}
}

// ToMeetingAnalysisResponse converts a stored record to its response DTO.
// Action items are read through the normalizer so the stored encoding never
// leaks to API consumers.
func ToMeetingAnalysisResponse(m *entities.MeetingAnalysis) *dto.MeetingAnalysisResponse {
	if m == nil {
		return nil
	}
	return &dto.MeetingAnalysisResponse{
		ID:          m.ID,
		UserID:      m.UserID,
		Transcript:  m.Transcript,
		Summary:     m.Summary,
		ActionItems: ToActionItemDTOs(m.Items()),
		CreatedAt:   m.CreatedAt,
	}
}

// ToHistoryResponse converts a list of stored records to the history DTO
func ToHistoryResponse(analyses []*entities.MeetingAnalysis) *dto.HistoryResponse {
	out := make([]*dto.MeetingAnalysisResponse, 0, len(analyses))
	for _, m := range analyses {
		out = append(out, ToMeetingAnalysisResponse(m))
	}
	return &dto.HistoryResponse{
		Analyses: out,
		Total:    len(out),
	}
}
