package entities

import "errors"

var (
	// ErrAnalysisNotFound is returned when a meeting analysis does not exist
	// or belongs to a different user
	ErrAnalysisNotFound = errors.New("meeting analysis not found")
)
