package dto

import "homework-grader/internal/domain"

// ExerciseBatchRequest is the body shared by the quality endpoints
// @Description Exercises to analyse, in generation order
type ExerciseBatchRequest struct {
	Exercises []domain.Exercise `json:"exercises"`
	// Threshold overrides the server default duplicate threshold when set
	Threshold *float64 `json:"threshold,omitempty"`
}

// DedupResponse is returned by POST /api/exercises/dedup
// @Description Unique exercises and the removed near-duplicates
type DedupResponse struct {
	UniqueExercises []domain.Exercise             `json:"unique_exercises"`
	RemovedCount    int                           `json:"removed_count"`
	DuplicateReport []domain.DuplicateReportEntry `json:"duplicate_report"`
	Threshold       float64                       `json:"threshold"`
}

// DifficultyResponse is returned by POST /api/exercises/difficulty
type DifficultyResponse struct {
	Assessments []domain.DifficultyAssessment `json:"assessments"`
}

// QualityReportResponse wraps a generated or stored report
// @Description Quality report with the id it was stored under
type QualityReportResponse struct {
	ID        string                `json:"id,omitempty"`
	Threshold float64               `json:"threshold"`
	Cached    bool                  `json:"cached"`
	Report    *domain.QualityReport `json:"report"`
}
