package models

import "time"

// QualityReport is a row of the quality_reports table. The full report is kept
// as JSON in Payload; the other columns exist for listing and filtering.
type QualityReport struct {
	ID                string    `db:"ID"`
	Threshold         float64   `db:"THRESHOLD"`
	TotalExercises    int       `db:"TOTAL_EXERCISES"`
	UniqueExercises   int       `db:"UNIQUE_EXERCISES"`
	RemovedCount      int       `db:"REMOVED_COUNT"`
	AverageDifficulty float64   `db:"AVERAGE_DIFFICULTY"`
	MathFormulas      int       `db:"MATH_FORMULAS"`
	Payload           string    `db:"PAYLOAD"`
	GeneratedAt       time.Time `db:"GENERATED_AT"`
	CreatedAt         time.Time `db:"CREATED_AT"`
}

// QualityReportDuplicate is one removed near-duplicate pair of a stored report
type QualityReportDuplicate struct {
	ReportID          string  `db:"REPORT_ID"`
	Position          int     `db:"POSITION"`
	OriginalID        string  `db:"ORIGINAL_ID"`
	DuplicateID       string  `db:"DUPLICATE_ID"`
	OverallSimilarity float64 `db:"OVERALL_SIMILARITY"`
}
