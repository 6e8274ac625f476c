package domain

import "time"

// Difficulty factor keys used in DifficultyAssessment.DifficultyFactors
const (
	FactorFormulaComplexity     = "formula_complexity"
	FactorStepComplexity        = "step_complexity"
	FactorConceptComplexity     = "concept_complexity"
	FactorComputationComplexity = "computation_complexity"
)

// DuplicateActionRemoved is the only action the duplicate detector takes today
const DuplicateActionRemoved = "removed"

// SimilarityScore is the weighted similarity between two exercises together
// with the component scores it was built from.
type SimilarityScore struct {
	Overall float64 `json:"overall"`
	Text    float64 `json:"text"`
	Answer  float64 `json:"answer"`
	Type    float64 `json:"type"`
	Formula float64 `json:"formula"`
}

// DifficultyLevel is a difficulty tier with its display name and color
type DifficultyLevel struct {
	Level string `json:"level"` // easy, medium, hard
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DifficultyAssessment is the heuristic difficulty estimate of one exercise
type DifficultyAssessment struct {
	ExerciseID        ExerciseID         `json:"exercise_id"`
	OverallDifficulty float64            `json:"overall_difficulty"`
	DifficultyFactors map[string]float64 `json:"difficulty_factors"`
	DifficultyLevel   DifficultyLevel    `json:"difficulty_level"`
	EstimatedTime     int                `json:"estimated_time"` // minutes
	Recommendations   []string           `json:"recommendations"`
}

// DuplicateReportEntry records one exercise removed as a near-duplicate
type DuplicateReportEntry struct {
	OriginalID  ExerciseID      `json:"original_id"`
	DuplicateID ExerciseID      `json:"duplicate_id"`
	Similarity  SimilarityScore `json:"similarity"`
	Action      string          `json:"action"`
}

// DedupResult is the outcome of duplicate detection over an ordered list
type DedupResult struct {
	UniqueExercises []Exercise             `json:"unique_exercises"`
	RemovedCount    int                    `json:"removed_count"`
	DuplicateReport []DuplicateReportEntry `json:"duplicate_report"`
}

// QualityMetrics groups the analyses of a quality report
type QualityMetrics struct {
	Duplicates         DedupResult            `json:"duplicates"`
	DifficultyAnalysis []DifficultyAssessment `json:"difficulty_analysis"`
	MathFormulas       int                    `json:"math_formulas"`
}

// QualityReport aggregates duplicate detection and difficulty analysis.
// TotalExercises always equals the length of the analysed input.
type QualityReport struct {
	Timestamp         time.Time      `json:"timestamp"`
	TotalExercises    int            `json:"total_exercises"`
	AverageDifficulty float64        `json:"average_difficulty"`
	QualityMetrics    QualityMetrics `json:"quality_metrics"`
	Recommendations   []string       `json:"recommendations"`
}
