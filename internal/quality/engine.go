package quality

import (
	"fmt"
	"runtime"
	"time"

	"homework-grader/internal/domain"

	"golang.org/x/sync/errgroup"
)

// Report-level recommendations
const (
	lowAverageDifficulty  = 0.3
	highAverageDifficulty = 0.8

	RecommendIncreaseDifficulty = "题目整体难度偏低，建议适当增加难度"
	RecommendDecreaseDifficulty = "题目整体难度偏高，建议适当降低难度"
	duplicatesRemovedFormat     = "发现 %d 道重复题目，已自动去除"
)

// Engine runs duplicate detection and difficulty analysis over exercise batches.
// It holds no mutable state; one Engine can serve concurrent callers.
type Engine struct {
	evaluator *Evaluator
	threshold float64
	workers   int
	now       func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithDuplicateThreshold sets the default near-duplicate threshold
func WithDuplicateThreshold(threshold float64) Option {
	return func(e *Engine) {
		e.threshold = threshold
	}
}

// WithKeywordTables replaces the difficulty vocabularies
func WithKeywordTables(tables KeywordTables) Option {
	return func(e *Engine) {
		e.evaluator = NewEvaluator(tables)
	}
}

// WithWorkers bounds how many exercises are scored in parallel
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithClock overrides the report timestamp source
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an Engine with default tables and threshold
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		evaluator: NewEvaluator(DefaultKeywordTables()),
		threshold: DefaultDuplicateThreshold,
		workers:   runtime.GOMAXPROCS(0),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Threshold returns the engine's near-duplicate threshold
func (e *Engine) Threshold() float64 {
	return e.threshold
}

// ForThreshold returns a copy of the engine using another duplicate threshold
func (e *Engine) ForThreshold(threshold float64) *Engine {
	cp := *e
	cp.threshold = threshold
	return &cp
}

// RemoveDuplicates runs greedy duplicate detection with the engine threshold
func (e *Engine) RemoveDuplicates(exercises []domain.Exercise) (*domain.DedupResult, error) {
	return RemoveDuplicates(exercises, e.threshold)
}

// EvaluateDifficulty scores a single exercise
func (e *Engine) EvaluateDifficulty(ex domain.Exercise) domain.DifficultyAssessment {
	return e.evaluator.EvaluateDifficulty(ex)
}

// EvaluateAll scores every exercise. Exercises are independent, so they are
// scored in parallel; the result order always matches the input order.
func (e *Engine) EvaluateAll(exercises []domain.Exercise) ([]domain.DifficultyAssessment, error) {
	if exercises == nil {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("exercises")}
	}
	assessments := make([]domain.DifficultyAssessment, len(exercises))
	var g errgroup.Group
	g.SetLimit(e.workers)
	for i := range exercises {
		g.Go(func() error {
			assessments[i] = e.evaluator.EvaluateDifficulty(exercises[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return assessments, nil
}

// GenerateQualityReport deduplicates the batch and scores every original
// exercise, duplicates included. Formula counts and the average difficulty
// are also taken over the original list, and TotalExercises is always
// len(exercises).
func (e *Engine) GenerateQualityReport(exercises []domain.Exercise) (*domain.QualityReport, error) {
	if errs := validateBatch(exercises, e.threshold); len(errs) > 0 {
		return nil, errs
	}

	duplicates := removeDuplicates(exercises, e.threshold)

	assessments, err := e.EvaluateAll(exercises)
	if err != nil {
		return nil, err
	}

	formulaCount := 0
	for _, ex := range exercises {
		formulaCount += len(ExtractMathFormulas(ex.QuestionText))
	}

	average := averageDifficulty(assessments)

	return &domain.QualityReport{
		Timestamp:         e.now(),
		TotalExercises:    len(exercises),
		AverageDifficulty: average,
		QualityMetrics: domain.QualityMetrics{
			Duplicates:         *duplicates,
			DifficultyAnalysis: assessments,
			MathFormulas:       formulaCount,
		},
		Recommendations: reportRecommendations(duplicates.RemovedCount, average, len(assessments)),
	}, nil
}

func averageDifficulty(assessments []domain.DifficultyAssessment) float64 {
	if len(assessments) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range assessments {
		sum += a.OverallDifficulty
	}
	return sum / float64(len(assessments))
}

// reportRecommendations adds no difficulty advice for an empty batch, whose
// zero average says nothing about the exercises.
func reportRecommendations(removed int, average float64, scored int) []string {
	recs := []string{}
	if removed > 0 {
		recs = append(recs, fmt.Sprintf(duplicatesRemovedFormat, removed))
	}
	if scored == 0 {
		return recs
	}
	switch {
	case average < lowAverageDifficulty:
		recs = append(recs, RecommendIncreaseDifficulty)
	case average > highAverageDifficulty:
		recs = append(recs, RecommendDecreaseDifficulty)
	}
	return recs
}
