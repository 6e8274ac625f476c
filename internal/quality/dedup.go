package quality

import (
	"math"

	"homework-grader/internal/domain"
)

// DefaultDuplicateThreshold is the combined similarity at or above which an
// exercise is considered a near-duplicate of an accepted one.
const DefaultDuplicateThreshold = 0.8

// RemoveDuplicates greedily partitions exercises into unique and removed items.
//
// Exercises are scanned in input order. Each one is compared against the
// already accepted exercises, in acceptance order; the first comparison whose
// overall similarity reaches threshold marks it as a duplicate of that
// accepted exercise and the scan for it stops. Otherwise it is accepted.
// The surviving representative therefore depends on input order; this is
// not equivalence-class clustering.
//
// A nil list or a threshold outside [0,1] is rejected before any comparison.
func RemoveDuplicates(exercises []domain.Exercise, threshold float64) (*domain.DedupResult, error) {
	if errs := validateBatch(exercises, threshold); len(errs) > 0 {
		return nil, errs
	}
	return removeDuplicates(exercises, threshold), nil
}

func removeDuplicates(exercises []domain.Exercise, threshold float64) *domain.DedupResult {
	accepted := make([]exerciseFeatures, 0, len(exercises))
	report := []domain.DuplicateReportEntry{}

	for _, ex := range exercises {
		candidate := newExerciseFeatures(ex)
		duplicate := false
		for _, kept := range accepted {
			similarity := combinedSimilarity(candidate, kept)
			if similarity.Overall >= threshold {
				report = append(report, domain.DuplicateReportEntry{
					OriginalID:  kept.exercise.ID,
					DuplicateID: ex.ID,
					Similarity:  similarity,
					Action:      domain.DuplicateActionRemoved,
				})
				duplicate = true
				break
			}
		}
		if !duplicate {
			accepted = append(accepted, candidate)
		}
	}

	unique := make([]domain.Exercise, 0, len(accepted))
	for _, f := range accepted {
		unique = append(unique, f.exercise)
	}
	return &domain.DedupResult{
		UniqueExercises: unique,
		RemovedCount:    len(exercises) - len(unique),
		DuplicateReport: report,
	}
}

// validateBatch rejects malformed top-level input. Per-exercise fields are
// never validated here; missing ones only lower that exercise's own scores.
func validateBatch(exercises []domain.Exercise, threshold float64) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if exercises == nil {
		errs = append(errs, domain.NewMissingFieldError("exercises"))
	}
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		errs = append(errs, domain.NewOutOfRangeError("threshold", threshold, 0, 1))
	}
	return errs
}
