package validation

import (
	"math"
	"strings"

	"homework-grader/internal/domain"
	"homework-grader/internal/util"
)

const (
	minGrade = 1
	maxGrade = 12
)

// Validator provides request validation functionality
type Validator struct {
	maxBatchSize  int
	maxPracticeCt int
}

// NewValidator creates a new validator instance. Non-positive limits disable the check.
func NewValidator(maxBatchSize, maxPracticeCount int) *Validator {
	return &Validator{
		maxBatchSize:  maxBatchSize,
		maxPracticeCt: maxPracticeCount,
	}
}

// ValidateExerciseBatch validates a batch submitted for deduplication or scoring
func (v *Validator) ValidateExerciseBatch(exercises []domain.Exercise, threshold float64) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if exercises == nil {
		errors = append(errors, domain.NewMissingFieldError("exercises"))
	} else if v.maxBatchSize > 0 && len(exercises) > v.maxBatchSize {
		errors = append(errors, domain.NewOutOfRangeError("exercises", len(exercises), 0, v.maxBatchSize))
	}

	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		errors = append(errors, domain.NewOutOfRangeError("threshold", threshold, 0, 1))
	}

	return errors
}

// ValidateReportID validates a stored report id
func (v *Validator) ValidateReportID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}

	return errors
}

// ValidatePracticeRequest validates the parameters of a practice generation request
func (v *Validator) ValidatePracticeRequest(spec domain.PracticeSpec) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(spec.Subject) == "" {
		errors = append(errors, domain.NewMissingFieldError("subject"))
	}
	if strings.TrimSpace(spec.Topic) == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	}
	if spec.Grade < minGrade || spec.Grade > maxGrade {
		errors = append(errors, domain.NewOutOfRangeError("grade", spec.Grade, minGrade, maxGrade))
	}
	if spec.Count < 1 || (v.maxPracticeCt > 0 && spec.Count > v.maxPracticeCt) {
		errors = append(errors, domain.NewOutOfRangeError("count", spec.Count, 1, v.maxPracticeCt))
	}

	return errors
}

// isValidULID accepts only the canonical upper-case encoding reports are stored under
func isValidULID(s string) bool {
	return util.IsULID(s) && s == strings.ToUpper(s)
}
