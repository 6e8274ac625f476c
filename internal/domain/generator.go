package domain

import "context"

// PracticeSpec describes the exercises a learner asked to practise
type PracticeSpec struct {
	Subject string
	Grade   int
	Topic   string
	Count   int
}

// ExerciseGenerator produces raw, unchecked exercises (typically through an LLM).
// Generated exercises carry no id; callers assign them.
type ExerciseGenerator interface {
	GenerateExercises(ctx context.Context, spec PracticeSpec) ([]Exercise, error)
}
