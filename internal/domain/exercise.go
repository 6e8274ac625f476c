package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ExerciseID identifies an exercise. Upstream generators emit it either as a
// JSON string or as a number, so both are accepted when decoding.
type ExerciseID string

// UnmarshalJSON implements the json.Unmarshaler interface
func (id *ExerciseID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid exercise id: %w", err)
		}
		*id = ExerciseID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid exercise id %s: %w", string(data), err)
	}
	*id = ExerciseID(n.String())
	return nil
}

// String returns the id as a plain string
func (id ExerciseID) String() string {
	return string(id)
}

// Exercise is a single generated practice exercise.
// Analysis is optional; a missing or null value is treated as an empty string.
type Exercise struct {
	ID            ExerciseID `json:"id"`
	Number        int        `json:"number"`
	QuestionText  string     `json:"question_text"`
	CorrectAnswer string     `json:"correct_answer"`
	QuestionType  string     `json:"question_type"`
	Analysis      string     `json:"analysis,omitempty"`
}

// NewExercise creates a new Exercise instance
func NewExercise(id string, number int, questionText, correctAnswer, questionType, analysis string) Exercise {
	return Exercise{
		ID:            ExerciseID(id),
		Number:        number,
		QuestionText:  questionText,
		CorrectAnswer: correctAnswer,
		QuestionType:  questionType,
		Analysis:      analysis,
	}
}
