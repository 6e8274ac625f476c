package dto

import "homework-grader/internal/domain"

// PracticeRequest asks for a set of generated practice exercises
// @Description Practice generation parameters
type PracticeRequest struct {
	Subject string `json:"subject"`
	Grade   int    `json:"grade"`
	Topic   string `json:"topic"`
	Count   int    `json:"count"`
}

// PracticeResponse carries the exercises that passed the quality check
type PracticeResponse struct {
	Exercises []domain.Exercise     `json:"exercises"`
	Report    *domain.QualityReport `json:"report"`
}
