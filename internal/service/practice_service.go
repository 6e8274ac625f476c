package service

import (
	"context"
	"errors"

	"homework-grader/internal/domain"
	"homework-grader/internal/dto"
	"homework-grader/internal/logger"
	"homework-grader/internal/quality"
	"homework-grader/internal/util"
	"homework-grader/internal/validation"

	"go.uber.org/zap"
)

// PracticeService generates practice sets that have passed the quality check
type PracticeService interface {
	GeneratePractice(ctx context.Context, req *dto.PracticeRequest) (*dto.PracticeResponse, error)
}

type practiceService struct {
	generator domain.ExerciseGenerator
	engine    *quality.Engine
	validator *validation.Validator
}

func NewPracticeService(generator domain.ExerciseGenerator, engine *quality.Engine, validator *validation.Validator) PracticeService {
	return &practiceService{
		generator: generator,
		engine:    engine,
		validator: validator,
	}
}

// GeneratePractice asks the generator for exercises, numbers them and returns
// only those that survive duplicate removal, together with the full report.
func (s *practiceService) GeneratePractice(ctx context.Context, req *dto.PracticeRequest) (*dto.PracticeResponse, error) {
	if req == nil {
		return nil, domain.ValidationErrors{domain.NewValidationError("request body is required")}
	}
	spec := domain.PracticeSpec{
		Subject: req.Subject,
		Grade:   req.Grade,
		Topic:   req.Topic,
		Count:   req.Count,
	}
	if errs := s.validator.ValidatePracticeRequest(spec); len(errs) > 0 {
		return nil, errs
	}
	l := logger.Get()

	exercises, err := s.generator.GenerateExercises(ctx, spec)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewLLMServiceError(err)
	}
	if len(exercises) == 0 {
		return nil, domain.NewLLMServiceError(errors.New("generator returned no usable exercises"))
	}

	for i := range exercises {
		exercises[i].ID = domain.ExerciseID(util.NewULID())
		exercises[i].Number = i + 1
	}

	report, err := s.engine.GenerateQualityReport(exercises)
	if err != nil {
		return nil, domain.NewInternalError("Failed to check generated exercises", err)
	}

	unique := report.QualityMetrics.Duplicates.UniqueExercises
	l.Info("Generated practice set",
		zap.String("subject", spec.Subject),
		zap.String("topic", spec.Topic),
		zap.Int("generated", len(exercises)),
		zap.Int("kept", len(unique)),
		zap.Float64("average_difficulty", report.AverageDifficulty))

	return &dto.PracticeResponse{Exercises: unique, Report: report}, nil
}
