package service

import (
	"context"
	"errors"

	"homework-grader/internal/cache"
	"homework-grader/internal/domain"
	"homework-grader/internal/dto"
	"homework-grader/internal/logger"
	"homework-grader/internal/quality"
	"homework-grader/internal/util"
	"homework-grader/internal/validation"

	"go.uber.org/zap"
)

// QualityService exposes the exercise quality engine to the API
type QualityService interface {
	RemoveDuplicates(ctx context.Context, req *dto.ExerciseBatchRequest) (*dto.DedupResponse, error)
	EvaluateDifficulty(ctx context.Context, req *dto.ExerciseBatchRequest) (*dto.DifficultyResponse, error)
	GenerateReport(ctx context.Context, req *dto.ExerciseBatchRequest) (*dto.QualityReportResponse, error)
	GetReport(ctx context.Context, id string) (*dto.QualityReportResponse, error)
}

type qualityService struct {
	engine      *quality.Engine
	repo        domain.QualityReportRepository
	reportCache ReportCacheService
	validator   *validation.Validator
}

// NewQualityService creates a QualityService. repo and reportCache may be nil;
// reports are then neither stored nor cached.
func NewQualityService(
	engine *quality.Engine,
	repo domain.QualityReportRepository,
	reportCache ReportCacheService,
	validator *validation.Validator,
) QualityService {
	if reportCache == nil {
		reportCache = &noopReportCacheService{}
	}
	return &qualityService{
		engine:      engine,
		repo:        repo,
		reportCache: reportCache,
		validator:   validator,
	}
}

func (s *qualityService) threshold(req *dto.ExerciseBatchRequest) float64 {
	if req.Threshold != nil {
		return *req.Threshold
	}
	return s.engine.Threshold()
}

func (s *qualityService) validate(req *dto.ExerciseBatchRequest) (float64, error) {
	if req == nil {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError("exercises")}
	}
	threshold := s.threshold(req)
	if errs := s.validator.ValidateExerciseBatch(req.Exercises, threshold); len(errs) > 0 {
		return 0, errs
	}
	return threshold, nil
}

// RemoveDuplicates implements QualityService
func (s *qualityService) RemoveDuplicates(ctx context.Context, req *dto.ExerciseBatchRequest) (*dto.DedupResponse, error) {
	threshold, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.ForThreshold(threshold).RemoveDuplicates(req.Exercises)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Removed duplicate exercises",
		zap.Int("total", len(req.Exercises)),
		zap.Int("removed", result.RemovedCount),
		zap.Float64("threshold", threshold))

	return &dto.DedupResponse{
		UniqueExercises: result.UniqueExercises,
		RemovedCount:    result.RemovedCount,
		DuplicateReport: result.DuplicateReport,
		Threshold:       threshold,
	}, nil
}

// EvaluateDifficulty implements QualityService
func (s *qualityService) EvaluateDifficulty(ctx context.Context, req *dto.ExerciseBatchRequest) (*dto.DifficultyResponse, error) {
	if _, err := s.validate(req); err != nil {
		return nil, err
	}

	assessments, err := s.engine.EvaluateAll(req.Exercises)
	if err != nil {
		return nil, err
	}
	return &dto.DifficultyResponse{Assessments: assessments}, nil
}

// GenerateReport implements QualityService. Identical batches evaluated with
// the same threshold are served from cache while the cached entry lives.
func (s *qualityService) GenerateReport(ctx context.Context, req *dto.ExerciseBatchRequest) (*dto.QualityReportResponse, error) {
	threshold, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	l := logger.Get()

	fingerprint, err := cache.Fingerprint(req.Exercises, threshold)
	if err != nil {
		return nil, domain.NewInternalError("failed to fingerprint exercises", err)
	}

	cached, err := s.reportCache.Get(ctx, fingerprint)
	switch {
	case err == nil:
		l.Debug("Quality report served from cache", zap.String("fingerprint", fingerprint))
		cached.Cached = true
		return cached, nil
	case !errors.Is(err, ErrReportNotCached):
		l.Warn("Failed to read quality report cache", zap.Error(err), zap.String("fingerprint", fingerprint))
	}

	report, err := s.engine.ForThreshold(threshold).GenerateQualityReport(req.Exercises)
	if err != nil {
		return nil, err
	}

	resp := &dto.QualityReportResponse{Threshold: threshold, Report: report}
	if s.repo != nil {
		resp.ID = util.NewULID()
		stored := &domain.StoredQualityReport{ID: resp.ID, Threshold: threshold, Report: report}
		if err := s.repo.SaveReport(ctx, stored); err != nil {
			l.Error("Failed to save quality report", zap.Error(err), zap.String("report_id", resp.ID))
			return nil, domain.NewInternalError("Failed to save quality report", err)
		}
	}

	if err := s.reportCache.Put(ctx, fingerprint, resp); err != nil {
		l.Warn("Failed to cache quality report", zap.Error(err), zap.String("fingerprint", fingerprint))
	}

	l.Info("Generated quality report",
		zap.String("report_id", resp.ID),
		zap.Int("total", report.TotalExercises),
		zap.Int("removed", report.QualityMetrics.Duplicates.RemovedCount),
		zap.Float64("average_difficulty", report.AverageDifficulty))
	return resp, nil
}

// GetReport implements QualityService
func (s *qualityService) GetReport(ctx context.Context, id string) (*dto.QualityReportResponse, error) {
	if errs := s.validator.ValidateReportID(id); len(errs) > 0 {
		return nil, errs
	}
	if s.repo == nil {
		return nil, domain.NewReportNotFoundError(id)
	}

	stored, err := s.repo.GetReportByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quality report", err)
	}
	if stored == nil {
		return nil, domain.NewReportNotFoundError(id)
	}
	return &dto.QualityReportResponse{
		ID:        stored.ID,
		Threshold: stored.Threshold,
		Report:    stored.Report,
	}, nil
}
