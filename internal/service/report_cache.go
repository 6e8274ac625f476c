package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"homework-grader/internal/cache"
	"homework-grader/internal/domain"
	"homework-grader/internal/dto"
	"homework-grader/internal/logger"

	"go.uber.org/zap"
)

// ErrReportNotCached is returned when no cached report exists for a fingerprint.
var ErrReportNotCached = errors.New("quality report not found in cache")

// ReportCacheService caches generated quality reports by batch fingerprint.
type ReportCacheService interface {
	Put(ctx context.Context, fingerprint string, resp *dto.QualityReportResponse) error
	Get(ctx context.Context, fingerprint string) (*dto.QualityReportResponse, error)
}

type reportCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewReportCacheService falls back to a no-op implementation when cache is nil.
func NewReportCacheService(c domain.Cache, ttl time.Duration) ReportCacheService {
	if c == nil {
		logger.Get().Warn("ReportCacheService initialized with nil cache. Service will be no-op.")
		return &noopReportCacheService{}
	}
	return &reportCacheServiceImpl{cache: c, ttl: ttl}
}

func (s *reportCacheServiceImpl) generateKey(fingerprint string) string {
	return cache.GenerateCacheKey("quality", "report", fingerprint)
}

func (s *reportCacheServiceImpl) Put(ctx context.Context, fingerprint string, resp *dto.QualityReportResponse) error {
	if resp == nil {
		return domain.NewInvalidInputError("cannot cache nil report")
	}

	key := s.generateKey(fingerprint)
	data, err := json.Marshal(resp)
	if err != nil {
		return domain.NewInternalError("failed to marshal report for caching", err)
	}

	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to set quality report to cache for key %s", key), err)
	}
	logger.Get().Debug("Cached quality report", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *reportCacheServiceImpl) Get(ctx context.Context, fingerprint string) (*dto.QualityReportResponse, error) {
	key := s.generateKey(fingerprint)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Quality report cache miss", zap.String("key", key))
			return nil, ErrReportNotCached
		}
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get quality report from cache for key %s", key), err)
	}
	if data == "" {
		return nil, ErrReportNotCached
	}

	var resp dto.QualityReportResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal quality report from cache for key %s", key), err)
	}
	return &resp, nil
}

type noopReportCacheService struct{}

func (s *noopReportCacheService) Put(ctx context.Context, fingerprint string, resp *dto.QualityReportResponse) error {
	return nil
}

func (s *noopReportCacheService) Get(ctx context.Context, fingerprint string) (*dto.QualityReportResponse, error) {
	return nil, ErrReportNotCached
}
