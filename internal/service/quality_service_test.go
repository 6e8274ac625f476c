package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"homework-grader/internal/cache"
	"homework-grader/internal/domain"
	"homework-grader/internal/dto"
	"homework-grader/internal/quality"
	"homework-grader/internal/util"
	"homework-grader/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const reportTTL = 30 * time.Minute

func batch() []domain.Exercise {
	return []domain.Exercise{
		domain.NewExercise("1", 1, "计算 2 + 3 = ?", "5", "arithmetic", ""),
		domain.NewExercise("2", 2, "计算 2 + 3 = ?", "5", "arithmetic", ""),
		domain.NewExercise("3", 3, "求函数 $f(x)=x^2$ 的导数", "2x", "calculus", "首先应用求导公式"),
	}
}

func newTestQualityService(repo domain.QualityReportRepository, c domain.Cache) QualityService {
	var reportCache ReportCacheService
	if c != nil {
		reportCache = NewReportCacheService(c, reportTTL)
	}
	return NewQualityService(quality.NewEngine(), repo, reportCache, validation.NewValidator(100, 20))
}

func reportKey(t *testing.T, exercises []domain.Exercise, threshold float64) string {
	fp, err := cache.Fingerprint(exercises, threshold)
	require.NoError(t, err)
	return cache.GenerateCacheKey("quality", "report", fp)
}

func TestQualityService_RemoveDuplicates(t *testing.T) {
	svc := newTestQualityService(nil, nil)
	ctx := context.Background()

	t.Run("default threshold", func(t *testing.T) {
		resp, err := svc.RemoveDuplicates(ctx, &dto.ExerciseBatchRequest{Exercises: batch()})
		require.NoError(t, err)
		assert.Equal(t, 0.8, resp.Threshold)
		assert.Equal(t, 1, resp.RemovedCount)
		assert.Len(t, resp.UniqueExercises, 2)
	})

	t.Run("threshold override", func(t *testing.T) {
		zero := 0.0
		resp, err := svc.RemoveDuplicates(ctx, &dto.ExerciseBatchRequest{Exercises: batch(), Threshold: &zero})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.RemovedCount)
	})

	t.Run("invalid input", func(t *testing.T) {
		tooHigh := 1.5
		_, err := svc.RemoveDuplicates(ctx, &dto.ExerciseBatchRequest{Threshold: &tooHigh})
		var verrs domain.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 2)

		_, err = svc.RemoveDuplicates(ctx, nil)
		assert.ErrorAs(t, err, &verrs)
	})

	t.Run("batch too large", func(t *testing.T) {
		_, err := svc.RemoveDuplicates(ctx, &dto.ExerciseBatchRequest{Exercises: make([]domain.Exercise, 101)})
		var verrs domain.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, domain.CodeOutOfRange, verrs[0].Code)
	})
}

func TestQualityService_EvaluateDifficulty(t *testing.T) {
	svc := newTestQualityService(nil, nil)
	exercises := batch()

	resp, err := svc.EvaluateDifficulty(context.Background(), &dto.ExerciseBatchRequest{Exercises: exercises})
	require.NoError(t, err)
	require.Len(t, resp.Assessments, len(exercises))
	for i, a := range resp.Assessments {
		assert.Equal(t, exercises[i].ID, a.ExerciseID)
	}
}

func TestQualityService_GenerateReport_CacheMiss(t *testing.T) {
	mockRepo := new(MockQualityReportRepository)
	mockCache := new(MockCache)
	svc := newTestQualityService(mockRepo, mockCache)
	exercises := batch()
	key := reportKey(t, exercises, 0.8)

	mockCache.On("Get", mock.Anything, key).Return("", domain.ErrCacheMiss).Once()
	mockRepo.On("SaveReport", mock.Anything, mock.MatchedBy(func(s *domain.StoredQualityReport) bool {
		return util.IsULID(s.ID) && s.Threshold == 0.8 && s.Report.TotalExercises == 3
	})).Return(nil).Once()
	mockCache.On("Set", mock.Anything, key, mock.AnythingOfType("string"), reportTTL).Return(nil).Once()

	resp, err := svc.GenerateReport(context.Background(), &dto.ExerciseBatchRequest{Exercises: exercises})
	require.NoError(t, err)
	assert.True(t, util.IsULID(resp.ID))
	assert.False(t, resp.Cached)
	assert.Equal(t, 3, resp.Report.TotalExercises)
	assert.Equal(t, 1, resp.Report.QualityMetrics.Duplicates.RemovedCount)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestQualityService_GenerateReport_CacheHit(t *testing.T) {
	mockRepo := new(MockQualityReportRepository)
	mockCache := new(MockCache)
	svc := newTestQualityService(mockRepo, mockCache)
	exercises := batch()

	report, err := quality.NewEngine().GenerateQualityReport(exercises)
	require.NoError(t, err)
	payload, err := json.Marshal(&dto.QualityReportResponse{ID: "01HZY3M8Q6V5T4K2B9N7C1D0EF", Threshold: 0.8, Report: report})
	require.NoError(t, err)
	mockCache.On("Get", mock.Anything, reportKey(t, exercises, 0.8)).Return(string(payload), nil).Once()

	resp, err := svc.GenerateReport(context.Background(), &dto.ExerciseBatchRequest{Exercises: exercises})
	require.NoError(t, err)
	assert.True(t, resp.Cached)
	assert.Equal(t, "01HZY3M8Q6V5T4K2B9N7C1D0EF", resp.ID)

	mockRepo.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestQualityService_GenerateReport_CacheFailuresAreNotFatal(t *testing.T) {
	mockCache := new(MockCache)
	svc := newTestQualityService(nil, mockCache)
	exercises := batch()
	key := reportKey(t, exercises, 0.8)

	mockCache.On("Get", mock.Anything, key).Return("", errors.New("connection refused")).Once()
	mockCache.On("Set", mock.Anything, key, mock.Anything, reportTTL).Return(errors.New("connection refused")).Once()

	resp, err := svc.GenerateReport(context.Background(), &dto.ExerciseBatchRequest{Exercises: exercises})
	require.NoError(t, err)
	assert.Empty(t, resp.ID, "nothing is stored without a repository")
	mockCache.AssertExpectations(t)
}

func TestQualityService_GenerateReport_RepositoryFailure(t *testing.T) {
	mockRepo := new(MockQualityReportRepository)
	svc := newTestQualityService(mockRepo, nil)

	mockRepo.On("SaveReport", mock.Anything, mock.Anything).Return(errors.New("ORA-12541: no listener")).Once()

	resp, err := svc.GenerateReport(context.Background(), &dto.ExerciseBatchRequest{Exercises: batch()})
	assert.Nil(t, resp)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestQualityService_GetReport(t *testing.T) {
	ctx := context.Background()
	id := "01HZY3M8Q6V5T4K2B9N7C1D0EF"

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockQualityReportRepository)
		svc := newTestQualityService(mockRepo, nil)
		report := &domain.QualityReport{TotalExercises: 3}
		mockRepo.On("GetReportByID", mock.Anything, id).
			Return(&domain.StoredQualityReport{ID: id, Threshold: 0.75, Report: report}, nil).Once()

		resp, err := svc.GetReport(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, 0.75, resp.Threshold)
		assert.Same(t, report, resp.Report)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockQualityReportRepository)
		svc := newTestQualityService(mockRepo, nil)
		mockRepo.On("GetReportByID", mock.Anything, id).Return(nil, nil).Once()

		_, err := svc.GetReport(ctx, id)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeReportNotFound, domainErr.Code)
		assert.Equal(t, id, domainErr.Context["report_id"])
	})

	t.Run("invalid id", func(t *testing.T) {
		mockRepo := new(MockQualityReportRepository)
		svc := newTestQualityService(mockRepo, nil)

		_, err := svc.GetReport(ctx, "abc")
		var verrs domain.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		mockRepo.AssertNotCalled(t, "GetReportByID", mock.Anything, mock.Anything)
	})
}
