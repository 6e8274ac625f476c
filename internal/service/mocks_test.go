package service

import (
	"context"
	"time"

	"homework-grader/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockQualityReportRepository ---
type MockQualityReportRepository struct {
	mock.Mock
}

func (m *MockQualityReportRepository) SaveReport(ctx context.Context, stored *domain.StoredQualityReport) error {
	args := m.Called(ctx, stored)
	return args.Error(0)
}

func (m *MockQualityReportRepository) GetReportByID(ctx context.Context, id string) (*domain.StoredQualityReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredQualityReport), args.Error(1)
}

// --- MockExerciseGenerator ---
type MockExerciseGenerator struct {
	mock.Mock
}

func (m *MockExerciseGenerator) GenerateExercises(ctx context.Context, spec domain.PracticeSpec) ([]domain.Exercise, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Exercise), args.Error(1)
}
