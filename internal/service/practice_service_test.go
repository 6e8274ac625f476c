package service

import (
	"context"
	"errors"
	"testing"

	"homework-grader/internal/domain"
	"homework-grader/internal/dto"
	"homework-grader/internal/quality"
	"homework-grader/internal/util"
	"homework-grader/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fractionsRequest = &dto.PracticeRequest{Subject: "数学", Grade: 5, Topic: "分数加减法", Count: 3}

func newTestPracticeService(gen domain.ExerciseGenerator) PracticeService {
	return NewPracticeService(gen, quality.NewEngine(), validation.NewValidator(100, 20))
}

func TestPracticeService_GeneratePractice(t *testing.T) {
	gen := new(MockExerciseGenerator)
	svc := newTestPracticeService(gen)

	generated := []domain.Exercise{
		{QuestionText: "计算 $1/2 + 1/3$", CorrectAnswer: "5/6", QuestionType: "calculation"},
		{QuestionText: "计算 $1/2 + 1/3$", CorrectAnswer: "5/6", QuestionType: "calculation"},
		{QuestionText: "小明吃了一个蛋糕的 1/4，小红吃了 1/3，两人一共吃了多少？", CorrectAnswer: "7/12", QuestionType: "application"},
	}
	gen.On("GenerateExercises", mock.Anything, domain.PracticeSpec{Subject: "数学", Grade: 5, Topic: "分数加减法", Count: 3}).
		Return(generated, nil).Once()

	resp, err := svc.GeneratePractice(context.Background(), fractionsRequest)
	require.NoError(t, err)

	require.Len(t, resp.Exercises, 2)
	assert.Equal(t, 1, resp.Exercises[0].Number)
	assert.Equal(t, 3, resp.Exercises[1].Number)
	for _, ex := range resp.Exercises {
		assert.True(t, util.IsULID(ex.ID.String()))
	}
	assert.Equal(t, 3, resp.Report.TotalExercises)
	assert.Equal(t, 1, resp.Report.QualityMetrics.Duplicates.RemovedCount)
	gen.AssertExpectations(t)
}

func TestPracticeService_GeneratorFailures(t *testing.T) {
	tests := []struct {
		name      string
		exercises []domain.Exercise
		err       error
	}{
		{"plain error", nil, errors.New("model not loaded")},
		{"domain error", nil, domain.NewLLMServiceError(errors.New("timeout"))},
		{"nothing usable", []domain.Exercise{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(MockExerciseGenerator)
			svc := newTestPracticeService(gen)
			if tt.exercises == nil {
				gen.On("GenerateExercises", mock.Anything, mock.Anything).Return(nil, tt.err).Once()
			} else {
				gen.On("GenerateExercises", mock.Anything, mock.Anything).Return(tt.exercises, tt.err).Once()
			}

			resp, err := svc.GeneratePractice(context.Background(), fractionsRequest)
			assert.Nil(t, resp)
			var domainErr *domain.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domain.CodeLLMServiceError, domainErr.Code)
		})
	}
}

func TestPracticeService_InvalidRequest(t *testing.T) {
	gen := new(MockExerciseGenerator)
	svc := newTestPracticeService(gen)

	_, err := svc.GeneratePractice(context.Background(), &dto.PracticeRequest{Subject: "数学", Grade: 0, Topic: "分数", Count: 50})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
	gen.AssertNotCalled(t, "GenerateExercises", mock.Anything, mock.Anything)
}
