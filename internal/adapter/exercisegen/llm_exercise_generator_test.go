package exercisegen

import (
	"context"
	"errors"
	"testing"

	"homework-grader/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// stubModel returns a canned completion and records the last prompt
type stubModel struct {
	response string
	err      error
	prompt   string
}

func (m *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.prompt = text.Text
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.response}}}, nil
}

func (m *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

var fractions = domain.PracticeSpec{Subject: "数学", Grade: 5, Topic: "分数加减法", Count: 2}

func TestNewLLMExerciseGenerator(t *testing.T) {
	_, err := NewLLMExerciseGenerator(nil, 0)
	assert.Error(t, err)

	gen, err := NewLLMExerciseGenerator(&stubModel{}, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultTimeout, gen.timeout)
}

func TestGenerateExercises_Success(t *testing.T) {
	model := &stubModel{response: "<think>先想一想题目</think>\n```json\n" + `[
  {"question_text": "计算 $1/2 + 1/3$", "correct_answer": "5/6", "question_type": "calculation", "analysis": "首先通分，然后相加"},
  {"question_text": "计算 $3/4 - 1/4$", "correct_answer": "1/2", "question_type": "calculation", "analysis": "同分母直接相减"}
]` + "\n```"}
	gen, err := NewLLMExerciseGenerator(model, 0)
	require.NoError(t, err)

	exercises, err := gen.GenerateExercises(context.Background(), fractions)
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	assert.Equal(t, "计算 $1/2 + 1/3$", exercises[0].QuestionText)
	assert.Equal(t, "5/6", exercises[0].CorrectAnswer)
	assert.Equal(t, "首先通分，然后相加", exercises[0].Analysis)
	assert.Empty(t, exercises[0].ID, "ids are assigned by the caller")

	assert.Contains(t, model.prompt, "分数加减法")
	assert.Contains(t, model.prompt, "5年级")
}

func TestGenerateExercises_SkipsIncompleteItems(t *testing.T) {
	model := &stubModel{response: `[{"question_text": "计算 2 + 2", "correct_answer": "4"}, {"question_text": "", "correct_answer": "1"}, {"question_text": "求 x", "correct_answer": ""}]`}
	gen, err := NewLLMExerciseGenerator(model, 0)
	require.NoError(t, err)

	exercises, err := gen.GenerateExercises(context.Background(), fractions)
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "计算 2 + 2", exercises[0].QuestionText)
}

func TestGenerateExercises_Errors(t *testing.T) {
	tests := []struct {
		name  string
		model *stubModel
	}{
		{"llm failure", &stubModel{err: errors.New("connection refused")}},
		{"no array", &stubModel{response: "抱歉，我无法完成这个请求。"}},
		{"malformed array", &stubModel{response: `[{"question_text": }]`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewLLMExerciseGenerator(tt.model, 0)
			require.NoError(t, err)

			exercises, err := gen.GenerateExercises(context.Background(), fractions)
			assert.Nil(t, exercises)
			var domainErr *domain.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domain.CodeLLMServiceError, domainErr.Code)
		})
	}
}
