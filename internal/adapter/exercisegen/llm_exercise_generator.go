package exercisegen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"homework-grader/internal/domain"
	"homework-grader/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

const defaultTimeout = 60 * time.Second

const promptTemplate = `你是一名经验丰富的%s老师。请为%d年级学生围绕「%s」出 %d 道练习题。

只输出一个 JSON 数组，不要输出其他内容。数组中每个元素的格式如下：
{
  "question_text": "题目内容，公式使用 $...$ 包裹",
  "correct_answer": "标准答案",
  "question_type": "题型，例如 choice、fill、calculation、application",
  "analysis": "分步骤的解题思路"
}

要求：
1. 题目之间不要重复，也不要只替换数字
2. 难度循序渐进
3. 答案必须准确`

// generatedExercise is the shape the model is asked to produce
type generatedExercise struct {
	QuestionText  string `json:"question_text"`
	CorrectAnswer string `json:"correct_answer"`
	QuestionType  string `json:"question_type"`
	Analysis      string `json:"analysis"`
}

// LLMExerciseGenerator implements domain.ExerciseGenerator on top of any langchaingo model
type LLMExerciseGenerator struct {
	model       llms.Model
	timeout     time.Duration
	temperature float64
}

// NewLLMExerciseGenerator creates a generator. A non-positive timeout uses the default.
func NewLLMExerciseGenerator(model llms.Model, timeout time.Duration) (*LLMExerciseGenerator, error) {
	if model == nil {
		return nil, errors.New("llm model cannot be nil")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &LLMExerciseGenerator{
		model:       model,
		timeout:     timeout,
		temperature: 0.7,
	}, nil
}

// GenerateExercises asks the model for spec.Count exercises. Items missing a
// question or an answer are dropped, so fewer exercises than requested may be returned.
func (g *LLMExerciseGenerator) GenerateExercises(ctx context.Context, spec domain.PracticeSpec) ([]domain.Exercise, error) {
	l := logger.Get()
	prompt := fmt.Sprintf(promptTemplate, spec.Subject, spec.Grade, spec.Topic, spec.Count)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.Error(err), zap.Duration("timeout", g.timeout))
			return nil, domain.NewLLMServiceError(fmt.Errorf("LLM request timed out: %w", err))
		}
		l.Error("Failed to get response from LLM", zap.Error(err))
		return nil, domain.NewLLMServiceError(fmt.Errorf("LLM call failed: %w", err))
	}
	l.Debug("Raw LLM response received", zap.String("raw_response", raw))

	items, err := parseExerciseArray(raw)
	if err != nil {
		l.Error("Failed to parse exercises from LLM response", zap.Error(err), zap.String("raw_response", raw))
		return nil, domain.NewLLMServiceError(err)
	}

	exercises := make([]domain.Exercise, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.QuestionText) == "" || strings.TrimSpace(item.CorrectAnswer) == "" {
			l.Warn("LLM generated incomplete exercise", zap.Any("exercise", item))
			continue
		}
		exercises = append(exercises, domain.Exercise{
			QuestionText:  strings.TrimSpace(item.QuestionText),
			CorrectAnswer: strings.TrimSpace(item.CorrectAnswer),
			QuestionType:  strings.TrimSpace(item.QuestionType),
			Analysis:      strings.TrimSpace(item.Analysis),
		})
	}

	l.Info("Generated exercises",
		zap.String("subject", spec.Subject),
		zap.String("topic", spec.Topic),
		zap.Int("requested", spec.Count),
		zap.Int("generated", len(exercises)))
	return exercises, nil
}

// parseExerciseArray strips <think> blocks and code fences and decodes the
// outermost JSON array of the response.
func parseExerciseArray(raw string) ([]generatedExercise, error) {
	cleaned := strings.TrimSpace(raw)

	for {
		start := strings.Index(cleaned, "<think>")
		if start == -1 {
			break
		}
		end := strings.Index(cleaned, "</think>")
		if end == -1 || end < start {
			break
		}
		cleaned = cleaned[:start] + cleaned[end+len("</think>"):]
	}
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array found in LLM response: %s", cleaned)
	}

	var items []generatedExercise
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exercises from LLM response: %w", err)
	}
	return items, nil
}

var _ domain.ExerciseGenerator = (*LLMExerciseGenerator)(nil)
