package quality

import (
	"testing"

	"homework-grader/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "both empty", a: "", b: "", want: 1.0},
		{name: "first empty", a: "", b: "abc", want: 0.0},
		{name: "second empty", a: "abc", b: "", want: 0.0},
		{name: "identical", a: "abc", b: "abc", want: 1.0},
		{name: "kitten sitting", a: "kitten", b: "sitting", want: 1 - 3.0/7.0},
		{name: "completely different", a: "abc", b: "xyz", want: 0.0},
		{name: "cjk substitution counts one edit", a: "计算", b: "计量", want: 0.5},
		{name: "cjk insertion", a: "你好", b: "你好吗", want: 1 - 1.0/3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizedLevenshtein(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, NormalizedLevenshtein(tt.b, tt.a), 1e-9, "similarity must be symmetric")
		})
	}
}

func TestFormulaSimilarity(t *testing.T) {
	noFormula := domain.NewExercise("1", 1, "小明有几个苹果？", "3个", "application", "")
	otherNoFormula := domain.NewExercise("2", 2, "小红有几支铅笔？", "5支", "application", "")
	withFormula := domain.NewExercise("3", 3, "求 $x+1$ 的值", "", "algebra", "")
	closeFormula := domain.NewExercise("4", 4, "求 $x+2$ 的值", "", "algebra", "")

	t.Run("neither has formulas", func(t *testing.T) {
		assert.Equal(t, 1.0, FormulaSimilarity(noFormula, otherNoFormula))
	})
	t.Run("only one has formulas", func(t *testing.T) {
		assert.Equal(t, 0.0, FormulaSimilarity(noFormula, withFormula))
		assert.Equal(t, 0.0, FormulaSimilarity(withFormula, noFormula))
	})
	t.Run("best pair wins", func(t *testing.T) {
		assert.InDelta(t, 0.8, FormulaSimilarity(withFormula, closeFormula), 1e-9)
		assert.Equal(t, 1.0, FormulaSimilarity(withFormula, withFormula))
	})
}

func TestCombinedSimilarity(t *testing.T) {
	a := domain.NewExercise("a", 1, "计算 2 + 3 = ?", "5", "arithmetic", "")
	b := domain.NewExercise("b", 2, "计算 2 + 3 = ?", "5", "arithmetic", "")

	t.Run("self similarity is exactly one", func(t *testing.T) {
		for _, ex := range []domain.Exercise{a, {}, domain.NewExercise("c", 3, "$$x^2$$ 的导数", "2x", "calculus", "首先求导")} {
			assert.Equal(t, 1.0, CombinedSimilarity(ex, ex).Overall)
		}
	})

	t.Run("identical content is above default threshold", func(t *testing.T) {
		score := CombinedSimilarity(a, b)
		assert.Greater(t, score.Overall, DefaultDuplicateThreshold)
		assert.Equal(t, 1.0, score.Text)
		assert.Equal(t, 1.0, score.Answer)
		assert.Equal(t, 1.0, score.Type)
		assert.Equal(t, 1.0, score.Formula)
	})

	t.Run("type mismatch costs its weight", func(t *testing.T) {
		other := b
		other.QuestionType = "fill_blank"
		score := CombinedSimilarity(a, other)
		assert.Equal(t, 0.0, score.Type)
		assert.InDelta(t, 0.9, score.Overall, 1e-9)
	})

	t.Run("components stay in range", func(t *testing.T) {
		c := domain.NewExercise("c", 3, "一辆汽车以每小时60千米的速度行驶3小时，行驶了多少千米？", "180千米", "application", "")
		score := CombinedSimilarity(a, c)
		for _, v := range []float64{score.Overall, score.Text, score.Answer, score.Type, score.Formula} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
		assert.Less(t, score.Overall, DefaultDuplicateThreshold)
	})
}
