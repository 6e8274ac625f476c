package quality

import (
	"math"

	"homework-grader/internal/domain"
)

// Weights of the combined exercise similarity
const (
	textSimilarityWeight    = 0.5
	answerSimilarityWeight  = 0.3
	typeSimilarityWeight    = 0.1
	formulaSimilarityWeight = 0.1
)

// NormalizedLevenshtein returns 1 - editDistance/maxLen over Unicode code
// points, so a CJK character is a single edit unit. Two empty strings are
// identical (1.0); exactly one empty string scores 0.0.
func NormalizedLevenshtein(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1.0
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}
	distance := levenshteinDistance(ra, rb)
	return clamp01(1 - float64(distance)/float64(max(len(ra), len(rb))))
}

// levenshteinDistance is the unit-cost edit distance, computed with two rows
func levenshteinDistance(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// FormulaSimilarity compares the formulas found in the question texts of two
// exercises: 1.0 when neither has any, 0.0 when only one has, otherwise the
// best NormalizedLevenshtein over all formula pairs.
func FormulaSimilarity(a, b domain.Exercise) float64 {
	return formulaSetSimilarity(ExtractMathFormulas(a.QuestionText), ExtractMathFormulas(b.QuestionText))
}

func formulaSetSimilarity(fa, fb []string) float64 {
	if len(fa) == 0 && len(fb) == 0 {
		return 1.0
	}
	if len(fa) == 0 || len(fb) == 0 {
		return 0.0
	}
	best := 0.0
	for _, x := range fa {
		for _, y := range fb {
			if s := NormalizedLevenshtein(x, y); s > best {
				best = s
				if best == 1.0 {
					return best
				}
			}
		}
	}
	return best
}

// CombinedSimilarity weighs question text (0.5), answer (0.3), exact question
// type (0.1) and formula similarity (0.1).
func CombinedSimilarity(a, b domain.Exercise) domain.SimilarityScore {
	return combinedSimilarity(newExerciseFeatures(a), newExerciseFeatures(b))
}

// exerciseFeatures caches what similarity needs from an exercise, so the
// duplicate scan extracts formulas once per exercise instead of once per pair.
type exerciseFeatures struct {
	exercise domain.Exercise
	formulas []string
}

func newExerciseFeatures(e domain.Exercise) exerciseFeatures {
	return exerciseFeatures{exercise: e, formulas: ExtractMathFormulas(e.QuestionText)}
}

func combinedSimilarity(a, b exerciseFeatures) domain.SimilarityScore {
	score := domain.SimilarityScore{
		Text:    NormalizedLevenshtein(a.exercise.QuestionText, b.exercise.QuestionText),
		Answer:  NormalizedLevenshtein(a.exercise.CorrectAnswer, b.exercise.CorrectAnswer),
		Formula: formulaSetSimilarity(a.formulas, b.formulas),
	}
	if a.exercise.QuestionType == b.exercise.QuestionType {
		score.Type = 1.0
	}
	score.Overall = clamp01(textSimilarityWeight*score.Text +
		answerSimilarityWeight*score.Answer +
		typeSimilarityWeight*score.Type +
		formulaSimilarityWeight*score.Formula)
	return score
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
