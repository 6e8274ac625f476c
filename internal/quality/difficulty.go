package quality

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"homework-grader/internal/domain"
)

// Weights of the four difficulty factors in the overall score
const (
	formulaFactorWeight     = 0.3
	stepFactorWeight        = 0.25
	conceptFactorWeight     = 0.25
	computationFactorWeight = 0.2
)

// Tier boundaries; each lower bound is inclusive.
const (
	mediumDifficultyFrom = 0.3
	hardDifficultyFrom   = 0.7
)

// A factor above this value gets its own recommendation
const factorRecommendationThreshold = 0.8

const (
	baseEstimatedMinutes  = 5
	extraEstimatedMinutes = 15
)

// Formula complexity increments
const (
	noFormulaComplexity    = 0.3
	operatorComplexity     = 0.1
	functionComplexity     = 0.2
	bracketComplexity      = 0.05
	variableComplexity     = 0.1
	stepComplexityPerCount = 0.15
	conceptComplexityEach  = 0.1
)

// Computation complexity increments
const (
	largeNumberComplexity = 0.1
	decimalComplexity     = 0.1
	fractionComplexity    = 0.15
	rootComplexity        = 0.2
)

const (
	formulaOperators = "+-*/^√∫∑∏"
	formulaBrackets  = "()[]{}"
)

var (
	numberedStepPattern = regexp.MustCompile(`\d+\.|[（(]\d+[）)]`)
	largeNumberPattern  = regexp.MustCompile(`\d{4,}`)
	decimalPattern      = regexp.MustCompile(`\d+\.\d+`)
	fractionPattern     = regexp.MustCompile(`\d+/\d+`)
	rootPattern         = regexp.MustCompile(`√|sqrt`)
)

var (
	levelEasy   = domain.DifficultyLevel{Level: "easy", Name: "简单", Color: "#67C23A"}
	levelMedium = domain.DifficultyLevel{Level: "medium", Name: "中等", Color: "#E6A23C"}
	levelHard   = domain.DifficultyLevel{Level: "hard", Name: "困难", Color: "#F56C6C"}
)

// Recommendation texts shown to teachers next to an exercise
const (
	RecommendSimplifyFormulas    = "公式较为复杂，建议简化公式或拆分为多个小问题"
	RecommendReduceSteps         = "解题步骤较多，建议减少步骤或提供分步提示"
	RecommendReduceConcepts      = "涉及知识点较多，建议减少单题考查的概念数量"
	RecommendSimplifyComputation = "计算量较大，建议简化数值运算"
	RecommendDifficultyOK        = "题目难度适中"
)

// Evaluator scores exercise difficulty from four independent heuristics.
// It holds only immutable tables and is safe for concurrent use.
type Evaluator struct {
	tables          KeywordTables
	functionPattern *regexp.Regexp
}

// NewEvaluator creates an Evaluator; empty tables fall back to the defaults
func NewEvaluator(tables KeywordTables) *Evaluator {
	tables = tables.withDefaults()
	return &Evaluator{
		tables:          tables,
		functionPattern: alternationPattern(tables.FunctionTokens),
	}
}

// alternationPattern matches any of the tokens, longest first so that
// e.g. "sqrt" is not split by a shorter token sharing its prefix.
func alternationPattern(tokens []string) *regexp.Regexp {
	sorted := append([]string(nil), tokens...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, 0, len(sorted))
	for _, t := range sorted {
		if t == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(t))
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(strings.Join(quoted, "|"))
}

// EvaluateDifficulty never fails: missing analysis or answer only lowers
// the affected factors to their baseline.
func (ev *Evaluator) EvaluateDifficulty(ex domain.Exercise) domain.DifficultyAssessment {
	formula := ev.FormulaComplexity(ex.QuestionText + " " + ex.CorrectAnswer)
	steps := ev.StepComplexity(ex.Analysis)
	concepts := ev.ConceptComplexity(ex.QuestionText + " " + ex.Analysis)
	computation := ComputationComplexity(ex.QuestionText + " " + ex.CorrectAnswer)

	overall := clamp01(formulaFactorWeight*formula +
		stepFactorWeight*steps +
		conceptFactorWeight*concepts +
		computationFactorWeight*computation)

	return domain.DifficultyAssessment{
		ExerciseID:        ex.ID,
		OverallDifficulty: overall,
		DifficultyFactors: map[string]float64{
			domain.FactorFormulaComplexity:     formula,
			domain.FactorStepComplexity:        steps,
			domain.FactorConceptComplexity:     concepts,
			domain.FactorComputationComplexity: computation,
		},
		DifficultyLevel: ClassifyDifficulty(overall),
		EstimatedTime:   EstimateTime(overall),
		Recommendations: factorRecommendations(formula, steps, concepts, computation),
	}
}

// FormulaComplexity scores the formulas found in text. Without formulas the
// score is a fixed baseline.
func (ev *Evaluator) FormulaComplexity(text string) float64 {
	formulas := ExtractMathFormulas(text)
	if len(formulas) == 0 {
		return noFormulaComplexity
	}
	score := 0.0
	for _, f := range formulas {
		score += operatorComplexity * float64(countRunesIn(f, formulaOperators))
		if ev.functionPattern != nil {
			score += functionComplexity * float64(len(ev.functionPattern.FindAllStringIndex(f, -1)))
		}
		score += bracketComplexity * float64(countRunesIn(f, formulaBrackets))
		score += variableComplexity * float64(distinctLatinLetters(f))
	}
	return math.Min(score, 1.0)
}

// StepComplexity counts step keywords and numbered markers such as "1." or "（2）"
func (ev *Evaluator) StepComplexity(analysis string) float64 {
	if analysis == "" {
		return 0
	}
	count := 0
	for _, kw := range ev.tables.StepKeywords {
		if kw != "" {
			count += strings.Count(analysis, kw)
		}
	}
	count += len(numberedStepPattern.FindAllStringIndex(analysis, -1))
	return math.Min(float64(count)*stepComplexityPerCount, 1.0)
}

// ConceptComplexity counts the distinct concept keywords present in text
func (ev *Evaluator) ConceptComplexity(text string) float64 {
	seen := make(map[string]struct{}, len(ev.tables.ConceptKeywords))
	for _, kw := range ev.tables.ConceptKeywords {
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		if strings.Contains(text, kw) {
			seen[kw] = struct{}{}
		}
	}
	return math.Min(float64(len(seen))*conceptComplexityEach, 1.0)
}

// ComputationComplexity scores large numbers, decimals, fractions and roots
func ComputationComplexity(text string) float64 {
	score := largeNumberComplexity * float64(len(largeNumberPattern.FindAllStringIndex(text, -1)))
	score += decimalComplexity * float64(len(decimalPattern.FindAllStringIndex(text, -1)))
	score += fractionComplexity * float64(len(fractionPattern.FindAllStringIndex(text, -1)))
	score += rootComplexity * float64(len(rootPattern.FindAllStringIndex(text, -1)))
	return math.Min(score, 1.0)
}

// ClassifyDifficulty maps an overall score to its tier:
// [0, 0.3) easy, [0.3, 0.7) medium, [0.7, 1] hard.
func ClassifyDifficulty(overall float64) domain.DifficultyLevel {
	switch {
	case overall >= hardDifficultyFrom:
		return levelHard
	case overall >= mediumDifficultyFrom:
		return levelMedium
	default:
		return levelEasy
	}
}

// EstimateTime returns the expected solving time in minutes, 5 to 20
func EstimateTime(overall float64) int {
	return int(math.Round(baseEstimatedMinutes + clamp01(overall)*extraEstimatedMinutes))
}

func factorRecommendations(formula, steps, concepts, computation float64) []string {
	var recs []string
	if formula > factorRecommendationThreshold {
		recs = append(recs, RecommendSimplifyFormulas)
	}
	if steps > factorRecommendationThreshold {
		recs = append(recs, RecommendReduceSteps)
	}
	if concepts > factorRecommendationThreshold {
		recs = append(recs, RecommendReduceConcepts)
	}
	if computation > factorRecommendationThreshold {
		recs = append(recs, RecommendSimplifyComputation)
	}
	if len(recs) == 0 {
		recs = append(recs, RecommendDifficultyOK)
	}
	return recs
}

func countRunesIn(s, set string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(set, r) {
			n++
		}
	}
	return n
}

func distinctLatinLetters(s string) int {
	seen := make(map[rune]struct{})
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			seen[r] = struct{}{}
		}
	}
	return len(seen)
}
