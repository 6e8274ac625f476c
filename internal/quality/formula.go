package quality

import "regexp"

// Formula extraction is a best-effort heuristic: it over- and under-matches
// free-form math text and its output is only used as a structural signal.
var (
	// $$...$$ is tried before $...$ at the same position.
	latexFormulaPattern  = regexp.MustCompile(`\$\$[^$]+\$\$|\$[^$]+\$`)
	markupFormulaPattern = regexp.MustCompile(`(?is)<math[^>]*>.*?</math>`)
	bareFormulaPattern   = regexp.MustCompile(`\d+(?:\s*[+\-*/^√∫∑∏]\s*\d+)+|\b[a-zA-Z]\s*=\s*[^。．.！!？?；;\n]+`)
)

// ExtractMathFormulas returns the math expressions embedded in text.
// The pattern families are not exclusive: all LaTeX spans come first, then
// markup math elements, then bare expressions, each in the order found.
// Duplicates are kept. An empty (non-nil) slice is returned when nothing matches.
func ExtractMathFormulas(text string) []string {
	formulas := []string{}
	if text == "" {
		return formulas
	}
	for _, pattern := range []*regexp.Regexp{latexFormulaPattern, markupFormulaPattern, bareFormulaPattern} {
		formulas = append(formulas, pattern.FindAllString(text, -1)...)
	}
	return formulas
}
