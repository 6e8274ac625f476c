package quality

// KeywordTables holds the vocabularies the difficulty heuristics match against.
// They are plain data so the scoring can be tuned per deployment (see the
// keywords section of config.yaml) and tested with small fixed tables.
type KeywordTables struct {
	// StepKeywords mark a solution step in an exercise analysis.
	StepKeywords []string
	// ConceptKeywords are domain concepts (math, physics, chemistry).
	ConceptKeywords []string
	// FunctionTokens are named functions inside a formula.
	FunctionTokens []string
}

var defaultStepKeywords = []string{
	"步骤", "首先", "然后", "接下来", "最后", "第一", "第二", "第三", "因此", "所以",
}

var defaultConceptKeywords = []string{
	// 数学
	"方程", "函数", "导数", "积分", "极限", "概率", "统计", "几何", "三角", "向量",
	"矩阵", "数列", "不等式", "对数", "指数", "集合", "复数", "分数", "小数", "面积",
	"体积", "周长", "比例", "百分数", "因数", "倍数", "质数", "坐标",
	// 物理
	"速度", "加速度", "质量", "密度", "压强", "浮力", "摩擦力", "重力", "能量", "功率",
	"电流", "电压", "电阻", "磁场", "动量",
	// 化学
	"化学反应", "元素", "分子", "原子", "离子", "化合价", "氧化", "还原", "溶液", "摩尔",
	"酸碱",
}

var defaultFunctionTokens = []string{
	"sin", "cos", "tan", "log", "ln", "exp", "sqrt", "frac",
}

// DefaultKeywordTables returns the built-in vocabularies
func DefaultKeywordTables() KeywordTables {
	return KeywordTables{
		StepKeywords:    append([]string(nil), defaultStepKeywords...),
		ConceptKeywords: append([]string(nil), defaultConceptKeywords...),
		FunctionTokens:  append([]string(nil), defaultFunctionTokens...),
	}
}

// withDefaults fills every empty table from the built-in vocabularies
func (t KeywordTables) withDefaults() KeywordTables {
	defaults := DefaultKeywordTables()
	if len(t.StepKeywords) == 0 {
		t.StepKeywords = defaults.StepKeywords
	}
	if len(t.ConceptKeywords) == 0 {
		t.ConceptKeywords = defaults.ConceptKeywords
	}
	if len(t.FunctionTokens) == 0 {
		t.FunctionTokens = defaults.FunctionTokens
	}
	return t
}
