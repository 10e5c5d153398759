package matcher

// Rule 模板 ID 到领域关键词的映射
type Rule struct {
	TemplateID string   `json:"template_id"`
	Keywords   []string `json:"keywords"`
}

// RuleTable 关键词规则表
type RuleTable []Rule

// Weights 评分权重
type Weights struct {
	Keyword    int `json:"keyword"`
	UseCase    int `json:"use_case"`
	Simplicity int `json:"simplicity"`
}

// DefaultWeights 关键词 10 分、使用场景 5 分、每降低一级复杂度 2 分
func DefaultWeights() Weights {
	return Weights{Keyword: 10, UseCase: 5, Simplicity: 2}
}

// DefaultRules 内置关键词规则
//
// 关键词按子串匹配，因此不收录几乎出现在每条需求里的词：
// "设计"（"设计一位专业的…"是需求的常见开头）和"规划"（"规划师"是常见角色名）。
func DefaultRules() RuleTable {
	return RuleTable{
		{TemplateID: "smart", Keywords: []string{"目标", "计划", "kpi", "指标"}},
		{TemplateID: "star", Keywords: []string{"分析", "问题", "原因", "解决", "情况"}},
		{TemplateID: "scamper", Keywords: []string{"创新", "创意", "改进", "优化"}},
		{TemplateID: "aida", Keywords: []string{"营销", "推广", "广告", "文案", "销售"}},
		{TemplateID: "swot", Keywords: []string{"战略", "竞争", "优势", "劣势", "机会"}},
		{TemplateID: "pdca", Keywords: []string{"流程", "改进", "质量", "循环", "迭代"}},
		{TemplateID: "raci", Keywords: []string{"责任", "分工", "团队", "协作", "项目"}},
		{TemplateID: "grow", Keywords: []string{"教练", "引导", "对话", "成长", "发展"}},
		{TemplateID: "mece", Keywords: []string{"逻辑", "分类", "结构", "思维", "分析"}},
		{TemplateID: "pyramid", Keywords: []string{"报告", "演讲", "表达", "结构", "论证"}},
		{TemplateID: "5w1h", Keywords: []string{"什么", "谁", "何时", "何地", "为什么", "如何"}},
		{TemplateID: "prep", Keywords: []string{"说服", "观点", "理由", "例证"}},
		{TemplateID: "ogsm", Keywords: []string{"执行", "战略", "目的", "措施"}},
	}
}

// keywordsByTemplate 同一模板出现多条规则时只取第一条
func (rt RuleTable) keywordsByTemplate() map[string][]string {
	out := make(map[string][]string, len(rt))
	for _, r := range rt {
		if _, ok := out[r.TemplateID]; ok {
			continue
		}
		out[r.TemplateID] = r.Keywords
	}
	return out
}
