// Package matcher 根据自由文本需求为其挑选最合适的沟通模型
package matcher

import (
	"sort"
	"strings"

	"prompt-studio-api/internal/application/catalog"
	"prompt-studio-api/internal/domain/entity"
)

// Score 单个模板的匹配得分明细
type Score struct {
	TemplateID  string `json:"template_id"`
	Score       int    `json:"score"`
	KeywordHits int    `json:"keyword_hits"`
	UseCaseHits int    `json:"use_case_hits"`
	Simplicity  int    `json:"simplicity"`
}

// Matcher 基于关键词子串与使用场景的模板匹配器，纯函数、可并发调用
type Matcher struct {
	catalog  *catalog.Catalog
	keywords map[string][]string
	weights  Weights
}

// New 创建匹配器；rules 为空时使用内置规则
func New(c *catalog.Catalog, rules RuleTable, weights Weights) *Matcher {
	if rules == nil {
		rules = DefaultRules()
	}
	kw := rules.keywordsByTemplate()
	for id, words := range kw {
		lowered := make([]string, len(words))
		for i, w := range words {
			lowered[i] = strings.ToLower(w)
		}
		kw[id] = lowered
	}
	return &Matcher{
		catalog:  c,
		keywords: kw,
		weights:  weights,
	}
}

// NewDefault 使用内置目录、规则与权重
func NewDefault() *Matcher {
	return New(catalog.Default(), DefaultRules(), DefaultWeights())
}

// Match 返回得分最高的模板；平分按目录顺序取第一个，最高分为 0 时返回默认模板
func (m *Matcher) Match(input string) entity.Template {
	scores := m.score(input)

	best := -1
	for i, s := range scores {
		if best < 0 || s.Score > scores[best].Score {
			best = i
		}
	}
	if best < 0 || scores[best].Score <= 0 {
		return m.catalog.DefaultTemplate()
	}

	tpl, _ := m.catalog.FindByID(scores[best].TemplateID)
	return tpl
}

// Scores 返回按得分降序排列的明细（同分保持目录顺序）
func (m *Matcher) Scores(input string) []Score {
	scores := m.score(input)
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

func (m *Matcher) score(input string) []Score {
	lower := strings.ToLower(input)
	templates := m.catalog.List()
	out := make([]Score, 0, len(templates))

	for _, t := range templates {
		s := Score{TemplateID: t.ID}

		for _, kw := range m.keywords[t.ID] {
			if kw != "" && strings.Contains(lower, kw) {
				s.KeywordHits++
			}
		}
		for _, uc := range t.UseCases {
			if uc != "" && strings.Contains(lower, strings.ToLower(uc)) {
				s.UseCaseHits++
			}
		}
		s.Simplicity = entity.MaxComplexity - t.Complexity

		s.Score = s.KeywordHits*m.weights.Keyword +
			s.UseCaseHits*m.weights.UseCase +
			s.Simplicity*m.weights.Simplicity
		out = append(out, s)
	}
	return out
}
