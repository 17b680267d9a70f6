package llm

import (
	"context"
	"strings"

	"github.com/sobihq/sobi/internal/model"
)

// heuristicRule triggers a category when any of its keywords appears
// in the lower-cased merchant name.
type heuristicRule struct {
	category   string
	rationale  string
	keywords   []string
	confidence float64
}

// Heuristic is a deterministic Classifier covering domains the rule
// tables do not: education, healthcare, and entertainment venues. The
// keyword sets are illustrative configuration, not contract; swap them
// out when a real model replaces this.
type Heuristic struct {
	rules []heuristicRule
}

// NewHeuristic creates the stand-in classifier with its built-in
// keyword sets.
func NewHeuristic() *Heuristic {
	return &Heuristic{
		rules: []heuristicRule{
			{
				keywords:   []string{"학교", "대학", "university"},
				category:   model.CategoryEducation,
				confidence: 0.8,
				rationale:  "가맹점명에 교육 관련 키워드 포함",
			},
			{
				keywords:   []string{"병원", "약국", "pharmacy"},
				category:   model.CategoryHealthcare,
				confidence: 0.8,
				rationale:  "가맹점명에 의료 관련 키워드 포함",
			},
			{
				keywords:   []string{"영화", "cgv", "롯데시네마", "메가박스"},
				category:   model.CategoryLeisure,
				confidence: 0.85,
				rationale:  "영화관 관련 가맹점",
			},
		},
	}
}

// SuggestCategory checks the merchant name against each keyword set in
// order. Nothing matching yields the catch-all at low confidence, so a
// caller applying the strictly-greater acceptance rule will never
// downgrade a primary result.
func (h *Heuristic) SuggestCategory(_ context.Context, txn model.Transaction) (model.ClassificationResult, error) {
	merchantLower := strings.ToLower(txn.Merchant)

	for _, rule := range h.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(merchantLower, keyword) {
				return model.ClassificationResult{
					Category:   rule.category,
					Confidence: rule.confidence,
					Method:     model.MethodFallback,
					Rationale:  rule.rationale,
				}, nil
			}
		}
	}

	return model.ClassificationResult{
		Category:    model.CategoryOther,
		Confidence:  0.6,
		Method:      model.MethodFallback,
		Rationale:   "명확한 카테고리 판단 불가",
		NeedsReview: true,
	}, nil
}
