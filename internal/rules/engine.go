// Package rules implements the deterministic rule engine that assigns
// spending categories to transactions from merchant names and memos.
package rules

import (
	"strings"

	"github.com/sobihq/sobi/internal/model"
)

// compiledRule pairs a rule with its pre-normalized trigger.
type compiledRule struct {
	normalized string
	Rule
}

// Engine classifies transactions against the merchant and keyword rule
// tables. It holds no mutable state: construct once, share freely.
type Engine struct {
	merchantRules []compiledRule
	keywordRules  []compiledRule
}

// NewEngine creates an engine backed by the built-in rule tables.
func NewEngine() *Engine {
	return NewEngineWithRules(MerchantRules, KeywordRules)
}

// NewEngineWithRules creates an engine with custom rule tables,
// preserving their order for first-match-wins resolution.
func NewEngineWithRules(merchants, keywords []Rule) *Engine {
	e := &Engine{
		merchantRules: make([]compiledRule, 0, len(merchants)),
		keywordRules:  make([]compiledRule, 0, len(keywords)),
	}
	for _, r := range merchants {
		e.merchantRules = append(e.merchantRules, compiledRule{
			Rule:       r,
			normalized: NormalizeMerchant(r.Pattern),
		})
	}
	for _, r := range keywords {
		e.keywordRules = append(e.keywordRules, compiledRule{
			Rule:       r,
			normalized: strings.ToLower(r.Pattern),
		})
	}
	return e
}

// Classify assigns a category to one transaction. Matching stages run
// in strict order, first success wins:
//
//  1. exact merchant match (normalized equality)
//  2. partial merchant match (symmetric substring containment)
//  3. memo keyword match
//  4. catch-all default
//
// Merchant identity is the strongest signal, so it is tried first and
// at higher confidence than free-text memo content. Unmatched input is
// not an error; it degrades to the catch-all with NeedsReview set.
func (e *Engine) Classify(merchant, memo string) model.ClassificationResult {
	if result, ok := e.matchMerchant(merchant); ok {
		return result
	}

	if result, ok := e.matchKeyword(memo); ok {
		return result
	}

	return model.ClassificationResult{
		Category:    model.CategoryOther,
		Confidence:  ConfidenceDefault,
		NeedsReview: true,
		Method:      model.MethodDefault,
	}
}

func (e *Engine) matchMerchant(merchant string) (model.ClassificationResult, bool) {
	normalized := NormalizeMerchant(merchant)
	if normalized == "" {
		return model.ClassificationResult{}, false
	}

	for _, rule := range e.merchantRules {
		if rule.normalized == normalized {
			return model.ClassificationResult{
				Category:   rule.Category,
				Confidence: ConfidenceExactMatch,
				Method:     model.MethodMerchantMatch,
			}, true
		}
	}

	for _, rule := range e.merchantRules {
		if strings.Contains(normalized, rule.normalized) || strings.Contains(rule.normalized, normalized) {
			return model.ClassificationResult{
				Category:   rule.Category,
				Confidence: ConfidencePartialMatch,
				Method:     model.MethodMerchantMatch,
			}, true
		}
	}

	return model.ClassificationResult{}, false
}

func (e *Engine) matchKeyword(memo string) (model.ClassificationResult, bool) {
	if memo == "" {
		return model.ClassificationResult{}, false
	}

	memoLower := strings.ToLower(strings.TrimSpace(memo))

	for _, rule := range e.keywordRules {
		if strings.Contains(memoLower, rule.normalized) {
			return model.ClassificationResult{
				Category:   rule.Category,
				Confidence: ConfidenceKeywordMatch,
				Method:     model.MethodKeywordMatch,
			}, true
		}
	}

	return model.ClassificationResult{}, false
}
