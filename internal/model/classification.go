// Package model defines the core domain models used throughout the application.
package model

// ClassificationMethod indicates which matching stage produced a result.
type ClassificationMethod string

// Classification method constants.
const (
	MethodMerchantMatch ClassificationMethod = "merchant_match"
	MethodKeywordMatch  ClassificationMethod = "keyword_match"
	MethodFallback      ClassificationMethod = "fallback"
	MethodDefault       ClassificationMethod = "default"
)

// ClassificationResult is the outcome of classifying one transaction.
//
// NeedsReview is true exactly when the catch-all category was assigned
// by the default path (or by a fallback that itself resolved to the
// catch-all).
type ClassificationResult struct {
	Category    string               `json:"category"`
	Method      ClassificationMethod `json:"method"`
	Rationale   string               `json:"rationale,omitempty"`
	Confidence  float64              `json:"confidence"`
	NeedsReview bool                 `json:"needs_review"`
}
