package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sobihq/sobi/internal/model"
)

func TestHeuristicSuggestCategory(t *testing.T) {
	classifier := NewHeuristic()

	tests := []struct {
		name        string
		merchant    string
		category    string
		confidence  float64
		needsReview bool
	}{
		{
			name:       "university merchant",
			merchant:   "서울대학교 생활협동조합",
			category:   model.CategoryEducation,
			confidence: 0.8,
		},
		{
			name:       "english university keyword",
			merchant:   "Hanyang University Bookstore",
			category:   model.CategoryEducation,
			confidence: 0.8,
		},
		{
			name:       "pharmacy merchant",
			merchant:   "강남온누리약국",
			category:   model.CategoryHealthcare,
			confidence: 0.8,
		},
		{
			name:       "cinema chain upper case",
			merchant:   "CGV 용산아이파크몰",
			category:   model.CategoryLeisure,
			confidence: 0.85,
		},
		{
			name:        "no keyword hits",
			merchant:    "동네 철물상",
			category:    model.CategoryOther,
			confidence:  0.6,
			needsReview: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := classifier.SuggestCategory(context.Background(), model.Transaction{Merchant: tt.merchant})
			require.NoError(t, err)

			assert.Equal(t, tt.category, result.Category)
			assert.Equal(t, tt.confidence, result.Confidence)
			assert.Equal(t, model.MethodFallback, result.Method)
			assert.Equal(t, tt.needsReview, result.NeedsReview)
			assert.NotEmpty(t, result.Rationale)
		})
	}
}

func TestHeuristicNeverBeatsDefaultWithoutMatch(t *testing.T) {
	classifier := NewHeuristic()

	result, err := classifier.SuggestCategory(context.Background(), model.Transaction{Merchant: "정체불명 상점"})
	require.NoError(t, err)

	// A no-match suggestion must not exceed the keyword tier, so the
	// strictly-greater acceptance rule never downgrades a primary
	// result into the catch-all.
	assert.Equal(t, model.CategoryOther, result.Category)
	assert.LessOrEqual(t, result.Confidence, 0.75)
}
