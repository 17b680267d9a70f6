// Package llm provides the secondary classifier consulted when the
// rule engine cannot do better than the catch-all category.
//
// The only implementation today is a deterministic heuristic standing
// in for a future model-backed classifier; the Classifier interface is
// the seam where a real provider would plug in.
package llm

import (
	"context"

	"github.com/sobihq/sobi/internal/model"
)

// Classifier suggests a category for a transaction the rule engine
// could not classify.
type Classifier interface {
	SuggestCategory(ctx context.Context, txn model.Transaction) (model.ClassificationResult, error)
}
