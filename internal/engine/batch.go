// Package engine orchestrates batch classification of transactions.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sobihq/sobi/internal/llm"
	"github.com/sobihq/sobi/internal/model"
	"github.com/sobihq/sobi/internal/rules"
)

// Options configures a batch classification run.
type Options struct {
	// Progress, if set, is called after each transaction is processed.
	Progress func(processed, total int)
	// Workers is the number of parallel classification workers.
	Workers int
	// UseFallback enables the secondary classifier for transactions
	// the rule engine left in the catch-all category.
	UseFallback bool
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{Workers: 2}
}

// Classified pairs a transaction with the result that produced its
// category. The transaction copy already carries the assigned
// category, confidence, and review flag.
type Classified struct {
	Result      model.ClassificationResult
	Transaction model.Transaction
}

// RecordFailure describes one transaction that could not be classified.
type RecordFailure struct {
	TransactionID string `json:"transaction_id"`
	Merchant      string `json:"merchant"`
	Reason        string `json:"reason"`
}

// Summary holds statistics for one batch run. ByCategory counts
// transactions, not amounts.
type Summary struct {
	ByCategory       map[string]int  `json:"by_category"`
	Failures         []RecordFailure `json:"failures,omitempty"`
	TotalClassified  int             `json:"total_classified"`
	NeedsReviewCount int             `json:"needs_review_count"`
}

// BatchClassifier applies the rule engine (and optionally the fallback
// classifier) across collections of transactions.
type BatchClassifier struct {
	storage  Storage
	rules    *rules.Engine
	fallback llm.Classifier
}

// New creates a batch classifier with the given dependencies. storage
// may be nil when only ClassifyTransactions is used.
func New(storage Storage, rulesEngine *rules.Engine, fallback llm.Classifier) *BatchClassifier {
	return &BatchClassifier{
		storage:  storage,
		rules:    rulesEngine,
		fallback: fallback,
	}
}

// ClassifyPending loads unclassified transactions from storage,
// classifies each one, and persists the results. A record that fails
// classification or persistence is reported in the summary and never
// aborts the rest of the batch.
func (b *BatchClassifier) ClassifyPending(ctx context.Context, opts Options) (*Summary, error) {
	transactions, err := b.storage.GetTransactionsToClassify(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load unclassified transactions: %w", err)
	}

	if len(transactions) == 0 {
		slog.Info("No transactions to classify")
		return &Summary{ByCategory: make(map[string]int)}, nil
	}

	classified, summary := b.ClassifyTransactions(ctx, transactions, opts)

	for _, c := range classified {
		if saveErr := b.storage.SaveClassification(ctx, c.Transaction.ID, c.Result); saveErr != nil {
			slog.Error("Failed to save classification",
				"transaction_id", c.Transaction.ID,
				"error", saveErr)
			summary.Failures = append(summary.Failures, RecordFailure{
				TransactionID: c.Transaction.ID,
				Merchant:      c.Transaction.Merchant,
				Reason:        saveErr.Error(),
			})
		}
	}

	slog.Info("Classification complete",
		"total_classified", summary.TotalClassified,
		"needs_review", summary.NeedsReviewCount,
		"failed", len(summary.Failures))

	return summary, nil
}

// ClassifyTransactions classifies a slice in memory and returns the
// successful outcomes alongside run statistics. Each transaction is
// classified independently, so the work fans out across workers; the
// per-category tallies are commutative sums and merge cleanly no
// matter which worker finishes first. Malformed records land in the
// summary's failure list and the rest of the batch continues.
func (b *BatchClassifier) ClassifyTransactions(ctx context.Context, transactions []model.Transaction, opts Options) ([]Classified, *Summary) {
	summary := &Summary{ByCategory: make(map[string]int)}
	if len(transactions) == 0 {
		return nil, summary
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultOptions().Workers
	}
	if workers > len(transactions) {
		workers = len(transactions)
	}

	type outcome struct {
		err error
		idx int
		c   Classified
	}

	jobs := make(chan int)
	results := make(chan outcome)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				c, err := b.classifyOne(ctx, transactions[idx], opts.UseFallback)
				results <- outcome{idx: idx, c: c, err: err}
			}
		}()
	}

	go func() {
		for idx := range transactions {
			jobs <- idx
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	byIndex := make([]*Classified, len(transactions))
	processed := 0
	for res := range results {
		processed++
		if opts.Progress != nil {
			opts.Progress(processed, len(transactions))
		}

		if res.err != nil {
			summary.Failures = append(summary.Failures, RecordFailure{
				TransactionID: res.c.Transaction.ID,
				Merchant:      res.c.Transaction.Merchant,
				Reason:        res.err.Error(),
			})
			continue
		}

		c := res.c
		byIndex[res.idx] = &c
		summary.TotalClassified++
		summary.ByCategory[c.Result.Category]++
		if c.Result.NeedsReview {
			summary.NeedsReviewCount++
		}
	}

	// Preserve input order regardless of worker completion order.
	classified := make([]Classified, 0, summary.TotalClassified)
	for _, c := range byIndex {
		if c != nil {
			classified = append(classified, *c)
		}
	}

	return classified, summary
}

// classifyOne runs the rule engine on a single transaction, consulting
// the fallback classifier when enabled and the primary result is the
// catch-all. The fallback result is accepted only when its confidence
// strictly exceeds the primary's, so it can upgrade a classification
// but never downgrade one.
func (b *BatchClassifier) classifyOne(ctx context.Context, txn model.Transaction, useFallback bool) (Classified, error) {
	if err := txn.Validate(); err != nil {
		return Classified{Transaction: txn}, err
	}

	result := b.rules.Classify(txn.Merchant, txn.Memo)

	if useFallback && b.fallback != nil && result.Category == model.CategoryOther {
		fb, err := b.fallback.SuggestCategory(ctx, txn)
		switch {
		case err != nil:
			slog.Warn("Fallback classifier failed, keeping primary result",
				"transaction_id", txn.ID,
				"error", err)
		case fb.Confidence > result.Confidence:
			result = fb
		}
	}

	txn.Category = result.Category
	txn.Confidence = result.Confidence
	txn.NeedsReview = result.NeedsReview

	slog.Debug("Classified transaction",
		"transaction_id", txn.ID,
		"merchant", txn.Merchant,
		"category", result.Category,
		"confidence", result.Confidence,
		"method", result.Method)

	return Classified{Transaction: txn, Result: result}, nil
}
