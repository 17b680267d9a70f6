package engine

import (
	"context"

	"github.com/sobihq/sobi/internal/model"
)

// Storage defines the persistence operations batch classification needs.
type Storage interface {
	GetTransactionsToClassify(ctx context.Context) ([]model.Transaction, error)
	SaveClassification(ctx context.Context, transactionID string, result model.ClassificationResult) error
}
