package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sobihq/sobi/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateDateRange ensures both bounds are present and ordered.
func validateDateRange(start, end string) error {
	if err := validateString(start, "start"); err != nil {
		return err
	}
	if err := validateString(end, "end"); err != nil {
		return err
	}
	if start > end {
		return fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, start, end)
	}
	return nil
}

// validateTransactions validates a slice of transactions.
func validateTransactions(transactions []model.Transaction) error {
	if transactions == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}

	for i := range transactions {
		txn := &transactions[i]
		if txn.ID == "" {
			return fmt.Errorf("%w at index %d: missing ID", ErrInvalidTransaction, i)
		}
		if err := txn.Validate(); err != nil {
			return fmt.Errorf("%w at index %d: %w", ErrInvalidTransaction, i, err)
		}
	}
	return nil
}
