package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/sobihq/sobi/internal/common"
	"github.com/sobihq/sobi/internal/model"
)

// SaveTransactions inserts transactions, skipping any whose hash is
// already present. It returns the number of rows actually inserted.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransactions(transactions); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (
			id, hash, date, time, merchant, memo,
			amount_krw, payment_type, city, channel
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	saved := 0
	for _, txn := range transactions {
		if txn.Hash == "" {
			txn.Hash = txn.GenerateHash()
		}

		res, execErr := stmt.ExecContext(ctx,
			txn.ID,
			txn.Hash,
			txn.Date,
			txn.Time,
			txn.Merchant,
			txn.Memo,
			txn.AmountKRW,
			string(txn.PaymentType),
			txn.City,
			string(txn.Channel),
		)
		if execErr != nil {
			return 0, fmt.Errorf("failed to save transaction %s: %w", txn.ID, execErr)
		}

		rows, raErr := res.RowsAffected()
		if raErr != nil {
			return 0, fmt.Errorf("failed to count affected rows: %w", raErr)
		}
		saved += int(rows)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	slog.Debug("Saved transactions",
		"received", len(transactions),
		"inserted", saved)

	return saved, nil
}

const transactionColumns = `
	id, hash, date, time, merchant, memo, amount_krw,
	payment_type, city, channel, category, confidence,
	needs_review, created_at`

// GetTransactionsToClassify returns transactions without a category,
// oldest first.
func (s *SQLiteStorage) GetTransactionsToClassify(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE category IS NULL
		ORDER BY date, time, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query unclassified transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetTransactionsByDateRange returns transactions dated within
// [start, end], both endpoints inclusive, ordered by date.
func (s *SQLiteStorage) GetTransactionsByDateRange(ctx context.Context, start, end string) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE date >= ? AND date <= ?
		ORDER BY date, time, id
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by date range: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// SaveClassification records the classification outcome for one
// transaction.
func (s *SQLiteStorage) SaveClassification(ctx context.Context, transactionID string, result model.ClassificationResult) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(transactionID, "transactionID"); err != nil {
		return err
	}
	if err := validateString(result.Category, "result.Category"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE transactions
		SET category = ?, confidence = ?, needs_review = ?,
		    classification_method = ?, classification_rationale = ?
		WHERE id = ?
	`,
		result.Category,
		result.Confidence,
		result.NeedsReview,
		string(result.Method),
		result.Rationale,
		transactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to save classification for %s: %w", transactionID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to count affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("transaction %s: %w", transactionID, common.ErrNotFound)
	}

	return nil
}

// CountTransactions returns total and unclassified transaction counts.
func (s *SQLiteStorage) CountTransactions(ctx context.Context) (total, unclassified int, err error) {
	if err := validateContext(ctx); err != nil {
		return 0, 0, err
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) - COUNT(category)
		FROM transactions
	`).Scan(&total, &unclassified)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return total, unclassified, nil
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction

	for rows.Next() {
		var txn model.Transaction
		var category sql.NullString
		var confidence sql.NullFloat64
		var paymentType, channel string

		if err := rows.Scan(
			&txn.ID,
			&txn.Hash,
			&txn.Date,
			&txn.Time,
			&txn.Merchant,
			&txn.Memo,
			&txn.AmountKRW,
			&paymentType,
			&txn.City,
			&channel,
			&category,
			&confidence,
			&txn.NeedsReview,
			&txn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		txn.PaymentType = model.PaymentType(paymentType)
		txn.Channel = model.Channel(channel)
		txn.Category = category.String
		txn.Confidence = confidence.Float64

		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}
