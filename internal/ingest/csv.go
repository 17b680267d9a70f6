// Package ingest parses card-statement exports into transactions.
//
// Two formats are supported: the CSV layout produced by Korean card
// statement exports, and OFX/QFX files from banks. Both parsers report
// malformed records individually; one bad row never fails the file.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/sobihq/sobi/internal/model"
)

// csvHeader is the expected column layout of a statement export.
var csvHeader = []string{
	"date", "time", "merchant", "memo",
	"amount_krw", "payment_type", "city", "channel",
}

// RowError describes one record that could not be ingested.
type RowError struct {
	Err   error
	Field string
	Row   int // 1-based, counting the header as row 1
}

func (e RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("row %d: field %s: %v", e.Row, e.Field, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// Unwrap returns the underlying cause.
func (e RowError) Unwrap() error {
	return e.Err
}

// Result holds the parsed transactions and per-row failures of one file.
type Result struct {
	Transactions []model.Transaction
	RowErrors    []RowError
}

// ParseCSV reads a statement export. Structural problems with the file
// itself (unreadable, wrong header) are returned as an error; problems
// with individual records are collected in the result instead.
func ParseCSV(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	result := &Result{}
	row := 1
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		row++
		if readErr != nil {
			result.RowErrors = append(result.RowErrors, RowError{Row: row, Err: readErr})
			continue
		}

		txn, rowErr := parseRecord(record, row)
		if rowErr != nil {
			result.RowErrors = append(result.RowErrors, *rowErr)
			continue
		}

		result.Transactions = append(result.Transactions, txn)
	}

	return result, nil
}

func validateHeader(header []string) error {
	if len(header) != len(csvHeader) {
		return fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(header))
	}
	for i, want := range csvHeader {
		got := strings.TrimSpace(strings.ToLower(header[i]))
		if got != want {
			return fmt.Errorf("unexpected column %d: want %q, got %q", i+1, want, header[i])
		}
	}
	return nil
}

func parseRecord(record []string, row int) (model.Transaction, *RowError) {
	var txn model.Transaction

	if len(record) != len(csvHeader) {
		return txn, &RowError{
			Row: row,
			Err: fmt.Errorf("expected %d fields, got %d", len(csvHeader), len(record)),
		}
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return txn, &RowError{Row: row, Field: "amount_krw", Err: err}
	}

	txn = model.Transaction{
		ID:          uuid.NewString(),
		Date:        strings.TrimSpace(record[0]),
		Time:        strings.TrimSpace(record[1]),
		Merchant:    strings.TrimSpace(record[2]),
		Memo:        strings.TrimSpace(record[3]),
		AmountKRW:   amount,
		PaymentType: model.PaymentType(strings.TrimSpace(record[5])),
		City:        strings.TrimSpace(record[6]),
		Channel:     model.Channel(strings.TrimSpace(record[7])),
	}

	if err := txn.Validate(); err != nil {
		return txn, &RowError{Row: row, Err: err}
	}

	txn.Hash = txn.GenerateHash()
	return txn, nil
}
