package model

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// PaymentType identifies how a transaction was paid.
type PaymentType string

// Payment type constants.
const (
	PaymentCreditCard    PaymentType = "credit_card"
	PaymentDebitCard     PaymentType = "debit_card"
	PaymentTransportCard PaymentType = "transport_card"
	PaymentMobilePay     PaymentType = "mobile_pay"
	PaymentCash          PaymentType = "cash"
)

// Channel identifies where a transaction took place.
type Channel string

// Channel constants.
const (
	ChannelOffline Channel = "offline"
	ChannelOnline  Channel = "online"
	ChannelApp     Channel = "app"
	ChannelKiosk   Channel = "kiosk"
)

// Transaction validation errors.
var (
	ErrMissingMerchant = errors.New("merchant is required")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
)

var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Transaction represents a single card-statement entry.
//
// Dates are kept as ISO YYYY-MM-DD strings so that range filtering and
// daily bucketing reduce to lexicographic comparison.
type Transaction struct {
	CreatedAt   time.Time
	ID          string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Merchant    string
	Memo        string
	City        string
	Hash        string
	Category    string
	PaymentType PaymentType
	Channel     Channel
	AmountKRW   float64
	Confidence  float64
	NeedsReview bool
}

// GenerateHash creates a unique hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%.2f:%s",
		t.Date,
		t.Time,
		t.AmountKRW,
		t.Merchant)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// Classified reports whether the transaction has been assigned a category.
func (t *Transaction) Classified() bool {
	return t.Category != ""
}

// Validate checks the structural fields classification depends on.
// It names the first offending field rather than coercing it.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Merchant) == "" {
		return ErrMissingMerchant
	}
	if t.AmountKRW <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidAmount, t.AmountKRW)
	}
	if !dateFormat.MatchString(t.Date) {
		return fmt.Errorf("%w: got %q", ErrInvalidDate, t.Date)
	}
	return nil
}
