package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		ID:        "txn-1",
		Date:      "2024-03-15",
		Time:      "12:30",
		Merchant:  "스타벅스",
		AmountKRW: 5500,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		expectedErr error
		mutate      func(*Transaction)
		name        string
	}{
		{
			name:        "missing merchant",
			mutate:      func(txn *Transaction) { txn.Merchant = "" },
			expectedErr: ErrMissingMerchant,
		},
		{
			name:        "whitespace merchant",
			mutate:      func(txn *Transaction) { txn.Merchant = "   " },
			expectedErr: ErrMissingMerchant,
		},
		{
			name:        "zero amount",
			mutate:      func(txn *Transaction) { txn.AmountKRW = 0 },
			expectedErr: ErrInvalidAmount,
		},
		{
			name:        "negative amount",
			mutate:      func(txn *Transaction) { txn.AmountKRW = -5500 },
			expectedErr: ErrInvalidAmount,
		},
		{
			name:        "wrong date layout",
			mutate:      func(txn *Transaction) { txn.Date = "15/03/2024" },
			expectedErr: ErrInvalidDate,
		},
		{
			name:        "empty date",
			mutate:      func(txn *Transaction) { txn.Date = "" },
			expectedErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid
			tt.mutate(&txn)
			assert.ErrorIs(t, txn.Validate(), tt.expectedErr)
		})
	}
}

func TestGenerateHash(t *testing.T) {
	txn := Transaction{
		Date:      "2024-03-15",
		Time:      "12:30",
		Merchant:  "스타벅스",
		AmountKRW: 5500,
	}

	// Stable for identical inputs, even across distinct IDs.
	other := txn
	other.ID = "different-id"
	assert.Equal(t, txn.GenerateHash(), other.GenerateHash())

	// Any identity field changes the hash.
	changed := txn
	changed.AmountKRW = 5600
	assert.NotEqual(t, txn.GenerateHash(), changed.GenerateHash())

	changed = txn
	changed.Merchant = "이디야"
	assert.NotEqual(t, txn.GenerateHash(), changed.GenerateHash())
}

func TestClassified(t *testing.T) {
	txn := Transaction{}
	assert.False(t, txn.Classified())

	txn.Category = CategoryCafe
	assert.True(t, txn.Classified())
}
