package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sobihq/sobi/internal/model"
)

func txn(date, merchant, category string, amount float64) model.Transaction {
	return model.Transaction{
		Date:      date,
		Merchant:  merchant,
		Category:  category,
		AmountKRW: amount,
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	result := NewAggregator().Aggregate(nil, "2024-03-01", "2024-03-31")

	assert.Equal(t, 0.0, result.TotalAmount)
	assert.Empty(t, result.ByCategory)
	assert.Empty(t, result.TopMerchants)
	assert.Empty(t, result.DailyTotals)
}

func TestAggregateTotals(t *testing.T) {
	transactions := []model.Transaction{
		txn("2024-03-01", "스타벅스", model.CategoryCafe, 5500),
		txn("2024-03-01", "GS25", model.CategoryConvenience, 3200),
		txn("2024-03-02", "스타벅스", model.CategoryCafe, 4500),
		txn("2024-03-03", "쿠팡", model.CategoryOnline, 28900),
	}

	result := NewAggregator().Aggregate(transactions, "2024-03-01", "2024-03-31")

	assert.Equal(t, 42100.0, result.TotalAmount)
	assert.Equal(t, 10000.0, result.ByCategory[model.CategoryCafe])
	assert.Equal(t, 3200.0, result.ByCategory[model.CategoryConvenience])
	assert.Equal(t, 28900.0, result.ByCategory[model.CategoryOnline])

	// Amounts partition exactly across both groupings.
	var byCategorySum, dailySum float64
	for _, amount := range result.ByCategory {
		byCategorySum += amount
	}
	for _, day := range result.DailyTotals {
		dailySum += day.Amount
	}
	assert.Equal(t, result.TotalAmount, byCategorySum)
	assert.Equal(t, result.TotalAmount, dailySum)
}

func TestAggregateDateRangeInclusive(t *testing.T) {
	transactions := []model.Transaction{
		txn("2024-02-29", "제외", model.CategoryOther, 1000),
		txn("2024-03-01", "시작일", model.CategoryOther, 2000),
		txn("2024-03-31", "종료일", model.CategoryOther, 3000),
		txn("2024-04-01", "제외2", model.CategoryOther, 4000),
	}

	result := NewAggregator().Aggregate(transactions, "2024-03-01", "2024-03-31")

	assert.Equal(t, 5000.0, result.TotalAmount)
	require.Len(t, result.DailyTotals, 2)
	assert.Equal(t, "2024-03-01", result.DailyTotals[0].Date)
	assert.Equal(t, "2024-03-31", result.DailyTotals[1].Date)
}

func TestAggregateOpenBounds(t *testing.T) {
	transactions := []model.Transaction{
		txn("2024-01-01", "가", model.CategoryOther, 1000),
		txn("2024-06-01", "나", model.CategoryOther, 2000),
	}

	result := NewAggregator().Aggregate(transactions, "", "")
	assert.Equal(t, 3000.0, result.TotalAmount)
}

func TestAggregateUnclassifiedLabel(t *testing.T) {
	transactions := []model.Transaction{
		txn("2024-03-01", "스타벅스", model.CategoryCafe, 5000),
		txn("2024-03-01", "어딘가", "", 7000),
	}

	result := NewAggregator().Aggregate(transactions, "2024-03-01", "2024-03-31")

	assert.Equal(t, 7000.0, result.ByCategory[model.CategoryUnclassified])
	assert.NotContains(t, result.ByCategory, "")
}

func TestAggregateTopMerchants(t *testing.T) {
	transactions := []model.Transaction{
		txn("2024-03-01", "쿠팡", model.CategoryOnline, 50000),
		txn("2024-03-01", "스타벅스", model.CategoryCafe, 5000),
		txn("2024-03-02", "스타벅스", model.CategoryCafe, 5000),
		txn("2024-03-02", "GS25", model.CategoryConvenience, 8000),
		txn("2024-03-03", "버거킹", model.CategoryDining, 9000),
	}

	result := NewAggregator().Aggregate(transactions, "2024-03-01", "2024-03-31")

	require.Len(t, result.TopMerchants, 3)
	assert.Equal(t, "쿠팡", result.TopMerchants[0].Merchant)
	assert.Equal(t, 50000.0, result.TopMerchants[0].Amount)

	// Sorted non-increasing.
	for i := 1; i < len(result.TopMerchants); i++ {
		assert.GreaterOrEqual(t,
			result.TopMerchants[i-1].Amount,
			result.TopMerchants[i].Amount)
	}
}

func TestAggregateTopMerchantsTieBreak(t *testing.T) {
	// 스타벅스 and GS25 tie; 스타벅스 was encountered first and must
	// stay ahead.
	transactions := []model.Transaction{
		txn("2024-03-01", "스타벅스", model.CategoryCafe, 10000),
		txn("2024-03-01", "GS25", model.CategoryConvenience, 10000),
		txn("2024-03-02", "쿠팡", model.CategoryOnline, 90000),
	}

	result := NewAggregator().Aggregate(transactions, "2024-03-01", "2024-03-31")

	require.Len(t, result.TopMerchants, 3)
	assert.Equal(t, "쿠팡", result.TopMerchants[0].Merchant)
	assert.Equal(t, "스타벅스", result.TopMerchants[1].Merchant)
	assert.Equal(t, "GS25", result.TopMerchants[2].Merchant)
}

func TestAggregateDailyTotalsSorted(t *testing.T) {
	transactions := []model.Transaction{
		txn("2024-03-15", "가", model.CategoryOther, 1000),
		txn("2024-03-01", "나", model.CategoryOther, 2000),
		txn("2024-03-08", "다", model.CategoryOther, 3000),
		txn("2024-03-01", "라", model.CategoryOther, 4000),
	}

	result := NewAggregator().Aggregate(transactions, "2024-03-01", "2024-03-31")

	require.Len(t, result.DailyTotals, 3)
	assert.Equal(t, "2024-03-01", result.DailyTotals[0].Date)
	assert.Equal(t, 6000.0, result.DailyTotals[0].Amount)
	assert.Equal(t, "2024-03-08", result.DailyTotals[1].Date)
	assert.Equal(t, "2024-03-15", result.DailyTotals[2].Date)
}
