// Package report rolls classified transactions into reportable
// summaries and derives rule-based insights from them.
package report

import (
	"log/slog"
	"sort"

	"github.com/sobihq/sobi/internal/model"
)

// topMerchantCount caps the merchant ranking length.
const topMerchantCount = 3

// Aggregator computes totals, category breakdowns, merchant rankings,
// and daily series. It is stateless; construct once and share.
type Aggregator struct{}

// NewAggregator creates an aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate rolls up the transactions dated within [start, end], both
// endpoints inclusive, compared as ISO date strings. An empty bound
// leaves that side open. Transactions without an assigned category are
// grouped under 미분류, which is distinct from the 기타 category the
// classifier assigns. An empty input yields zero totals and empty
// collections, never an error.
func (a *Aggregator) Aggregate(transactions []model.Transaction, start, end string) model.AggregationResult {
	result := model.AggregationResult{
		ByCategory:   make(map[string]float64),
		TopMerchants: []model.MerchantTotal{},
		DailyTotals:  []model.DailyTotal{},
	}

	merchantTotals := make(map[string]float64)
	var merchantOrder []string
	dailyTotals := make(map[string]float64)

	matched := 0
	for _, txn := range transactions {
		if start != "" && txn.Date < start {
			continue
		}
		if end != "" && txn.Date > end {
			continue
		}
		matched++

		result.TotalAmount += txn.AmountKRW

		category := txn.Category
		if category == "" {
			category = model.CategoryUnclassified
		}
		result.ByCategory[category] += txn.AmountKRW

		if _, seen := merchantTotals[txn.Merchant]; !seen {
			merchantOrder = append(merchantOrder, txn.Merchant)
		}
		merchantTotals[txn.Merchant] += txn.AmountKRW

		dailyTotals[txn.Date] += txn.AmountKRW
	}

	// Rank merchants by amount, ties broken by first-encountered order.
	ranked := make([]model.MerchantTotal, 0, len(merchantOrder))
	for _, merchant := range merchantOrder {
		ranked = append(ranked, model.MerchantTotal{
			Merchant: merchant,
			Amount:   merchantTotals[merchant],
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})
	if len(ranked) > topMerchantCount {
		ranked = ranked[:topMerchantCount]
	}
	result.TopMerchants = ranked

	dates := make([]string, 0, len(dailyTotals))
	for date := range dailyTotals {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		result.DailyTotals = append(result.DailyTotals, model.DailyTotal{
			Date:   date,
			Amount: dailyTotals[date],
		})
	}

	slog.Debug("Aggregation complete",
		"matched", matched,
		"total_amount", result.TotalAmount,
		"start", start,
		"end", end)

	return result
}
