package model

// MerchantTotal is one entry in the top-merchant ranking.
type MerchantTotal struct {
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
}

// DailyTotal is the summed spend for a single calendar date.
type DailyTotal struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// AggregationResult holds the rolled-up figures for a date range.
type AggregationResult struct {
	ByCategory   map[string]float64 `json:"by_category"`
	TopMerchants []MerchantTotal    `json:"top_merchants"`
	DailyTotals  []DailyTotal       `json:"daily_totals"`
	TotalAmount  float64            `json:"total_amount"`
}
