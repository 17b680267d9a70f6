package model

// SpendingTrend labels the direction of total spending.
type SpendingTrend string

// Spending trend constants.
const (
	TrendIncreasing SpendingTrend = "increasing"
	TrendDecreasing SpendingTrend = "decreasing"
	TrendStable     SpendingTrend = "stable"
)

// InsightReport holds generated observations and recommendations.
type InsightReport struct {
	Insights        []string      `json:"insights"`
	Recommendations []string      `json:"recommendations"`
	SpendingTrend   SpendingTrend `json:"spending_trend"`
}
