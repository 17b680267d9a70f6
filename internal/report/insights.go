package report

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/sobihq/sobi/internal/model"
)

// Insight thresholds. These are fixed rules, not a statistical model.
const (
	foodSharePercent    = 40.0
	leisureSharePercent = 30.0
	assumedPeriodDays   = 30
	dailyBudgetKRW      = 50000
	increasingTotalKRW  = 1500000
	decreasingTotalKRW  = 500000
)

// foodCategoryPrefix matches the 식비 family of categories (식비/카페,
// 식비/외식) so the food recommendation works against the fine-grained
// taxonomy the classifier uses.
const foodCategoryPrefix = "식비"

// InsightGenerator derives human-readable observations and
// recommendations from aggregated spending figures.
type InsightGenerator struct{}

// NewInsightGenerator creates an insight generator.
func NewInsightGenerator() *InsightGenerator {
	return &InsightGenerator{}
}

// Generate produces observations, recommendations, and a trend label
// from a total and its category breakdown. Every rule triggers
// independently; a report may carry zero or several recommendations.
func (g *InsightGenerator) Generate(totalSpending float64, byCategory map[string]float64) model.InsightReport {
	report := model.InsightReport{
		Insights:        []string{},
		Recommendations: []string{},
		SpendingTrend:   model.TrendStable,
	}

	if len(byCategory) > 0 {
		topCategory, topAmount := topSpendingCategory(byCategory)
		percentage := share(topAmount, totalSpending)

		report.Insights = append(report.Insights,
			fmt.Sprintf("가장 많이 지출한 카테고리는 '%s'입니다 (%.1f%%)", topCategory, percentage))

		if strings.HasPrefix(topCategory, foodCategoryPrefix) && percentage > foodSharePercent {
			report.Recommendations = append(report.Recommendations,
				"식비 지출이 높습니다. 집에서 식사하는 빈도를 늘려보세요.")
		}

		if leisure, ok := byCategory[model.CategoryLeisure]; ok {
			if share(leisure, totalSpending) > leisureSharePercent {
				report.Recommendations = append(report.Recommendations,
					"여가 지출이 높습니다. 무료 활동을 찾아보시는 것은 어떨까요?")
			}
		}
	}

	avgDaily := totalSpending / assumedPeriodDays
	report.Insights = append(report.Insights,
		fmt.Sprintf("평균 일일 지출은 약 %s원입니다", formatKRW(avgDaily)))

	if avgDaily > dailyBudgetKRW {
		report.Recommendations = append(report.Recommendations,
			"일일 평균 지출이 높습니다. 예산을 설정해보세요.")
	}

	switch {
	case totalSpending > increasingTotalKRW:
		report.SpendingTrend = model.TrendIncreasing
		report.Insights = append(report.Insights, "지출이 증가 추세입니다")
	case totalSpending < decreasingTotalKRW:
		report.SpendingTrend = model.TrendDecreasing
		report.Insights = append(report.Insights, "지출이 감소 추세입니다")
	}

	slog.Debug("Insight generation complete",
		"insights", len(report.Insights),
		"recommendations", len(report.Recommendations),
		"trend", report.SpendingTrend)

	return report
}

// topSpendingCategory returns the category with the largest amount.
// Ties break toward the lexicographically smaller name so the output
// does not depend on map iteration order.
func topSpendingCategory(byCategory map[string]float64) (string, float64) {
	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	var topName string
	var topAmount float64
	for _, name := range names {
		if topName == "" || byCategory[name] > topAmount {
			topName = name
			topAmount = byCategory[name]
		}
	}
	return topName, topAmount
}

// share returns amount as a percentage of total, 0 when total is 0.
func share(amount, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return amount / total * 100
}

// formatKRW renders a won amount with thousands separators and no
// decimal places.
func formatKRW(amount float64) string {
	digits := fmt.Sprintf("%.0f", amount)

	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
