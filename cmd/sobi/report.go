package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sobihq/sobi/internal/cli"
	"github.com/sobihq/sobi/internal/model"
	"github.com/sobihq/sobi/internal/report"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate spending for a date range",
		Long: `Roll up classified transactions into totals, category breakdowns,
top merchants, and a daily series.

Examples:
  sobi report --start 2024-03-01 --end 2024-03-31
  sobi report --start 2024-03-01 --end 2024-03-31 --insights
  sobi report --start 2024-03-01 --end 2024-03-31 --json`,
		RunE: runReport,
	}

	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().String("end", "", "End date (YYYY-MM-DD, inclusive)")
	cmd.Flags().Bool("insights", false, "Append generated insights")
	cmd.Flags().Bool("json", false, "Emit the report as JSON")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	withInsights, _ := cmd.Flags().GetBool("insights")
	asJSON, _ := cmd.Flags().GetBool("json")

	db, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("Failed to close database", "error", closeErr)
		}
	}()

	transactions, err := db.GetTransactionsByDateRange(ctx, start, end)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	// The query already filtered by date; the aggregator re-checks the
	// bounds, which is harmless.
	aggregation := report.NewAggregator().Aggregate(transactions, start, end)

	var insights *model.InsightReport
	if withInsights {
		generated := report.NewInsightGenerator().Generate(aggregation.TotalAmount, aggregation.ByCategory)
		insights = &generated
	}

	if asJSON {
		return printReportJSON(aggregation, insights)
	}

	printReport(start, end, aggregation)
	if insights != nil {
		printInsights(*insights)
	}
	return nil
}

func printReportJSON(aggregation model.AggregationResult, insights *model.InsightReport) error {
	payload := struct {
		Insights *model.InsightReport `json:"insights,omitempty"`
		model.AggregationResult
	}{
		AggregationResult: aggregation,
		Insights:          insights,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func printReport(start, end string, aggregation model.AggregationResult) {
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Spending report %s ~ %s", start, end)))
	fmt.Printf("Total: %.0f원\n\n", aggregation.TotalAmount)

	if len(aggregation.ByCategory) > 0 {
		fmt.Println(cli.BoldStyle.Render("By category"))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

		categories := make([]string, 0, len(aggregation.ByCategory))
		for category := range aggregation.ByCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			fmt.Fprintf(w, "  %s\t%.0f원\n", category, aggregation.ByCategory[category])
		}
		_ = w.Flush()
		fmt.Println()
	}

	if len(aggregation.TopMerchants) > 0 {
		fmt.Println(cli.BoldStyle.Render("Top merchants"))
		for i, merchant := range aggregation.TopMerchants {
			fmt.Printf("  %d. %-20s %.0f원\n", i+1, merchant.Merchant, merchant.Amount)
		}
		fmt.Println()
	}

	if len(aggregation.DailyTotals) > 0 {
		fmt.Println(cli.BoldStyle.Render("Daily totals"))
		for _, day := range aggregation.DailyTotals {
			fmt.Printf("  %s  %.0f원\n", day.Date, day.Amount)
		}
	}
}

func printInsights(insights model.InsightReport) {
	fmt.Println()
	fmt.Println(cli.TitleStyle.Render("Insights"))
	for _, insight := range insights.Insights {
		fmt.Printf("  • %s\n", insight)
	}

	if len(insights.Recommendations) > 0 {
		fmt.Println(cli.BoldStyle.Render("Recommendations"))
		for _, recommendation := range insights.Recommendations {
			fmt.Printf("  • %s\n", recommendation)
		}
	}

	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("Trend: %s", insights.SpendingTrend)))
}
