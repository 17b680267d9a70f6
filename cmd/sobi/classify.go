package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sobihq/sobi/internal/cli"
	"github.com/sobihq/sobi/internal/engine"
	"github.com/sobihq/sobi/internal/llm"
	"github.com/sobihq/sobi/internal/rules"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Categorize unclassified transactions",
		Long: `Categorize stored transactions that have no category yet.

The rule engine matches merchant names and memo keywords. With
--fallback, transactions it leaves in the catch-all category get a
second opinion from the heuristic classifier, accepted only when it
is more confident than the primary result.

Examples:
  sobi classify
  sobi classify --fallback
  sobi classify --workers 4`,
		RunE: runClassify,
	}

	cmd.Flags().BoolP("fallback", "f", false, "Enable the heuristic fallback classifier")
	cmd.Flags().IntP("workers", "w", 0, "Parallel classification workers (0 = default)")

	_ = viper.BindPFlag("classification.fallback", cmd.Flags().Lookup("fallback"))
	_ = viper.BindPFlag("classification.workers", cmd.Flags().Lookup("workers"))

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	slog.Info("Starting transaction categorization")

	db, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("Failed to close database", "error", closeErr)
		}
	}()

	_, unclassified, err := db.CountTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to count transactions: %w", err)
	}

	if unclassified == 0 {
		fmt.Println(cli.SuccessStyle.Render("Nothing to classify."))
		return nil
	}

	bar := progressbar.NewOptions(unclassified,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Classifying transactions..."),
	)

	classifier := engine.New(db, rules.NewEngine(), llm.NewHeuristic())

	opts := engine.DefaultOptions()
	opts.UseFallback = viper.GetBool("classification.fallback")
	if workers := viper.GetInt("classification.workers"); workers > 0 {
		opts.Workers = workers
	}
	opts.Progress = func(_, _ int) {
		_ = bar.Add(1)
	}

	summary, err := classifier.ClassifyPending(ctx, opts)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	printClassifySummary(summary)
	return nil
}

func printClassifySummary(summary *engine.Summary) {
	fmt.Println(cli.TitleStyle.Render("Classification summary"))
	fmt.Printf("  Classified:   %d\n", summary.TotalClassified)
	fmt.Printf("  Needs review: %d\n", summary.NeedsReviewCount)

	if len(summary.ByCategory) > 0 {
		categories := make([]string, 0, len(summary.ByCategory))
		for category := range summary.ByCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		fmt.Println(cli.BoldStyle.Render("  By category:"))
		for _, category := range categories {
			fmt.Printf("    %-12s %d\n", category, summary.ByCategory[category])
		}
	}

	if len(summary.Failures) > 0 {
		fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("  %d records failed:", len(summary.Failures))))
		for _, failure := range summary.Failures {
			fmt.Println(cli.SubtleStyle.Render(
				fmt.Sprintf("    %s (%s): %s", failure.TransactionID, failure.Merchant, failure.Reason)))
		}
	}
}
