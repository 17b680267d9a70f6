package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sobihq/sobi/internal/cli"
	"github.com/sobihq/sobi/internal/ingest"
	"github.com/sobihq/sobi/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import transactions from CSV statement exports",
		Long: `Import card-statement transactions from CSV files.

Expected columns:
  date,time,merchant,memo,amount_krw,payment_type,city,channel

Examples:
  sobi import ~/Downloads/statement_2024_03.csv
  sobi import ~/Downloads/statement_*.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	return runFileImport(cmd, args, dryRun, func(f *os.File) (*ingest.Result, error) {
		return ingest.ParseCSV(f)
	})
}

// runFileImport is shared between the CSV and OFX import commands.
func runFileImport(cmd *cobra.Command, patterns []string, dryRun bool, parse func(*os.File) (*ingest.Result, error)) error {
	ctx := cmd.Context()

	files, err := expandFileArgs(patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("Importing statement files",
		"file_count", len(files),
		"dry_run", dryRun)

	var transactions []model.Transaction
	rowErrors := 0

	for _, path := range files {
		f, openErr := os.Open(path)
		if openErr != nil {
			slog.Error("Failed to open file", "file", path, "error", openErr)
			continue
		}

		result, parseErr := parse(f)
		_ = f.Close()
		if parseErr != nil {
			slog.Error("Failed to parse file", "file", filepath.Base(path), "error", parseErr)
			continue
		}

		for _, rowErr := range result.RowErrors {
			slog.Warn("Skipping malformed record",
				"file", filepath.Base(path),
				"error", rowErr)
		}
		rowErrors += len(result.RowErrors)
		transactions = append(transactions, result.Transactions...)
	}

	if len(transactions) == 0 {
		fmt.Println(cli.WarningStyle.Render("No valid transactions found."))
		return nil
	}

	if dryRun {
		fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Dry run: would import %d transactions", len(transactions))))
		for i, txn := range transactions {
			if i >= 10 {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("  ... and %d more", len(transactions)-10)))
				break
			}
			fmt.Printf("  %s  %-20s  %10.0f원\n", txn.Date, txn.Merchant, txn.AmountKRW)
		}
		return nil
	}

	db, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("Failed to close database", "error", closeErr)
		}
	}()

	saved, err := db.SaveTransactions(ctx, transactions)
	if err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	duplicates := len(transactions) - saved
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Imported %d transactions", saved)))
	if duplicates > 0 {
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("  %d duplicates skipped", duplicates)))
	}
	if rowErrors > 0 {
		fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("  %d malformed records skipped", rowErrors)))
	}

	return nil
}

// expandFileArgs resolves glob patterns and plain paths.
func expandFileArgs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(pattern); statErr == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			files = append(files, matches...)
		}
	}
	return files, nil
}
