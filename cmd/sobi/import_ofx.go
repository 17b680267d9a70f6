package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sobihq/sobi/internal/ingest"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import spending transactions from OFX or QFX (Quicken) files
exported from your bank. Credits are skipped; only spending is kept.

Examples:
  sobi import-ofx ~/Downloads/bank_jan_2024.qfx
  sobi import-ofx ~/Downloads/*.ofx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	return runFileImport(cmd, args, dryRun, func(f *os.File) (*ingest.Result, error) {
		return ingest.ParseOFX(f)
	})
}
