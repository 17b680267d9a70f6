package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sobihq/sobi/internal/cli"
	"github.com/sobihq/sobi/internal/rules"
)

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the classification rule tables",
		Long: `Display the merchant and keyword rule tables in the order they
are evaluated. The first matching entry wins.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			fmt.Println(cli.TitleStyle.Render("Merchant rules"))
			for i, rule := range rules.MerchantRules {
				fmt.Fprintf(w, "  %d\t%s\t→ %s\n", i+1, rule.Pattern, rule.Category)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println()
			fmt.Println(cli.TitleStyle.Render("Keyword rules"))
			for i, rule := range rules.KeywordRules {
				fmt.Fprintf(w, "  %d\t%s\t→ %s\n", i+1, rule.Pattern, rule.Category)
			}
			return w.Flush()
		},
	}
}
