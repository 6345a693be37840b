package main

import (
	"fmt"

	"github.com/Veraticus/market-basket/internal/report"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Show dataset diagnostics",
		Long: `Show diagnostic statistics for a dataset: transaction count, unique
item count, and min/max/mean basket sizes.

Reads from the given file, or from imported transactions when no file
is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	set, err := loadTransactions(cmd.Context(), path)
	if err != nil {
		return err
	}

	fmt.Println(report.NewFormatter().FormatDatasetStats(set))
	return nil
}
