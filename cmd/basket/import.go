package main

import (
	"fmt"

	"github.com/Veraticus/market-basket/internal/cli"
	"github.com/Veraticus/market-basket/internal/dataset"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a basket dataset into the local database",
		Long: `Import transactions from a text file into the local database.

The file holds one transaction per line, items separated by commas.
Lines with no items are logged and skipped. Imported transactions can
then be mined repeatedly without re-parsing the file.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("replace", false, "Clear previously imported transactions first")
	_ = viper.BindPFlag("import.replace", cmd.Flags().Lookup("replace"))

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	set, err := dataset.LoadFile(args[0])
	if err != nil {
		return err
	}
	if set.TotalTransactionCount() == 0 {
		return fmt.Errorf("dataset %s contains no usable transactions", args[0])
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if viper.GetBool("import.replace") {
		if err := store.ClearTransactions(ctx); err != nil {
			return err
		}
	}

	if err := store.SaveTransactions(ctx, set.Transactions); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	total, err := store.GetTransactionCount(ctx)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf(
		"Imported %d transactions (%d malformed lines dropped, %d total in database)",
		set.TotalTransactionCount(), set.MalformedLines, total)))
	return nil
}
