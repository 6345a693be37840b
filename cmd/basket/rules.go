package main

import (
	"fmt"
	"os"

	"github.com/Veraticus/market-basket/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List previously mined rules",
		Long: `List rules saved by 'basket mine --save', best lift first,
optionally filtered by a lift floor.`,
		RunE: runRules,
	}

	cmd.Flags().Float64("min-lift", 0, "Only show rules with at least this lift")
	cmd.Flags().Int("limit", 20, "Maximum rules to display (0 for all)")
	cmd.Flags().Bool("json", false, "Emit rules as JSON on stdout")

	_ = viper.BindPFlag("rules.min_lift", cmd.Flags().Lookup("min-lift"))
	_ = viper.BindPFlag("rules.limit", cmd.Flags().Lookup("limit"))
	_ = viper.BindPFlag("rules.json", cmd.Flags().Lookup("json"))

	return cmd
}

func runRules(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	rules, err := store.GetRules(ctx, viper.GetFloat64("rules.min_lift"))
	if err != nil {
		return err
	}

	if viper.GetBool("rules.json") {
		return writeRulesJSON(os.Stdout, rules)
	}

	formatter := report.NewFormatter()
	fmt.Println(formatter.FormatRules(rules, viper.GetInt("rules.limit")))
	return nil
}
