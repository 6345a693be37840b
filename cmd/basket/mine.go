package main

import (
	"fmt"
	"os"

	"github.com/Veraticus/market-basket/internal/cli"
	"github.com/Veraticus/market-basket/internal/mining"
	"github.com/Veraticus/market-basket/internal/report"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func mineCmd() *cobra.Command {
	defaults := mining.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "mine [file]",
		Short: "Mine frequent itemsets and association rules",
		Long: `Mine frequent 1-, 2-, 3-, and 5-itemsets from a basket dataset, then
derive 3-antecedent / 2-consequent association rules filtered by
confidence and lift.

Reads from the given file, or from imported transactions when no file
is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runMine,
	}

	cmd.Flags().Float64("min-support", defaults.MinSupport, "Minimum itemset support ratio in [0,1]")
	cmd.Flags().Float64("min-confidence", defaults.MinConfidence, "Minimum rule confidence in [0,1]")
	cmd.Flags().Float64("min-lift", defaults.MinLift, "Lift a rule must strictly exceed")
	cmd.Flags().Int("limit", 20, "Maximum rules to display (0 for all)")
	cmd.Flags().Bool("json", false, "Emit the full result as JSON on stdout")
	cmd.Flags().Bool("save", false, "Persist the retained rules to the database")

	_ = viper.BindPFlag("mining.min_support", cmd.Flags().Lookup("min-support"))
	_ = viper.BindPFlag("mining.min_confidence", cmd.Flags().Lookup("min-confidence"))
	_ = viper.BindPFlag("mining.min_lift", cmd.Flags().Lookup("min-lift"))
	_ = viper.BindPFlag("mining.limit", cmd.Flags().Lookup("limit"))
	_ = viper.BindPFlag("mining.json", cmd.Flags().Lookup("json"))
	_ = viper.BindPFlag("mining.save", cmd.Flags().Lookup("save"))

	return cmd
}

func runMine(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	set, err := loadTransactions(ctx, path)
	if err != nil {
		return err
	}

	cfg := mining.Config{
		MinSupport:    viper.GetFloat64("mining.min_support"),
		MinConfidence: viper.GetFloat64("mining.min_confidence"),
		MinLift:       viper.GetFloat64("mining.min_lift"),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	jsonOut := viper.GetBool("mining.json")

	var opts []mining.Option
	if !jsonOut {
		opts = append(opts, mining.WithProgress(newLevelProgress()))
	}

	result, err := mining.NewGenerator(cfg, opts...).Mine(ctx, set.Transactions)
	if err != nil {
		return err
	}

	rules := mining.GenerateRules(result, cfg)
	mining.SortRules(rules)
	summary := report.Summarize(result, rules)

	if viper.GetBool("mining.save") && len(rules) > 0 {
		store, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		if err := store.SaveRules(ctx, rules); err != nil {
			return fmt.Errorf("failed to save rules: %w", err)
		}
	}

	if jsonOut {
		return writeMineJSON(os.Stdout, summary, rules)
	}

	formatter := report.NewFormatter()
	fmt.Println(formatter.FormatDatasetStats(set))
	fmt.Println()
	fmt.Println(formatter.FormatSummary(summary))
	fmt.Println()
	fmt.Println(formatter.FormatRules(rules, viper.GetInt("mining.limit")))
	if len(rules) > 0 {
		fmt.Println()
		fmt.Println(formatter.FormatBestRule(rules))
	}
	return nil
}

// newLevelProgress renders one progress bar per mining level on stderr.
func newLevelProgress() mining.ProgressFunc {
	var bar *progressbar.ProgressBar
	currentLevel := 0
	return func(level, done, total int) {
		if level != currentLevel {
			currentLevel = level
			bar = cli.NewScanBar(os.Stderr, total,
				fmt.Sprintf("Counting %d-itemset candidates...", level))
		}
		if bar != nil {
			_ = bar.Set(done)
		}
	}
}
