package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgoulah/energyanalyzer/internal/report"
)

var pricesCmd = &cobra.Command{
	Use:   "prices [sector] [fuel-type]",
	Short: "Show inflation-adjusted prices for a sector and fuel type",
	Long:  `Prints nominal prices next to their value in base-year currency, compounding the recorded inflation rates.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runPrices,
}

func init() {
	rootCmd.AddCommand(pricesCmd)
}

func runPrices(cmd *cobra.Command, args []string) error {
	cfg, err := loadAnalysisConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	a, err := buildAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	s, ok := a.AdjustedPrices(args[0], args[1])
	fmt.Print(report.Prices(args[0], args[1], s, ok))
	return nil
}
