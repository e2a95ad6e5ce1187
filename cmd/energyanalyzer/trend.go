package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgoulah/energyanalyzer/internal/report"
)

var trendUnits string

var trendCmd = &cobra.Command{
	Use:   "trend [sector]",
	Short: "Show the consumption trend for a sector",
	Long:  `Compares a sector's consumption in its earliest and latest year, optionally restricted to one unit.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTrend,
}

func init() {
	trendCmd.Flags().StringVar(&trendUnits, "units", "", "Only use records in these units (e.g. GWh)")
	rootCmd.AddCommand(trendCmd)
}

func runTrend(cmd *cobra.Command, args []string) error {
	cfg, err := loadAnalysisConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	a, err := buildAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	sector := args[0]
	t, ok := a.Trend(sector, trendUnits)
	fmt.Println()
	fmt.Print(report.Trend(sector, trendUnits, t, ok))
	if !ok {
		fmt.Println()
	}
	return nil
}
