package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jgoulah/energyanalyzer/internal/report"
)

var sectorsUnits string

var sectorsCmd = &cobra.Command{
	Use:   "sectors [year]",
	Short: "Show total consumption per sector for a year",
	Long: `Sums consumption per sector for the given year. Without --units, records in
different units are added together.`,
	Args: cobra.ExactArgs(1),
	RunE: runSectors,
}

func init() {
	sectorsCmd.Flags().StringVar(&sectorsUnits, "units", "", "Only sum records in these units")
	rootCmd.AddCommand(sectorsCmd)
}

func runSectors(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[0], err)
	}

	cfg, err := loadAnalysisConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	a, err := buildAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	var totals map[string]float64
	if sectorsUnits != "" {
		totals = a.ConsumptionBySectorUnits(year, sectorsUnits)
	} else {
		totals = a.ConsumptionBySector(year)
	}

	fmt.Println()
	fmt.Print(report.SectorBreakdown(year, sectorsUnits, totals))
	return nil
}
