package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgoulah/energyanalyzer/internal/report"
)

var deviationUnits string

var deviationCmd = &cobra.Command{
	Use:   "deviation [base-sector] [compare-sector]",
	Short: "Show the yearly consumption gap between two sectors",
	Long: `Prints compare-sector minus base-sector for every year either sector has data in
the given units. A year missing on one side counts as zero.`,
	Args: cobra.ExactArgs(2),
	RunE: runDeviation,
}

func init() {
	deviationCmd.Flags().StringVar(&deviationUnits, "units", "", "Units to compare (default from config, GWh)")
	rootCmd.AddCommand(deviationCmd)
}

func runDeviation(cmd *cobra.Command, args []string) error {
	cfg, err := loadAnalysisConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	a, err := buildAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	units := deviationUnits
	if units == "" {
		units = cfg.GetUnits()
	}

	d, ok := a.Deviation(args[0], args[1], units)
	fmt.Print(report.Deviation(args[0], args[1], units, d, ok))
	if len(d.Overwritten) > 0 {
		fmt.Printf("⚠ %d duplicate (sector, year) records were replaced by later ones\n", len(d.Overwritten))
	}
	return nil
}
