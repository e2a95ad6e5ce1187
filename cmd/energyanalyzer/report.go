package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgoulah/energyanalyzer/internal/report"
)

var reportOutput string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the full analysis report",
	Long: `Loads the consumption, price and inflation data and writes a single text report
containing sector trends, the deviation gap, the sector comparison for the configured
year and the inflation-adjusted price series. The report is also printed.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "report file (default from config, analysis_report.txt)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Report started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	cfg, err := loadAnalysisConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	a, err := buildAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	content := report.Build(a, cfg)

	output := reportOutput
	if output == "" {
		output = cfg.GetOutputPath()
	}
	if err := report.Save(output, content); err != nil {
		return err
	}

	fmt.Printf("Analysis complete. Report saved to %s\n", output)
	fmt.Println("\n--- Report Content ---")
	fmt.Println(content)
	return nil
}
