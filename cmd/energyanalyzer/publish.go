package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgoulah/energyanalyzer/internal/publisher"
)

var publishUnits string

var publishCmd = &cobra.Command{
	Use:   "publish [sector...]",
	Short: "Publish sector trends to MQTT",
	Long: `Computes the consumption trend for each sector (default: the report's trend sectors)
and publishes it as a retained JSON message on <topic_prefix>/<sector>/trend.`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishUnits, "units", "", "Only use records in these units (default from config, GWh)")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Publish started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	cfg, err := loadAnalysisConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if MQTT is configured
	if !cfg.MQTT.Enabled {
		return fmt.Errorf("MQTT is not enabled in config")
	}

	a, err := buildAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	pub, err := publisher.New(cfg.MQTT, cfg.GetTopicPrefix(), logger)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	sectors := args
	if len(sectors) == 0 {
		sectors = cfg.GetTrendSectors()
	}
	units := publishUnits
	if units == "" {
		units = cfg.GetUnits()
	}

	published := 0
	for i, sector := range sectors {
		t, ok := a.Trend(sector, units)
		if !ok {
			fmt.Printf("[%d/%d] No %s data found for %s, skipping\n", i+1, len(sectors), units, sector)
			continue
		}

		fmt.Printf("[%d/%d] Publishing %s to %s... ", i+1, len(sectors), sector, pub.TrendTopic(sector))
		if err := pub.PublishTrend(t); err != nil {
			fmt.Printf("FAILED: %v\n", err)
			continue
		}
		fmt.Printf("✓\n")
		published++
	}

	fmt.Printf("\nTotal trends published: %d/%d\n", published, len(sectors))
	return nil
}
