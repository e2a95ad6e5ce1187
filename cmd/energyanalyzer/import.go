package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jgoulah/energyanalyzer/internal/database"
	"github.com/jgoulah/energyanalyzer/internal/loader"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the CSV inputs into the local database",
	Long: `Reads the consumption, price and inflation CSV files named in the config and stores
their rows in the local SQLite database. Rows already imported from the same file and
line are skipped, so importing a file twice is safe. Inflation rates are keyed by year
and the latest import wins.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Import started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	batch := uuid.NewString()
	l := loader.New(logger)

	consumption := l.LoadConsumption(cfg.GetConsumptionPath())
	printLoad("consumption", consumption)
	added := 0
	for _, e := range consumption.Entries {
		ok, err := db.InsertConsumption(&e.Record, database.Source{Path: consumption.Path, Line: e.Line, Batch: batch})
		if err != nil {
			return err
		}
		if ok {
			added++
		}
	}
	printStored("consumption", added, len(consumption.Entries))

	prices := l.LoadPrices(cfg.GetPricesPath())
	printLoad("price", prices)
	added = 0
	for _, e := range prices.Entries {
		ok, err := db.InsertPrice(&e.Record, database.Source{Path: prices.Path, Line: e.Line, Batch: batch})
		if err != nil {
			return err
		}
		if ok {
			added++
		}
	}
	printStored("price", added, len(prices.Entries))

	inflation := l.LoadInflation(cfg.GetInflationPath())
	printLoad("inflation", inflation)
	for _, e := range inflation.Entries {
		if err := db.UpsertInflation(e.Record, database.Source{Path: inflation.Path, Line: e.Line, Batch: batch}); err != nil {
			return err
		}
	}
	printStored("inflation", len(inflation.Entries), len(inflation.Entries))

	counts, err := db.Counts()
	if err != nil {
		return err
	}
	fmt.Printf("Database %s now holds %s consumption, %s price and %s inflation rows (batch %s)\n",
		getDBPath(cfg), humanize.Comma(int64(counts.Consumption)), humanize.Comma(int64(counts.Prices)),
		humanize.Comma(int64(counts.Inflation)), batch)
	return nil
}

func printStored(kind string, added, total int) {
	if total == 0 {
		return
	}
	fmt.Printf("✓ Stored %s new %s rows (%s already imported)\n",
		humanize.Comma(int64(added)), kind, humanize.Comma(int64(total-added)))
}
