package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jgoulah/energyanalyzer/internal/analysis"
	"github.com/jgoulah/energyanalyzer/internal/config"
	"github.com/jgoulah/energyanalyzer/internal/database"
	"github.com/jgoulah/energyanalyzer/internal/loader"
)

var (
	cfgFile  string
	dbPath   string
	baseYear int
	logLevel string
	fromDB   bool

	logger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "energyanalyzer",
	Short: "Analyze energy consumption, prices and inflation",
	Long: `EnergyAnalyzer reads energy consumption, energy price and inflation CSV files
and produces text reports: consumption trends per sector, deviation gaps between
sectors, sector breakdowns for a year and inflation-adjusted price series.

Rows can optionally be imported into a local SQLite database and reported from there.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default is ./data.db)")
	rootCmd.PersistentFlags().IntVar(&baseYear, "base-year", 0, "year prices are adjusted to (overrides base_year in config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default info)")
	rootCmd.PersistentFlags().BoolVar(&fromDB, "from-db", false, "read records from the database instead of the CSV files")
}

// setupLogging configures the shared logger from --log-level or the config file
func setupLogging(cmd *cobra.Command, args []string) error {
	level := logLevel
	if level == "" {
		cfg, err := config.Load(getConfigPath())
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		level = cfg.GetLogLevel()
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger.SetOutput(os.Stderr)
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// getDBPath returns the database file path, flag first then config
func getDBPath(cfg *config.Config) string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.GetDatabasePath()
}

// loadConfig loads the configuration file and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return nil, err
	}
	if baseYear != 0 {
		cfg.BaseYear = baseYear
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadAnalysisConfig loads the configuration for commands that run analyses,
// which also need a base year
func loadAnalysisConfig() (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireBaseYear(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openDB opens the database connection
func openDB(cfg *config.Config) (*database.DB, error) {
	path := getDBPath(cfg)

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	return database.New(path)
}

// buildAnalyzer loads records from the CSV inputs, or from the database with --from-db
func buildAnalyzer(cfg *config.Config) (*analysis.Analyzer, error) {
	a, err := analysis.New(cfg.BaseYear, analysis.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	if fromDB {
		return a, loadFromDB(cfg, a)
	}

	l := loader.New(logger)

	consumption := l.LoadConsumption(cfg.GetConsumptionPath())
	printLoad("consumption", consumption)
	a.AddRecords(consumption.Records()...)

	prices := l.LoadPrices(cfg.GetPricesPath())
	printLoad("price", prices)
	a.AddPrices(prices.Records()...)

	inflation := l.LoadInflation(cfg.GetInflationPath())
	printLoad("inflation", inflation)
	a.AddInflation(inflation.Records()...)

	return a, nil
}

func loadFromDB(cfg *config.Config, a *analysis.Analyzer) error {
	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	records, err := db.ListConsumption()
	if err != nil {
		return err
	}
	prices, err := db.ListPrices()
	if err != nil {
		return err
	}
	rates, err := db.ListInflation()
	if err != nil {
		return err
	}

	a.AddRecords(records...)
	a.AddPrices(prices...)
	a.AddInflation(rates...)

	fmt.Printf("Loaded %s consumption, %s price and %s inflation rows from %s\n",
		humanize.Comma(int64(len(records))), humanize.Comma(int64(len(prices))),
		humanize.Comma(int64(len(rates))), getDBPath(cfg))
	return nil
}

// printLoad reports the outcome of one file load. Loading never stops the run;
// missing or unreadable files leave the analysis working on partial data.
func printLoad[T any](kind string, res loader.Result[T]) {
	loaded := humanize.Comma(int64(len(res.Entries)))
	switch res.Status {
	case loader.StatusOK:
		fmt.Printf("✓ Loaded %s %s rows from %s\n", loaded, kind, res.Path)
	case loader.StatusPartial:
		fmt.Printf("⚠ Loaded %s %s rows from %s (%s malformed rows skipped)\n",
			loaded, kind, res.Path, humanize.Comma(int64(len(res.Skipped))))
	case loader.StatusMissing:
		fmt.Printf("⚠ %s not found, continuing without %s data\n", res.Path, kind)
	case loader.StatusFailed:
		fmt.Printf("⚠ Could not load %s (%v), kept %s rows\n", res.Path, res.Err, loaded)
	}
}
