package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrBaseYearRequired is returned by Validate when no base year is configured
var ErrBaseYearRequired = errors.New("base_year is required (set it in the config file or pass --base-year)")

// Config holds the application configuration
type Config struct {
	BaseYear int          `yaml:"base_year"`
	Inputs   InputConfig  `yaml:"inputs"`
	Report   ReportConfig `yaml:"report"`
	Database string       `yaml:"database,omitempty"` // SQLite file used by import and --from-db
	MQTT     MQTTConfig   `yaml:"mqtt,omitempty"`
	LogLevel string       `yaml:"log_level,omitempty"` // debug, info, warn, error
}

// InputConfig holds the CSV input paths
type InputConfig struct {
	Consumption string `yaml:"consumption"`
	Prices      string `yaml:"prices"`
	Inflation   string `yaml:"inflation"`
}

// ReportConfig controls what the full report contains
type ReportConfig struct {
	Output       string              `yaml:"output"`
	Title        string              `yaml:"title"`
	Units        string              `yaml:"units"`                   // units filter for trends and deviation
	TrendHeading string              `yaml:"trend_heading,omitempty"` // section heading above the trend reports
	TrendSectors []string            `yaml:"trend_sectors"`
	Deviation    DeviationConfig     `yaml:"deviation"`
	Comparison   ComparisonConfig    `yaml:"comparison"`
	PriceHeading string              `yaml:"price_heading,omitempty"`
	Prices       []PriceSeriesConfig `yaml:"prices"`
}

// DeviationConfig names the two sectors compared; the gap is Compare - Base
type DeviationConfig struct {
	Base    string `yaml:"base"`
	Compare string `yaml:"compare"`
}

// ComparisonConfig describes the single-year sector comparison
type ComparisonConfig struct {
	Heading          string      `yaml:"heading,omitempty"`
	Year             int         `yaml:"year"`
	Units            string      `yaml:"units"`                  // display label
	FilterUnits      bool        `yaml:"filter_units,omitempty"` // only sum records in Units
	Primary          SectorLabel `yaml:"primary"`
	Secondary        SectorLabel `yaml:"secondary"`
	PrimaryInsight   string      `yaml:"primary_insight,omitempty"`   // used when primary > secondary
	SecondaryInsight string      `yaml:"secondary_insight,omitempty"` // used otherwise
}

// SectorLabel pairs a sector name with the text shown for it
type SectorLabel struct {
	Sector string `yaml:"sector"`
	Label  string `yaml:"label"`
}

// PriceSeriesConfig selects one inflation-adjusted price series
type PriceSeriesConfig struct {
	Sector   string `yaml:"sector"`
	FuelType string `yaml:"fuel_type"`
}

// MQTTConfig holds MQTT broker configuration for publishing trend summaries
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"` // host:port
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"`
	ClientID    string `yaml:"client_id,omitempty"`
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// Default returns a config with every default filled in explicitly.
// The base year is left for the caller to set.
func Default() *Config {
	var empty Config
	return &Config{
		Inputs: InputConfig{
			Consumption: empty.GetConsumptionPath(),
			Prices:      empty.GetPricesPath(),
			Inflation:   empty.GetInflationPath(),
		},
		Report: ReportConfig{
			Output:       empty.GetOutputPath(),
			Title:        empty.GetTitle(),
			Units:        empty.GetUnits(),
			TrendHeading: empty.GetTrendHeading(),
			TrendSectors: empty.GetTrendSectors(),
			Deviation:    empty.GetDeviation(),
			Comparison:   empty.GetComparison(),
			PriceHeading: empty.GetPriceHeading(),
			Prices:       empty.GetPriceSeries(),
		},
		Database: empty.GetDatabasePath(),
		LogLevel: empty.GetLogLevel(),
	}
}

// Validate checks the settings every command needs
func (c *Config) Validate() error {
	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return fmt.Errorf("mqtt.broker is required when mqtt is enabled")
	}
	return nil
}

// RequireBaseYear returns ErrBaseYearRequired unless a base year is set.
// Only commands that adjust prices or run analyses need one.
func (c *Config) RequireBaseYear() error {
	if c.BaseYear <= 0 {
		return ErrBaseYearRequired
	}
	return nil
}

// GetConsumptionPath returns the consumption CSV path, default data.csv
func (c *Config) GetConsumptionPath() string {
	if c.Inputs.Consumption == "" {
		return "data.csv"
	}
	return c.Inputs.Consumption
}

// GetPricesPath returns the price CSV path, default prices.csv
func (c *Config) GetPricesPath() string {
	if c.Inputs.Prices == "" {
		return "prices.csv"
	}
	return c.Inputs.Prices
}

// GetInflationPath returns the inflation CSV path, default inflation.csv
func (c *Config) GetInflationPath() string {
	if c.Inputs.Inflation == "" {
		return "inflation.csv"
	}
	return c.Inputs.Inflation
}

// GetDatabasePath returns the SQLite file path, default data.db
func (c *Config) GetDatabasePath() string {
	if c.Database == "" {
		return "data.db"
	}
	return c.Database
}

// GetOutputPath returns where the full report is written
func (c *Config) GetOutputPath() string {
	if c.Report.Output == "" {
		return "analysis_report.txt"
	}
	return c.Report.Output
}

// GetTitle returns the report title
func (c *Config) GetTitle() string {
	if c.Report.Title == "" {
		return "Energy Consumption Analysis for SLO County"
	}
	return c.Report.Title
}

// GetUnits returns the units filter for trends and deviation, default GWh
func (c *Config) GetUnits() string {
	if c.Report.Units == "" {
		return "GWh"
	}
	return c.Report.Units
}

// GetTrendHeading returns the heading printed above the trend reports
func (c *Config) GetTrendHeading() string {
	if c.Report.TrendHeading == "" {
		return "Insight 1: Primary Consumption Driver (Electricity)"
	}
	return c.Report.TrendHeading
}

// GetTrendSectors returns the sectors given a trend report
func (c *Config) GetTrendSectors() []string {
	if len(c.Report.TrendSectors) == 0 {
		return []string{"Non-Residential", "Residential"}
	}
	return c.Report.TrendSectors
}

// GetDeviation returns the sectors compared in the deviation report
func (c *Config) GetDeviation() DeviationConfig {
	d := c.Report.Deviation
	if d.Base == "" {
		d.Base = "Residential"
	}
	if d.Compare == "" {
		d.Compare = "Non-Residential"
	}
	return d
}

// GetComparison returns the sector comparison with defaults applied per field
func (c *Config) GetComparison() ComparisonConfig {
	cmp := c.Report.Comparison
	if cmp.Year <= 0 {
		cmp.Year = 2022
	}
	if cmp.Heading == "" {
		cmp.Heading = fmt.Sprintf("Insight 2: Industrial vs. Public Gas Consumption (%d)", cmp.Year)
	}
	if cmp.Units == "" {
		cmp.Units = "mmscf"
	}
	if cmp.Primary.Sector == "" {
		cmp.Primary = SectorLabel{Sector: "SMR-InternalGas", Label: "Santa Maria Refinery Internal Gas Use"}
	}
	if cmp.Primary.Label == "" {
		cmp.Primary.Label = cmp.Primary.Sector
	}
	if cmp.Secondary.Sector == "" {
		cmp.Secondary = SectorLabel{Sector: "Public Gas", Label: "Total County Public Gas Use"}
	}
	if cmp.Secondary.Label == "" {
		cmp.Secondary.Label = cmp.Secondary.Sector
	}
	if cmp.PrimaryInsight == "" {
		cmp.PrimaryInsight = "Most natural gas is used by the refinery, which could be a factor in regional pricing."
	}
	if cmp.SecondaryInsight == "" {
		cmp.SecondaryInsight = "Public gas usage is higher than the refinery's internal usage."
	}
	return cmp
}

// GetPriceHeading returns the heading printed above the price reports
func (c *Config) GetPriceHeading() string {
	if c.Report.PriceHeading == "" {
		return "--- Inflation-Adjusted Price Analysis ---"
	}
	return c.Report.PriceHeading
}

// GetPriceSeries returns the sector/fuel pairs given a price report
func (c *Config) GetPriceSeries() []PriceSeriesConfig {
	if len(c.Report.Prices) == 0 {
		return []PriceSeriesConfig{
			{Sector: "Residential", FuelType: "Electricity"},
			{Sector: "Non-Residential", FuelType: "Electricity"},
		}
	}
	return c.Report.Prices
}

// GetTopicPrefix returns the MQTT topic prefix, default energyanalyzer
func (c *Config) GetTopicPrefix() string {
	if c.MQTT.TopicPrefix == "" {
		return "energyanalyzer"
	}
	return c.MQTT.TopicPrefix
}

// GetLogLevel returns the configured log level, default info
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}
