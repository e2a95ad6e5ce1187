package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
	assert.NoError(t, cfg.Validate())
	assert.ErrorIs(t, cfg.RequireBaseYear(), ErrBaseYearRequired)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `base_year: 2023
inputs:
  consumption: in/usage.csv
report:
  units: MMTherms
  trend_sectors: [Residential]
  comparison:
    year: 2021
    primary:
      sector: Residential
mqtt:
  enabled: true
  broker: localhost:1883
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.NoError(t, cfg.RequireBaseYear())

	assert.Equal(t, 2023, cfg.BaseYear)
	assert.Equal(t, "in/usage.csv", cfg.GetConsumptionPath())
	assert.Equal(t, "prices.csv", cfg.GetPricesPath())
	assert.Equal(t, "MMTherms", cfg.GetUnits())
	assert.Equal(t, []string{"Residential"}, cfg.GetTrendSectors())

	cmp := cfg.GetComparison()
	assert.Equal(t, 2021, cmp.Year)
	assert.Equal(t, "Insight 2: Industrial vs. Public Gas Consumption (2021)", cmp.Heading)
	assert.Equal(t, SectorLabel{Sector: "Residential", Label: "Residential"}, cmp.Primary)
	assert.Equal(t, "Public Gas", cmp.Secondary.Sector)
	assert.Equal(t, "energyanalyzer", cfg.GetTopicPrefix())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_year: [not, a, year"), 0600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.BaseYear = 2024

	require.NoError(t, Save(path, cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaults(t *testing.T) {
	var cfg Config
	assert.Equal(t, "data.csv", cfg.GetConsumptionPath())
	assert.Equal(t, "inflation.csv", cfg.GetInflationPath())
	assert.Equal(t, "data.db", cfg.GetDatabasePath())
	assert.Equal(t, "analysis_report.txt", cfg.GetOutputPath())
	assert.Equal(t, "GWh", cfg.GetUnits())
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.Equal(t, []string{"Non-Residential", "Residential"}, cfg.GetTrendSectors())
	assert.Equal(t, DeviationConfig{Base: "Residential", Compare: "Non-Residential"}, cfg.GetDeviation())
	assert.Len(t, cfg.GetPriceSeries(), 2)

	cmp := cfg.GetComparison()
	assert.Equal(t, 2022, cmp.Year)
	assert.Equal(t, "mmscf", cmp.Units)
	assert.Equal(t, "SMR-InternalGas", cmp.Primary.Sector)
	assert.Equal(t, "Total County Public Gas Use", cmp.Secondary.Label)
}

func TestValidateMQTT(t *testing.T) {
	cfg := &Config{BaseYear: 2023, MQTT: MQTTConfig{Enabled: true}}
	assert.ErrorContains(t, cfg.Validate(), "mqtt.broker")

	cfg.MQTT.Broker = "localhost:1883"
	assert.NoError(t, cfg.Validate())
}
