package analysis

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/energyanalyzer/pkg/models"
)

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := New(2023)
	require.NoError(t, err)
	return a
}

func TestNewRequiresBaseYear(t *testing.T) {
	for _, year := range []int{0, -1} {
		a, err := New(year)
		assert.ErrorIs(t, err, ErrBaseYearRequired)
		assert.Nil(t, a)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	a := newAnalyzer(t)
	a.AddRecords(models.ConsumptionRecord{Year: 2022, Region: "SLO", Sector: "Residential", Consumption: 100, Units: "GWh"})
	a.AddPrices(models.PriceRecord{Year: 2022, Sector: "Residential", FuelType: "Electricity", Price: 0.15, Units: "USD/kWh"})
	a.AddInflation(models.InflationRate{Year: 2022, Rate: 8.0})

	records := a.Records()
	records[0].Consumption = 1
	prices := a.Prices()
	prices[0].Price = 1
	table := a.Inflation()
	table[2022] = 1

	assert.Equal(t, 100.0, a.Records()[0].Consumption)
	assert.Equal(t, 0.15, a.Prices()[0].Price)
	assert.Equal(t, 8.0, a.Inflation()[2022])
	assert.Equal(t, 2023, a.BaseYear())
}

func TestAddInflationLaterRateWins(t *testing.T) {
	a := newAnalyzer(t)
	a.AddInflation(models.InflationRate{Year: 2022, Rate: 8.0})
	a.AddInflation(models.InflationRate{Year: 2022, Rate: 6.5})

	assert.Equal(t, models.InflationTable{2022: 6.5}, a.Inflation())
}

func TestWithLoggerNilKeepsDefault(t *testing.T) {
	a, err := New(2023, WithLogger(nil))
	require.NoError(t, err)
	assert.NotNil(t, a.logger)
}

func TestDeviationLogsOverwrites(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	a, err := New(2023, WithLogger(logger))
	require.NoError(t, err)
	a.AddRecords(
		models.ConsumptionRecord{Year: 2022, Sector: "Residential", Consumption: 90, Units: "GWh"},
		models.ConsumptionRecord{Year: 2022, Sector: "Residential", Consumption: 100, Units: "GWh"},
	)

	_, ok := a.Deviation("Residential", "Non-Residential", "GWh")
	require.True(t, ok)
	assert.Contains(t, buf.String(), "duplicate consumption record")
	assert.Contains(t, buf.String(), "sector=Residential")
}
