package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/energyanalyzer/pkg/models"
)

func TestTrend(t *testing.T) {
	a := newAnalyzer(t)
	a.AddRecords(
		models.ConsumptionRecord{Year: 2024, Region: "SLO", Sector: "Residential", Consumption: 120, Units: "GWh"},
		models.ConsumptionRecord{Year: 1990, Region: "SLO", Sector: "Residential", Consumption: 80, Units: "GWh"},
	)

	trend, ok := a.Trend("Residential", "GWh")
	require.True(t, ok)
	assert.Equal(t, 1990, trend.FirstYear)
	assert.Equal(t, 80.0, trend.FirstValue)
	assert.Equal(t, 2024, trend.LastYear)
	assert.Equal(t, 120.0, trend.LastValue)
	assert.InDelta(t, 40.0, trend.DeltaValue, 1e-9)
	assert.Equal(t, 34, trend.DeltaYears)
	assert.Equal(t, 2, trend.Samples)
	assert.Equal(t, "GWh", trend.LastUnits)
}

func TestTrendUnitsFilter(t *testing.T) {
	a := newAnalyzer(t)
	a.AddRecords(
		models.ConsumptionRecord{Year: 2000, Sector: "Residential", Consumption: 80, Units: "GWh"},
		models.ConsumptionRecord{Year: 1995, Sector: "Residential", Consumption: 30, Units: "MMTherms"},
		models.ConsumptionRecord{Year: 2010, Sector: "Residential", Consumption: 95, Units: "GWh"},
	)

	filtered, ok := a.Trend("Residential", "GWh")
	require.True(t, ok)
	assert.Equal(t, 2000, filtered.FirstYear)
	assert.Equal(t, 10, filtered.DeltaYears)

	unfiltered, ok := a.Trend("Residential", "")
	require.True(t, ok)
	assert.Equal(t, 1995, unfiltered.FirstYear)
	assert.Equal(t, "MMTherms", unfiltered.FirstUnits)
	assert.Equal(t, 3, unfiltered.Samples)
}

func TestTrendDuplicateYearsUseLoadOrder(t *testing.T) {
	a := newAnalyzer(t)
	a.AddRecords(
		models.ConsumptionRecord{Year: 2000, Sector: "Residential", Consumption: 1, Units: "GWh"},
		models.ConsumptionRecord{Year: 2005, Sector: "Residential", Consumption: 5, Units: "GWh"},
		models.ConsumptionRecord{Year: 2000, Sector: "Residential", Consumption: 2, Units: "GWh"},
		models.ConsumptionRecord{Year: 2005, Sector: "Residential", Consumption: 6, Units: "GWh"},
	)

	trend, ok := a.Trend("Residential", "GWh")
	require.True(t, ok)
	assert.Equal(t, 1.0, trend.FirstValue)
	assert.Equal(t, 6.0, trend.LastValue)
}

func TestTrendSingleYear(t *testing.T) {
	a := newAnalyzer(t)
	a.AddRecords(models.ConsumptionRecord{Year: 2022, Sector: "Residential", Consumption: 100, Units: "GWh"})

	trend, ok := a.Trend("Residential", "")
	require.True(t, ok)
	assert.Equal(t, 0, trend.DeltaYears)
	assert.Equal(t, 0.0, trend.DeltaValue)
}

func TestTrendNoData(t *testing.T) {
	a := newAnalyzer(t)
	a.AddRecords(models.ConsumptionRecord{Year: 2022, Sector: "Residential", Consumption: 100, Units: "GWh"})

	_, ok := a.Trend("Agriculture", "")
	assert.False(t, ok)

	_, ok = a.Trend("Residential", "MMTherms")
	assert.False(t, ok)
}
