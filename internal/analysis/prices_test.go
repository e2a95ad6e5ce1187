package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/energyanalyzer/pkg/models"
)

func TestAdjustedPrices(t *testing.T) {
	a := newAnalyzer(t)
	a.AddPrices(models.PriceRecord{Year: 2022, Sector: "Residential", FuelType: "Electricity", Price: 0.15, Units: "USD/kWh"})
	a.AddInflation(models.InflationRate{Year: 2022, Rate: 8.0})

	series, ok := a.AdjustedPrices("Residential", "Electricity")
	require.True(t, ok)
	require.Len(t, series.Points, 1)

	p := series.Points[0]
	assert.Equal(t, 2022, p.Year)
	assert.Equal(t, 0.15, p.Nominal)
	assert.InDelta(t, 0.1620, p.Adjusted, 1e-4)
	assert.InDelta(t, 1.08, p.Factor, 1e-9)
	assert.Equal(t, "USD/kWh", p.Units)
	assert.Equal(t, 2023, series.BaseYear)
}

func TestAdjustedPricesSortedAndFiltered(t *testing.T) {
	a := newAnalyzer(t)
	a.AddPrices(
		models.PriceRecord{Year: 2021, Sector: "Residential", FuelType: "Electricity", Price: 0.14},
		models.PriceRecord{Year: 2019, Sector: "Residential", FuelType: "Electricity", Price: 0.12},
		models.PriceRecord{Year: 2020, Sector: "Residential", FuelType: "Gas", Price: 1.1},
		models.PriceRecord{Year: 2020, Sector: "Non-Residential", FuelType: "Electricity", Price: 0.11},
		models.PriceRecord{Year: 2020, Sector: "Residential", FuelType: "Electricity", Price: 0.13},
	)

	series, ok := a.AdjustedPrices("Residential", "Electricity")
	require.True(t, ok)

	var years []int
	for _, p := range series.Points {
		years = append(years, p.Year)
		assert.Equal(t, p.Nominal, p.Adjusted, "no inflation data means no adjustment")
	}
	assert.Equal(t, []int{2019, 2020, 2021}, years)
}

func TestAdjustedPricesNoData(t *testing.T) {
	a := newAnalyzer(t)
	a.AddPrices(models.PriceRecord{Year: 2022, Sector: "Residential", FuelType: "Electricity", Price: 0.15})

	series, ok := a.AdjustedPrices("Residential", "Propane")
	assert.False(t, ok)
	assert.Empty(t, series.Points)
}
