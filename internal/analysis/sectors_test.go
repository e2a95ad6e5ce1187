package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jgoulah/energyanalyzer/pkg/models"
)

func TestConsumptionBySector(t *testing.T) {
	a := newAnalyzer(t)
	a.AddRecords(
		models.ConsumptionRecord{Year: 2022, Sector: "SMR-InternalGas", Consumption: 5000, Units: "mmscf"},
		models.ConsumptionRecord{Year: 2022, Sector: "Public Gas", Consumption: 1200, Units: "mmscf"},
		models.ConsumptionRecord{Year: 2022, Sector: "Public Gas", Consumption: 300, Units: "mmscf"},
		models.ConsumptionRecord{Year: 2021, Sector: "Residential", Consumption: 900, Units: "GWh"},
	)

	got := a.ConsumptionBySector(2022)
	assert.Equal(t, map[string]float64{
		"SMR-InternalGas": 5000,
		"Public Gas":      1500,
	}, got)

	_, present := got["Residential"]
	assert.False(t, present, "sectors without records for the year are absent, not zero")
}

func TestConsumptionBySectorSumsAcrossUnits(t *testing.T) {
	a := newAnalyzer(t)
	a.AddRecords(
		models.ConsumptionRecord{Year: 2022, Sector: "Residential", Consumption: 100, Units: "GWh"},
		models.ConsumptionRecord{Year: 2022, Sector: "Residential", Consumption: 40, Units: "MMTherms"},
	)

	assert.Equal(t, 140.0, a.ConsumptionBySector(2022)["Residential"])
	assert.Equal(t, map[string]float64{"Residential": 100}, a.ConsumptionBySectorUnits(2022, "GWh"))
}

func TestConsumptionBySectorEmpty(t *testing.T) {
	a := newAnalyzer(t)
	assert.Empty(t, a.ConsumptionBySector(2022))
	assert.Empty(t, a.ConsumptionBySectorUnits(2022, "GWh"))
}
