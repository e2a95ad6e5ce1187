package analysis

import (
	"sort"

	"github.com/jgoulah/energyanalyzer/pkg/models"
)

// AdjustedPrice is a nominal price alongside its base-year equivalent
type AdjustedPrice struct {
	Year     int     `json:"year"`
	Nominal  float64 `json:"nominal_price"`
	Adjusted float64 `json:"adjusted_price"`
	Factor   float64 `json:"cpi_factor"`
	Units    string  `json:"units"`
}

// PriceSeries is the inflation-adjusted price history of one sector and fuel type
type PriceSeries struct {
	Sector   string          `json:"sector"`
	FuelType string          `json:"fuel_type"`
	BaseYear int             `json:"base_year"`
	Points   []AdjustedPrice `json:"points"`
}

// AdjustedPrices returns the prices for sector and fuelType adjusted to the
// base year, ascending by year. ok is false when no price record matches.
func (a *Analyzer) AdjustedPrices(sector, fuelType string) (PriceSeries, bool) {
	var matched []models.PriceRecord
	for _, p := range a.prices {
		if p.Sector == sector && p.FuelType == fuelType {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return PriceSeries{}, false
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Year < matched[j].Year
	})

	series := PriceSeries{
		Sector:   sector,
		FuelType: fuelType,
		BaseYear: a.baseYear,
		Points:   make([]AdjustedPrice, 0, len(matched)),
	}
	for _, p := range matched {
		factor := a.CPIFactor(p.Year)
		series.Points = append(series.Points, AdjustedPrice{
			Year:     p.Year,
			Nominal:  p.Price,
			Adjusted: p.Price * factor,
			Factor:   factor,
			Units:    p.Units,
		})
	}
	return series, true
}
