package models

// ConsumptionRecord represents a single row of energy consumption
type ConsumptionRecord struct {
	Year        int     `json:"year"`
	Region      string  `json:"region"`
	Sector      string  `json:"sector"`
	Consumption float64 `json:"consumption"`
	Units       string  `json:"units"` // e.g. "GWh" or "mmscf"
}

// PriceRecord represents a single row of energy price
type PriceRecord struct {
	Year     int     `json:"year"`
	Sector   string  `json:"sector"`
	FuelType string  `json:"fuel_type"`
	Price    float64 `json:"price"`
	Units    string  `json:"units"` // e.g. "USD/kWh"
}

// InflationRate is one year's inflation as a percentage (8.0 means 8%)
type InflationRate struct {
	Year int     `json:"year"`
	Rate float64 `json:"inflation_rate"`
}

// InflationTable maps a year to its inflation percentage. Missing years are 0%.
type InflationTable map[int]float64

// Rate returns the inflation percentage for a year, or 0 if not recorded
func (t InflationTable) Rate(year int) float64 {
	return t[year]
}

// Set records the rate for a year, replacing any earlier value
func (t InflationTable) Set(r InflationRate) {
	t[r.Year] = r.Rate
}
