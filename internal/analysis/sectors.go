package analysis

// ConsumptionBySector sums consumption per sector for the given year.
// Units are not checked, so a sector reported in several units is summed
// across all of them; use ConsumptionBySectorUnits to restrict to one unit.
// Sectors without a record for the year are absent from the result.
func (a *Analyzer) ConsumptionBySector(year int) map[string]float64 {
	totals := make(map[string]float64)
	for _, r := range a.records {
		if r.Year == year {
			totals[r.Sector] += r.Consumption
		}
	}
	return totals
}

// ConsumptionBySectorUnits is ConsumptionBySector restricted to records in units
func (a *Analyzer) ConsumptionBySectorUnits(year int, units string) map[string]float64 {
	totals := make(map[string]float64)
	for _, r := range a.records {
		if r.Year == year && r.Units == units {
			totals[r.Sector] += r.Consumption
		}
	}
	return totals
}
