package analysis

import "slices"

// CPIFactor returns the multiplier that converts one unit of currency in year
// into baseYear terms, compounding each year in [year, baseYear) by its
// recorded rate. Years missing from the table contribute no inflation, and
// years outside the table's range are not rejected. Only recorded years are
// visited, so a distant year costs no more than a near one.
func (a *Analyzer) CPIFactor(year int) float64 {
	if len(a.inflation) == 0 || year >= a.baseYear {
		return 1.0
	}

	years := make([]int, 0, len(a.inflation))
	for y := range a.inflation {
		if y >= year && y < a.baseYear {
			years = append(years, y)
		}
	}
	slices.Sort(years)

	factor := 1.0
	for _, y := range years {
		factor *= 1 + a.inflation.Rate(y)/100
	}
	return factor
}
