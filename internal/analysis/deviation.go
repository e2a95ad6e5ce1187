package analysis

import (
	"maps"
	"slices"

	"github.com/sirupsen/logrus"
)

// DeviationPoint is the gap between two sectors in one year
type DeviationPoint struct {
	Year      int     `json:"year"`
	ValueA    float64 `json:"value_a"`
	ValueB    float64 `json:"value_b"`
	Deviation float64 `json:"deviation"` // ValueB - ValueA
}

// Overwrite records a (sector, year) value replaced by a later record
type Overwrite struct {
	Sector   string  `json:"sector"`
	Year     int     `json:"year"`
	Previous float64 `json:"previous"`
	Current  float64 `json:"current"`
}

// DeviationReport is the year-by-year gap of SectorB over SectorA
type DeviationReport struct {
	SectorA     string           `json:"sector_a"`
	SectorB     string           `json:"sector_b"`
	Units       string           `json:"units"`
	Points      []DeviationPoint `json:"points"`
	Overwritten []Overwrite      `json:"overwritten,omitempty"`
}

// Deviation returns sectorB minus sectorA for every year either sector has a
// record in units, ascending by year. A year missing on one side counts as 0.
// When a sector has several records for one year the last loaded one wins;
// each replaced value is listed in Overwritten. ok is false when neither
// sector has a record in units.
func (a *Analyzer) Deviation(sectorA, sectorB, units string) (DeviationReport, bool) {
	report := DeviationReport{
		SectorA: sectorA,
		SectorB: sectorB,
		Units:   units,
	}

	valuesA := a.yearValues(sectorA, units, &report.Overwritten)
	valuesB := a.yearValues(sectorB, units, &report.Overwritten)
	if len(valuesA) == 0 && len(valuesB) == 0 {
		return DeviationReport{}, false
	}

	years := slices.Collect(maps.Keys(valuesA))
	for y := range valuesB {
		if _, ok := valuesA[y]; !ok {
			years = append(years, y)
		}
	}
	slices.Sort(years)

	report.Points = make([]DeviationPoint, 0, len(years))
	for _, y := range years {
		va, vb := valuesA[y], valuesB[y]
		report.Points = append(report.Points, DeviationPoint{
			Year:      y,
			ValueA:    va,
			ValueB:    vb,
			Deviation: vb - va,
		})
	}
	return report, true
}

// yearValues maps year to consumption for one sector in one unit, last write wins
func (a *Analyzer) yearValues(sector, units string, overwritten *[]Overwrite) map[int]float64 {
	values := make(map[int]float64)
	for _, r := range a.records {
		if r.Sector != sector || r.Units != units {
			continue
		}
		if prev, ok := values[r.Year]; ok {
			*overwritten = append(*overwritten, Overwrite{
				Sector:   sector,
				Year:     r.Year,
				Previous: prev,
				Current:  r.Consumption,
			})
			a.logger.WithFields(logrus.Fields{
				"sector":   sector,
				"year":     r.Year,
				"previous": prev,
				"current":  r.Consumption,
			}).Warn("duplicate consumption record, keeping the later value")
		}
		values[r.Year] = r.Consumption
	}
	return values
}
