package analysis

import (
	"sort"

	"github.com/jgoulah/energyanalyzer/pkg/models"
)

// Trend is the change in a sector's consumption between its first and last year
type Trend struct {
	Sector     string  `json:"sector"`
	Units      string  `json:"units,omitempty"` // filter applied, empty for any
	FirstYear  int     `json:"first_year"`
	FirstValue float64 `json:"first_value"`
	FirstUnits string  `json:"first_units"`
	LastYear   int     `json:"last_year"`
	LastValue  float64 `json:"last_value"`
	LastUnits  string  `json:"last_units"`
	DeltaValue float64 `json:"delta_value"`
	DeltaYears int     `json:"delta_years"`
	Samples    int     `json:"samples"`
}

// Trend compares the earliest and latest records of sector. When units is
// non-empty only records in those units are considered. ok is false when no
// record matches.
//
// Records are stable-sorted by year, so if several share the minimum year the
// first loaded one is used, and if several share the maximum year the last
// loaded one is used.
func (a *Analyzer) Trend(sector, units string) (Trend, bool) {
	var matched []models.ConsumptionRecord
	for _, r := range a.records {
		if r.Sector != sector {
			continue
		}
		if units != "" && r.Units != units {
			continue
		}
		matched = append(matched, r)
	}
	if len(matched) == 0 {
		return Trend{}, false
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Year < matched[j].Year
	})
	first := matched[0]
	last := matched[len(matched)-1]

	return Trend{
		Sector:     sector,
		Units:      units,
		FirstYear:  first.Year,
		FirstValue: first.Consumption,
		FirstUnits: first.Units,
		LastYear:   last.Year,
		LastValue:  last.Consumption,
		LastUnits:  last.Units,
		DeltaValue: last.Consumption - first.Consumption,
		DeltaYears: last.Year - first.Year,
		Samples:    len(matched),
	}, true
}
