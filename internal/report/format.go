// Package report renders analysis results as plain text.
package report

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jgoulah/energyanalyzer/internal/analysis"
	"github.com/jgoulah/energyanalyzer/internal/config"
)

// Trend renders a trend report, or a no-data line without a trailing newline
// when ok is false
func Trend(sector, units string, t analysis.Trend, ok bool) string {
	if !ok {
		return fmt.Sprintf("No data found for sector: %s with units: %s", sector, orDefault(units, "any"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Trend Report for %s (%s):\n", sector, orDefault(units, "All"))
	fmt.Fprintf(&b, "Consumption in %d: %s %s\n", t.FirstYear, plain(t.FirstValue), t.FirstUnits)
	fmt.Fprintf(&b, "Consumption in %d: %s %s\n", t.LastYear, plain(t.LastValue), t.LastUnits)
	fmt.Fprintf(&b, "Change over %d years: %s %s\n", t.DeltaYears, fixed(t.DeltaValue, 2), t.LastUnits)
	return b.String()
}

// Deviation renders the year-by-year gap of SectorB over SectorA
func Deviation(sectorA, sectorB, units string, d analysis.DeviationReport, ok bool) string {
	if !ok {
		return fmt.Sprintf("\nNo consumption data found for %s or %s in %s.\n", sectorA, sectorB, units)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nDeviation Gap Report (%s vs %s for %s):\n", d.SectorB, d.SectorA, d.Units)
	fmt.Fprintf(&b, "Year | Deviation (%s - %s)\n", d.SectorB, d.SectorA)
	b.WriteString("---- | -----------------------------------------\n")
	for _, p := range d.Points {
		fmt.Fprintf(&b, "%d | %s %s\n", p.Year, fixed(p.Deviation, 2), d.Units)
	}
	return b.String()
}

// Comparison renders the single-year comparison of two sectors and the
// insight naming the larger one. A sector absent from totals counts as 0.
func Comparison(cmp config.ComparisonConfig, totals map[string]float64) string {
	primary, primaryText := total(totals, cmp.Primary.Sector)
	secondary, secondaryText := total(totals, cmp.Secondary.Sector)

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d): %s %s\n", cmp.Primary.Label, cmp.Year, primaryText, cmp.Units)
	fmt.Fprintf(&b, "%s (%d): %s %s\n", cmp.Secondary.Label, cmp.Year, secondaryText, cmp.Units)
	if primary > secondary {
		fmt.Fprintf(&b, "Generated Insight: %s\n", cmp.PrimaryInsight)
	} else {
		fmt.Fprintf(&b, "Generated Insight: %s\n", cmp.SecondaryInsight)
	}
	return b.String()
}

// SectorBreakdown renders every sector's total for a year, ordered by sector name
func SectorBreakdown(year int, units string, totals map[string]float64) string {
	if len(totals) == 0 {
		return fmt.Sprintf("No consumption data found for %d.\n", year)
	}

	sectors := make([]string, 0, len(totals))
	width := len("Sector")
	for s := range totals {
		sectors = append(sectors, s)
		width = max(width, len(s))
	}
	slices.Sort(sectors)

	var b strings.Builder
	fmt.Fprintf(&b, "Consumption by Sector (%d, %s):\n", year, orDefault(units, "all units"))
	fmt.Fprintf(&b, "%-*s  %14s\n", width, "Sector", "Consumption")
	b.WriteString(strings.Repeat("-", width+16) + "\n")
	for _, s := range sectors {
		fmt.Fprintf(&b, "%-*s  %14s\n", width, s, fixed(totals[s], 2))
	}
	return b.String()
}

// Prices renders an inflation-adjusted price series
func Prices(sector, fuelType string, s analysis.PriceSeries, ok bool) string {
	if !ok {
		return fmt.Sprintf("No price data found for %s %s.\n", sector, fuelType)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nInflation-Adjusted Price Report for %s %s (Base Year: %d):\n", s.Sector, s.FuelType, s.BaseYear)
	fmt.Fprintf(&b, "Year | Nominal Price | Adjusted Price (in %d USD)\n", s.BaseYear)
	b.WriteString("---- | ------------- | ----------------------------------\n")
	for _, p := range s.Points {
		fmt.Fprintf(&b, "%d | $%s        | $%s\n", p.Year, fixed(p.Nominal, 4), fixed(p.Adjusted, 4))
	}
	return b.String()
}

// total looks up a sector total, rendering an absent sector as a bare 0
func total(totals map[string]float64, sector string) (float64, string) {
	v, ok := totals[sector]
	if !ok {
		return 0, "0"
	}
	return v, plain(v)
}

// fixed renders v rounded half-to-even from its exact binary value, so 2.675
// (stored as 2.67499...) renders as 2.67
func fixed(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}

// plain renders v in its shortest exact form, keeping one decimal place for
// whole numbers (80 renders as 80.0)
func plain(v float64) string {
	d := decimal.NewFromFloat(v)
	if d.IsInteger() {
		return d.StringFixed(1)
	}
	return d.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
