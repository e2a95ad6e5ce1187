package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jgoulah/energyanalyzer/internal/analysis"
	"github.com/jgoulah/energyanalyzer/internal/config"
)

// Build renders the full analysis report: trends for the configured sectors,
// the deviation gap, the single-year sector comparison and the
// inflation-adjusted price series, in that order.
func Build(a *analysis.Analyzer, cfg *config.Config) string {
	units := cfg.GetUnits()

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s ---\n\n", cfg.GetTitle())

	b.WriteString(cfg.GetTrendHeading() + "\n")
	for _, sector := range cfg.GetTrendSectors() {
		t, ok := a.Trend(sector, units)
		b.WriteString(Trend(sector, units, t, ok) + "\n")
	}

	dev := cfg.GetDeviation()
	d, ok := a.Deviation(dev.Base, dev.Compare, units)
	b.WriteString(Deviation(dev.Base, dev.Compare, units, d, ok))

	cmp := cfg.GetComparison()
	b.WriteString("\n" + cmp.Heading + "\n")
	var totals map[string]float64
	if cmp.FilterUnits {
		totals = a.ConsumptionBySectorUnits(cmp.Year, cmp.Units)
	} else {
		totals = a.ConsumptionBySector(cmp.Year)
	}
	b.WriteString(Comparison(cmp, totals))

	b.WriteString("\n" + cfg.GetPriceHeading() + "\n")
	for _, p := range cfg.GetPriceSeries() {
		s, ok := a.AdjustedPrices(p.Sector, p.FuelType)
		b.WriteString(Prices(p.Sector, p.FuelType, s, ok))
	}

	return b.String()
}

// Save writes the report content to path, creating its directory
func Save(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	return nil
}
