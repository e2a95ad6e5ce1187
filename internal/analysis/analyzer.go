// Package analysis computes trends, deviations, sector breakdowns and
// inflation-adjusted prices over loaded energy records.
//
// An Analyzer is populated once by the loading step and is read-only after
// that. None of the analytical methods mutate it.
package analysis

import (
	"errors"
	"io"
	"maps"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/jgoulah/energyanalyzer/pkg/models"
)

// ErrBaseYearRequired is returned when an Analyzer is built without a base year
var ErrBaseYearRequired = errors.New("base year is required")

// Analyzer holds consumption records, price records and the inflation table
type Analyzer struct {
	records   []models.ConsumptionRecord
	prices    []models.PriceRecord
	inflation models.InflationTable
	baseYear  int
	logger    *logrus.Logger
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger used for duplicate-data diagnostics
func WithLogger(logger *logrus.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an Analyzer normalizing prices to baseYear
func New(baseYear int, opts ...Option) (*Analyzer, error) {
	if baseYear <= 0 {
		return nil, ErrBaseYearRequired
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	a := &Analyzer{
		inflation: models.InflationTable{},
		baseYear:  baseYear,
		logger:    discard,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// BaseYear returns the year all adjusted prices are expressed in
func (a *Analyzer) BaseYear() int {
	return a.baseYear
}

// AddRecords appends consumption records
func (a *Analyzer) AddRecords(records ...models.ConsumptionRecord) {
	a.records = append(a.records, records...)
}

// AddPrices appends price records
func (a *Analyzer) AddPrices(prices ...models.PriceRecord) {
	a.prices = append(a.prices, prices...)
}

// AddInflation merges rates into the inflation table. A later rate for the
// same year replaces the earlier one.
func (a *Analyzer) AddInflation(rates ...models.InflationRate) {
	for _, r := range rates {
		a.inflation.Set(r)
	}
}

// Records returns a copy of the loaded consumption records in load order
func (a *Analyzer) Records() []models.ConsumptionRecord {
	return slices.Clone(a.records)
}

// Prices returns a copy of the loaded price records in load order
func (a *Analyzer) Prices() []models.PriceRecord {
	return slices.Clone(a.prices)
}

// Inflation returns a copy of the inflation table
func (a *Analyzer) Inflation() models.InflationTable {
	return maps.Clone(a.inflation)
}
