// Package loader reads consumption, price and inflation CSV files into typed
// records.
//
// A load never aborts over a single bad row: rows that fail type coercion
// are skipped and reported in the Result so callers can decide what to do.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jgoulah/energyanalyzer/pkg/models"
)

// Status summarizes the outcome of a load
type Status int

const (
	// StatusOK means every data row was loaded
	StatusOK Status = iota
	// StatusPartial means some rows were skipped
	StatusPartial
	// StatusMissing means the file does not exist
	StatusMissing
	// StatusFailed means the file could not be read as CSV
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusPartial:
		return "partial"
	case StatusMissing:
		return "missing"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// RowError describes a data row that was skipped
type RowError struct {
	Line  int    // 1-based line in the file, header is line 1
	Field string // column name, empty for structural problems
	Value string
	Err   error
}

func (e *RowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: field %s=%q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Entry is a loaded record with the line it came from
type Entry[T any] struct {
	Line   int
	Record T
}

// Result is the typed outcome of loading one file
type Result[T any] struct {
	Path    string
	Status  Status
	Entries []Entry[T]
	Skipped []RowError
	Err     error // set for StatusMissing and StatusFailed
}

// Records returns the loaded records in file order
func (r Result[T]) Records() []T {
	out := make([]T, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, e.Record)
	}
	return out
}

// Loader reads input files, logging what it skips
type Loader struct {
	logger *logrus.Logger
}

// New creates a loader
func New(logger *logrus.Logger) *Loader {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Loader{logger: logger}
}

var (
	consumptionColumns = []string{"year", "region", "sector", "consumption", "units"}
	priceColumns       = []string{"year", "sector", "fuel_type", "price", "units"}
	inflationColumns   = []string{"year", "inflation_rate"}
)

// LoadConsumption reads a consumption CSV file
func (l *Loader) LoadConsumption(path string) Result[models.ConsumptionRecord] {
	return loadFile(l, path, ReadConsumption)
}

// LoadPrices reads a price CSV file
func (l *Loader) LoadPrices(path string) Result[models.PriceRecord] {
	return loadFile(l, path, ReadPrices)
}

// LoadInflation reads an inflation CSV file
func (l *Loader) LoadInflation(path string) Result[models.InflationRate] {
	return loadFile(l, path, ReadInflation)
}

// ReadConsumption parses consumption rows from r
func ReadConsumption(r io.Reader) Result[models.ConsumptionRecord] {
	return readRows(r, consumptionColumns, func(row row) (models.ConsumptionRecord, *RowError) {
		year, rerr := row.intField("year")
		if rerr != nil {
			return models.ConsumptionRecord{}, rerr
		}
		consumption, rerr := row.floatField("consumption")
		if rerr != nil {
			return models.ConsumptionRecord{}, rerr
		}
		return models.ConsumptionRecord{
			Year:        year,
			Region:      row.strField("region"),
			Sector:      row.strField("sector"),
			Consumption: consumption,
			Units:       row.strField("units"),
		}, nil
	})
}

// ReadPrices parses price rows from r
func ReadPrices(r io.Reader) Result[models.PriceRecord] {
	return readRows(r, priceColumns, func(row row) (models.PriceRecord, *RowError) {
		year, rerr := row.intField("year")
		if rerr != nil {
			return models.PriceRecord{}, rerr
		}
		price, rerr := row.floatField("price")
		if rerr != nil {
			return models.PriceRecord{}, rerr
		}
		return models.PriceRecord{
			Year:     year,
			Sector:   row.strField("sector"),
			FuelType: row.strField("fuel_type"),
			Price:    price,
			Units:    row.strField("units"),
		}, nil
	})
}

// ReadInflation parses inflation rows from r
func ReadInflation(r io.Reader) Result[models.InflationRate] {
	return readRows(r, inflationColumns, func(row row) (models.InflationRate, *RowError) {
		year, rerr := row.intField("year")
		if rerr != nil {
			return models.InflationRate{}, rerr
		}
		rate, rerr := row.floatField("inflation_rate")
		if rerr != nil {
			return models.InflationRate{}, rerr
		}
		return models.InflationRate{Year: year, Rate: rate}, nil
	})
}

func loadFile[T any](l *Loader, path string, read func(io.Reader) Result[T]) Result[T] {
	log := l.logger.WithField("path", path)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn("input file not found, skipping")
			return Result[T]{Path: path, Status: StatusMissing, Err: err}
		}
		log.WithError(err).Error("opening input file")
		return Result[T]{Path: path, Status: StatusFailed, Err: fmt.Errorf("opening %s: %w", path, err)}
	}
	defer f.Close()

	res := read(f)
	res.Path = path

	for _, skipped := range res.Skipped {
		log.WithFields(logrus.Fields{
			"line":  skipped.Line,
			"field": skipped.Field,
			"value": skipped.Value,
		}).WithError(skipped.Err).Warn("skipping malformed row")
	}
	if res.Err != nil {
		log.WithError(res.Err).Error("reading input file")
	}
	log.WithFields(logrus.Fields{
		"status":  res.Status.String(),
		"loaded":  len(res.Entries),
		"skipped": len(res.Skipped),
	}).Debug("loaded input file")

	return res
}

// row gives access to one CSV record by column name
type row struct {
	line   int
	fields []string
	index  map[string]int
}

func (r row) strField(col string) string {
	return r.fields[r.index[col]]
}

func (r row) intField(col string) (int, *RowError) {
	raw := r.strField(col)
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &RowError{Line: r.line, Field: col, Value: raw, Err: err}
	}
	return v, nil
}

func (r row) floatField(col string) (float64, *RowError) {
	raw := r.strField(col)
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &RowError{Line: r.line, Field: col, Value: raw, Err: err}
	}
	return v, nil
}

// readRows locates the required columns in the header and converts each data row
func readRows[T any](r io.Reader, required []string, convert func(row) (T, *RowError)) Result[T] {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			err = errors.New("empty file")
		}
		return Result[T]{Status: StatusFailed, Err: fmt.Errorf("reading CSV header: %w", err)}
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		name := strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	width := 0
	for _, col := range required {
		i, ok := index[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		width = max(width, i+1)
	}
	if len(missing) > 0 {
		return Result[T]{
			Status: StatusFailed,
			Err:    fmt.Errorf("missing required columns %v in header %v", missing, header),
		}
	}

	res := Result[T]{Status: StatusOK}
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			res.Skipped = append(res.Skipped, RowError{Line: perr.StartLine, Err: perr})
			continue
		}
		if err != nil {
			res.Status = StatusFailed
			res.Err = fmt.Errorf("reading CSV row: %w", err)
			return res
		}

		line, _ := reader.FieldPos(0)
		if len(fields) < width {
			res.Skipped = append(res.Skipped, RowError{
				Line: line,
				Err:  fmt.Errorf("expected at least %d fields, got %d", width, len(fields)),
			})
			continue
		}

		rec, rerr := convert(row{line: line, fields: fields, index: index})
		if rerr != nil {
			res.Skipped = append(res.Skipped, *rerr)
			continue
		}
		res.Entries = append(res.Entries, Entry[T]{Line: line, Record: rec})
	}

	if len(res.Skipped) > 0 {
		res.Status = StatusPartial
	}
	return res
}
