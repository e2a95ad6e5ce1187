package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jgoulah/energyanalyzer/pkg/models"
	_ "modernc.org/sqlite"
)

// DB wraps the database connection
type DB struct {
	conn *sql.DB
}

// Source identifies where a stored row came from. The pair is unique, so
// importing the same file twice does not duplicate rows.
type Source struct {
	Path  string
	Line  int
	Batch string // import batch ID
}

// Counts is the number of stored rows per table
type Counts struct {
	Consumption int
	Prices      int
	Inflation   int
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS consumption_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		year INTEGER NOT NULL,
		region TEXT NOT NULL,
		sector TEXT NOT NULL,
		consumption REAL NOT NULL,
		units TEXT NOT NULL,
		source TEXT NOT NULL,
		line INTEGER NOT NULL,
		batch TEXT,
		created_at TEXT NOT NULL,
		UNIQUE(source, line)
	);
	CREATE INDEX IF NOT EXISTS idx_consumption_sector ON consumption_records(sector);
	CREATE INDEX IF NOT EXISTS idx_consumption_year ON consumption_records(year);

	CREATE TABLE IF NOT EXISTS price_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		year INTEGER NOT NULL,
		sector TEXT NOT NULL,
		fuel_type TEXT NOT NULL,
		price REAL NOT NULL,
		units TEXT NOT NULL,
		source TEXT NOT NULL,
		line INTEGER NOT NULL,
		batch TEXT,
		created_at TEXT NOT NULL,
		UNIQUE(source, line)
	);
	CREATE INDEX IF NOT EXISTS idx_price_sector_fuel ON price_records(sector, fuel_type);

	CREATE TABLE IF NOT EXISTS inflation_rates (
		year INTEGER PRIMARY KEY,
		rate REAL NOT NULL,
		source TEXT NOT NULL,
		batch TEXT,
		updated_at TEXT NOT NULL
	);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// InsertConsumption inserts a consumption record, ignoring rows already imported from the same source line
func (db *DB) InsertConsumption(rec *models.ConsumptionRecord, src Source) (bool, error) {
	query := `
	INSERT OR IGNORE INTO consumption_records (year, region, sector, consumption, units, source, line, batch, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := db.conn.Exec(query, rec.Year, rec.Region, rec.Sector, rec.Consumption, rec.Units,
		src.Path, src.Line, src.Batch, now())
	if err != nil {
		return false, fmt.Errorf("inserting consumption record: %w", err)
	}
	return inserted(res)
}

// InsertPrice inserts a price record, ignoring rows already imported from the same source line
func (db *DB) InsertPrice(rec *models.PriceRecord, src Source) (bool, error) {
	query := `
	INSERT OR IGNORE INTO price_records (year, sector, fuel_type, price, units, source, line, batch, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := db.conn.Exec(query, rec.Year, rec.Sector, rec.FuelType, rec.Price, rec.Units,
		src.Path, src.Line, src.Batch, now())
	if err != nil {
		return false, fmt.Errorf("inserting price record: %w", err)
	}
	return inserted(res)
}

// UpsertInflation stores the rate for a year, replacing any earlier rate
func (db *DB) UpsertInflation(rate models.InflationRate, src Source) error {
	query := `
	INSERT OR REPLACE INTO inflation_rates (year, rate, source, batch, updated_at)
	VALUES (?, ?, ?, ?, ?)
	`

	if _, err := db.conn.Exec(query, rate.Year, rate.Rate, src.Path, src.Batch, now()); err != nil {
		return fmt.Errorf("upserting inflation rate: %w", err)
	}
	return nil
}

// ListConsumption retrieves all consumption records in import order
func (db *DB) ListConsumption() ([]models.ConsumptionRecord, error) {
	query := `
	SELECT year, region, sector, consumption, units
	FROM consumption_records
	ORDER BY id
	`

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying consumption records: %w", err)
	}
	defer rows.Close()

	var results []models.ConsumptionRecord
	for rows.Next() {
		var rec models.ConsumptionRecord
		if err := rows.Scan(&rec.Year, &rec.Region, &rec.Sector, &rec.Consumption, &rec.Units); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, rec)
	}

	return results, rows.Err()
}

// ListPrices retrieves all price records in import order
func (db *DB) ListPrices() ([]models.PriceRecord, error) {
	query := `
	SELECT year, sector, fuel_type, price, units
	FROM price_records
	ORDER BY id
	`

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying price records: %w", err)
	}
	defer rows.Close()

	var results []models.PriceRecord
	for rows.Next() {
		var rec models.PriceRecord
		if err := rows.Scan(&rec.Year, &rec.Sector, &rec.FuelType, &rec.Price, &rec.Units); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, rec)
	}

	return results, rows.Err()
}

// ListInflation retrieves all inflation rates ordered by year
func (db *DB) ListInflation() ([]models.InflationRate, error) {
	rows, err := db.conn.Query(`SELECT year, rate FROM inflation_rates ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("querying inflation rates: %w", err)
	}
	defer rows.Close()

	var results []models.InflationRate
	for rows.Next() {
		var rate models.InflationRate
		if err := rows.Scan(&rate.Year, &rate.Rate); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, rate)
	}

	return results, rows.Err()
}

// Counts returns the number of stored rows per table
func (db *DB) Counts() (Counts, error) {
	var c Counts
	query := `
	SELECT
		(SELECT COUNT(*) FROM consumption_records),
		(SELECT COUNT(*) FROM price_records),
		(SELECT COUNT(*) FROM inflation_rates)
	`
	if err := db.conn.QueryRow(query).Scan(&c.Consumption, &c.Prices, &c.Inflation); err != nil {
		return Counts{}, fmt.Errorf("counting rows: %w", err)
	}
	return c, nil
}

func inserted(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return n > 0, nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
