package pricedata

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/haikapp/haik/internal/models"
)

// Store persists price records in SQLite for the CLI import path,
// keyed by normalized neighborhood name.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) a SQLite-backed price store.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open price store: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure price store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// EnsureSchema creates the prices table if missing.
func (s *Store) EnsureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS neighborhood_prices (
  normalized_name TEXT PRIMARY KEY,
  neighborhood TEXT NOT NULL,
  avg_price_per_meter REAL,
  transactions_count INTEGER NOT NULL DEFAULT 0
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return fmt.Errorf("create prices table: %w", err)
	}
	return nil
}

// UpsertMany imports a record batch, replacing rows for names already
// present.
func (s *Store) UpsertMany(records []models.PriceRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT OR REPLACE INTO neighborhood_prices
(normalized_name, neighborhood, avg_price_per_meter, transactions_count)
VALUES (?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		var price sql.NullFloat64
		if r.AvgPricePerMeter != nil {
			price = sql.NullFloat64{Float64: *r.AvgPricePerMeter, Valid: true}
		}
		if _, err := stmt.Exec(Normalize(r.Neighborhood), r.Neighborhood, price, r.TransactionsCount); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM neighborhood_prices`).Scan(&n)
	return n, err
}

// Records reads all stored price records back in name order.
func (s *Store) Records() ([]models.PriceRecord, error) {
	rows, err := s.db.Query(`
SELECT neighborhood, avg_price_per_meter, transactions_count
FROM neighborhood_prices
ORDER BY normalized_name
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PriceRecord
	for rows.Next() {
		var r models.PriceRecord
		var price sql.NullFloat64
		if err := rows.Scan(&r.Neighborhood, &price, &r.TransactionsCount); err != nil {
			return nil, err
		}
		if price.Valid {
			v := price.Float64
			r.AvgPricePerMeter = &v
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
