package catalog

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS curve (
	id    INTEGER PRIMARY KEY,
	type  INTEGER NOT NULL CHECK (type BETWEEN 0 AND 255)
);

CREATE TABLE IF NOT EXISTS curve_point (
	curve_id  INTEGER NOT NULL,
	idx       INTEGER NOT NULL CHECK (idx BETWEEN 0 AND 255),
	x         REAL NOT NULL,
	y         REAL NOT NULL,
	PRIMARY KEY (curve_id, idx)
);
`

// Store is a curve catalog kept in a SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the SQLite database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put writes the given records in a single transaction. Records which already
// exist are replaced.
func (s *Store) Put(curves []CurveRecord, points []PointRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, c := range curves {
		_, err := tx.Exec(
			`INSERT OR REPLACE INTO curve (id, type) VALUES (?, ?)`,
			c.ID, int(c.Type),
		)
		if err != nil {
			return fmt.Errorf("insert curve %d: %w", c.ID, err)
		}
	}

	for _, p := range points {
		_, err := tx.Exec(
			`INSERT OR REPLACE INTO curve_point (curve_id, idx, x, y)
			 VALUES (?, ?, ?, ?)`,
			p.CurveID, int(p.Index), float64(p.X), float64(p.Y),
		)
		if err != nil {
			return fmt.Errorf("insert point %d of curve %d: %w", p.Index, p.CurveID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Curves returns every curve record, ordered by ID.
func (s *Store) Curves() ([]CurveRecord, error) {
	rows, err := s.db.Query(`SELECT id, type FROM curve ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query curves: %w", err)
	}
	defer rows.Close()

	recs := []CurveRecord{}
	for rows.Next() {
		var id, typ int
		if err := rows.Scan(&id, &typ); err != nil {
			return nil, fmt.Errorf("scan curve: %w", err)
		}
		recs = append(recs, CurveRecord{ID: id, Type: uint8(typ)})
	}
	return recs, rows.Err()
}

// Points returns every point record, ordered by curve and index.
func (s *Store) Points() ([]PointRecord, error) {
	rows, err := s.db.Query(
		`SELECT curve_id, idx, x, y FROM curve_point ORDER BY curve_id, idx`,
	)
	if err != nil {
		return nil, fmt.Errorf("query points: %w", err)
	}
	defer rows.Close()

	recs := []PointRecord{}
	for rows.Next() {
		var id, idx int
		var x, y float64
		if err := rows.Scan(&id, &idx, &x, &y); err != nil {
			return nil, fmt.Errorf("scan point: %w", err)
		}
		recs = append(recs, PointRecord{
			CurveID: id, Index: uint8(idx), X: float32(x), Y: float32(y),
		})
	}
	return recs, rows.Err()
}
