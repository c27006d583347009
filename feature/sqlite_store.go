package feature

import (
	"context"
	"database/sql"
	"fmt"
)

// Store defines the durable feature-map API. The matching engine itself
// never touches storage; callers load maps from a Store, run the matcher,
// and optionally persist the results.
type Store interface {
	// SaveMap stores a named feature map, replacing any previous map with
	// the same name. Element order is preserved.
	SaveMap(ctx context.Context, name string, m Map) error

	// LoadMap returns the named feature map in stored element order.
	LoadMap(ctx context.Context, name string) (Map, error)

	// DeleteMap removes the named map and its features.
	DeleteMap(ctx context.Context, name string) error

	// MapNames lists stored map names in creation order.
	MapNames(ctx context.Context) ([]string, error)

	// Nearest returns up to k features of the named map ordered by raw
	// Euclidean distance to (rt, mz), nearest first.
	Nearest(ctx context.Context, name string, rt, mz float64, k int) (Map, error)
}

// SQLiteStore implements Store on a SQLite database. Nearest relies on the
// pos_l2 scalar function, registered automatically by engine.Open.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLite-backed Store and ensures the feature
// schema exists in the provided database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("feature: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// SaveMap stores the map inside a single transaction: the previous content
// of the name is dropped first so a save is an atomic replace.
func (s *SQLiteStore) SaveMap(ctx context.Context, name string, m Map) error {
	if name == "" {
		return fmt.Errorf("feature: SaveMap called with empty name")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM features WHERE map_name = ?`, name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO feature_maps(name) VALUES(?) ON CONFLICT(name) DO NOTHING`, name); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO features(map_name, pos, rt, mz, intensity, min_rt, max_rt, min_mz, max_mz)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, f := range m {
		r := f.Range
		if _, err := stmt.ExecContext(ctx, name, i,
			f.Position.Time, f.Position.Mass, f.Intensity,
			r.MinTime, r.MaxTime, r.MinMass, r.MaxMass); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadMap returns the named map ordered by stored position.
func (s *SQLiteStore) LoadMap(ctx context.Context, name string) (Map, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT rt, mz, intensity, min_rt, max_rt, min_mz, max_mz
FROM features WHERE map_name = ? ORDER BY pos`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFeatures(rows)
}

// DeleteMap removes the map entry, its features, and any stored pairs that
// reference it.
func (s *SQLiteStore) DeleteMap(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("feature: DeleteMap called with empty name")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM features WHERE map_name = ?`, name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM feature_pairs WHERE model_map = ? OR scene_map = ?`, name, name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM feature_maps WHERE name = ?`, name); err != nil {
		return err
	}
	return tx.Commit()
}

// MapNames lists stored map names in creation order.
func (s *SQLiteStore) MapNames(ctx context.Context) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM feature_maps ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// Nearest orders the named map by pos_l2 distance to the query position and
// returns the first k features.
func (s *SQLiteStore) Nearest(ctx context.Context, name string, rt, mz float64, k int) (Map, error) {
	if k <= 0 {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT rt, mz, intensity, min_rt, max_rt, min_mz, max_mz
FROM features WHERE map_name = ?
ORDER BY pos_l2(rt, mz, ?, ?), pos
LIMIT ?`, name, rt, mz, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFeatures(rows)
}

func scanFeatures(rows *sql.Rows) (Map, error) {
	var out Map
	for rows.Next() {
		var f Feature
		if err := rows.Scan(&f.Position.Time, &f.Position.Mass, &f.Intensity,
			&f.Range.MinTime, &f.Range.MaxTime, &f.Range.MinMass, &f.Range.MaxMass); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
