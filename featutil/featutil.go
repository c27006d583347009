// Package featutil provides convenience helpers that join the SQLite
// feature store and the matching engine: running a matcher over stored maps
// and persisting the emitted pairs.
package featutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mzmatch/mzmatch/feature"
	"github.com/mzmatch/mzmatch/match"
)

// FindStoredPairs loads the named model and scene maps from db and runs
// matcher.FindPairs over them. Pair indices refer to stored element order.
func FindStoredPairs(
	ctx context.Context,
	db *sql.DB,
	matcher *match.Matcher,
	modelMap, sceneMap string,
	tf match.MapTransform,
) ([]match.Pair, error) {
	if db == nil {
		return nil, fmt.Errorf("featutil: db is nil")
	}
	if matcher == nil {
		return nil, fmt.Errorf("featutil: matcher is nil")
	}
	store, err := feature.NewSQLiteStore(db)
	if err != nil {
		return nil, err
	}
	model, err := store.LoadMap(ctx, modelMap)
	if err != nil {
		return nil, err
	}
	scene, err := store.LoadMap(ctx, sceneMap)
	if err != nil {
		return nil, err
	}
	return matcher.FindPairs(model, scene, tf)
}

// SavePairs replaces the stored pair set for the (modelMap, sceneMap)
// combination with the given pairs.
func SavePairs(ctx context.Context, db *sql.DB, modelMap, sceneMap string, pairs []match.Pair) error {
	if db == nil {
		return fmt.Errorf("featutil: db is nil")
	}
	if modelMap == "" || sceneMap == "" {
		return fmt.Errorf("featutil: map names must be non-empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM feature_pairs WHERE model_map = ? AND scene_map = ?`, modelMap, sceneMap); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO feature_pairs(model_map, scene_map, model_pos, scene_pos) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range pairs {
		if _, err := stmt.ExecContext(ctx, modelMap, sceneMap, p.Model, p.Scene); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadPairs returns the stored pairs for the (modelMap, sceneMap)
// combination in reference element order.
func LoadPairs(ctx context.Context, db *sql.DB, modelMap, sceneMap string) ([]match.Pair, error) {
	if db == nil {
		return nil, fmt.Errorf("featutil: db is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := db.QueryContext(ctx,
		`SELECT model_pos, scene_pos FROM feature_pairs WHERE model_map = ? AND scene_map = ? ORDER BY model_pos`,
		modelMap, sceneMap)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []match.Pair
	for rows.Next() {
		var p match.Pair
		if err := rows.Scan(&p.Model, &p.Scene); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}
