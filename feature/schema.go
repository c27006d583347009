package feature

import (
	"database/sql"
)

const mapsSchema = `
CREATE TABLE IF NOT EXISTS feature_maps (
    name       TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const featuresSchema = `
CREATE TABLE IF NOT EXISTS features (
    map_name  TEXT NOT NULL,
    pos       INTEGER NOT NULL,
    rt        REAL NOT NULL,
    mz        REAL NOT NULL,
    intensity REAL NOT NULL DEFAULT 0,
    min_rt    REAL NOT NULL DEFAULT 0,
    max_rt    REAL NOT NULL DEFAULT 0,
    min_mz    REAL NOT NULL DEFAULT 0,
    max_mz    REAL NOT NULL DEFAULT 0,
    PRIMARY KEY (map_name, pos)
);
`

const pairsSchema = `
CREATE TABLE IF NOT EXISTS feature_pairs (
    model_map TEXT NOT NULL,
    scene_map TEXT NOT NULL,
    model_pos INTEGER NOT NULL,
    scene_pos INTEGER NOT NULL,
    PRIMARY KEY (model_map, scene_map, model_pos)
);
`

// EnsureSchema creates the feature map tables in the provided database if
// they do not already exist.
func EnsureSchema(db *sql.DB) error {
	for _, ddl := range []string{mapsSchema, featuresSchema, pairsSchema} {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
