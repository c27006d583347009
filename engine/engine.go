package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database for feature-map storage using the
// modernc.org/sqlite driver and makes the position scalar functions
// available to it. Pass a file path for durable storage or ":memory:" for a
// throwaway database.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := RegisterPositionFunctions(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	// Feature maps are written in bursts; wait out writer contention
	// instead of surfacing SQLITE_BUSY to callers.
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
