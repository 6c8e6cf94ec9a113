package db

import (
	"database/sql"
	"fmt"
	"time"
)

// OpenSQLite opens (creating when absent) the local SQLite database backing
// cases, plans and the matrix cache. The caller must blank-import the
// modernc.org/sqlite driver.
func OpenSQLite(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", path, err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", path, err)
	}

	return conn, nil
}

// OpenPostgres opens the shared Postgres database that holds the plan
// archive. The caller must blank-import the pgx stdlib driver.
func OpenPostgres(databaseURL string) (*sql.DB, error) {
	conn, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(10)
	conn.SetConnMaxLifetime(30 * time.Minute)

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return conn, nil
}
