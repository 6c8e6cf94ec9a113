package repositories

import (
	"context"
	"database/sql"
	"delivery-plan-solver/internal/adapters/casefile"
	"errors"
	"fmt"
	"path/filepath"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCasesQuery := `
	CREATE TABLE IF NOT EXISTS cases (
		case_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		node_count INTEGER NOT NULL,
		hub_count INTEGER NOT NULL,
		package_count INTEGER NOT NULL,
		truck_capacity INTEGER NOT NULL,
		depot_id INTEGER NOT NULL,
		payload TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	`

	createPlansQuery := `
	CREATE TABLE IF NOT EXISTS plans (
		plan_id TEXT PRIMARY KEY,
		case_id INTEGER NOT NULL REFERENCES cases(case_id),
		route TEXT NOT NULL,
		active_hubs TEXT NOT NULL,
		total_cost REAL NOT NULL,
		distance REAL NOT NULL,
		hub_cost REAL NOT NULL,
		duration_seconds REAL NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	`

	createMatrixCacheQuery := `
	CREATE TABLE IF NOT EXISTS matrix_cache (
		fingerprint TEXT PRIMARY KEY,
		node_count INTEGER NOT NULL,
		matrix BLOB NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_plans_case_id
	ON plans(case_id);
	`

	statements := []string{
		createCasesQuery,
		createPlansQuery,
		createMatrixCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database with one case file, stored under its base name.
// Returns the assigned case id.
func SeedCaseFile(ctx context.Context, repo *SqliteCaseRepository, path string) (int64, error) {
	c, err := casefile.Read(path)
	if err != nil {
		return 0, fmt.Errorf("seed cases: %w", err)
	}

	id, err := repo.SaveCase(ctx, filepath.Base(path), c)
	if err != nil {
		return 0, fmt.Errorf("seed cases: store %q: %w", path, err)
	}
	return id, nil
}

// Populate the database with every *.txt case file in dir, in lexical order.
// Returns how many cases were stored.
func SeedCaseDir(ctx context.Context, repo *SqliteCaseRepository, dir string) (int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return 0, fmt.Errorf("seed cases: glob %q: %w", dir, err)
	}

	count := 0
	for _, path := range paths {
		if _, err := SeedCaseFile(ctx, repo, path); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
