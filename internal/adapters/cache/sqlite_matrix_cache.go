package cache

import (
	"context"
	"database/sql"
	"delivery-plan-solver/internal/platform/obs"
	"delivery-plan-solver/internal/solver"
	"errors"
	"fmt"
)

// SqliteMatrixCache keeps computed distance matrices in the local SQLite
// database, keyed by case network fingerprint. Single-instance deployments
// use it when no Redis address is configured.
type SqliteMatrixCache struct{ DB *sql.DB }

func NewSqliteMatrixCache(db *sql.DB) *SqliteMatrixCache {
	return &SqliteMatrixCache{DB: db}
}

// Look up a cached matrix by fingerprint.
func (s *SqliteMatrixCache) Get(ctx context.Context, fingerprint string) (_ *solver.DistanceMatrix, _ bool, err error) {
	defer obs.Time(ctx, "matrix.cache.get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("matrix cache: db is nil")
	}

	query := `
	SELECT matrix
	FROM matrix_cache
	WHERE fingerprint = ?;
	`
	var blob []byte
	err = s.DB.QueryRowContext(ctx, query, fingerprint).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get matrix cache: query matrix_cache table: %w", err)
	}

	m := new(solver.DistanceMatrix)
	if err = m.UnmarshalBinary(blob); err != nil {
		return nil, false, fmt.Errorf("get matrix cache: decode blob: %w", err)
	}
	return m, true, nil
}

// Store a matrix under the fingerprint, replacing any previous entry.
func (s *SqliteMatrixCache) Put(ctx context.Context, fingerprint string, m *solver.DistanceMatrix) (err error) {
	defer obs.Time(ctx, "matrix.cache.put")(&err)

	if s.DB == nil {
		return errors.New("matrix cache: db is nil")
	}
	if m == nil {
		return errors.New("put matrix cache: matrix is nil")
	}

	blob, err := m.MarshalBinary()
	if err != nil {
		return fmt.Errorf("put matrix cache: encode matrix: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO matrix_cache (fingerprint, node_count, matrix)
	VALUES (?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, query, fingerprint, m.Size(), blob); err != nil {
		return fmt.Errorf("put matrix cache: insert: %w", err)
	}
	return nil
}
