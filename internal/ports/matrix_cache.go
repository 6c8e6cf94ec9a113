package ports

import (
	"context"
	"delivery-plan-solver/internal/solver"
)

// Port: a boundary for caching computed distance matrices, keyed by the
// network fingerprint of a case.
type MatrixCache interface {
	// Look up a matrix; ok reports whether the fingerprint was present.
	Get(ctx context.Context, fingerprint string) (m *solver.DistanceMatrix, ok bool, err error)
	// Store a matrix under the fingerprint, replacing any previous entry.
	Put(ctx context.Context, fingerprint string, m *solver.DistanceMatrix) error
}
