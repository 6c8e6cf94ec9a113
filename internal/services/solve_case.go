package services

import (
	"context"
	"delivery-plan-solver/internal/domain"
	"delivery-plan-solver/internal/ports"
	"delivery-plan-solver/internal/solver"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

type SolveCaseRequest struct {
	CaseID int64
}

// Outcome of a solved case: the plan plus its archive identity and the
// measured solve duration.
type SolveCaseResult struct {
	PlanID          string
	CaseID          int64
	Plan            *domain.Plan
	DurationSeconds float64
}

// SolveCase loads a stored case, solves it against a cached distance matrix
// and archives the resulting plan under a fresh plan id.
//
// Stored documents are not range-checked at save time, so the loaded case is
// validated first; bad data fails with solver.ErrInvalidCase before any
// matrix is built or cached. Cache trouble never fails a solve: a miss, an
// unusable entry or a cache error just recomputes the matrix and tries to
// store it back. Infeasible cases fail with solver.ErrNoFeasibleRoute, since
// an infinite cost has no archivable form. Archive failures fail the request
// so no solved plan is lost silently.
func SolveCase(
	ctx context.Context,
	req SolveCaseRequest,
	repo ports.CaseRepository,
	matrixCache ports.MatrixCache,
	archive ports.PlanRepository,
) (*SolveCaseResult, error) {
	c, err := repo.GetCase(ctx, req.CaseID)
	if err != nil {
		return nil, fmt.Errorf("solve case: load case %d: %w", req.CaseID, err)
	}
	if err := solver.ValidateCase(c); err != nil {
		return nil, fmt.Errorf("solve case %d: %w", req.CaseID, err)
	}

	start := time.Now()

	fingerprint := c.GraphFingerprint()
	m := lookupMatrix(ctx, matrixCache, fingerprint, c.Config.NodeCount)
	if m == nil {
		m = solver.NewDistanceMatrix(c.Config.NodeCount, c.Edges)
		if err := matrixCache.Put(ctx, fingerprint, m); err != nil {
			log.Printf("matrix cache store failed fingerprint=%s err=%v", fingerprint, err)
		}
	}

	plan, err := solver.SolveWithMatrix(ctx, c, m, solver.Options{FailOnInfeasible: true})
	if err != nil {
		return nil, fmt.Errorf("solve case %d: %w", req.CaseID, err)
	}

	elapsed := time.Since(start)

	rec := ports.PlanRecord{
		PlanID:          uuid.NewString(),
		CaseID:          req.CaseID,
		Route:           plan.Route,
		ActiveHubs:      plan.ActiveHubs,
		TotalCost:       plan.TotalCost,
		Distance:        plan.Distance,
		HubCost:         plan.HubCost,
		DurationSeconds: elapsed.Seconds(),
	}
	if err := archive.SavePlan(ctx, rec); err != nil {
		return nil, fmt.Errorf("solve case %d: archive plan: %w", req.CaseID, err)
	}

	return &SolveCaseResult{
		PlanID:          rec.PlanID,
		CaseID:          req.CaseID,
		Plan:            plan,
		DurationSeconds: rec.DurationSeconds,
	}, nil
}

// lookupMatrix returns a cached matrix usable for the case, or nil when the
// cache cannot serve one. Lookup errors and dimension mismatches count as
// misses; the solve must go on either way.
func lookupMatrix(ctx context.Context, matrixCache ports.MatrixCache, fingerprint string, nodeCount int) *solver.DistanceMatrix {
	m, ok, err := matrixCache.Get(ctx, fingerprint)
	if err != nil {
		log.Printf("matrix cache lookup failed fingerprint=%s err=%v", fingerprint, err)
		return nil
	}
	if !ok || m == nil {
		return nil
	}
	if m.Size() != nodeCount {
		log.Printf("matrix cache entry unusable fingerprint=%s size=%d want=%d", fingerprint, m.Size(), nodeCount)
		return nil
	}
	return m
}
