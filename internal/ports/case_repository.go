package ports

import (
	"context"
	"delivery-plan-solver/internal/domain"
	"errors"
)

// Returned by repositories when a case id matches nothing.
var ErrCaseNotFound = errors.New("case not found")

// Listing row for a stored case: the header values without the full network.
type CaseSummary struct {
	CaseID        int64
	Name          string
	NodeCount     int
	HubCount      int
	PackageCount  int
	TruckCapacity int
	DepotID       int
}

// Port: a boundary for storing and retrieving delivery cases.
type CaseRepository interface {
	// Persist a case under a display name and return its assigned id.
	SaveCase(ctx context.Context, name string, c *domain.Case) (int64, error)
	// Load one case in full, ErrCaseNotFound when absent.
	GetCase(ctx context.Context, caseID int64) (*domain.Case, error)
	// List stored cases, newest first.
	ListCases(ctx context.Context) ([]CaseSummary, error)
}
