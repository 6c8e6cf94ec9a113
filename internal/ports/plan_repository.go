package ports

import "context"

// A solved plan as archived: the plan payload plus identifiers and the
// measured solve duration. Costs are finite; infeasible solves are never
// archived.
type PlanRecord struct {
	PlanID          string
	CaseID          int64
	Route           []int
	ActiveHubs      []int
	TotalCost       float64
	Distance        float64
	HubCost         float64
	DurationSeconds float64
}

// Port: a boundary for archiving solved plans.
type PlanRepository interface {
	// Persist one solved plan. Saving the same PlanID twice is a no-op.
	SavePlan(ctx context.Context, rec PlanRecord) error
}
