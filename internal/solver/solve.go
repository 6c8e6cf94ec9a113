package solver

import (
	"context"
	"delivery-plan-solver/internal/domain"
	"errors"
	"fmt"
	"math"
	"slices"
)

// Reported when case data fails validation before any search runs.
var ErrInvalidCase = errors.New("invalid case")

// Reported instead of an infeasible plan when Options.FailOnInfeasible is set.
var ErrNoFeasibleRoute = errors.New("no feasible route")

// Options tunes solve behavior.
type Options struct {
	// FailOnInfeasible makes Solve return ErrNoFeasibleRoute instead of a
	// plan with +Inf cost when no hub subset reaches every trip.
	FailOnInfeasible bool
}

// Solve plans the minimum-cost delivery for a case: it derives shortest
// paths from the case network, folds packages into capacity-bounded trips
// and searches every hub activation subset for the cheapest total cost.
//
// The result is deterministic for a given case. Tied activation subsets
// resolve to the one evaluated first in skip-before-activate order, tied
// trip starts to the depot and then earlier-listed hubs.
func Solve(ctx context.Context, c *domain.Case, opts Options) (*domain.Plan, error) {
	if err := ValidateCase(c); err != nil {
		return nil, err
	}
	return run(ctx, c, NewDistanceMatrix(c.Config.NodeCount, c.Edges), opts)
}

// SolveWithMatrix is Solve with a precomputed distance matrix, typically one
// served from a cache. The matrix must have been built for the same network.
func SolveWithMatrix(ctx context.Context, c *domain.Case, m *DistanceMatrix, opts Options) (*domain.Plan, error) {
	if err := ValidateCase(c); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New("solve: distance matrix is nil")
	}
	if m.Size() != c.Config.NodeCount {
		return nil, fmt.Errorf("solve: distance matrix built for %d nodes, case has %d", m.Size(), c.Config.NodeCount)
	}
	return run(ctx, c, m, opts)
}

func run(ctx context.Context, c *domain.Case, m *DistanceMatrix, opts Options) (*domain.Plan, error) {
	demands := DemandByDestination(c.Packages)
	trips := PartitionTrips(demands, c.Config.TruckCapacity)

	evaluate := func(activeHubs []int) (float64, []int) {
		return EvaluateRoute(m, c.Config.DepotID, activeHubs, trips)
	}

	result, err := searchHubSubsets(ctx, c.Hubs, evaluate)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	if math.IsInf(result.totalCost, 1) {
		if opts.FailOnInfeasible {
			return nil, fmt.Errorf("%w: every hub subset leaves some trip unreachable", ErrNoFeasibleRoute)
		}
		return &domain.Plan{
			Route:      []int{},
			ActiveHubs: []int{},
			TotalCost:  math.Inf(1),
			Distance:   0,
			HubCost:    math.Inf(1),
		}, nil
	}

	return &domain.Plan{
		Route:      assembleRoute(c.Config.DepotID, trips, result.starts),
		ActiveHubs: result.activeHubs,
		TotalCost:  result.totalCost,
		Distance:   result.distance,
		HubCost:    result.totalCost - result.distance,
	}, nil
}

// assembleRoute flattens trips into the single node walk reported to
// callers: the depot, then per trip its chosen start, its destinations and
// the return to the depot. With no trips the truck never leaves and the walk
// degenerates to [depot, depot].
func assembleRoute(depot int, trips []Trip, starts []int) []int {
	if len(trips) == 0 {
		return []int{depot, depot}
	}

	size := 1
	for _, trip := range trips {
		size += len(trip) + 2
	}

	route := make([]int, 0, size)
	route = append(route, depot)
	for i, trip := range trips {
		route = append(route, starts[i])
		route = append(route, trip...)
		route = append(route, depot)
	}
	return route
}

// ValidateCase rejects cases the planner cannot price meaningfully: node
// references outside [0, NodeCount) anywhere, a non-positive truck capacity,
// or a negative edge weight. Hub activation costs pass through unchecked,
// including negative ones. Solve runs it implicitly; callers that build a
// distance matrix themselves must run it first, because the matrix builder
// indexes by edge endpoint without range checks.
func ValidateCase(c *domain.Case) error {
	if c == nil {
		return fmt.Errorf("%w: case is nil", ErrInvalidCase)
	}
	n := c.Config.NodeCount

	if c.Config.TruckCapacity < 1 {
		return fmt.Errorf("%w: truck capacity %d, must be at least 1", ErrInvalidCase, c.Config.TruckCapacity)
	}
	if c.Config.DepotID < 0 || c.Config.DepotID >= n {
		return fmt.Errorf("%w: depot %d outside node range [0,%d)", ErrInvalidCase, c.Config.DepotID, n)
	}

	for _, hub := range c.Hubs {
		if hub.HubID < 0 || hub.HubID >= n {
			return fmt.Errorf("%w: hub %d outside node range [0,%d)", ErrInvalidCase, hub.HubID, n)
		}
	}

	ids := make([]int, 0, len(c.Packages))
	for id := range c.Packages {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if dest := c.Packages[id].Destination; dest < 0 || dest >= n {
			return fmt.Errorf("%w: package %d destination %d outside node range [0,%d)", ErrInvalidCase, id, dest, n)
		}
	}

	for key, weight := range c.Edges {
		if key.From < 0 || key.From >= n || key.To < 0 || key.To >= n {
			return fmt.Errorf("%w: edge (%d,%d) endpoint outside node range [0,%d)", ErrInvalidCase, key.From, key.To, n)
		}
		if weight < 0 {
			return fmt.Errorf("%w: edge (%d,%d) has negative weight %g", ErrInvalidCase, key.From, key.To, weight)
		}
	}
	return nil
}
