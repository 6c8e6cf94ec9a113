package solver

import (
	"context"
	"delivery-plan-solver/internal/domain"
	"math"
)

// routeEvaluator prices one hub activation set: it returns the travel
// distance of the full plan and the chosen start node per trip.
type routeEvaluator func(activeHubs []int) (distance float64, starts []int)

// Outcome of the cheapest evaluated activation set, or the infeasible
// sentinel when nothing beat it.
type searchResult struct {
	totalCost  float64
	distance   float64
	activeHubs []int
	starts     []int
}

// searchHubSubsets evaluates every subset of hubs and keeps the cheapest
// total (travel distance plus activation costs). The search is exhaustive,
// 2^len(hubs) leaves with no pruning, which stays tractable only for hub
// counts in the low twenties. Only a strictly cheaper subset replaces the
// incumbent, and for each hub the skip branch is explored before the
// activate branch, so ties resolve to the subset evaluated first: of two
// tied subsets, the one skipping the earliest hub on which they differ
// wins, whatever their sizes.
//
// The initial incumbent is an infeasible sentinel (+Inf total, zero
// distance, no hubs, no starts). It survives only when every subset prices
// at +Inf, which callers detect to report an unsolvable case.
func searchHubSubsets(ctx context.Context, hubs []domain.Hub, evaluate routeEvaluator) (searchResult, error) {
	best := searchResult{totalCost: math.Inf(1), activeHubs: []int{}}

	leaf, err := exploreHubs(ctx, hubs, evaluate, 0, []int{}, 0)
	if err != nil {
		return searchResult{}, err
	}
	if leaf.totalCost < best.totalCost {
		best = leaf
	}
	return best, nil
}

// exploreHubs decides hubs[index:] recursively and returns the cheapest leaf
// below this node. active and activation carry the decisions made so far.
func exploreHubs(
	ctx context.Context,
	hubs []domain.Hub,
	evaluate routeEvaluator,
	index int,
	active []int,
	activation float64,
) (searchResult, error) {
	if err := ctx.Err(); err != nil {
		return searchResult{}, err
	}

	if index == len(hubs) {
		distance, starts := evaluate(active)
		return searchResult{
			totalCost:  distance + activation,
			distance:   distance,
			activeHubs: active,
			starts:     starts,
		}, nil
	}

	skipped, err := exploreHubs(ctx, hubs, evaluate, index+1, active, activation)
	if err != nil {
		return searchResult{}, err
	}

	// Fresh slice per activation so sibling branches never share a backing array.
	withHub := make([]int, len(active)+1)
	copy(withHub, active)
	withHub[len(active)] = hubs[index].HubID

	activated, err := exploreHubs(ctx, hubs, evaluate, index+1, withHub, activation+hubs[index].Cost)
	if err != nil {
		return searchResult{}, err
	}

	if activated.totalCost < skipped.totalCost {
		return activated, nil
	}
	return skipped, nil
}
