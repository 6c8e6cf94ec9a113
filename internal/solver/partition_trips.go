package solver

import (
	"delivery-plan-solver/internal/domain"
	"slices"
)

// A single truck tour: the destinations visited in order between leaving a
// start point and returning to the depot. Trips are never empty.
type Trip []int

// Demand for one destination: how many packages are bound for it.
type DestinationDemand struct {
	Destination int
	Packages    int
}

// DemandByDestination folds packages into per-destination demand counts.
// Destinations appear in first-occurrence order with packages scanned by
// ascending package id; that order pins the visiting order of the whole
// plan, so it must stay independent of map iteration.
func DemandByDestination(packages map[int]domain.Package) []DestinationDemand {
	ids := make([]int, 0, len(packages))
	for id := range packages {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	position := make(map[int]int, len(packages))
	demands := make([]DestinationDemand, 0, len(packages))
	for _, id := range ids {
		dest := packages[id].Destination
		if at, ok := position[dest]; ok {
			demands[at].Packages++
			continue
		}
		position[dest] = len(demands)
		demands = append(demands, DestinationDemand{Destination: dest, Packages: 1})
	}
	return demands
}

// PartitionTrips splits demands into consecutive trips so that no trip loads
// more than capacity packages. Demand order is preserved and a destination is
// visited by exactly one trip. A destination whose demand alone exceeds
// capacity still gets a trip of its own rather than an impossible empty one.
func PartitionTrips(demands []DestinationDemand, capacity int) []Trip {
	trips := []Trip{}
	var current Trip
	load := 0

	for _, d := range demands {
		if load+d.Packages > capacity && len(current) > 0 {
			trips = append(trips, current)
			current = nil
			load = 0
		}
		current = append(current, d.Destination)
		load += d.Packages
	}
	if len(current) > 0 {
		trips = append(trips, current)
	}
	return trips
}
