package solver

import "math"

// EvaluateRoute prices every trip against one set of active hubs. It returns
// the summed travel distance of the plan and the chosen start node per trip.
//
// A trip may begin at the depot or at any active hub and always ends back at
// the depot. Candidate starts are tried in order (depot first, then hubs as
// given) and only a strictly cheaper candidate displaces the current choice,
// so the earliest candidate wins ties. A trip whose every candidate start
// leaves it unreachable keeps the depot as its start and contributes +Inf.
func EvaluateRoute(m *DistanceMatrix, depot int, activeHubs []int, trips []Trip) (float64, []int) {
	candidates := make([]int, 0, len(activeHubs)+1)
	candidates = append(candidates, depot)
	candidates = append(candidates, activeHubs...)

	total := 0.0
	starts := make([]int, 0, len(trips))

	for _, trip := range trips {
		bestStart := depot
		bestCost := math.Inf(1)

		for _, start := range candidates {
			cost := m.Between(start, trip[0])
			for i := 0; i+1 < len(trip); i++ {
				cost += m.Between(trip[i], trip[i+1])
			}
			cost += m.Between(trip[len(trip)-1], depot)

			if cost < bestCost {
				bestCost = cost
				bestStart = start
			}
		}

		total += bestCost
		starts = append(starts, bestStart)
	}
	return total, starts
}
