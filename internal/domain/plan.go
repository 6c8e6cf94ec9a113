package domain

// Represents the solved output for a case: the full walk of the truck, the
// hubs that were activated and the cost breakdown. TotalCost is always
// Distance plus HubCost. An infeasible case yields an empty Route with
// TotalCost and HubCost +Inf and Distance 0.
// It is immutable planning data and contains no side effects.
type Plan struct {
	Route      []int
	ActiveHubs []int
	TotalCost  float64
	Distance   float64
	HubCost    float64
}
