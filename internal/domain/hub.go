package domain

// Represents a candidate warehouse. Activating a hub pays Cost once and lets
// any trip start from HubID instead of the depot. Cost may be negative
// (a subsidized hub); the planner takes weights as given.
type Hub struct {
	HubID int
	Cost  float64
}
