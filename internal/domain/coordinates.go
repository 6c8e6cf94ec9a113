package domain

// Planar grid position of a node. Parsed from case files for reporting and
// tooling; route costs come from explicit edge weights, never from geometry.
type Coordinates struct {
	X int
	Y int
}
