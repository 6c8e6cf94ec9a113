package domain

// Represents a single delivery order: one unit of truck capacity bound for
// Destination. Origin is carried through from the case file for reporting;
// planning only looks at destinations.
type Package struct {
	PackageID   int
	Origin      int
	Destination int
}
