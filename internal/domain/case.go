package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strconv"
)

// Directed edge endpoints as stored in a case. Case files describe an
// undirected network, so a loaded case carries both (From,To) and (To,From);
// the weights match unless opposite edge records disagreed.
type EdgeKey struct {
	From int
	To   int
}

// Header values of a delivery case.
type Config struct {
	NodeCount     int
	HubCount      int
	PackageCount  int
	TruckCapacity int
	DepotID       int
}

// A complete delivery problem: the road network, the depot, the candidate
// hubs and the packages to deliver. Hubs keep their input order; that order
// decides tie-breaks downstream, so it must not be normalized.
type Case struct {
	Config   Config
	Nodes    map[int]Coordinates
	Hubs     []Hub
	Packages map[int]Package
	Edges    map[EdgeKey]float64
}

// GraphFingerprint returns a stable identifier for the case network: the node
// count plus every edge with its exact weight, hashed in canonical order.
// Cases with equal fingerprints yield the same shortest-path matrix, which
// makes the fingerprint usable as a matrix cache key.
func (c *Case) GraphFingerprint() string {
	keys := make([]EdgeKey, 0, len(c.Edges))
	for k := range c.Edges {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b EdgeKey) int {
		if a.From != b.From {
			if a.From < b.From {
				return -1
			}
			return 1
		}
		switch {
		case a.To < b.To:
			return -1
		case a.To > b.To:
			return 1
		}
		return 0
	})

	h := sha256.New()
	fmt.Fprintf(h, "n=%d;", c.Config.NodeCount)
	for _, k := range keys {
		fmt.Fprintf(h, "%d-%d=%s;", k.From, k.To, strconv.FormatFloat(c.Edges[k], 'g', -1, 64))
	}
	return hex.EncodeToString(h.Sum(nil))
}
