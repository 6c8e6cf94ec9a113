package repositories

import (
	"cmp"
	"delivery-plan-solver/internal/domain"
	"encoding/json"
	"fmt"
	"slices"
)

// Flat JSON shape for persisting a case. The domain maps become arrays
// sorted by id so stored payloads are byte-stable; hubs stay in their
// original order because that order carries meaning.
type caseDoc struct {
	Config   configDoc    `json:"config"`
	Nodes    []nodeDoc    `json:"nodes"`
	Hubs     []hubDoc     `json:"hubs"`
	Packages []packageDoc `json:"packages"`
	Edges    []edgeDoc    `json:"edges"`
}

type configDoc struct {
	NodeCount     int `json:"node_count"`
	HubCount      int `json:"hub_count"`
	PackageCount  int `json:"package_count"`
	TruckCapacity int `json:"truck_capacity"`
	DepotID       int `json:"depot_id"`
}

type nodeDoc struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

type hubDoc struct {
	ID   int     `json:"id"`
	Cost float64 `json:"cost"`
}

type packageDoc struct {
	ID          int `json:"id"`
	Origin      int `json:"origin"`
	Destination int `json:"destination"`
}

type edgeDoc struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

func encodeCase(c *domain.Case) ([]byte, error) {
	doc := caseDoc{
		Config: configDoc{
			NodeCount:     c.Config.NodeCount,
			HubCount:      c.Config.HubCount,
			PackageCount:  c.Config.PackageCount,
			TruckCapacity: c.Config.TruckCapacity,
			DepotID:       c.Config.DepotID,
		},
		Nodes:    make([]nodeDoc, 0, len(c.Nodes)),
		Hubs:     make([]hubDoc, 0, len(c.Hubs)),
		Packages: make([]packageDoc, 0, len(c.Packages)),
		Edges:    make([]edgeDoc, 0, len(c.Edges)),
	}

	for id, at := range c.Nodes {
		doc.Nodes = append(doc.Nodes, nodeDoc{ID: id, X: at.X, Y: at.Y})
	}
	slices.SortFunc(doc.Nodes, func(a, b nodeDoc) int { return cmp.Compare(a.ID, b.ID) })

	for _, hub := range c.Hubs {
		doc.Hubs = append(doc.Hubs, hubDoc{ID: hub.HubID, Cost: hub.Cost})
	}

	for id, pkg := range c.Packages {
		doc.Packages = append(doc.Packages, packageDoc{ID: id, Origin: pkg.Origin, Destination: pkg.Destination})
	}
	slices.SortFunc(doc.Packages, func(a, b packageDoc) int { return cmp.Compare(a.ID, b.ID) })

	for key, weight := range c.Edges {
		doc.Edges = append(doc.Edges, edgeDoc{From: key.From, To: key.To, Weight: weight})
	}
	slices.SortFunc(doc.Edges, func(a, b edgeDoc) int {
		if a.From != b.From {
			return cmp.Compare(a.From, b.From)
		}
		return cmp.Compare(a.To, b.To)
	})

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode case: %w", err)
	}
	return data, nil
}

func decodeCase(data []byte) (*domain.Case, error) {
	var doc caseDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode case: %w", err)
	}

	c := &domain.Case{
		Config: domain.Config{
			NodeCount:     doc.Config.NodeCount,
			HubCount:      doc.Config.HubCount,
			PackageCount:  doc.Config.PackageCount,
			TruckCapacity: doc.Config.TruckCapacity,
			DepotID:       doc.Config.DepotID,
		},
		Nodes:    make(map[int]domain.Coordinates, len(doc.Nodes)),
		Hubs:     make([]domain.Hub, 0, len(doc.Hubs)),
		Packages: make(map[int]domain.Package, len(doc.Packages)),
		Edges:    make(map[domain.EdgeKey]float64, len(doc.Edges)),
	}

	for _, n := range doc.Nodes {
		c.Nodes[n.ID] = domain.Coordinates{X: n.X, Y: n.Y}
	}
	for _, h := range doc.Hubs {
		c.Hubs = append(c.Hubs, domain.Hub{HubID: h.ID, Cost: h.Cost})
	}
	for _, p := range doc.Packages {
		c.Packages[p.ID] = domain.Package{PackageID: p.ID, Origin: p.Origin, Destination: p.Destination}
	}
	for _, e := range doc.Edges {
		c.Edges[domain.EdgeKey{From: e.From, To: e.To}] = e.Weight
	}
	return c, nil
}
