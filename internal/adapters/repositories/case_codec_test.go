package repositories

import (
	"delivery-plan-solver/internal/domain"
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func TestEncodeCaseSortsExtremeIDs(t *testing.T) {
	// ids are not validated at save time, so the canonical ordering must
	// hold even at the int extremes
	c := &domain.Case{
		Config: domain.Config{NodeCount: 3},
		Nodes: map[int]domain.Coordinates{
			math.MaxInt: {X: 1},
			-1:          {X: 2},
			math.MinInt: {X: 3},
		},
		Packages: map[int]domain.Package{
			math.MaxInt: {PackageID: math.MaxInt, Origin: 0, Destination: 1},
			-1:          {PackageID: -1, Origin: 0, Destination: 1},
		},
		Edges: map[domain.EdgeKey]float64{
			{From: math.MaxInt, To: 0}:  1,
			{From: -1, To: math.MaxInt}: 2,
			{From: -1, To: math.MinInt}: 3,
		},
	}

	data, err := encodeCase(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc caseDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nodeIDs := make([]int, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		nodeIDs = append(nodeIDs, n.ID)
	}
	if want := []int{math.MinInt, -1, math.MaxInt}; !reflect.DeepEqual(nodeIDs, want) {
		t.Errorf("node order = %v, want %v", nodeIDs, want)
	}

	packageIDs := make([]int, 0, len(doc.Packages))
	for _, p := range doc.Packages {
		packageIDs = append(packageIDs, p.ID)
	}
	if want := []int{-1, math.MaxInt}; !reflect.DeepEqual(packageIDs, want) {
		t.Errorf("package order = %v, want %v", packageIDs, want)
	}

	edgeKeys := make([]domain.EdgeKey, 0, len(doc.Edges))
	for _, e := range doc.Edges {
		edgeKeys = append(edgeKeys, domain.EdgeKey{From: e.From, To: e.To})
	}
	want := []domain.EdgeKey{
		{From: -1, To: math.MinInt},
		{From: -1, To: math.MaxInt},
		{From: math.MaxInt, To: 0},
	}
	if !reflect.DeepEqual(edgeKeys, want) {
		t.Errorf("edge order = %v, want %v", edgeKeys, want)
	}
}
