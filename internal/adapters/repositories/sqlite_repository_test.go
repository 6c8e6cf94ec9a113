package repositories

import (
	"context"
	"database/sql"
	"delivery-plan-solver/internal/domain"
	"delivery-plan-solver/internal/ports"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func storedCase() *domain.Case {
	return &domain.Case{
		Config: domain.Config{NodeCount: 4, HubCount: 2, PackageCount: 2, TruckCapacity: 10, DepotID: 0},
		Nodes: map[int]domain.Coordinates{
			0: {X: 0, Y: 0}, 1: {X: 5, Y: 0}, 2: {X: 10, Y: 0}, 3: {X: 0, Y: 9},
		},
		// order matters: hub 3 is listed before hub 1 on purpose
		Hubs: []domain.Hub{{HubID: 3, Cost: 2.5}, {HubID: 1, Cost: 1}},
		Packages: map[int]domain.Package{
			1: {PackageID: 1, Origin: 0, Destination: 2},
			2: {PackageID: 2, Origin: 0, Destination: 3},
		},
		Edges: map[domain.EdgeKey]float64{
			{From: 0, To: 1}: 5, {From: 1, To: 0}: 5,
			{From: 1, To: 2}: 5, {From: 2, To: 1}: 5,
		},
	}
}

func TestCaseRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSqliteCaseRepository(db)
	ctx := context.Background()

	id, err := repo.SaveCase(ctx, "roundtrip.txt", storedCase())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id <= 0 {
		t.Fatalf("case id = %d, want positive", id)
	}

	got, err := repo.GetCase(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, storedCase()) {
		t.Errorf("restored case differs:\ngot  %+v\nwant %+v", got, storedCase())
	}

	// hub order must survive storage exactly
	if got.Hubs[0].HubID != 3 || got.Hubs[1].HubID != 1 {
		t.Errorf("hub order lost: %v", got.Hubs)
	}
}

func TestCaseRepositoryNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewSqliteCaseRepository(db)

	_, err := repo.GetCase(context.Background(), 42)
	if !errors.Is(err, ports.ErrCaseNotFound) {
		t.Fatalf("err = %v, want ErrCaseNotFound", err)
	}
}

func TestCaseRepositoryListNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewSqliteCaseRepository(db)
	ctx := context.Background()

	first, err := repo.SaveCase(ctx, "first.txt", storedCase())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.SaveCase(ctx, "second.txt", storedCase())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summaries, err := repo.ListCases(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("listed %d cases, want 2", len(summaries))
	}
	if summaries[0].CaseID != second || summaries[1].CaseID != first {
		t.Errorf("order = [%d %d], want [%d %d]", summaries[0].CaseID, summaries[1].CaseID, second, first)
	}
	if summaries[0].Name != "second.txt" {
		t.Errorf("Name = %q, want second.txt", summaries[0].Name)
	}
	if summaries[0].NodeCount != 4 || summaries[0].TruckCapacity != 10 {
		t.Errorf("summary header = %+v", summaries[0])
	}
}

func TestPlanRepositoryIgnoresDuplicateID(t *testing.T) {
	db := openTestDB(t)
	repo := NewSqlitePlanRepository(db)
	ctx := context.Background()

	rec := ports.PlanRecord{
		PlanID:          "plan-1",
		CaseID:          7,
		Route:           []int{0, 1, 2, 0},
		ActiveHubs:      []int{1},
		TotalCost:       20,
		Distance:        19,
		HubCost:         1,
		DurationSeconds: 0.25,
	}

	if err := repo.SavePlan(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec.TotalCost = 99
	if err := repo.SavePlan(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	var total float64
	if err := db.QueryRow(`SELECT COUNT(*), MAX(total_cost) FROM plans;`).Scan(&count, &total); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("stored %d plans, want 1", count)
	}
	if total != 20 {
		t.Errorf("total_cost = %g, want the original 20", total)
	}
}

func TestSeedCaseDir(t *testing.T) {
	db := openTestDB(t)
	repo := NewSqliteCaseRepository(db)
	dir := t.TempDir()

	doc := `NODES 2
HUBS 0
PACKAGES 1
TRUCK_CAPACITY 5
DEPOT_ID 0

// --- NODES ---
0 0 0
1 1 0

// --- PACKAGES ---
1 0 1

// --- EDGES ---
0 1 4
`
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(doc), 0o644); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// a non-case file must be ignored
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignore me"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, err := SeedCaseDir(context.Background(), repo, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("seeded %d cases, want 2", count)
	}

	summaries, err := repo.ListCases(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("listed %d cases, want 2", len(summaries))
	}
	// lexical seeding order and newest-first listing put b.txt on top
	if summaries[0].Name != "b.txt" || summaries[1].Name != "a.txt" {
		t.Errorf("names = [%s %s], want [b.txt a.txt]", summaries[0].Name, summaries[1].Name)
	}
}
