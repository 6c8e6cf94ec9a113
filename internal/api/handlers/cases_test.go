package handlers

import (
	"context"
	"delivery-plan-solver/internal/api/dto"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const caseDocument = `NODES 3
HUBS 1
PACKAGES 1
TRUCK_CAPACITY 1
DEPOT_ID 0

// --- NODES ---
0 0 0
1 4 0
2 8 0

// --- HUBS ---
1 1.0

// --- PACKAGES ---
1 0 2

// --- EDGES ---
0 1 4
1 2 4
`

func TestCasesListReturnsSummaries(t *testing.T) {
	// build test data
	h := &CaseHandler{Repo: newFakeCaseRepo()}
	h.Repo.SaveCase(context.Background(), "first", lineCase())
	h.Repo.SaveCase(context.Background(), "second", lineCase())

	// call the handler under test
	req := httptest.NewRequest(http.MethodGet, "/cases", nil)
	w := httptest.NewRecorder()
	h.Cases(w, req)

	// verify behavior
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var res dto.ListCasesResponse
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if len(res.Cases) != 2 {
		t.Fatalf("listed %d cases, want 2", len(res.Cases))
	}
	// newest first
	if res.Cases[0].Name != "second" || res.Cases[1].Name != "first" {
		t.Errorf("case order = [%s %s], want [second first]", res.Cases[0].Name, res.Cases[1].Name)
	}
	if res.Cases[0].NodeCount != 3 || res.Cases[0].TruckCapacity != 1 {
		t.Errorf("summary = %+v", res.Cases[0])
	}
}

func TestCasesCreateStoresParsedDocument(t *testing.T) {
	repo := newFakeCaseRepo()
	h := &CaseHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodPost, "/cases?name=line", strings.NewReader(caseDocument))
	w := httptest.NewRecorder()
	h.Cases(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}

	var res dto.CreateCaseResponse
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.CaseID != 1 {
		t.Errorf("CaseID = %d, want 1", res.CaseID)
	}

	if repo.names[1] != "line" {
		t.Errorf("stored name = %q, want %q", repo.names[1], "line")
	}
	stored := repo.cases[1]
	if stored == nil {
		t.Fatal("case was not stored")
	}
	if stored.Config.NodeCount != 3 || len(stored.Edges) != 4 {
		t.Errorf("stored case = %+v", stored.Config)
	}
}

func TestCasesCreateDefaultsName(t *testing.T) {
	repo := newFakeCaseRepo()
	h := &CaseHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodPost, "/cases", strings.NewReader(caseDocument))
	w := httptest.NewRecorder()
	h.Cases(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if repo.names[1] != "uploaded" {
		t.Errorf("stored name = %q, want %q", repo.names[1], "uploaded")
	}
}

func TestCasesCreateRejectsBadDocument(t *testing.T) {
	h := &CaseHandler{Repo: newFakeCaseRepo()}

	// header is missing TRUCK_CAPACITY and DEPOT_ID
	req := httptest.NewRequest(http.MethodPost, "/cases", strings.NewReader("NODES 3\nHUBS 0\nPACKAGES 0\n"))
	w := httptest.NewRecorder()
	h.Cases(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCasesMethodNotAllowed(t *testing.T) {
	h := &CaseHandler{Repo: newFakeCaseRepo()}

	req := httptest.NewRequest(http.MethodDelete, "/cases", nil)
	w := httptest.NewRecorder()
	h.Cases(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
	if allow := w.Header().Get("Allow"); allow != "GET, POST" {
		t.Errorf("Allow = %q, want %q", allow, "GET, POST")
	}
}
