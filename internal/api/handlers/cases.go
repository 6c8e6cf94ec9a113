package handlers

import (
	"delivery-plan-solver/internal/adapters/casefile"
	"delivery-plan-solver/internal/api/dto"
	"delivery-plan-solver/internal/ports"
	"log"
	"net/http"
	"strings"
)

// Uploaded case documents larger than this are rejected before parsing.
const maxCaseBytes = 10 << 20

// CaseHandler handles HTTP requests for stored planning cases.
type CaseHandler struct {
	Repo ports.CaseRepository
}

// Cases dispatches on method: GET lists the stored cases, POST uploads a
// new case document.
func (h *CaseHandler) Cases(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *CaseHandler) list(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Repo.ListCases(r.Context())
	if err != nil {
		log.Printf("listing cases failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListCasesResponse{Cases: make([]dto.CaseSummaryResponse, 0, len(summaries))}
	for _, s := range summaries {
		res.Cases = append(res.Cases, dto.CaseSummaryResponse{
			CaseID:        s.CaseID,
			Name:          s.Name,
			NodeCount:     s.NodeCount,
			HubCount:      s.HubCount,
			PackageCount:  s.PackageCount,
			TruckCapacity: s.TruckCapacity,
			DepotID:       s.DepotID,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// create reads a case document from the request body, validates that it
// parses, and stores it under the name given by the optional ?name= query
// parameter.
func (h *CaseHandler) create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	c, err := casefile.Parse(http.MaxBytesReader(w, r.Body, maxCaseBytes))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid case document: "+err.Error())
		return
	}

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		name = "uploaded"
	}

	caseID, err := h.Repo.SaveCase(r.Context(), name, c)
	if err != nil {
		log.Printf("saving case failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.CreateCaseResponse{CaseID: caseID})
}
