package handlers

import (
	"delivery-plan-solver/internal/api/dto"
	"delivery-plan-solver/internal/ports"
	"delivery-plan-solver/internal/services"
	"delivery-plan-solver/internal/solver"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
)

// SolveHandler handles HTTP requests that run the planner against a stored
// case.
type SolveHandler struct {
	Repo    ports.CaseRepository
	Matrix  ports.MatrixCache
	Archive ports.PlanRepository
}

// Solve computes the minimum-cost delivery plan for one stored case and
// returns it. Infeasible or invalid cases map to 422 so callers can tell
// them apart from server faults.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SolveRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.CaseID < 1 {
		writeError(w, r, http.StatusBadRequest, "case_id must be positive")
		return
	}

	result, err := services.SolveCase(r.Context(), services.SolveCaseRequest{CaseID: req.CaseID}, h.Repo, h.Matrix, h.Archive)
	switch {
	case errors.Is(err, ports.ErrCaseNotFound):
		writeError(w, r, http.StatusNotFound, "case not found")
		return
	case errors.Is(err, solver.ErrInvalidCase):
		// name the violated precondition so the uploader can fix the case
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, solver.ErrNoFeasibleRoute):
		writeError(w, r, http.StatusUnprocessableEntity, "no feasible route for this case")
		return
	case err != nil:
		log.Printf("solving case %d failed: %v", req.CaseID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.SolveResponse{
		PlanID:          result.PlanID,
		CaseID:          result.CaseID,
		Route:           result.Plan.Route,
		ActiveHubs:      result.Plan.ActiveHubs,
		TotalCost:       result.Plan.TotalCost,
		Distance:        result.Plan.Distance,
		HubCost:         result.Plan.HubCost,
		DurationSeconds: result.DurationSeconds,
	}

	writeJSON(w, r, http.StatusOK, res)
}
