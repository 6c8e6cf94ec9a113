package api

import (
	"delivery-plan-solver/internal/api/handlers"
	"delivery-plan-solver/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.CaseRepository, matrixCache ports.MatrixCache, archive ports.PlanRepository) http.Handler {
	mux := http.NewServeMux()

	caseHandler := &handlers.CaseHandler{Repo: repo}
	solveHandler := &handlers.SolveHandler{
		Repo:    repo,
		Matrix:  matrixCache,
		Archive: archive,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/cases", caseHandler.Cases)
	mux.HandleFunc("/solve", solveHandler.Solve)

	return requestIDMiddleware(loggingMiddleware(mux))
}
