package dto

type SolveRequest struct {
	CaseID int64 `json:"case_id"`
}

type SolveResponse struct {
	PlanID          string  `json:"plan_id"`
	CaseID          int64   `json:"case_id"`
	Route           []int   `json:"route"`
	ActiveHubs      []int   `json:"active_hubs"`
	TotalCost       float64 `json:"total_cost"`
	Distance        float64 `json:"distance"`
	HubCost         float64 `json:"hub_cost"`
	DurationSeconds float64 `json:"duration_seconds"`
}
