package dto

type CaseSummaryResponse struct {
	CaseID        int64  `json:"case_id"`
	Name          string `json:"name"`
	NodeCount     int    `json:"node_count"`
	HubCount      int    `json:"hub_count"`
	PackageCount  int    `json:"package_count"`
	TruckCapacity int    `json:"truck_capacity"`
	DepotID       int    `json:"depot_id"`
}

type ListCasesResponse struct {
	Cases []CaseSummaryResponse `json:"cases"`
}

type CreateCaseResponse struct {
	CaseID int64 `json:"case_id"`
}
