package repositories

import (
	"context"
	"database/sql"
	"delivery-plan-solver/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the PlanRepository port. Route and hub
// lists are stored as JSON arrays in text columns.
type SqlitePlanRepository struct{ DB *sql.DB }

func NewSqlitePlanRepository(db *sql.DB) *SqlitePlanRepository {
	return &SqlitePlanRepository{DB: db}
}

// Persist one solved plan. A plan id that already exists is left untouched.
func (s *SqlitePlanRepository) SavePlan(ctx context.Context, rec ports.PlanRecord) error {
	if s.DB == nil {
		return errors.New("sqlite plan repository: DB is nil")
	}

	route, err := json.Marshal(rec.Route)
	if err != nil {
		return fmt.Errorf("save plan: encode route: %w", err)
	}
	hubs, err := json.Marshal(rec.ActiveHubs)
	if err != nil {
		return fmt.Errorf("save plan: encode hubs: %w", err)
	}

	query := `
	INSERT OR IGNORE INTO plans (
		plan_id,
		case_id,
		route,
		active_hubs,
		total_cost,
		distance,
		hub_cost,
		duration_seconds
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = s.DB.ExecContext(
		ctx, query,
		rec.PlanID,
		rec.CaseID,
		string(route),
		string(hubs),
		rec.TotalCost,
		rec.Distance,
		rec.HubCost,
		rec.DurationSeconds,
	)
	if err != nil {
		return fmt.Errorf("save plan %s: insert: %w", rec.PlanID, err)
	}
	return nil
}
