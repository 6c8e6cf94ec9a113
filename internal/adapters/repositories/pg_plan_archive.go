package repositories

import (
	"context"
	"database/sql"
	"delivery-plan-solver/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the PlanRepository port. Deployments
// point it at a shared reporting database so plans solved on any instance
// land in one archive; the local SQLite store stays the source of truth for
// serving.
type PgPlanArchive struct{ DB *sql.DB }

func NewPgPlanArchive(db *sql.DB) *PgPlanArchive {
	return &PgPlanArchive{DB: db}
}

// Initialize the Postgres archive schema.
func InitArchiveSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init archive schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS plan_archive (
		plan_id TEXT PRIMARY KEY,
		case_id BIGINT NOT NULL,
		route TEXT NOT NULL,
		active_hubs TEXT NOT NULL,
		total_cost DOUBLE PRECISION NOT NULL,
		distance DOUBLE PRECISION NOT NULL,
		hub_cost DOUBLE PRECISION NOT NULL,
		duration_seconds DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init archive schema: %w", err)
	}
	return nil
}

// Persist one solved plan. A plan id that already exists is left untouched.
func (p *PgPlanArchive) SavePlan(ctx context.Context, rec ports.PlanRecord) error {
	if p.DB == nil {
		return errors.New("pg plan archive: DB is nil")
	}

	route, err := json.Marshal(rec.Route)
	if err != nil {
		return fmt.Errorf("archive plan: encode route: %w", err)
	}
	hubs, err := json.Marshal(rec.ActiveHubs)
	if err != nil {
		return fmt.Errorf("archive plan: encode hubs: %w", err)
	}

	query := `
	INSERT INTO plan_archive (
		plan_id,
		case_id,
		route,
		active_hubs,
		total_cost,
		distance,
		hub_cost,
		duration_seconds
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (plan_id) DO NOTHING;
	`
	_, err = p.DB.ExecContext(
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
		return fmt.Errorf("archive plan %s: insert: %w", rec.PlanID, err)
	}
	return nil
}
