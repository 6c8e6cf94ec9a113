package repositories

import (
	"context"
	"database/sql"
	"delivery-plan-solver/internal/domain"
	"delivery-plan-solver/internal/ports"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the CaseRepository port. Cases are stored
// whole as a JSON payload next to their header columns, so listing never has
// to decode a network.
type SqliteCaseRepository struct{ DB *sql.DB }

func NewSqliteCaseRepository(db *sql.DB) *SqliteCaseRepository {
	return &SqliteCaseRepository{DB: db}
}

// Persist a case under a display name and return its assigned id.
func (s *SqliteCaseRepository) SaveCase(ctx context.Context, name string, c *domain.Case) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite case repository: DB is nil")
	}

	payload, err := encodeCase(c)
	if err != nil {
		return 0, fmt.Errorf("save case: %w", err)
	}

	query := `
	INSERT INTO cases (
		name,
		node_count,
		hub_count,
		package_count,
		truck_capacity,
		depot_id,
		payload
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(
		ctx, query,
		name,
		c.Config.NodeCount,
		c.Config.HubCount,
		c.Config.PackageCount,
		c.Config.TruckCapacity,
		c.Config.DepotID,
		string(payload),
	)
	if err != nil {
		return 0, fmt.Errorf("save case: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save case: last insert id: %w", err)
	}
	return id, nil
}

// Load one case in full, ports.ErrCaseNotFound when absent.
func (s *SqliteCaseRepository) GetCase(ctx context.Context, caseID int64) (*domain.Case, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite case repository: DB is nil")
	}

	query := `
	SELECT payload
	FROM cases
	WHERE case_id = ?;
	`
	var payload string
	err := s.DB.QueryRowContext(ctx, query, caseID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get case %d: %w", caseID, ports.ErrCaseNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get case %d: query cases table: %w", caseID, err)
	}

	c, err := decodeCase([]byte(payload))
	if err != nil {
		return nil, fmt.Errorf("get case %d: %w", caseID, err)
	}
	return c, nil
}

// List stored cases, newest first.
func (s *SqliteCaseRepository) ListCases(ctx context.Context) ([]ports.CaseSummary, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite case repository: DB is nil")
	}

	query := `
	SELECT
		case_id,
		name,
		node_count,
		hub_count,
		package_count,
		truck_capacity,
		depot_id
	FROM cases
	ORDER BY case_id DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cases: query cases table: %w", err)
	}
	defer rows.Close()

	summaries := make([]ports.CaseSummary, 0, 16)
	for rows.Next() {
		var cs ports.CaseSummary
		err := rows.Scan(
			&cs.CaseID,
			&cs.Name,
			&cs.NodeCount,
			&cs.HubCount,
			&cs.PackageCount,
			&cs.TruckCapacity,
			&cs.DepotID,
		)
		if err != nil {
			return nil, fmt.Errorf("list cases: scan row: %w", err)
		}
		summaries = append(summaries, cs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cases: row iteration: %w", err)
	}

	return summaries, nil
}
