package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/incident"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/database"
)

type incidentRepositoryImpl struct {
	db *database.DB
}

func NewIncidentRepository(db *database.DB) incident.IncidentRepository {
	return &incidentRepositoryImpl{db: db}
}

const incidentColumns = `id, employee_id, date, description, observation, created_at, updated_at`

func scanIncident(row pgx.Row) (incident.Incident, error) {
	var inc incident.Incident
	err := row.Scan(
		&inc.ID, &inc.EmployeeID, &inc.Date, &inc.Description, &inc.Observation,
		&inc.CreatedAt, &inc.UpdatedAt,
	)
	return inc, err
}

func (r *incidentRepositoryImpl) GetByID(ctx context.Context, id string) (incident.Incident, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`
	inc, err := scanIncident(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return incident.Incident{}, incident.ErrIncidentNotFound
		}
		return incident.Incident{}, fmt.Errorf("get incident by id: %w", err)
	}
	return inc, nil
}

func (r *incidentRepositoryImpl) List(ctx context.Context) ([]incident.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents ORDER BY date DESC, created_at DESC`
	return r.queryIncidents(ctx, query)
}

func (r *incidentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]incident.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE employee_id = $1 ORDER BY date DESC, created_at DESC`
	return r.queryIncidents(ctx, query, employeeID)
}

func (r *incidentRepositoryImpl) queryIncidents(ctx context.Context, query string, args ...any) ([]incident.Incident, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	defer rows.Close()

	var incidents []incident.Incident
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, inc)
	}
	return incidents, rows.Err()
}

func (r *incidentRepositoryImpl) Create(ctx context.Context, inc incident.Incident) (incident.Incident, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO incidents (employee_id, date, description, observation)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + incidentColumns

	created, err := scanIncident(q.QueryRow(ctx, query,
		inc.EmployeeID, inc.Date, inc.Description, inc.Observation,
	))
	if err != nil {
		return incident.Incident{}, fmt.Errorf("create incident: %w", err)
	}
	return created, nil
}

func (r *incidentRepositoryImpl) Update(ctx context.Context, req incident.UpdateIncidentRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []any{}

	if req.Date != nil {
		args = append(args, *req.Date)
		setClauses = append(setClauses, fmt.Sprintf("date = $%d", len(args)))
	}
	if req.Description != nil {
		args = append(args, *req.Description)
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", len(args)))
	}
	if req.Observation != nil {
		args = append(args, *req.Observation)
		setClauses = append(setClauses, fmt.Sprintf("observation = $%d", len(args)))
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE incidents SET %s WHERE id = $%d`,
		strings.Join(setClauses, ", "), len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update incident: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return incident.ErrIncidentNotFound
	}
	return nil
}

func (r *incidentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM incidents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete incident: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return incident.ErrIncidentNotFound
	}
	return nil
}
