package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/citizen-connect/grievance-service/internal/domain"
	"github.com/citizen-connect/grievance-service/pkg/util"
)

// PostgresStore persists grievances in a single table keyed by id.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps a connected pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Put inserts the record or replaces the existing row with the same id.
func (s *PostgresStore) Put(ctx context.Context, g *domain.Grievance) error {
	const query = `
        INSERT INTO grievances (id, ticket_number, citizen_name, citizen_phone, citizen_email,
                                title, description, category, priority, status, location,
                                admin_remarks, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
        ON CONFLICT (id) DO UPDATE SET
            citizen_name=EXCLUDED.citizen_name,
            citizen_phone=EXCLUDED.citizen_phone,
            citizen_email=EXCLUDED.citizen_email,
            title=EXCLUDED.title,
            description=EXCLUDED.description,
            category=EXCLUDED.category,
            priority=EXCLUDED.priority,
            status=EXCLUDED.status,
            location=EXCLUDED.location,
            admin_remarks=EXCLUDED.admin_remarks,
            updated_at=EXCLUDED.updated_at`
	_, err := s.pool.Exec(ctx, query,
		g.ID,
		g.TicketNumber,
		g.CitizenName,
		g.CitizenPhone,
		g.CitizenEmail,
		g.Title,
		g.Description,
		g.Category,
		g.Priority,
		g.Status,
		g.Location,
		g.AdminRemarks,
		g.CreatedAt,
		g.UpdatedAt,
	)
	if err != nil {
		return util.NewBackendError("put", err)
	}
	return nil
}

// Get fetches a single row by id.
func (s *PostgresStore) Get(ctx context.Context, id string) (*domain.Grievance, error) {
	const query = `
        SELECT id, ticket_number, citizen_name, citizen_phone, citizen_email,
               title, description, category, priority, status, location,
               admin_remarks, created_at, updated_at
        FROM grievances WHERE id=$1`
	var g domain.Grievance
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&g.ID,
		&g.TicketNumber,
		&g.CitizenName,
		&g.CitizenPhone,
		&g.CitizenEmail,
		&g.Title,
		&g.Description,
		&g.Category,
		&g.Priority,
		&g.Status,
		&g.Location,
		&g.AdminRemarks,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, util.NewBackendError("get", err)
	}
	return &g, nil
}

// Scan returns every row ordered by creation time.
func (s *PostgresStore) Scan(ctx context.Context) ([]domain.Grievance, error) {
	const query = `
        SELECT id, ticket_number, citizen_name, citizen_phone, citizen_email,
               title, description, category, priority, status, location,
               admin_remarks, created_at, updated_at
        FROM grievances ORDER BY created_at`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, util.NewBackendError("scan", err)
	}
	defer rows.Close()

	var result []domain.Grievance
	for rows.Next() {
		var g domain.Grievance
		if err := rows.Scan(
			&g.ID,
			&g.TicketNumber,
			&g.CitizenName,
			&g.CitizenPhone,
			&g.CitizenEmail,
			&g.Title,
			&g.Description,
			&g.Category,
			&g.Priority,
			&g.Status,
			&g.Location,
			&g.AdminRemarks,
			&g.CreatedAt,
			&g.UpdatedAt,
		); err != nil {
			return nil, util.NewBackendError("scan", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, util.NewBackendError("scan", err)
	}
	return result, nil
}

// Delete removes the row or returns ErrNotFound.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM grievances WHERE id=$1`, id)
	if err != nil {
		return util.NewBackendError("delete", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
