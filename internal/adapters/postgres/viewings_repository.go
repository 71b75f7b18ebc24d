package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// PostgresViewingsRepository - хранилище записей на просмотр.
type PostgresViewingsRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresViewingsRepository(pool *pgxpool.Pool) (*PostgresViewingsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresViewingsRepository{pool: pool}, nil
}

func (r *PostgresViewingsRepository) Create(ctx context.Context, v *domain.Viewing) error {
	query := `
		INSERT INTO viewings (id, property_id, user_id, agent_id, scheduled_at, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err := r.pool.Exec(ctx, query, v.ID, v.PropertyID, v.UserID, v.AgentID, v.ScheduledAt, v.Status, v.Notes)
	if err != nil {
		return fmt.Errorf("failed to insert viewing: %w", err)
	}
	return nil
}

func (r *PostgresViewingsRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Viewing, error) {
	query := `
		SELECT id, property_id, user_id, agent_id, scheduled_at, status, notes, created_at, updated_at
		FROM viewings
		WHERE user_id = $1
		ORDER BY scheduled_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query viewings by user: %w", err)
	}
	return collectViewings(rows)
}

func (r *PostgresViewingsRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID, limit, offset int) ([]domain.Viewing, error) {
	query := `
		SELECT id, property_id, user_id, agent_id, scheduled_at, status, notes, created_at, updated_at
		FROM viewings
		WHERE property_id = $1
		ORDER BY scheduled_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, propertyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query viewings by property: %w", err)
	}
	return collectViewings(rows)
}

func (r *PostgresViewingsRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Viewing, error) {
	query := `
		SELECT id, property_id, user_id, agent_id, scheduled_at, status, notes, created_at, updated_at
		FROM viewings
		WHERE id = $1`

	var v domain.Viewing
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.PropertyID, &v.UserID, &v.AgentID, &v.ScheduledAt, &v.Status, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get viewing by id: %w", err)
	}
	return &v, nil
}

func (r *PostgresViewingsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE viewings SET status = $1, updated_at = NOW() WHERE id = $2`

	cmdTag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update viewing status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresViewingsRepository) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM viewings WHERE property_id = $1`
	if err := r.pool.QueryRow(ctx, query, propertyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count viewings: %w", err)
	}
	return count, nil
}

func collectViewings(rows pgx.Rows) ([]domain.Viewing, error) {
	defer rows.Close()

	viewings := make([]domain.Viewing, 0)
	for rows.Next() {
		var v domain.Viewing
		err := rows.Scan(&v.ID, &v.PropertyID, &v.UserID, &v.AgentID, &v.ScheduledAt, &v.Status, &v.Notes, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan viewing row: %w", err)
		}
		viewings = append(viewings, v)
	}
	return viewings, rows.Err()
}
