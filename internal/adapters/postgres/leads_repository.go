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

// PostgresLeadsRepository - хранилище заявок по объявлениям.
type PostgresLeadsRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresLeadsRepository(pool *pgxpool.Pool) (*PostgresLeadsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresLeadsRepository{pool: pool}, nil
}

func (r *PostgresLeadsRepository) Create(ctx context.Context, lead *domain.Lead) error {
	query := `
		INSERT INTO leads (id, property_id, user_id, agent_id, name, email, phone, message, status, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`

	_, err := r.pool.Exec(ctx, query,
		lead.ID, lead.PropertyID, lead.UserID, lead.AgentID,
		lead.Name, lead.Email, lead.Phone, lead.Message, lead.Status, lead.Source,
	)
	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}

func (r *PostgresLeadsRepository) FindSentByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Lead, error) {
	query := `
		SELECT id, property_id, user_id, agent_id, name, email, phone, message, status, source, created_at, updated_at
		FROM leads
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query sent leads: %w", err)
	}
	return collectLeads(rows)
}

// FindReceivedByOwner - заявки по объявлениям, принадлежащим владельцу.
func (r *PostgresLeadsRepository) FindReceivedByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.Lead, error) {
	query := `
		SELECT l.id, l.property_id, l.user_id, l.agent_id, l.name, l.email, l.phone, l.message, l.status, l.source, l.created_at, l.updated_at
		FROM leads l
		JOIN properties p ON p.id = l.property_id
		WHERE p.owner_id = $1
		ORDER BY l.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query received leads: %w", err)
	}
	return collectLeads(rows)
}

func (r *PostgresLeadsRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	query := `
		SELECT id, property_id, user_id, agent_id, name, email, phone, message, status, source, created_at, updated_at
		FROM leads
		WHERE id = $1`

	var l domain.Lead
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.PropertyID, &l.UserID, &l.AgentID,
		&l.Name, &l.Email, &l.Phone, &l.Message, &l.Status, &l.Source,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lead by id: %w", err)
	}
	return &l, nil
}

func (r *PostgresLeadsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2`

	cmdTag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresLeadsRepository) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM leads WHERE property_id = $1`
	if err := r.pool.QueryRow(ctx, query, propertyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

func collectLeads(rows pgx.Rows) ([]domain.Lead, error) {
	defer rows.Close()

	leads := make([]domain.Lead, 0)
	for rows.Next() {
		var l domain.Lead
		err := rows.Scan(
			&l.ID, &l.PropertyID, &l.UserID, &l.AgentID,
			&l.Name, &l.Email, &l.Phone, &l.Message, &l.Status, &l.Source,
			&l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead row: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}
