package postgres_adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// PostgresSavedSearchRepository - хранилище сохраненных поисков.
// Критерии лежат в колонке jsonb.
type PostgresSavedSearchRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresSavedSearchRepository(pool *pgxpool.Pool) (*PostgresSavedSearchRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresSavedSearchRepository{pool: pool}, nil
}

func (r *PostgresSavedSearchRepository) Create(ctx context.Context, s *domain.SavedSearch) error {
	rawCriteria, err := json.Marshal(s.Criteria)
	if err != nil {
		return fmt.Errorf("failed to encode search criteria: %w", err)
	}

	query := `
		INSERT INTO saved_searches (id, user_id, name, criteria, alert_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`

	_, err = r.pool.Exec(ctx, query, s.ID, s.UserID, s.Name, rawCriteria, s.AlertEnabled)
	if err != nil {
		return fmt.Errorf("failed to insert saved search: %w", err)
	}
	return nil
}

func (r *PostgresSavedSearchRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error) {
	query := `
		SELECT id, user_id, name, criteria, alert_enabled, last_checked_at, created_at, updated_at
		FROM saved_searches
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved searches: %w", err)
	}
	return collectSavedSearches(rows)
}

func (r *PostgresSavedSearchRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM saved_searches WHERE id = $1 AND user_id = $2`

	cmdTag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete saved search: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindWithAlerts - все поиски с включенными оповещениями (для планового обхода).
func (r *PostgresSavedSearchRepository) FindWithAlerts(ctx context.Context) ([]domain.SavedSearch, error) {
	query := `
		SELECT id, user_id, name, criteria, alert_enabled, last_checked_at, created_at, updated_at
		FROM saved_searches
		WHERE alert_enabled = true
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query searches with alerts: %w", err)
	}
	return collectSavedSearches(rows)
}

func (r *PostgresSavedSearchRepository) TouchLastChecked(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE saved_searches SET last_checked_at = $1, updated_at = NOW() WHERE id = $2`

	_, err := r.pool.Exec(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("failed to touch last_checked_at: %w", err)
	}
	return nil
}

func collectSavedSearches(rows pgx.Rows) ([]domain.SavedSearch, error) {
	defer rows.Close()

	searches := make([]domain.SavedSearch, 0)
	for rows.Next() {
		var s domain.SavedSearch
		var rawCriteria []byte
		err := rows.Scan(&s.ID, &s.UserID, &s.Name, &rawCriteria, &s.AlertEnabled, &s.LastCheckedAt, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved search row: %w", err)
		}
		if err := json.Unmarshal(rawCriteria, &s.Criteria); err != nil {
			return nil, fmt.Errorf("failed to decode saved search criteria: %w", err)
		}
		searches = append(searches, s)
	}
	return searches, rows.Err()
}
