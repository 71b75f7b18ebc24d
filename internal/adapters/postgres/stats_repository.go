package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// OwnerStatsRepository считает агрегаты дашборда владельца одним запросом.
type OwnerStatsRepository struct {
	pool *pgxpool.Pool
}

func NewOwnerStatsRepository(pool *pgxpool.Pool) (*OwnerStatsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &OwnerStatsRepository{pool: pool}, nil
}

func (r *OwnerStatsRepository) OwnerStats(ctx context.Context, ownerID uuid.UUID) (*domain.DashboardStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE p.status = 'active'),
			COALESCE(SUM(p.views), 0),
			COALESCE(SUM(p.favorites_count), 0),
			(SELECT COUNT(*) FROM leads l JOIN properties pp ON pp.id = l.property_id WHERE pp.owner_id = $1)
		FROM properties p
		WHERE p.owner_id = $1`

	var stats domain.DashboardStats
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&stats.TotalProperties,
		&stats.ActiveListings,
		&stats.TotalViews,
		&stats.TotalFavorites,
		&stats.TotalLeads,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query owner stats: %w", err)
	}
	return &stats, nil
}
