package postgres_adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// UserActivityRepository читает историю активности пользователя
// (просмотры, избранное, сохраненные поиски) для построения профиля
// предпочтений. Объявления подтягиваются одним JOIN, чтобы профилю
// не пришлось ходить за каждым объектом отдельно.
type UserActivityRepository struct {
	pool *pgxpool.Pool
}

func NewUserActivityRepository(pool *pgxpool.Pool) (*UserActivityRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &UserActivityRepository{pool: pool}, nil
}

func (r *UserActivityRepository) RecentViewings(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Viewing, error) {
	query := fmt.Sprintf(`
		SELECT v.id, v.property_id, v.user_id, v.agent_id, v.scheduled_at, v.status, v.notes, v.created_at, v.updated_at,
			%s
		FROM viewings v
		JOIN properties p ON p.id = v.property_id
		WHERE v.user_id = $1
		ORDER BY v.created_at DESC
		LIMIT $2`, propertyColumns)

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent viewings: %w", err)
	}
	defer rows.Close()

	viewings := make([]domain.Viewing, 0, limit)
	for rows.Next() {
		var v domain.Viewing
		var p domain.Property
		err := rows.Scan(
			&v.ID, &v.PropertyID, &v.UserID, &v.AgentID, &v.ScheduledAt, &v.Status, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
			&p.ID, &p.Title, &p.Description, &p.PropertyType, &p.ListingType, &p.Status,
			&p.Price, &p.MaintenanceCost, &p.SecurityDeposit,
			&p.Address, &p.Locality, &p.City, &p.State, &p.Pincode,
			&p.Latitude, &p.Longitude,
			&p.Bedrooms, &p.Bathrooms, &p.Balconies, &p.TotalFloors, &p.FloorNumber,
			&p.CarpetArea, &p.BuiltUpArea, &p.Furnishing, &p.Parking,
			&p.OwnerID, &p.AgentID, &p.Views, &p.FavoritesCount,
			&p.Featured, &p.FeaturedUntil, &p.Verified,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan viewing row: %w", err)
		}
		v.Property = &p
		viewings = append(viewings, v)
	}
	return viewings, rows.Err()
}

func (r *UserActivityRepository) RecentFavorites(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Favorite, error) {
	query := fmt.Sprintf(`
		SELECT f.id, f.user_id, f.property_id, f.created_at,
			%s
		FROM favorites f
		JOIN properties p ON p.id = f.property_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
		LIMIT $2`, propertyColumns)

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent favorites: %w", err)
	}
	defer rows.Close()

	favorites := make([]domain.Favorite, 0, limit)
	for rows.Next() {
		var f domain.Favorite
		var p domain.Property
		err := rows.Scan(
			&f.ID, &f.UserID, &f.PropertyID, &f.CreatedAt,
			&p.ID, &p.Title, &p.Description, &p.PropertyType, &p.ListingType, &p.Status,
			&p.Price, &p.MaintenanceCost, &p.SecurityDeposit,
			&p.Address, &p.Locality, &p.City, &p.State, &p.Pincode,
			&p.Latitude, &p.Longitude,
			&p.Bedrooms, &p.Bathrooms, &p.Balconies, &p.TotalFloors, &p.FloorNumber,
			&p.CarpetArea, &p.BuiltUpArea, &p.Furnishing, &p.Parking,
			&p.OwnerID, &p.AgentID, &p.Views, &p.FavoritesCount,
			&p.Featured, &p.FeaturedUntil, &p.Verified,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		f.Property = &p
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

func (r *UserActivityRepository) RecentSavedSearches(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SavedSearch, error) {
	query := `
		SELECT id, user_id, name, criteria, alert_enabled, last_checked_at, created_at, updated_at
		FROM saved_searches
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent saved searches: %w", err)
	}
	defer rows.Close()

	searches := make([]domain.SavedSearch, 0, limit)
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
