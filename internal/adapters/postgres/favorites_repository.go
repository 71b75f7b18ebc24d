package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// PostgresFavoritesRepository - реализация порта избранного для PostgreSQL.
// Добавление и удаление ведут денормализованный счетчик favorites_count
// у объявления в одной транзакции.
type PostgresFavoritesRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFavoritesRepository(pool *pgxpool.Pool) (*PostgresFavoritesRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresFavoritesRepository{pool: pool}, nil
}

// Add добавляет запись в favorites и увеличивает счетчик объявления.
func (r *PostgresFavoritesRepository) Add(ctx context.Context, userID, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresFavoritesRepository",
		"method":      "Add",
		"user_id":     userID,
		"property_id": propertyID,
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		repoLogger.Error("Failed to begin transaction", err, nil)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertQuery := `INSERT INTO favorites (id, user_id, property_id, created_at) VALUES ($1, $2, $3, NOW())`
	_, err = tx.Exec(ctx, insertQuery, uuid.New(), userID, propertyID)
	if err != nil {
		// 23505 - unique_violation: запись уже существует, это не ошибка.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			repoLogger.Warn("Favorite already exists, operation considered successful.", nil)
			return nil
		}
		repoLogger.Error("Failed to add favorite", err, nil)
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	countQuery := `UPDATE properties SET favorites_count = favorites_count + 1 WHERE id = $1`
	if _, err := tx.Exec(ctx, countQuery, propertyID); err != nil {
		repoLogger.Error("Failed to bump favorites count", err, nil)
		return fmt.Errorf("failed to bump favorites count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		repoLogger.Error("Failed to commit transaction", err, nil)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("Successfully added to favorites.", nil)
	return nil
}

// Remove удаляет запись из favorites и уменьшает счетчик объявления.
func (r *PostgresFavoritesRepository) Remove(ctx context.Context, userID, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresFavoritesRepository",
		"method":      "Remove",
		"user_id":     userID,
		"property_id": propertyID,
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		repoLogger.Error("Failed to begin transaction", err, nil)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	deleteQuery := `DELETE FROM favorites WHERE user_id = $1 AND property_id = $2`
	cmdTag, err := tx.Exec(ctx, deleteQuery, userID, propertyID)
	if err != nil {
		repoLogger.Error("Failed to remove favorite", err, nil)
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Attempted to remove a favorite that did not exist.", nil)
		return nil
	}

	countQuery := `UPDATE properties SET favorites_count = GREATEST(favorites_count - 1, 0) WHERE id = $1`
	if _, err := tx.Exec(ctx, countQuery, propertyID); err != nil {
		repoLogger.Error("Failed to decrement favorites count", err, nil)
		return fmt.Errorf("failed to decrement favorites count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		repoLogger.Error("Failed to commit transaction", err, nil)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("Successfully removed from favorites.", nil)
	return nil
}

// FindByUser возвращает избранное пользователя с вложенными объявлениями.
func (r *PostgresFavoritesRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Favorite, int64, error) {
	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM favorites WHERE user_id = $1`
	if err := r.pool.QueryRow(ctx, countQuery, userID).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count favorites: %w", err)
	}

	if totalCount == 0 {
		return []domain.Favorite{}, 0, nil
	}

	dataQuery := fmt.Sprintf(`
		SELECT f.id, f.user_id, f.property_id, f.created_at,
			%s
		FROM favorites f
		JOIN properties p ON p.id = f.property_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3`, propertyColumns)

	rows, err := r.pool.Query(ctx, dataQuery, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query favorites: %w", err)
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
			return nil, 0, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		f.Property = &p
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error during favorites iteration: %w", err)
	}

	return favorites, totalCount, nil
}

func (r *PostgresFavoritesRepository) FindIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	dataQuery := `SELECT property_id FROM favorites WHERE user_id = $1`

	rows, err := r.pool.Query(ctx, dataQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorite IDs: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during favorite IDs iteration: %w", err)
	}

	return ids, nil
}
