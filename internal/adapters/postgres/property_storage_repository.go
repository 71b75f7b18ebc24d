package postgres_adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// PropertyStorageRepository - пишущая реализация каталога для PostgreSQL.
type PropertyStorageRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyStorageRepository(pool *pgxpool.Pool) (*PropertyStorageRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyStorageRepository{pool: pool}, nil
}

// Create сохраняет новое объявление. Частичный уникальный индекс
// (owner_id, location_hash, property_type) WHERE status IN ('active','pending')
// не дает владельцу продублировать активное объявление в той же гео-ячейке.
func (r *PropertyStorageRepository) Create(ctx context.Context, p *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyStorageRepository",
		"method":      "Create",
		"property_id": p.ID,
		"owner_id":    p.OwnerID,
	})

	locationHash := buildLocationHash(p)

	query := `
		INSERT INTO properties (
			id, title, description, property_type, listing_type, status,
			price, maintenance_cost, security_deposit,
			address, locality, city, state, pincode,
			latitude, longitude,
			bedrooms, bathrooms, balconies, total_floors, floor_number,
			carpet_area, built_up_area, furnishing, parking,
			owner_id, agent_id, featured, verified, location_hash,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9,
			$10, $11, $12, $13, $14,
			$15, $16,
			$17, $18, $19, $20, $21,
			$22, $23, $24, $25,
			$26, $27, $28, $29, $30,
			NOW(), NOW()
		)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.PropertyType, p.ListingType, p.Status,
		p.Price, p.MaintenanceCost, p.SecurityDeposit,
		p.Address, p.Locality, p.City, p.State, p.Pincode,
		p.Latitude, p.Longitude,
		p.Bedrooms, p.Bathrooms, p.Balconies, p.TotalFloors, p.FloorNumber,
		p.CarpetArea, p.BuiltUpArea, p.Furnishing, p.Parking,
		p.OwnerID, p.AgentID, p.Featured, p.Verified, locationHash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // 23505 - unique_violation
			repoLogger.Warn("Duplicate listing detected by location hash.", nil)
			return domain.ErrDuplicateListing
		}
		repoLogger.Error("Failed to insert property", err, nil)
		return fmt.Errorf("failed to insert property: %w", err)
	}

	repoLogger.Debug("Property inserted.", nil)
	return nil
}

// Update применяет не-nil поля. Обновление чужого объявления выглядит
// как отсутствие строки.
func (r *PropertyStorageRepository) Update(ctx context.Context, id, ownerID uuid.UUID, upd domain.PropertyUpdate) error {
	setClauses := make([]string, 0)
	args := make([]interface{}, 0)
	argId := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argId))
		args = append(args, value)
		argId++
	}

	if upd.Title != nil {
		addSet("title", *upd.Title)
	}
	if upd.Description != nil {
		addSet("description", *upd.Description)
	}
	if upd.Price != nil {
		addSet("price", *upd.Price)
	}
	if upd.Status != nil {
		addSet("status", *upd.Status)
	}
	if upd.MaintenanceCost != nil {
		addSet("maintenance_cost", *upd.MaintenanceCost)
	}
	if upd.SecurityDeposit != nil {
		addSet("security_deposit", *upd.SecurityDeposit)
	}
	if upd.Furnishing != nil {
		addSet("furnishing", *upd.Furnishing)
	}
	if upd.Bedrooms != nil {
		addSet("bedrooms", *upd.Bedrooms)
	}
	if upd.Bathrooms != nil {
		addSet("bathrooms", *upd.Bathrooms)
	}
	if upd.CarpetArea != nil {
		addSet("carpet_area", *upd.CarpetArea)
	}
	if upd.BuiltUpArea != nil {
		addSet("built_up_area", *upd.BuiltUpArea)
	}

	if len(setClauses) == 0 {
		return nil // Нечего обновлять
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(
		"UPDATE properties SET %s WHERE id = $%d AND owner_id = $%d",
		strings.Join(setClauses, ", "), argId, argId+1,
	)
	args = append(args, id, ownerID)

	cmdTag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PropertyStorageRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `DELETE FROM properties WHERE id = $1 AND owner_id = $2`

	cmdTag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus меняет статус без проверки владельца (модерация).
func (r *PropertyStorageRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE properties SET status = $1, updated_at = NOW() WHERE id = $2`

	cmdTag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update property status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PropertyStorageRepository) SetFeatured(ctx context.Context, id uuid.UUID, until time.Time) error {
	query := `UPDATE properties SET featured = true, featured_until = $1, updated_at = NOW() WHERE id = $2`

	cmdTag, err := r.pool.Exec(ctx, query, until, id)
	if err != nil {
		return fmt.Errorf("failed to set featured: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExpireFeatured снимает флаг у всех объявлений с истекшим сроком.
func (r *PropertyStorageRepository) ExpireFeatured(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE properties
		SET featured = false, featured_until = NULL, updated_at = NOW()
		WHERE featured = true AND featured_until IS NOT NULL AND featured_until <= $1`

	cmdTag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire featured properties: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
