package postgres_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// PropertyCatalogRepository - читающая реализация каталога для PostgreSQL.
type PropertyCatalogRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyCatalogRepository(pool *pgxpool.Pool) (*PropertyCatalogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyCatalogRepository{pool: pool}, nil
}

func (r *PropertyCatalogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties p WHERE p.id = $1", propertyColumns)

	p, err := scanProperty(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get property by id: %w", err)
	}
	return p, nil
}

// Find ищет активные объявления по фильтрам с пагинацией.
func (r *PropertyCatalogRepository) Find(ctx context.Context, filters domain.PropertyFilters, limit, offset int) (*domain.PaginatedProperties, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyCatalogRepository",
		"method":    "Find",
		"limit":     limit,
		"offset":    offset,
	})

	whereClause, args := applyFilters(filters)

	// Сначала общее количество, потом страница данных.
	var totalCount int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM properties p %s", whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count properties", err, port.Fields{"query": countQuery})
		return nil, fmt.Errorf("failed to count properties: %w", err)
	}

	page := &domain.PaginatedProperties{
		Properties:   []domain.Property{},
		TotalCount:   totalCount,
		CurrentPage:  offset/limit + 1,
		ItemsPerPage: limit,
	}
	if totalCount == 0 {
		return page, nil
	}

	dataQuery := fmt.Sprintf(
		"SELECT %s FROM properties p %s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d",
		propertyColumns, whereClause, len(args)+1, len(args)+2,
	)
	rows, err := r.pool.Query(ctx, dataQuery, append(args, limit, offset)...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": dataQuery})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}

	properties, err := collectProperties(rows)
	if err != nil {
		repoLogger.Error("Failed to scan property rows", err, nil)
		return nil, fmt.Errorf("failed to scan properties: %w", err)
	}

	page.Properties = properties
	repoLogger.Debug("Found properties page.", port.Fields{"found_on_page": len(properties), "total": totalCount})
	return page, nil
}

// Search - поиск подстроки по заголовку, описанию, городу и району.
func (r *PropertyCatalogRepository) Search(ctx context.Context, query string, limit, offset int) (*domain.PaginatedProperties, error) {
	pattern := "%" + query + "%"

	whereClause := `WHERE p.status = 'active'
		AND (p.title ILIKE $1 OR p.description ILIKE $1 OR p.city ILIKE $1 OR p.locality ILIKE $1)`

	var totalCount int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM properties p %s", whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, pattern).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to count search results: %w", err)
	}

	page := &domain.PaginatedProperties{
		Properties:   []domain.Property{},
		TotalCount:   totalCount,
		CurrentPage:  offset/limit + 1,
		ItemsPerPage: limit,
	}
	if totalCount == 0 {
		return page, nil
	}

	dataQuery := fmt.Sprintf(
		"SELECT %s FROM properties p %s ORDER BY p.created_at DESC LIMIT $2 OFFSET $3",
		propertyColumns, whereClause,
	)
	rows, err := r.pool.Query(ctx, dataQuery, pattern, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}

	properties, err := collectProperties(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan search results: %w", err)
	}

	page.Properties = properties
	return page, nil
}

// ListFeatured возвращает активные премиум-объявления, свежие первыми.
func (r *PropertyCatalogRepository) ListFeatured(ctx context.Context, limit int) ([]domain.Property, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM properties p
		WHERE p.status = 'active' AND p.featured = true
		ORDER BY p.created_at DESC
		LIMIT $1`, propertyColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query featured properties: %w", err)
	}

	properties, err := collectProperties(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan featured properties: %w", err)
	}
	return properties, nil
}

// FindCandidates применяет профиль предпочтений как набор предикатов.
func (r *PropertyCatalogRepository) FindCandidates(ctx context.Context, q port.CandidateQuery) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyCatalogRepository",
		"method":    "FindCandidates",
	})

	whereClause, args := applyCandidateQuery(q)

	query := fmt.Sprintf(
		"SELECT %s FROM properties p %s ORDER BY p.created_at DESC LIMIT $%d",
		propertyColumns, whereClause, len(args)+1,
	)
	rows, err := r.pool.Query(ctx, query, append(args, q.Limit)...)
	if err != nil {
		repoLogger.Error("Failed to query candidates", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}

	properties, err := collectProperties(rows)
	if err != nil {
		repoLogger.Error("Failed to scan candidate rows", err, nil)
		return nil, fmt.Errorf("failed to scan candidates: %w", err)
	}

	repoLogger.Debug("Candidates selected.", port.Fields{"count": len(properties)})
	return properties, nil
}

func (r *PropertyCatalogRepository) FindActiveInCity(ctx context.Context, city string, excludeID uuid.UUID, limit int) ([]domain.Property, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM properties p
		WHERE p.status = 'active' AND p.city = $1 AND p.id != $2
		ORDER BY p.created_at DESC
		LIMIT $3`, propertyColumns)

	rows, err := r.pool.Query(ctx, query, city, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties in city: %w", err)
	}

	properties, err := collectProperties(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan properties in city: %w", err)
	}
	return properties, nil
}

func (r *PropertyCatalogRepository) FindCreatedSince(ctx context.Context, criteria domain.SearchCriteria, since time.Time, limit int) ([]domain.Property, error) {
	whereClause, args := applyCriteria(criteria, since)

	query := fmt.Sprintf(
		"SELECT %s FROM properties p %s ORDER BY p.created_at DESC LIMIT $%d",
		propertyColumns, whereClause, len(args)+1,
	)
	rows, err := r.pool.Query(ctx, query, append(args, limit)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query new properties for criteria: %w", err)
	}

	properties, err := collectProperties(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan new properties: %w", err)
	}
	return properties, nil
}

// IncrementViews атомарно увеличивает счетчик просмотров.
func (r *PropertyCatalogRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE properties SET views = views + 1 WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
