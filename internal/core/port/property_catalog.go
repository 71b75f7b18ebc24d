package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// CandidateQuery - запрос кандидатов для рекомендаций: предикаты профиля
// плюс исключение уже просмотренных/избранных объектов.
type CandidateQuery struct {
	Profile    domain.PreferenceProfile
	ExcludeIDs []uuid.UUID
	Limit      int
}

// PropertyCatalogPort - читающая сторона каталога объявлений.
type PropertyCatalogPort interface {
	// GetByID возвращает объявление или domain.ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)

	// Find ищет активные объявления по фильтрам с пагинацией,
	// сортировка - по дате создания по убыванию.
	Find(ctx context.Context, filters domain.PropertyFilters, limit, offset int) (*domain.PaginatedProperties, error)

	// Search - полнотекстовый поиск по заголовку/описанию/городу/району.
	Search(ctx context.Context, query string, limit, offset int) (*domain.PaginatedProperties, error)

	// ListFeatured возвращает активные премиум-объявления, свежие первыми.
	ListFeatured(ctx context.Context, limit int) ([]domain.Property, error)

	// FindCandidates применяет присутствующие поля профиля как предикаты
	// к активным объявлениям. Пустой список исключений пропускает
	// предикат исключения целиком.
	FindCandidates(ctx context.Context, q CandidateQuery) ([]domain.Property, error)

	// FindActiveInCity - активные объявления того же города без excludeID.
	FindActiveInCity(ctx context.Context, city string, excludeID uuid.UUID, limit int) ([]domain.Property, error)

	// FindCreatedSince - активные объявления по критериям сохраненного поиска,
	// созданные после указанного момента (для оповещений).
	FindCreatedSince(ctx context.Context, criteria domain.SearchCriteria, since time.Time, limit int) ([]domain.Property, error)

	// IncrementViews атомарно увеличивает счетчик просмотров.
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
