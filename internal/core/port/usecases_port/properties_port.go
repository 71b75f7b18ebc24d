package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

type FindPropertiesUseCasePort interface {
	Execute(ctx context.Context, filters domain.PropertyFilters, limit, offset int) (*domain.PaginatedProperties, error)
}

type SearchPropertiesUseCasePort interface {
	Execute(ctx context.Context, query string, limit, offset int) (*domain.PaginatedProperties, error)
}

// GetPropertyDetailsUseCasePort - карточка объекта; попутно инкрементирует счетчик просмотров.
type GetPropertyDetailsUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error)
}

type GetFeaturedPropertiesUseCasePort interface {
	Execute(ctx context.Context, limit int) ([]domain.Property, error)
}

type CreatePropertyUseCasePort interface {
	Execute(ctx context.Context, p *domain.Property) error
}

type UpdatePropertyUseCasePort interface {
	Execute(ctx context.Context, id, ownerID uuid.UUID, upd domain.PropertyUpdate) error
}

type DeletePropertyUseCasePort interface {
	Execute(ctx context.Context, id, ownerID uuid.UUID) error
}

// ModeratePropertyUseCasePort - одобрение/отклонение объявления администратором.
type ModeratePropertyUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID, approve bool) error
}
