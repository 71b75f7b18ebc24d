package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// ViewingsRepositoryPort - хранилище записей на просмотр.
type ViewingsRepositoryPort interface {
	Create(ctx context.Context, v *domain.Viewing) error

	// FindByUser - просмотры, назначенные пользователем.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Viewing, error)

	// FindByProperty - просмотры по объявлению (для владельца/агента).
	FindByProperty(ctx context.Context, propertyID uuid.UUID, limit, offset int) ([]domain.Viewing, error)

	GetByID(ctx context.Context, id uuid.UUID) (*domain.Viewing, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)
}
