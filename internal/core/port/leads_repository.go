package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// LeadsRepositoryPort - хранилище заявок по объявлениям.
type LeadsRepositoryPort interface {
	Create(ctx context.Context, lead *domain.Lead) error

	// FindSentByUser - заявки, оставленные самим пользователем.
	FindSentByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Lead, error)

	// FindReceivedByOwner - заявки по объявлениям, принадлежащим владельцу.
	FindReceivedByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.Lead, error)

	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)
}
