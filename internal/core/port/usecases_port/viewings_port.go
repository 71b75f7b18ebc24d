package usecases_port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

type ScheduleViewingUseCasePort interface {
	Execute(ctx context.Context, userID, propertyID uuid.UUID, at time.Time, notes string) (*domain.Viewing, error)
}

type GetUserViewingsUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Viewing, error)
}

// GetPropertyViewingsUseCasePort - просмотры по объявлению,
// доступно владельцу или назначенному агенту.
type GetPropertyViewingsUseCasePort interface {
	Execute(ctx context.Context, propertyID, actorID uuid.UUID, limit, offset int) ([]domain.Viewing, error)
}

// UpdateViewingStatusUseCasePort - переводы scheduled -> completed/cancelled.
// Отменить может записавшийся, завершить - владелец объявления.
type UpdateViewingStatusUseCasePort interface {
	Execute(ctx context.Context, viewingID, actorID uuid.UUID, status string) error
}
