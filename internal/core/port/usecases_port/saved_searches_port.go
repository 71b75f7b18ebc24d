package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

type SaveSearchUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, name string, rawCriteria []byte, alertEnabled bool) (*domain.SavedSearch, error)
}

type GetSavedSearchesUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error)
}

type DeleteSavedSearchUseCasePort interface {
	Execute(ctx context.Context, id, userID uuid.UUID) error
}

// CheckSearchAlertsUseCasePort - плановый обход поисков с включенными
// оповещениями; возвращает количество отправленных оповещений.
type CheckSearchAlertsUseCasePort interface {
	Execute(ctx context.Context) (int, error)
}
