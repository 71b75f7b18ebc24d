package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// SavedSearchRepositoryPort - хранилище сохраненных поисков.
type SavedSearchRepositoryPort interface {
	Create(ctx context.Context, s *domain.SavedSearch) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// FindWithAlerts - все поиски с включенными оповещениями (для планового обхода).
	FindWithAlerts(ctx context.Context) ([]domain.SavedSearch, error)

	TouchLastChecked(ctx context.Context, id uuid.UUID, at time.Time) error
}
