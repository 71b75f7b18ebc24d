package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// UserActivityPort - читатель истории активности пользователя для
// построения профиля предпочтений. Все выборки ограничены сверху и
// отсортированы от новых к старым.
type UserActivityPort interface {
	RecentViewings(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Viewing, error)
	RecentFavorites(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Favorite, error)
	RecentSavedSearches(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SavedSearch, error)
}
