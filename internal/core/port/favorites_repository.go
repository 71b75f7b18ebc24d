package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// FavoritesRepositoryPort - хранилище избранного.
// Add/Remove также поддерживают счетчик favorites_count у объявления.
type FavoritesRepositoryPort interface {
	Add(ctx context.Context, userID, propertyID uuid.UUID) error
	Remove(ctx context.Context, userID, propertyID uuid.UUID) error

	// FindByUser возвращает избранное пользователя с вложенными объявлениями,
	// от недавно добавленных к старым.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Favorite, int64, error)

	// FindIDsByUser - только идентификаторы объявлений (для подсветки
	// "сердечек" на клиенте одним запросом).
	FindIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
