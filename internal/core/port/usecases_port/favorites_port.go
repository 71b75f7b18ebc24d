package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

type AddToFavoritesUseCasePort interface {
	Execute(ctx context.Context, userID, propertyID uuid.UUID) error
}

type RemoveFromFavoritesUseCasePort interface {
	Execute(ctx context.Context, userID, propertyID uuid.UUID) error
}

type GetUserFavoritesUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Favorite, int64, error)
}

type GetUserFavoriteIDsUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
