package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

type GetUserFavoriteIDsUseCase struct {
	repo port.FavoritesRepositoryPort
}

func NewGetUserFavoriteIDsUseCase(repo port.FavoritesRepositoryPort) *GetUserFavoriteIDsUseCase {
	return &GetUserFavoriteIDsUseCase{repo: repo}
}

func (uc *GetUserFavoriteIDsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := uc.repo.FindIDsByUser(ctx, userID)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to get favorite ids", err, port.Fields{"user_id": userID})
		return nil, fmt.Errorf("failed to get favorite ids: %w", err)
	}
	return ids, nil
}
