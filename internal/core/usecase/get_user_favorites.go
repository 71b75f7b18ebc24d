package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

type GetUserFavoritesUseCase struct {
	repo port.FavoritesRepositoryPort
}

func NewGetUserFavoritesUseCase(repo port.FavoritesRepositoryPort) *GetUserFavoritesUseCase {
	return &GetUserFavoritesUseCase{repo: repo}
}

func (uc *GetUserFavoritesUseCase) Execute(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Favorite, int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserFavorites",
		"user_id":  userID,
		"limit":    limit,
		"offset":   offset,
	})

	favorites, total, err := uc.repo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		ucLogger.Error("Failed to get favorites from repository", err, nil)
		return nil, 0, fmt.Errorf("failed to get favorites: %w", err)
	}

	ucLogger.Info("User favorites loaded", port.Fields{"total": total, "on_page": len(favorites)})
	return favorites, total, nil
}
