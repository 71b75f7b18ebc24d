package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

type GetSavedSearchesUseCase struct {
	repo port.SavedSearchRepositoryPort
}

func NewGetSavedSearchesUseCase(repo port.SavedSearchRepositoryPort) *GetSavedSearchesUseCase {
	return &GetSavedSearchesUseCase{repo: repo}
}

func (uc *GetSavedSearchesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error) {
	searches, err := uc.repo.FindByUser(ctx, userID)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to get saved searches", err, port.Fields{"user_id": userID})
		return nil, fmt.Errorf("failed to get saved searches: %w", err)
	}
	return searches, nil
}
