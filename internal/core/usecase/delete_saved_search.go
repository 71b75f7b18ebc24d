package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

type DeleteSavedSearchUseCase struct {
	repo port.SavedSearchRepositoryPort
}

func NewDeleteSavedSearchUseCase(repo port.SavedSearchRepositoryPort) *DeleteSavedSearchUseCase {
	return &DeleteSavedSearchUseCase{repo: repo}
}

func (uc *DeleteSavedSearchUseCase) Execute(ctx context.Context, id, userID uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id, userID); err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to delete saved search", err, port.Fields{
			"search_id": id,
			"user_id":   userID,
		})
		return err
	}
	return nil
}
