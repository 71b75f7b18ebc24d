package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

type GetUserViewingsUseCase struct {
	repo port.ViewingsRepositoryPort
}

func NewGetUserViewingsUseCase(repo port.ViewingsRepositoryPort) *GetUserViewingsUseCase {
	return &GetUserViewingsUseCase{repo: repo}
}

func (uc *GetUserViewingsUseCase) Execute(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Viewing, error) {
	viewings, err := uc.repo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to get viewings", err, port.Fields{"user_id": userID})
		return nil, fmt.Errorf("failed to get viewings: %w", err)
	}
	return viewings, nil
}
