package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

type GetLeadsUseCase struct {
	repo port.LeadsRepositoryPort
}

func NewGetLeadsUseCase(repo port.LeadsRepositoryPort) *GetLeadsUseCase {
	return &GetLeadsUseCase{repo: repo}
}

func (uc *GetLeadsUseCase) Execute(ctx context.Context, userID uuid.UUID, kind string, limit, offset int) ([]domain.Lead, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetLeads",
		"user_id":  userID,
		"kind":     kind,
	})

	var (
		leads []domain.Lead
		err   error
	)
	switch kind {
	case "received":
		leads, err = uc.repo.FindReceivedByOwner(ctx, userID, limit, offset)
	case "sent", "":
		leads, err = uc.repo.FindSentByUser(ctx, userID, limit, offset)
	default:
		return nil, fmt.Errorf("%w: unknown leads kind %q", domain.ErrValidation, kind)
	}
	if err != nil {
		ucLogger.Error("Failed to get leads", err, nil)
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}

	ucLogger.Info("Leads loaded", port.Fields{"count": len(leads)})
	return leads, nil
}
