package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// UpdateViewingStatusUseCase переводит просмотр из scheduled в
// completed/cancelled. Отменить может записавшийся пользователь,
// завершить - владелец объявления или назначенный агент.
type UpdateViewingStatusUseCase struct {
	viewings port.ViewingsRepositoryPort
	catalog  port.PropertyCatalogPort
}

func NewUpdateViewingStatusUseCase(viewings port.ViewingsRepositoryPort, catalog port.PropertyCatalogPort) *UpdateViewingStatusUseCase {
	return &UpdateViewingStatusUseCase{viewings: viewings, catalog: catalog}
}

func (uc *UpdateViewingStatusUseCase) Execute(ctx context.Context, viewingID, actorID uuid.UUID, status string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateViewingStatus",
		"viewing_id": viewingID,
		"status":     status,
	})

	if status != domain.ViewingCompleted && status != domain.ViewingCancelled {
		return domain.ErrInvalidStatus
	}

	viewing, err := uc.viewings.GetByID(ctx, viewingID)
	if err != nil {
		ucLogger.Error("Viewing lookup failed", err, nil)
		return err
	}
	if viewing.Status != domain.ViewingScheduled {
		return domain.ErrInvalidStatus
	}

	if !uc.actorMayTransition(ctx, viewing, actorID, status) {
		ucLogger.Warn("Actor is not allowed to change viewing status", port.Fields{"actor_id": actorID})
		return domain.ErrForbidden
	}

	if err := uc.viewings.UpdateStatus(ctx, viewingID, status); err != nil {
		ucLogger.Error("Failed to update viewing status", err, nil)
		return err
	}

	ucLogger.Info("Viewing status updated", nil)
	return nil
}

func (uc *UpdateViewingStatusUseCase) actorMayTransition(ctx context.Context, viewing *domain.Viewing, actorID uuid.UUID, status string) bool {
	if status == domain.ViewingCancelled && viewing.UserID == actorID {
		return true
	}
	if viewing.AgentID != nil && *viewing.AgentID == actorID {
		return true
	}

	property, err := uc.catalog.GetByID(ctx, viewing.PropertyID)
	if err != nil {
		return false
	}
	return property.OwnerID == actorID
}
