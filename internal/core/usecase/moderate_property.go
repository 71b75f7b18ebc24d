package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// ModeratePropertyUseCase - одобрение/отклонение объявления администратором.
// Одобрить можно только объявление в статусе pending.
type ModeratePropertyUseCase struct {
	catalog port.PropertyCatalogPort
	storage port.PropertyStoragePort
}

func NewModeratePropertyUseCase(catalog port.PropertyCatalogPort, storage port.PropertyStoragePort) *ModeratePropertyUseCase {
	return &ModeratePropertyUseCase{catalog: catalog, storage: storage}
}

func (uc *ModeratePropertyUseCase) Execute(ctx context.Context, id uuid.UUID, approve bool) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ModerateProperty",
		"property_id": id,
		"approve":     approve,
	})

	property, err := uc.catalog.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			ucLogger.Error("Failed to load property for moderation", err, nil)
		}
		return err
	}

	if property.Status != domain.StatusPending {
		ucLogger.Warn("Property is not pending moderation", port.Fields{"status": property.Status})
		return domain.ErrInvalidStatus
	}

	newStatus := domain.StatusInactive
	if approve {
		newStatus = domain.StatusActive
	}

	if err := uc.storage.UpdateStatus(ctx, id, newStatus); err != nil {
		ucLogger.Error("Failed to update property status", err, nil)
		return err
	}

	ucLogger.Info("Property moderated", port.Fields{"new_status": newStatus})
	return nil
}
