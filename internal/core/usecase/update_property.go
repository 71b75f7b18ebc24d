package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

type UpdatePropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewUpdatePropertyUseCase(storage port.PropertyStoragePort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{storage: storage}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id, ownerID uuid.UUID, upd domain.PropertyUpdate) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": id,
		"owner_id":    ownerID,
	})

	// Владелец может переводить статус только в sold/rented/inactive/active,
	// но не возвращать в pending (это зона модерации).
	if upd.Status != nil {
		switch *upd.Status {
		case domain.StatusActive, domain.StatusSold, domain.StatusRented, domain.StatusInactive:
		default:
			ucLogger.Warn("Rejected status transition", port.Fields{"status": *upd.Status})
			return domain.ErrInvalidStatus
		}
	}

	if err := uc.storage.Update(ctx, id, ownerID, upd); err != nil {
		ucLogger.Error("Failed to update property", err, nil)
		return err
	}

	ucLogger.Info("Property updated", nil)
	return nil
}
