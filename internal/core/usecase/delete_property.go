package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

type DeletePropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewDeletePropertyUseCase(storage port.PropertyStoragePort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{storage: storage}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id, ownerID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": id,
		"owner_id":    ownerID,
	})

	if err := uc.storage.Delete(ctx, id, ownerID); err != nil {
		ucLogger.Error("Failed to delete property", err, nil)
		return err
	}

	ucLogger.Info("Property deleted", nil)
	return nil
}
