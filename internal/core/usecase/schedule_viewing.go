package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// ScheduleViewingUseCase записывает пользователя на очный просмотр.
// Агент объявления (если назначен) переносится в запись просмотра.
type ScheduleViewingUseCase struct {
	catalog  port.PropertyCatalogPort
	viewings port.ViewingsRepositoryPort
}

func NewScheduleViewingUseCase(catalog port.PropertyCatalogPort, viewings port.ViewingsRepositoryPort) *ScheduleViewingUseCase {
	return &ScheduleViewingUseCase{catalog: catalog, viewings: viewings}
}

func (uc *ScheduleViewingUseCase) Execute(ctx context.Context, userID, propertyID uuid.UUID, at time.Time, notes string) (*domain.Viewing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ScheduleViewing",
		"user_id":     userID,
		"property_id": propertyID,
	})

	if !at.After(time.Now()) {
		return nil, fmt.Errorf("%w: viewing must be scheduled in the future", domain.ErrValidation)
	}

	property, err := uc.catalog.GetByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Property lookup failed", err, nil)
		return nil, err
	}
	if property.Status != domain.StatusActive {
		return nil, domain.ErrInvalidStatus
	}

	viewing := &domain.Viewing{
		ID:          uuid.New(),
		PropertyID:  propertyID,
		UserID:      userID,
		AgentID:     property.AgentID,
		ScheduledAt: at,
		Status:      domain.ViewingScheduled,
		Notes:       notes,
	}

	if err := uc.viewings.Create(ctx, viewing); err != nil {
		ucLogger.Error("Failed to create viewing", err, nil)
		return nil, fmt.Errorf("failed to schedule viewing: %w", err)
	}

	ucLogger.Info("Viewing scheduled", port.Fields{"viewing_id": viewing.ID, "scheduled_at": at})
	return viewing, nil
}
