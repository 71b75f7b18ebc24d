package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// GetPropertyDetailsUseCase возвращает карточку объекта и попутно
// увеличивает счетчик просмотров. Сбой инкремента карточку не ломает.
type GetPropertyDetailsUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewGetPropertyDetailsUseCase(catalog port.PropertyCatalogPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{catalog: catalog}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": id,
	})

	property, err := uc.catalog.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to load property", err, nil)
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	if err := uc.catalog.IncrementViews(ctx, id); err != nil {
		ucLogger.Warn("Failed to increment view counter", port.Fields{"error": err.Error()})
	} else {
		property.Views++
	}

	return property, nil
}
