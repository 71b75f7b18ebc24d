package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// GetPropertyViewingsUseCase - записи на просмотр по конкретному объявлению.
// Доступно только владельцу или назначенному агенту.
type GetPropertyViewingsUseCase struct {
	viewings port.ViewingsRepositoryPort
	catalog  port.PropertyCatalogPort
}

func NewGetPropertyViewingsUseCase(viewings port.ViewingsRepositoryPort, catalog port.PropertyCatalogPort) *GetPropertyViewingsUseCase {
	return &GetPropertyViewingsUseCase{viewings: viewings, catalog: catalog}
}

func (uc *GetPropertyViewingsUseCase) Execute(ctx context.Context, propertyID, actorID uuid.UUID, limit, offset int) ([]domain.Viewing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyViewings",
		"property_id": propertyID,
	})

	property, err := uc.catalog.GetByID(ctx, propertyID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			ucLogger.Error("Property lookup failed", err, nil)
		}
		return nil, err
	}

	isAgent := property.AgentID != nil && *property.AgentID == actorID
	if property.OwnerID != actorID && !isAgent {
		return nil, domain.ErrForbidden
	}

	viewings, err := uc.viewings.FindByProperty(ctx, propertyID, limit, offset)
	if err != nil {
		ucLogger.Error("Failed to load property viewings", err, nil)
		return nil, err
	}

	return viewings, nil
}
