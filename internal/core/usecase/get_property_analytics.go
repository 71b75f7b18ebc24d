package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// GetPropertyAnalyticsUseCase - сводка по объявлению для его владельца:
// просмотры, избранное, заявки, записи на просмотр.
type GetPropertyAnalyticsUseCase struct {
	catalog  port.PropertyCatalogPort
	leads    port.LeadsRepositoryPort
	viewings port.ViewingsRepositoryPort
}

func NewGetPropertyAnalyticsUseCase(
	catalog port.PropertyCatalogPort,
	leads port.LeadsRepositoryPort,
	viewings port.ViewingsRepositoryPort,
) *GetPropertyAnalyticsUseCase {
	return &GetPropertyAnalyticsUseCase{
		catalog:  catalog,
		leads:    leads,
		viewings: viewings,
	}
}

func (uc *GetPropertyAnalyticsUseCase) Execute(ctx context.Context, propertyID, ownerID uuid.UUID) (*domain.PropertyAnalytics, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyAnalytics",
		"property_id": propertyID,
	})

	property, err := uc.catalog.GetByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Property lookup failed", err, nil)
		return nil, err
	}
	if property.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}

	leadsCount, err := uc.leads.CountByProperty(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Failed to count leads", err, nil)
		return nil, err
	}

	viewingsCount, err := uc.viewings.CountByProperty(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Failed to count viewings", err, nil)
		return nil, err
	}

	return &domain.PropertyAnalytics{
		Views:     property.Views,
		Favorites: property.FavoritesCount,
		Leads:     leadsCount,
		Viewings:  viewingsCount,
	}, nil
}
