package usecase

import (
	"context"
	"fmt"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

type FindPropertiesUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewFindPropertiesUseCase(catalog port.PropertyCatalogPort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{catalog: catalog}
}

func (uc *FindPropertiesUseCase) Execute(ctx context.Context, filters domain.PropertyFilters, limit, offset int) (*domain.PaginatedProperties, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindProperties",
		"limit":    limit,
		"offset":   offset,
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.catalog.Find(ctx, filters, limit, offset)
	if err != nil {
		ucLogger.Error("Catalog query failed", err, nil)
		return nil, fmt.Errorf("failed to find properties: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total": result.TotalCount})
	return result, nil
}
