package usecase

import (
	"context"
	"fmt"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

const defaultFeaturedLimit = 8

type GetFeaturedPropertiesUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewGetFeaturedPropertiesUseCase(catalog port.PropertyCatalogPort) *GetFeaturedPropertiesUseCase {
	return &GetFeaturedPropertiesUseCase{catalog: catalog}
}

func (uc *GetFeaturedPropertiesUseCase) Execute(ctx context.Context, limit int) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	if limit <= 0 {
		limit = defaultFeaturedLimit
	}

	properties, err := uc.catalog.ListFeatured(ctx, limit)
	if err != nil {
		logger.Error("Failed to list featured properties", err, port.Fields{"use_case": "GetFeaturedProperties"})
		return nil, fmt.Errorf("failed to list featured properties: %w", err)
	}
	return properties, nil
}
