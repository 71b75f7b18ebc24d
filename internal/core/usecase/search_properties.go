package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

type SearchPropertiesUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewSearchPropertiesUseCase(catalog port.PropertyCatalogPort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{catalog: catalog}
}

func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, query string, limit, offset int) (*domain.PaginatedProperties, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchProperties",
		"query":    query,
	})

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}

	result, err := uc.catalog.Search(ctx, query, limit, offset)
	if err != nil {
		ucLogger.Error("Search query failed", err, nil)
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}

	ucLogger.Info("Search finished", port.Fields{"total": result.TotalCount})
	return result, nil
}
