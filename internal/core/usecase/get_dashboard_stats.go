package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

type GetDashboardStatsUseCase struct {
	stats port.OwnerStatsReaderPort
}

func NewGetDashboardStatsUseCase(stats port.OwnerStatsReaderPort) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{stats: stats}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context, ownerID uuid.UUID) (*domain.DashboardStats, error) {
	stats, err := uc.stats.OwnerStats(ctx, ownerID)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to load dashboard stats", err, port.Fields{"owner_id": ownerID})
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	return stats, nil
}
