package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

type GetPropertyAnalyticsUseCasePort interface {
	Execute(ctx context.Context, propertyID, ownerID uuid.UUID) (*domain.PropertyAnalytics, error)
}

type GetDashboardStatsUseCasePort interface {
	Execute(ctx context.Context, ownerID uuid.UUID) (*domain.DashboardStats, error)
}
