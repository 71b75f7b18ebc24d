package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// OwnerStatsReaderPort - агрегаты по объявлениям владельца для дашборда.
type OwnerStatsReaderPort interface {
	OwnerStats(ctx context.Context, ownerID uuid.UUID) (*domain.DashboardStats, error)
}
