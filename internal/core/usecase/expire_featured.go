package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// ExpireFeaturedUseCase снимает премиум-флаг у объявлений, срок
// размещения которых истек. Запускается планировщиком.
type ExpireFeaturedUseCase struct {
	storage port.PropertyStoragePort
	now     func() time.Time
}

func NewExpireFeaturedUseCase(storage port.PropertyStoragePort) *ExpireFeaturedUseCase {
	return &ExpireFeaturedUseCase{storage: storage, now: time.Now}
}

func (uc *ExpireFeaturedUseCase) Execute(ctx context.Context) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	expired, err := uc.storage.ExpireFeatured(ctx, uc.now())
	if err != nil {
		logger.Error("Failed to expire featured listings", err, port.Fields{"use_case": "ExpireFeatured"})
		return 0, fmt.Errorf("failed to expire featured listings: %w", err)
	}

	logger.Info("Featured listings expired", port.Fields{"use_case": "ExpireFeatured", "count": expired})
	return expired, nil
}
