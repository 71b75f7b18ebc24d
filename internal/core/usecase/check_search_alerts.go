package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

const alertBatchLimit = 10

// CheckSearchAlertsUseCase - плановый обход сохраненных поисков с
// включенными оповещениями. Для каждого поиска выбираются объекты,
// созданные после последней проверки; найденное публикуется в очередь
// для внешнего mailer-сервиса. Ошибка по одному поиску не прерывает обход.
type CheckSearchAlertsUseCase struct {
	searches      port.SavedSearchRepositoryPort
	catalog       port.PropertyCatalogPort
	notifications port.NotificationQueuePort
	now           func() time.Time
}

func NewCheckSearchAlertsUseCase(
	searches port.SavedSearchRepositoryPort,
	catalog port.PropertyCatalogPort,
	notifications port.NotificationQueuePort,
) *CheckSearchAlertsUseCase {
	return &CheckSearchAlertsUseCase{
		searches:      searches,
		catalog:       catalog,
		notifications: notifications,
		now:           time.Now,
	}
}

func (uc *CheckSearchAlertsUseCase) Execute(ctx context.Context) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CheckSearchAlerts"})

	ucLogger.Info("Alert sweep started", nil)

	all, err := uc.searches.FindWithAlerts(ctx)
	if err != nil {
		ucLogger.Error("Failed to load searches with alerts", err, nil)
		return 0, fmt.Errorf("failed to load searches with alerts: %w", err)
	}

	sent := 0
	for _, search := range all {
		since := search.CreatedAt
		if search.LastCheckedAt != nil {
			since = *search.LastCheckedAt
		}

		properties, err := uc.catalog.FindCreatedSince(ctx, search.Criteria, since, alertBatchLimit)
		if err != nil {
			ucLogger.Error("Alert candidate query failed, skipping search", err, port.Fields{"search_id": search.ID})
			continue
		}
		if len(properties) == 0 {
			continue
		}

		if err := uc.notifications.PublishSavedSearchAlert(ctx, port.SavedSearchAlert{
			Search:     search,
			Properties: properties,
		}); err != nil {
			ucLogger.Error("Failed to publish alert, skipping search", err, port.Fields{"search_id": search.ID})
			continue
		}

		if err := uc.searches.TouchLastChecked(ctx, search.ID, uc.now()); err != nil {
			ucLogger.Warn("Failed to bump last_checked_at", port.Fields{
				"search_id": search.ID,
				"error":     err.Error(),
			})
		}
		sent++
	}

	ucLogger.Info("Alert sweep finished", port.Fields{"searches": len(all), "alerts_sent": sent})
	return sent, nil
}
