package port

import (
	"context"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// SavedSearchAlert - событие "по сохраненному поиску появились новые объекты".
// Письма рассылает внешний mailer-сервис, подписанный на очередь.
type SavedSearchAlert struct {
	Search     domain.SavedSearch
	Properties []domain.Property
}

// NewLeadNotification - событие "по объявлению оставлена новая заявка".
type NewLeadNotification struct {
	Lead     domain.Lead
	Property domain.Property
}

// NotificationQueuePort публикует события для внешнего сервиса рассылки.
type NotificationQueuePort interface {
	PublishSavedSearchAlert(ctx context.Context, alert SavedSearchAlert) error
	PublishNewLead(ctx context.Context, n NewLeadNotification) error
}
