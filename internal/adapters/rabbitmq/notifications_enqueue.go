package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/AnandGandhi03/realtor-india-platform/internal/constants"
	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
	"github.com/AnandGandhi03/realtor-india-platform/pkg/rabbitmq/rabbitmq_producer"
)

// RabbitMQNotificationsAdapter реализует NotificationQueuePort для RabbitMQ.
// Сообщения забирает внешний mailer-сервис, подписанный на обменник уведомлений.
type RabbitMQNotificationsAdapter struct {
	producer *rabbitmq_producer.Publisher
}

// NewRabbitMQNotificationsAdapter создает новый экземпляр адаптера.
// producer - это уже инициализированный экземпляр rabbitmq_producer.Publisher.
func NewRabbitMQNotificationsAdapter(producer *rabbitmq_producer.Publisher) (*RabbitMQNotificationsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}

	return &RabbitMQNotificationsAdapter{
		producer: producer,
	}, nil
}

func (a *RabbitMQNotificationsAdapter) PublishSavedSearchAlert(ctx context.Context, alert port.SavedSearchAlert) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "RabbitMQNotificationsAdapter",
		"routing_key": constants.RoutingKeySavedSearchAlerts,
		"search_id":   alert.Search.ID.String(),
		"user_id":     alert.Search.UserID.String(),
	})

	payload := savedSearchAlertMessage{
		SearchID:   alert.Search.ID.String(),
		UserID:     alert.Search.UserID.String(),
		SearchName: alert.Search.Name,
		Properties: make([]alertPropertyMessage, 0, len(alert.Properties)),
	}
	for _, p := range alert.Properties {
		payload.Properties = append(payload.Properties, alertPropertyMessage{
			ID:    p.ID.String(),
			Title: p.Title,
			City:  p.City,
			Price: p.Price,
		})
	}

	adapterLogger.Info("Publishing saved search alert", port.Fields{"new_properties": len(alert.Properties)})
	return a.publish(ctx, adapterLogger, constants.RoutingKeySavedSearchAlerts, payload)
}

func (a *RabbitMQNotificationsAdapter) PublishNewLead(ctx context.Context, n port.NewLeadNotification) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "RabbitMQNotificationsAdapter",
		"routing_key": constants.RoutingKeyNewLeads,
		"lead_id":     n.Lead.ID.String(),
		"property_id": n.Property.ID.String(),
	})

	payload := newLeadMessage{
		LeadID:        n.Lead.ID.String(),
		PropertyID:    n.Property.ID.String(),
		OwnerID:       n.Property.OwnerID.String(),
		PropertyTitle: n.Property.Title,
		Name:          n.Lead.Name,
		Email:         n.Lead.Email,
		Phone:         n.Lead.Phone,
		Message:       n.Lead.Message,
	}

	adapterLogger.Info("Publishing new lead notification", nil)
	return a.publish(ctx, adapterLogger, constants.RoutingKeyNewLeads, payload)
}

func (a *RabbitMQNotificationsAdapter) publish(ctx context.Context, adapterLogger port.LoggerPort, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		adapterLogger.Error("Failed to marshal notification to JSON", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to marshal notification: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent, // Для сохранения сообщений при перезапуске брокера
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	// Таймаут на операцию публикации, если контекст его не предоставляет
	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish notification", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish notification: %w", err)
	}

	adapterLogger.Debug("Notification published.", nil)
	return nil
}
