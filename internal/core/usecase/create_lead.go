package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port/usecases_port"
)

// CreateLeadUseCase сохраняет заявку по объявлению и публикует событие
// для внешнего сервиса рассылки (письмо владельцу). Сбой публикации
// заявку не откатывает - письмо менее важно, чем сама заявка.
type CreateLeadUseCase struct {
	leads         port.LeadsRepositoryPort
	catalog       port.PropertyCatalogPort
	notifications port.NotificationQueuePort
}

func NewCreateLeadUseCase(
	leads port.LeadsRepositoryPort,
	catalog port.PropertyCatalogPort,
	notifications port.NotificationQueuePort,
) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		leads:         leads,
		catalog:       catalog,
		notifications: notifications,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, in usecases_port.NewLeadInput) (*domain.Lead, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "CreateLead",
		"property_id": in.PropertyID,
	})

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" {
		return nil, fmt.Errorf("%w: name and phone are required", domain.ErrValidation)
	}

	property, err := uc.catalog.GetByID(ctx, in.PropertyID)
	if err != nil {
		ucLogger.Error("Property lookup failed", err, nil)
		return nil, err
	}

	lead := &domain.Lead{
		ID:         uuid.New(),
		PropertyID: in.PropertyID,
		UserID:     in.UserID,
		AgentID:    property.AgentID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Message:    in.Message,
		Status:     domain.LeadNew,
		Source:     "website",
	}

	if err := uc.leads.Create(ctx, lead); err != nil {
		ucLogger.Error("Failed to store lead", err, nil)
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	if err := uc.notifications.PublishNewLead(ctx, port.NewLeadNotification{
		Lead:     *lead,
		Property: *property,
	}); err != nil {
		ucLogger.Warn("Failed to publish new lead notification", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Lead created", port.Fields{"lead_id": lead.ID})
	return lead, nil
}
