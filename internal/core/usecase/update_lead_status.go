package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

var validLeadStatuses = map[string]struct{}{
	domain.LeadNew:       {},
	domain.LeadContacted: {},
	domain.LeadQualified: {},
	domain.LeadConverted: {},
	domain.LeadLost:      {},
}

// UpdateLeadStatusUseCase двигает заявку по воронке. Менять статус
// может только владелец объявления, по которому оставлена заявка.
type UpdateLeadStatusUseCase struct {
	leads   port.LeadsRepositoryPort
	catalog port.PropertyCatalogPort
}

func NewUpdateLeadStatusUseCase(leads port.LeadsRepositoryPort, catalog port.PropertyCatalogPort) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{leads: leads, catalog: catalog}
}

func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, leadID, ownerID uuid.UUID, status string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateLeadStatus",
		"lead_id":  leadID,
		"status":   status,
	})

	if _, ok := validLeadStatuses[status]; !ok {
		return domain.ErrInvalidStatus
	}

	lead, err := uc.leads.GetByID(ctx, leadID)
	if err != nil {
		ucLogger.Error("Lead lookup failed", err, nil)
		return err
	}

	property, err := uc.catalog.GetByID(ctx, lead.PropertyID)
	if err != nil {
		ucLogger.Error("Property lookup failed", err, nil)
		return err
	}
	if property.OwnerID != ownerID {
		ucLogger.Warn("Actor does not own the property of this lead", port.Fields{"owner_id": ownerID})
		return domain.ErrForbidden
	}

	if err := uc.leads.UpdateStatus(ctx, leadID, status); err != nil {
		ucLogger.Error("Failed to update lead status", err, nil)
		return err
	}

	ucLogger.Info("Lead status updated", nil)
	return nil
}
