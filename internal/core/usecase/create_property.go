package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// CreatePropertyUseCase сохраняет новое объявление. Новые объявления
// попадают на модерацию (status = pending), пока администратор их не одобрит.
type CreatePropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewCreatePropertyUseCase(storage port.PropertyStoragePort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{storage: storage}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, p *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateProperty",
		"owner_id": p.OwnerID,
		"city":     p.City,
	})

	if err := validateNewProperty(p); err != nil {
		ucLogger.Warn("Property validation failed", port.Fields{"error": err.Error()})
		return err
	}

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.Status = domain.StatusPending
	p.Featured = false
	p.Verified = false

	if err := uc.storage.Create(ctx, p); err != nil {
		ucLogger.Error("Failed to store property", err, nil)
		return err
	}

	ucLogger.Info("Property created, pending moderation", port.Fields{"property_id": p.ID})
	return nil
}

func validateNewProperty(p *domain.Property) error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case p.Price <= 0:
		return fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	case strings.TrimSpace(p.City) == "":
		return fmt.Errorf("%w: city is required", domain.ErrValidation)
	case p.PropertyType == "":
		return fmt.Errorf("%w: property type is required", domain.ErrValidation)
	case p.ListingType == "":
		return fmt.Errorf("%w: listing type is required", domain.ErrValidation)
	case p.OwnerID == uuid.Nil:
		return fmt.Errorf("%w: owner is required", domain.ErrValidation)
	}
	return nil
}
