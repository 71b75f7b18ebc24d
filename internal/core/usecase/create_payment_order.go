package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// CreatePaymentOrderUseCase регистрирует заказ платежного шлюза за
// премиум-размещение. Сам заказ создается шлюзом на стороне клиента;
// здесь мы фиксируем его у себя и привязываем к объявлению и плану.
type CreatePaymentOrderUseCase struct {
	payments port.PaymentsRepositoryPort
	catalog  port.PropertyCatalogPort
}

func NewCreatePaymentOrderUseCase(payments port.PaymentsRepositoryPort, catalog port.PropertyCatalogPort) *CreatePaymentOrderUseCase {
	return &CreatePaymentOrderUseCase{payments: payments, catalog: catalog}
}

func (uc *CreatePaymentOrderUseCase) Execute(ctx context.Context, userID, propertyID uuid.UUID, orderID, plan string, amount int64, currency string) (*domain.Payment, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "CreatePaymentOrder",
		"user_id":     userID,
		"property_id": propertyID,
		"plan":        plan,
	})

	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is required", domain.ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if _, ok := domain.FeaturedPlanDays[plan]; !ok {
		return nil, fmt.Errorf("%w: unknown featured plan %q", domain.ErrValidation, plan)
	}

	property, err := uc.catalog.GetByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Property lookup failed", err, nil)
		return nil, err
	}
	if property.OwnerID != userID {
		return nil, domain.ErrForbidden
	}

	if currency == "" {
		currency = "INR"
	}

	payment := &domain.Payment{
		ID:         uuid.New(),
		UserID:     userID,
		PropertyID: propertyID,
		OrderID:    orderID,
		Plan:       plan,
		Amount:     amount,
		Currency:   currency,
		Status:     domain.PaymentCreated,
	}

	if err := uc.payments.Create(ctx, payment); err != nil {
		ucLogger.Error("Failed to store payment order", err, nil)
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	ucLogger.Info("Payment order registered", port.Fields{"order_id": orderID})
	return payment, nil
}
