package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// GetUserPaymentsUseCase - история платежей пользователя за премиум-размещение.
type GetUserPaymentsUseCase struct {
	payments port.PaymentsRepositoryPort
}

func NewGetUserPaymentsUseCase(payments port.PaymentsRepositoryPort) *GetUserPaymentsUseCase {
	return &GetUserPaymentsUseCase{payments: payments}
}

func (uc *GetUserPaymentsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	payments, err := uc.payments.FindByUser(ctx, userID)
	if err != nil {
		logger.WithFields(port.Fields{"use_case": "GetUserPayments", "user_id": userID}).
			Error("Failed to load payment history", err, nil)
		return nil, err
	}

	return payments, nil
}
