package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// CreatePaymentOrderUseCasePort регистрирует заказ платежного шлюза
// за премиум-размещение объявления.
type CreatePaymentOrderUseCasePort interface {
	Execute(ctx context.Context, userID, propertyID uuid.UUID, orderID, plan string, amount int64, currency string) (*domain.Payment, error)
}

// VerifyPaymentUseCasePort сверяет HMAC-подпись шлюза и при успехе
// включает премиум-размещение на срок плана.
type VerifyPaymentUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, orderID, paymentID, signature string) error
}

// GetUserPaymentsUseCasePort - история платежей пользователя.
type GetUserPaymentsUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error)
}

// ExpireFeaturedUseCasePort снимает премиум-флаг у объявлений с истекшим сроком.
type ExpireFeaturedUseCasePort interface {
	Execute(ctx context.Context) (int64, error)
}
