package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// PaymentsRepositoryPort - хранилище платежей за премиум-размещение.
type PaymentsRepositoryPort interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	MarkCompleted(ctx context.Context, orderID, paymentID string, at time.Time) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error)
}
