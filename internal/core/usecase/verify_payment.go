package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// VerifyPaymentUseCase сверяет подпись платежного шлюза
// (HMAC-SHA256 от "order_id|payment_id" на секрете мерчанта) и при
// успехе помечает платеж завершенным и включает премиум-размещение
// объявления на срок оплаченного плана.
type VerifyPaymentUseCase struct {
	payments  port.PaymentsRepositoryPort
	storage   port.PropertyStoragePort
	keySecret string
	now       func() time.Time
}

func NewVerifyPaymentUseCase(payments port.PaymentsRepositoryPort, storage port.PropertyStoragePort, keySecret string) *VerifyPaymentUseCase {
	return &VerifyPaymentUseCase{
		payments:  payments,
		storage:   storage,
		keySecret: keySecret,
		now:       time.Now,
	}
}

func (uc *VerifyPaymentUseCase) Execute(ctx context.Context, userID uuid.UUID, orderID, paymentID, signature string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "VerifyPayment",
		"order_id": orderID,
	})

	payment, err := uc.payments.GetByOrderID(ctx, orderID)
	if err != nil {
		ucLogger.Error("Payment order lookup failed", err, nil)
		return err
	}
	if payment.UserID != userID {
		return domain.ErrForbidden
	}
	if payment.Status == domain.PaymentCompleted {
		// Повторная верификация того же заказа - no-op.
		ucLogger.Info("Payment already completed", nil)
		return nil
	}

	if !uc.signatureValid(orderID, paymentID, signature) {
		ucLogger.Warn("Payment signature mismatch", nil)
		return domain.ErrInvalidSignature
	}

	completedAt := uc.now()
	if err := uc.payments.MarkCompleted(ctx, orderID, paymentID, completedAt); err != nil {
		ucLogger.Error("Failed to mark payment completed", err, nil)
		return err
	}

	days := domain.FeaturedPlanDays[payment.Plan]
	until := completedAt.AddDate(0, 0, days)
	if err := uc.storage.SetFeatured(ctx, payment.PropertyID, until); err != nil {
		ucLogger.Error("Payment completed but featuring the property failed", err, port.Fields{
			"property_id": payment.PropertyID,
		})
		return err
	}

	ucLogger.Info("Payment verified, property featured", port.Fields{
		"property_id":    payment.PropertyID,
		"featured_until": until,
	})
	return nil
}

func (uc *VerifyPaymentUseCase) signatureValid(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(uc.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
