package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

const testKeySecret = "test-merchant-secret"

func signPayment(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testKeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentHappyPath(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	propertyID := uuid.New()

	payment := &domain.Payment{
		UserID:     userID,
		PropertyID: propertyID,
		OrderID:    "order_123",
		Plan:       "standard",
		Status:     domain.PaymentCreated,
	}

	var completedOrder string
	payments := &fakePayments{
		getByOrderID: func(ctx context.Context, orderID string) (*domain.Payment, error) {
			return payment, nil
		},
		markCompleted: func(ctx context.Context, orderID, paymentID string, at time.Time) error {
			completedOrder = orderID
			return nil
		},
	}

	var featuredUntil time.Time
	storage := &fakeStorage{
		setFeatured: func(ctx context.Context, id uuid.UUID, until time.Time) error {
			if id != propertyID {
				t.Errorf("featured property = %s, want %s", id, propertyID)
			}
			featuredUntil = until
			return nil
		},
	}

	uc := NewVerifyPaymentUseCase(payments, storage, testKeySecret)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	err := uc.Execute(context.Background(), userID, "order_123", "pay_456", signPayment("order_123", "pay_456"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if completedOrder != "order_123" {
		t.Errorf("completed order = %q, want order_123", completedOrder)
	}
	// План standard дает 30 дней премиум-размещения.
	if want := now.AddDate(0, 0, 30); !featuredUntil.Equal(want) {
		t.Errorf("featuredUntil = %v, want %v", featuredUntil, want)
	}
}

func TestVerifyPaymentRejectsBadSignature(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	payments := &fakePayments{
		getByOrderID: func(ctx context.Context, orderID string) (*domain.Payment, error) {
			return &domain.Payment{UserID: userID, OrderID: orderID, Status: domain.PaymentCreated}, nil
		},
		markCompleted: func(ctx context.Context, orderID, paymentID string, at time.Time) error {
			t.Error("payment must not be completed on signature mismatch")
			return nil
		},
	}

	uc := NewVerifyPaymentUseCase(payments, &fakeStorage{}, testKeySecret)
	err := uc.Execute(context.Background(), userID, "order_123", "pay_456", "deadbeef")
	if !errors.Is(err, domain.ErrInvalidSignature) {
		t.Errorf("Execute() error = %v, want ErrInvalidSignature", err)
	}
}

func TestVerifyPaymentRejectsForeignOrder(t *testing.T) {
	t.Parallel()

	payments := &fakePayments{
		getByOrderID: func(ctx context.Context, orderID string) (*domain.Payment, error) {
			return &domain.Payment{UserID: uuid.New(), OrderID: orderID, Status: domain.PaymentCreated}, nil
		},
	}

	uc := NewVerifyPaymentUseCase(payments, &fakeStorage{}, testKeySecret)
	err := uc.Execute(context.Background(), uuid.New(), "order_123", "pay_456", signPayment("order_123", "pay_456"))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Execute() error = %v, want ErrForbidden", err)
	}
}

func TestVerifyPaymentIsIdempotentForCompleted(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	payments := &fakePayments{
		getByOrderID: func(ctx context.Context, orderID string) (*domain.Payment, error) {
			return &domain.Payment{UserID: userID, OrderID: orderID, Status: domain.PaymentCompleted}, nil
		},
		markCompleted: func(ctx context.Context, orderID, paymentID string, at time.Time) error {
			t.Error("completed payment must not be marked again")
			return nil
		},
	}
	storage := &fakeStorage{
		setFeatured: func(ctx context.Context, id uuid.UUID, until time.Time) error {
			t.Error("completed payment must not re-feature the property")
			return nil
		},
	}

	uc := NewVerifyPaymentUseCase(payments, storage, testKeySecret)
	// Подпись даже не проверяется - повторный запрос просто успешен.
	if err := uc.Execute(context.Background(), userID, "order_123", "pay_456", "whatever"); err != nil {
		t.Fatalf("Execute() error = %v, want nil", err)
	}
}

func TestVerifyPaymentUnknownOrder(t *testing.T) {
	t.Parallel()

	uc := NewVerifyPaymentUseCase(&fakePayments{}, &fakeStorage{}, testKeySecret)
	err := uc.Execute(context.Background(), uuid.New(), "missing", "pay", "sig")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Execute() error = %v, want ErrNotFound", err)
	}
}
