package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port/usecases_port"
)

// PaymentsHandler - обработчики платежей за премиум-размещение.
type PaymentsHandler struct {
	createOrderUC usecases_port.CreatePaymentOrderUseCasePort
	verifyUC      usecases_port.VerifyPaymentUseCasePort
	historyUC     usecases_port.GetUserPaymentsUseCasePort
}

func NewPaymentsHandler(
	createOrderUC usecases_port.CreatePaymentOrderUseCasePort,
	verifyUC usecases_port.VerifyPaymentUseCasePort,
	historyUC usecases_port.GetUserPaymentsUseCasePort,
) *PaymentsHandler {
	return &PaymentsHandler{
		createOrderUC: createOrderUC,
		verifyUC:      verifyUC,
		historyUC:     historyUC,
	}
}

// CreatePaymentOrder обрабатывает POST /api/v1/payments/orders
func (h *PaymentsHandler) CreatePaymentOrder(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreatePaymentOrder"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	var reqDTO CreatePaymentOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body for create payment order", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	propertyID, err := uuid.Parse(reqDTO.PropertyID)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property_id format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":     userID,
		"property_id": propertyID,
		"plan":        reqDTO.Plan,
	})
	handlerLogger.Info("Processing request to create payment order", nil)

	payment, err := h.createOrderUC.Execute(r.Context(), userID, propertyID, reqDTO.OrderID, reqDTO.Plan, reqDTO.Amount, reqDTO.Currency)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "Only the property owner can buy premium placement")
		case errors.Is(err, domain.ErrValidation):
			WriteJSONError(w, http.StatusBadRequest, err.Error())
		default:
			handlerLogger.Error("Create payment order use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to create payment order")
		}
		return
	}

	handlerLogger.Info("Payment order registered", port.Fields{"order_id": payment.OrderID})
	RespondWithJSON(w, http.StatusCreated, map[string]string{
		"order_id": payment.OrderID,
		"status":   payment.Status,
	})
}

// VerifyPayment обрабатывает POST /api/v1/payments/verify
func (h *PaymentsHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "VerifyPayment"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	var reqDTO VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":  userID,
		"order_id": reqDTO.OrderID,
	})
	handlerLogger.Info("Processing payment verification", nil)

	if err := h.verifyUC.Execute(r.Context(), userID, reqDTO.OrderID, reqDTO.PaymentID, reqDTO.Signature); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			WriteJSONError(w, http.StatusNotFound, "Payment order not found")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "Payment order belongs to another user")
		case errors.Is(err, domain.ErrInvalidSignature):
			WriteJSONError(w, http.StatusBadRequest, "Payment signature mismatch")
		default:
			handlerLogger.Error("Verify payment use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to verify payment")
		}
		return
	}

	handlerLogger.Info("Payment verified, premium placement enabled", nil)
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "completed"})
}

// GetUserPayments обрабатывает GET /api/v1/payments
func (h *PaymentsHandler) GetUserPayments(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserPayments"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	payments, err := h.historyUC.Execute(r.Context(), userID)
	if err != nil {
		logger.Error("Get user payments use case failed", err, port.Fields{"user_id": userID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	response := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		response[i] = PaymentResponse{
			ID:          p.ID.String(),
			PropertyID:  p.PropertyID.String(),
			OrderID:     p.OrderID,
			Plan:        p.Plan,
			Amount:      p.Amount,
			Currency:    p.Currency,
			Status:      p.Status,
			CreatedAt:   p.CreatedAt,
			CompletedAt: p.CompletedAt,
		}
	}
	RespondWithJSON(w, http.StatusOK, response)
}
