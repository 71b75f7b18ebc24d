package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port/usecases_port"
)

// ViewingsHandler - обработчики записей на просмотр.
type ViewingsHandler struct {
	scheduleUC     usecases_port.ScheduleViewingUseCasePort
	listUC         usecases_port.GetUserViewingsUseCasePort
	propertyListUC usecases_port.GetPropertyViewingsUseCasePort
	updateStatusUC usecases_port.UpdateViewingStatusUseCasePort
}

func NewViewingsHandler(
	scheduleUC usecases_port.ScheduleViewingUseCasePort,
	listUC usecases_port.GetUserViewingsUseCasePort,
	propertyListUC usecases_port.GetPropertyViewingsUseCasePort,
	updateStatusUC usecases_port.UpdateViewingStatusUseCasePort,
) *ViewingsHandler {
	return &ViewingsHandler{
		scheduleUC:     scheduleUC,
		listUC:         listUC,
		propertyListUC: propertyListUC,
		updateStatusUC: updateStatusUC,
	}
}

// ScheduleViewing обрабатывает POST /api/v1/viewings
func (h *ViewingsHandler) ScheduleViewing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ScheduleViewing"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	var reqDTO ScheduleViewingRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body for schedule viewing", port.Fields{"error": err.Error()})
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
	})
	handlerLogger.Info("Processing request to schedule viewing", nil)

	viewing, err := h.scheduleUC.Execute(r.Context(), userID, propertyID, reqDTO.ScheduledAt, reqDTO.Notes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			WriteJSONError(w, http.StatusConflict, "Property is not available for viewings")
		case errors.Is(err, domain.ErrValidation):
			WriteJSONError(w, http.StatusBadRequest, err.Error())
		default:
			handlerLogger.Error("Schedule viewing use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to schedule viewing")
		}
		return
	}

	handlerLogger.Info("Viewing scheduled", port.Fields{"viewing_id": viewing.ID})
	RespondWithJSON(w, http.StatusCreated, toViewingResponse(*viewing))
}

// GetUserViewings обрабатывает GET /api/v1/viewings
func (h *ViewingsHandler) GetUserViewings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserViewings"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	limit, offset := GetPagination(r, 20)

	viewings, err := h.listUC.Execute(r.Context(), userID, limit, offset)
	if err != nil {
		logger.Error("Get user viewings use case failed", err, port.Fields{"user_id": userID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve viewings")
		return
	}

	response := make([]ViewingResponse, len(viewings))
	for i, v := range viewings {
		response[i] = toViewingResponse(v)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetPropertyViewings обрабатывает GET /api/v1/properties/{propertyID}/viewings
// Доступно владельцу объявления или назначенному агенту.
func (h *ViewingsHandler) GetPropertyViewings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPropertyViewings"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid propertyID in URL")
		return
	}

	limit, offset := GetPagination(r, 20)

	viewings, err := h.propertyListUC.Execute(r.Context(), propertyID, userID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "Not allowed to see viewings for this property")
		default:
			logger.Error("Get property viewings use case failed", err, port.Fields{"property_id": propertyID})
			WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve viewings")
		}
		return
	}

	response := make([]ViewingResponse, len(viewings))
	for i, v := range viewings {
		response[i] = toViewingResponse(v)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// UpdateViewingStatus обрабатывает PATCH /api/v1/viewings/{viewingID}
func (h *ViewingsHandler) UpdateViewingStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateViewingStatus"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	viewingID, err := uuid.Parse(chi.URLParam(r, "viewingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid viewingID in URL")
		return
	}

	var reqDTO UpdateViewingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.updateStatusUC.Execute(r.Context(), viewingID, userID, reqDTO.Status); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			WriteJSONError(w, http.StatusNotFound, "Viewing not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			WriteJSONError(w, http.StatusBadRequest, "Invalid status transition")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "Not allowed to change this viewing")
		default:
			logger.Error("Update viewing status use case failed", err, port.Fields{"viewing_id": viewingID})
			WriteJSONError(w, http.StatusInternalServerError, "Failed to update viewing")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toViewingResponse(v domain.Viewing) ViewingResponse {
	return ViewingResponse{
		ID:          v.ID.String(),
		PropertyID:  v.PropertyID.String(),
		ScheduledAt: v.ScheduledAt,
		Status:      v.Status,
		Notes:       v.Notes,
		CreatedAt:   v.CreatedAt,
	}
}
