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

// LeadsHandler - обработчики заявок по объявлениям.
type LeadsHandler struct {
	createUC       usecases_port.CreateLeadUseCasePort
	listUC         usecases_port.GetLeadsUseCasePort
	updateStatusUC usecases_port.UpdateLeadStatusUseCasePort
}

func NewLeadsHandler(
	createUC usecases_port.CreateLeadUseCasePort,
	listUC usecases_port.GetLeadsUseCasePort,
	updateStatusUC usecases_port.UpdateLeadStatusUseCasePort,
) *LeadsHandler {
	return &LeadsHandler{
		createUC:       createUC,
		listUC:         listUC,
		updateStatusUC: updateStatusUC,
	}
}

// CreateLead обрабатывает POST /api/v1/leads.
// Доступен и без авторизации: заявку может оставить любой посетитель.
func (h *LeadsHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateLead"})

	var reqDTO CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body for create lead", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	propertyID, err := uuid.Parse(reqDTO.PropertyID)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property_id format")
		return
	}

	in := usecases_port.NewLeadInput{
		PropertyID: propertyID,
		Name:       reqDTO.Name,
		Email:      reqDTO.Email,
		Phone:      reqDTO.Phone,
		Message:    reqDTO.Message,
	}
	if userID, ok := r.Context().Value(userIDKey).(uuid.UUID); ok {
		in.UserID = &userID
	}

	handlerLogger := logger.WithFields(port.Fields{"property_id": propertyID})
	handlerLogger.Info("Processing request to create lead", nil)

	lead, err := h.createUC.Execute(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrValidation):
			WriteJSONError(w, http.StatusBadRequest, err.Error())
		default:
			handlerLogger.Error("Create lead use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to create lead")
		}
		return
	}

	handlerLogger.Info("Lead created", port.Fields{"lead_id": lead.ID})
	RespondWithJSON(w, http.StatusCreated, toLeadResponse(*lead))
}

// GetLeads обрабатывает GET /api/v1/leads?kind=sent|received
func (h *LeadsHandler) GetLeads(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetLeads"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	kind := r.URL.Query().Get("kind")
	limit, offset := GetPagination(r, 20)

	leads, err := h.listUC.Execute(r.Context(), userID, kind, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Get leads use case failed", err, port.Fields{"user_id": userID, "kind": kind})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve leads")
		return
	}

	response := make([]LeadResponse, len(leads))
	for i, l := range leads {
		response[i] = toLeadResponse(l)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// UpdateLeadStatus обрабатывает PATCH /api/v1/leads/{leadID}
func (h *LeadsHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateLeadStatus"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	leadID, err := uuid.Parse(chi.URLParam(r, "leadID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid leadID in URL")
		return
	}

	var reqDTO UpdateLeadStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.updateStatusUC.Execute(r.Context(), leadID, userID, reqDTO.Status); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			WriteJSONError(w, http.StatusNotFound, "Lead not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			WriteJSONError(w, http.StatusBadRequest, "Unknown lead status")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "Only the property owner can manage this lead")
		default:
			logger.Error("Update lead status use case failed", err, port.Fields{"lead_id": leadID})
			WriteJSONError(w, http.StatusInternalServerError, "Failed to update lead")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toLeadResponse(l domain.Lead) LeadResponse {
	return LeadResponse{
		ID:         l.ID.String(),
		PropertyID: l.PropertyID.String(),
		Name:       l.Name,
		Email:      l.Email,
		Phone:      l.Phone,
		Message:    l.Message,
		Status:     l.Status,
		Source:     l.Source,
		CreatedAt:  l.CreatedAt,
	}
}
