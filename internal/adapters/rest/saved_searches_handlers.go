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

// SavedSearchesHandler - обработчики сохраненных поисков.
type SavedSearchesHandler struct {
	saveUC   usecases_port.SaveSearchUseCasePort
	listUC   usecases_port.GetSavedSearchesUseCasePort
	deleteUC usecases_port.DeleteSavedSearchUseCasePort
}

func NewSavedSearchesHandler(
	saveUC usecases_port.SaveSearchUseCasePort,
	listUC usecases_port.GetSavedSearchesUseCasePort,
	deleteUC usecases_port.DeleteSavedSearchUseCasePort,
) *SavedSearchesHandler {
	return &SavedSearchesHandler{
		saveUC:   saveUC,
		listUC:   listUC,
		deleteUC: deleteUC,
	}
}

// SaveSearch обрабатывает POST /api/v1/saved-searches
func (h *SavedSearchesHandler) SaveSearch(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SaveSearch"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	var reqDTO SaveSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body for save search", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"user_id": userID, "search_name": reqDTO.Name})
	handlerLogger.Info("Processing request to save search", nil)

	search, err := h.saveUC.Execute(r.Context(), userID, reqDTO.Name, reqDTO.Criteria, reqDTO.AlertEnabled)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		handlerLogger.Error("Save search use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to save search")
		return
	}

	handlerLogger.Info("Search saved", port.Fields{"search_id": search.ID})
	RespondWithJSON(w, http.StatusCreated, toSavedSearchResponse(*search))
}

// GetSavedSearches обрабатывает GET /api/v1/saved-searches
func (h *SavedSearchesHandler) GetSavedSearches(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetSavedSearches"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	searches, err := h.listUC.Execute(r.Context(), userID)
	if err != nil {
		logger.Error("Get saved searches use case failed", err, port.Fields{"user_id": userID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve saved searches")
		return
	}

	response := make([]SavedSearchResponse, len(searches))
	for i, s := range searches {
		response[i] = toSavedSearchResponse(s)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// DeleteSavedSearch обрабатывает DELETE /api/v1/saved-searches/{searchID}
func (h *SavedSearchesHandler) DeleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteSavedSearch"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	searchID, err := uuid.Parse(chi.URLParam(r, "searchID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid searchID in URL")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), searchID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Saved search not found")
			return
		}
		logger.Error("Delete saved search use case failed", err, port.Fields{"search_id": searchID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to delete saved search")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toSavedSearchResponse(s domain.SavedSearch) SavedSearchResponse {
	return SavedSearchResponse{
		ID:           s.ID.String(),
		Name:         s.Name,
		Criteria:     s.Criteria,
		AlertEnabled: s.AlertEnabled,
		CreatedAt:    s.CreatedAt,
	}
}
