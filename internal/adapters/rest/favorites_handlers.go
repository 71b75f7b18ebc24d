package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port/usecases_port"
)

// FavoritesHandler - обработчики избранного.
type FavoritesHandler struct {
	addUC    usecases_port.AddToFavoritesUseCasePort
	removeUC usecases_port.RemoveFromFavoritesUseCasePort
	listUC   usecases_port.GetUserFavoritesUseCasePort
	idsUC    usecases_port.GetUserFavoriteIDsUseCasePort
}

func NewFavoritesHandler(
	addUC usecases_port.AddToFavoritesUseCasePort,
	removeUC usecases_port.RemoveFromFavoritesUseCasePort,
	listUC usecases_port.GetUserFavoritesUseCasePort,
	idsUC usecases_port.GetUserFavoriteIDsUseCasePort,
) *FavoritesHandler {
	return &FavoritesHandler{
		addUC:    addUC,
		removeUC: removeUC,
		listUC:   listUC,
		idsUC:    idsUC,
	}
}

// GetUserFavorites обрабатывает GET /api/v1/favorites
func (h *FavoritesHandler) GetUserFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserFavorites"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	limit, offset := GetPagination(r, 20)

	handlerLogger := logger.WithFields(port.Fields{
		"user_id": userID,
		"limit":   limit,
		"offset":  offset,
	})
	handlerLogger.Info("Processing request to get user favorites", nil)

	favorites, total, err := h.listUC.Execute(r.Context(), userID, limit, offset)
	if err != nil {
		handlerLogger.Error("Get user favorites use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve favorites")
		return
	}

	response := PaginatedFavoritesResponse{
		Data:    make([]FavoriteResponse, len(favorites)),
		Total:   total,
		Page:    offset/limit + 1,
		PerPage: limit,
	}
	for i, f := range favorites {
		item := FavoriteResponse{
			ID:      f.ID.String(),
			AddedAt: f.CreatedAt,
		}
		if f.Property != nil {
			pr := toPropertyResponse(*f.Property)
			item.Property = &pr
		}
		response.Data[i] = item
	}

	handlerLogger.Info("Successfully retrieved user favorites", port.Fields{
		"total_found":   total,
		"items_on_page": len(favorites),
	})
	RespondWithJSON(w, http.StatusOK, response)
}

// GetUserFavoriteIDs обрабатывает GET /api/v1/favorites/ids
func (h *FavoritesHandler) GetUserFavoriteIDs(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserFavoriteIDs"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	ids, err := h.idsUC.Execute(r.Context(), userID)
	if err != nil {
		logger.Error("Get user favorite IDs use case failed", err, port.Fields{"user_id": userID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve favorites")
		return
	}

	RespondWithJSON(w, http.StatusOK, ids)
}

// AddToFavorites обрабатывает POST /api/v1/favorites
func (h *FavoritesHandler) AddToFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddToFavorites"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	var reqDTO AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body for add favorite", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	propertyID, err := uuid.Parse(reqDTO.PropertyID)
	if err != nil {
		logger.Warn("Invalid property_id format in request", port.Fields{"provided_id": reqDTO.PropertyID})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property_id format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":     userID,
		"property_id": propertyID,
	})
	handlerLogger.Info("Processing request to add to favorites", nil)

	if err := h.addUC.Execute(r.Context(), userID, propertyID); err != nil {
		handlerLogger.Error("Add to favorites use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to add to favorites")
		return
	}

	handlerLogger.Info("Successfully added property to favorites", nil)
	w.WriteHeader(http.StatusCreated)
}

// RemoveFromFavorites обрабатывает DELETE /api/v1/favorites/{propertyID}
func (h *FavoritesHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveFromFavorites"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	propertyIDStr := chi.URLParam(r, "propertyID")
	propertyID, err := uuid.Parse(propertyIDStr)
	if err != nil {
		logger.Warn("Invalid propertyID in URL", port.Fields{"provided_id": propertyIDStr})
		WriteJSONError(w, http.StatusBadRequest, "Invalid propertyID in URL")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":     userID,
		"property_id": propertyID,
	})
	handlerLogger.Info("Processing request to remove from favorites", nil)

	if err := h.removeUC.Execute(r.Context(), userID, propertyID); err != nil {
		handlerLogger.Error("Remove from favorites use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to remove from favorites")
		return
	}

	handlerLogger.Info("Successfully removed property from favorites", nil)
	w.WriteHeader(http.StatusNoContent)
}
