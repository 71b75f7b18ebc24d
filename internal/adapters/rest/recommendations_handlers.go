package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port/usecases_port"
)

// RecommendationsHandler - персональные рекомендации и похожие объявления.
type RecommendationsHandler struct {
	recommendationsUC usecases_port.GetRecommendationsUseCasePort
	similarUC         usecases_port.GetSimilarPropertiesUseCasePort
}

func NewRecommendationsHandler(
	recommendationsUC usecases_port.GetRecommendationsUseCasePort,
	similarUC usecases_port.GetSimilarPropertiesUseCasePort,
) *RecommendationsHandler {
	return &RecommendationsHandler{
		recommendationsUC: recommendationsUC,
		similarUC:         similarUC,
	}
}

// GetRecommendations обрабатывает GET /api/v1/recommendations
func (h *RecommendationsHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetRecommendations"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	limit, _ := GetPagination(r, 10)

	handlerLogger := logger.WithFields(port.Fields{"user_id": userID, "limit": limit})
	handlerLogger.Info("Processing recommendations request", nil)

	// Рекомендации не падают: при любой проблеме с источниками данных
	// use case возвращает пустой список.
	properties, err := h.recommendationsUC.Execute(r.Context(), userID, limit)
	if err != nil {
		handlerLogger.Error("Get recommendations use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get recommendations")
		return
	}

	handlerLogger.Info("Recommendations ready", port.Fields{"count": len(properties)})
	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}

// GetSimilarProperties обрабатывает GET /api/v1/properties/{propertyID}/similar
func (h *RecommendationsHandler) GetSimilarProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetSimilarProperties"})

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid propertyID in URL")
		return
	}

	limit, _ := GetPagination(r, 6)

	scored, err := h.similarUC.Execute(r.Context(), propertyID, limit)
	if err != nil {
		logger.Error("Get similar properties use case failed", err, port.Fields{"property_id": propertyID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get similar properties")
		return
	}

	response := make([]ScoredPropertyResponse, len(scored))
	for i, sp := range scored {
		response[i] = ScoredPropertyResponse{
			PropertyResponse: toPropertyResponse(sp.Property),
			SimilarityScore:  sp.Similarity,
		}
	}

	RespondWithJSON(w, http.StatusOK, response)
}
