package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port/usecases_port"
)

// AnalyticsHandler - сводки для владельцев объявлений.
type AnalyticsHandler struct {
	propertyUC  usecases_port.GetPropertyAnalyticsUseCasePort
	dashboardUC usecases_port.GetDashboardStatsUseCasePort
}

func NewAnalyticsHandler(
	propertyUC usecases_port.GetPropertyAnalyticsUseCasePort,
	dashboardUC usecases_port.GetDashboardStatsUseCasePort,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		propertyUC:  propertyUC,
		dashboardUC: dashboardUC,
	}
}

// GetPropertyAnalytics обрабатывает GET /api/v1/analytics/properties/{propertyID}
func (h *AnalyticsHandler) GetPropertyAnalytics(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPropertyAnalytics"})

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

	analytics, err := h.propertyUC.Execute(r.Context(), propertyID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "Analytics are only available to the property owner")
		default:
			logger.Error("Get property analytics use case failed", err, port.Fields{"property_id": propertyID})
			WriteJSONError(w, http.StatusInternalServerError, "Failed to get analytics")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"views":     analytics.Views,
		"favorites": analytics.Favorites,
		"leads":     analytics.Leads,
		"viewings":  analytics.Viewings,
	})
}

// GetDashboardStats обрабатывает GET /api/v1/analytics/dashboard
func (h *AnalyticsHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetDashboardStats"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	stats, err := h.dashboardUC.Execute(r.Context(), userID)
	if err != nil {
		logger.Error("Get dashboard stats use case failed", err, port.Fields{"user_id": userID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get dashboard stats")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"total_properties": stats.TotalProperties,
		"active_listings":  stats.ActiveListings,
		"total_views":      stats.TotalViews,
		"total_favorites":  stats.TotalFavorites,
		"total_leads":      stats.TotalLeads,
	})
}
