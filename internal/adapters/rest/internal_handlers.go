package rest

import (
	"net/http"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port/usecases_port"
)

// InternalHandler - эндпоинты для внешнего планировщика (cron).
type InternalHandler struct {
	checkAlertsUC    usecases_port.CheckSearchAlertsUseCasePort
	expireFeaturedUC usecases_port.ExpireFeaturedUseCasePort
}

func NewInternalHandler(
	checkAlertsUC usecases_port.CheckSearchAlertsUseCasePort,
	expireFeaturedUC usecases_port.ExpireFeaturedUseCasePort,
) *InternalHandler {
	return &InternalHandler{
		checkAlertsUC:    checkAlertsUC,
		expireFeaturedUC: expireFeaturedUC,
	}
}

// CheckSearchAlerts обрабатывает POST /internal/v1/cron/check-alerts
func (h *InternalHandler) CheckSearchAlerts(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CheckSearchAlerts"})
	logger.Info("Starting scheduled saved search alerts check", nil)

	sent, err := h.checkAlertsUC.Execute(r.Context())
	if err != nil {
		logger.Error("Check search alerts use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to check search alerts")
		return
	}

	logger.Info("Saved search alerts check finished", port.Fields{"alerts_sent": sent})
	RespondWithJSON(w, http.StatusOK, map[string]int{"alerts_sent": sent})
}

// ExpireFeatured обрабатывает POST /internal/v1/cron/expire-featured
func (h *InternalHandler) ExpireFeatured(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ExpireFeatured"})
	logger.Info("Starting scheduled featured expiration", nil)

	expired, err := h.expireFeaturedUC.Execute(r.Context())
	if err != nil {
		logger.Error("Expire featured use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to expire featured listings")
		return
	}

	logger.Info("Featured expiration finished", port.Fields{"expired": expired})
	RespondWithJSON(w, http.StatusOK, map[string]int64{"expired": expired})
}
