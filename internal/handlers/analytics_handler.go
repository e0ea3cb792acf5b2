package handlers

import (
	"net/http"

	"campus-safety/internal/service"
)

// AnalyticsHandler handles safety analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Snapshot returns the aggregated safety metrics
// @Summary Get the safety analytics snapshot
// @Description Aggregate incident counts, resolution metrics, average response time and recurring high-risk locations
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AnalyticsSnapshot
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Store unavailable"
// @Router /analytics [get]
func (h *AnalyticsHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.analyticsService.Snapshot()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, snapshot)
}
