package handlers

import (
	"encoding/json"
	"net/http"

	"campus-safety/internal/middleware"
	"campus-safety/internal/models"
	"campus-safety/internal/monitor"
	"campus-safety/internal/service"
)

// SosHandler handles SOS alert HTTP requests
type SosHandler struct {
	sosService *service.SosService
	monitor    *monitor.Monitor
}

// NewSosHandler creates a new SOS handler
func NewSosHandler(sosService *service.SosService, mon *monitor.Monitor) *SosHandler {
	return &SosHandler{
		sosService: sosService,
		monitor:    mon,
	}
}

type createSosRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Location  *string  `json:"location,omitempty"`
}

type transitionSosRequest struct {
	Status models.SosStatus `json:"status"`
	Note   *string          `json:"note,omitempty"`
}

// Create triggers a new SOS alert
// @Summary Trigger an SOS alert
// @Description Create an emergency alert for the authenticated actor; coordinates are optional
// @Tags SOS
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createSosRequest true "Optional coordinates and location"
// @Success 201 {object} models.SosAlert
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /sos [post]
func (h *SosHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorRef, ok := middleware.GetActorRef(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	var req createSosRequest
	// An empty body is a legal single-tap trigger
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}
	}

	alert, err := h.sosService.Create(r.Context(), actorRef, service.CreateSosInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Location:  req.Location,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, alert)
}

// Transition moves an SOS alert through its lifecycle
// @Summary Transition an SOS alert
// @Description Move an alert to RESPONDING, RESOLVED or CANCELLED; the acting responder is stamped on the alert
// @Tags SOS
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "SOS alert ID"
// @Param request body transitionSosRequest true "Target status and optional note"
// @Success 200 {object} models.SosAlert
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]interface{} "Illegal transition with allowed next states"
// @Router /sos/{id}/status [put]
func (h *SosHandler) Transition(w http.ResponseWriter, r *http.Request) {
	actorRef, ok := middleware.GetActorRef(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, ErrMsgMissingID)
		return
	}

	var req transitionSosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	alert, err := h.sosService.Transition(r.Context(), id, req.Status, actorRef, req.Note)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, alert)
}

// ListActive lists alerts still requiring attention
// @Summary List active SOS alerts
// @Description Get all alerts in ACTIVE or RESPONDING state; clients poll this endpoint while the SOS view is open
// @Tags SOS
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SosAlert
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /sos/active [get]
func (h *SosHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.sosService.ListActive()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, alerts)
}

// MonitorSnapshot serves the periodically refreshed active-alert view
// @Summary Get the monitored SOS snapshot
// @Description Get the last good snapshot of active alerts maintained by the background refresh loop; fetched_at exposes staleness after store failures
// @Tags SOS
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Snapshot with alerts and fetch timestamp"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /sos/snapshot [get]
func (h *SosHandler) MonitorSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := h.monitor.Snapshot()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"alerts":     snap.Alerts,
		"fetched_at": snap.FetchedAt,
	})
}

// ListAll lists the full SOS history
// @Summary List all SOS alerts
// @Description Get the complete alert history including resolved and cancelled alerts
// @Tags SOS
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SosAlert
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /sos [get]
func (h *SosHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.sosService.ListAll()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, alerts)
}
