package handlers

import (
	"encoding/json"
	"net/http"

	"campus-safety/internal/middleware"
	"campus-safety/internal/models"
	"campus-safety/internal/service"
)

// BroadcastHandler handles broadcast alert HTTP requests
type BroadcastHandler struct {
	broadcastService *service.BroadcastService
}

// NewBroadcastHandler creates a new broadcast handler
func NewBroadcastHandler(broadcastService *service.BroadcastService) *BroadcastHandler {
	return &BroadcastHandler{
		broadcastService: broadcastService,
	}
}

type createBroadcastRequest struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Severity        models.Severity `json:"severity"`
	TargetAudience  models.Audience `json:"target_audience"`
	DepartmentScope []string        `json:"department_scope,omitempty"`
	Location        *string         `json:"location,omitempty"`
}

// Create publishes a new broadcast alert
// @Summary Create a broadcast alert
// @Description Publish a campus-wide or targeted safety alert
// @Tags Broadcasts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createBroadcastRequest true "Alert details"
// @Success 201 {object} models.BroadcastAlert
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /broadcasts [post]
func (h *BroadcastHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorRef, ok := middleware.GetActorRef(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	var req createBroadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	alert, err := h.broadcastService.Create(r.Context(), actorRef, service.CreateBroadcastInput{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Severity:        req.Severity,
		TargetAudience:  req.TargetAudience,
		DepartmentScope: req.DepartmentScope,
		Location:        req.Location,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, alert)
}

// Deactivate retires an active broadcast alert
// @Summary Deactivate a broadcast alert
// @Description Mark an alert inactive; deactivating an already inactive alert fails
// @Tags Broadcasts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Broadcast alert ID"
// @Success 200 {object} models.BroadcastAlert
// @Failure 400 {object} map[string]string "Alert already deactivated"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /broadcasts/{id}/deactivate [put]
func (h *BroadcastHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
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

	alert, err := h.broadcastService.Deactivate(id, actorRef)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, alert)
}

// ListActive returns alerts targeting the caller
// @Summary List active broadcast alerts
// @Description Get active alerts whose audience matches the caller; department membership comes from the token's department claim
// @Tags Broadcasts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BroadcastAlert
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /broadcasts/active [get]
func (h *BroadcastHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	actorRef, ok := middleware.GetActorRef(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	// Reviewers and admins see the untargeted active set
	if middleware.ActorHasRole(r, middleware.RoleReviewer) || middleware.ActorHasRole(r, middleware.RoleAdmin) {
		alerts, err := h.broadcastService.ListActive()
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, alerts)
		return
	}

	// Membership is taken from the identity provider's claim, never from
	// anything the client self-declares in the request
	department, _ := middleware.GetActorDepartment(r)
	alerts, err := h.broadcastService.ListForAccount(actorRef, department)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, alerts)
}

// ListAll returns the full broadcast history
// @Summary List all broadcast alerts
// @Description Get every alert ever published, active or not
// @Tags Broadcasts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BroadcastAlert
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /broadcasts [get]
func (h *BroadcastHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.broadcastService.ListAll()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, alerts)
}
