package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"campus-safety/internal/middleware"
	"campus-safety/internal/models"
	"campus-safety/internal/service"
)

// CounselingHandler handles counseling request HTTP requests
type CounselingHandler struct {
	counselingService *service.CounselingService
}

// NewCounselingHandler creates a new counseling handler
func NewCounselingHandler(counselingService *service.CounselingService) *CounselingHandler {
	return &CounselingHandler{
		counselingService: counselingService,
	}
}

type submitCounselingRequest struct {
	Kind          models.CounselingKind    `json:"kind"`
	Urgency       models.CounselingUrgency `json:"urgency"`
	Reason        string                   `json:"reason"`
	PreferredTime *time.Time               `json:"preferred_time,omitempty"`
}

type updateCounselingRequest struct {
	Status       models.CounselingStatus `json:"status"`
	CounselorRef *string                 `json:"counselor_ref,omitempty"`
}

// Submit files a new counseling request
// @Summary Submit a counseling request
// @Description Request medical or psychological support; the request stays private to the reporter and counseling staff
// @Tags Counseling
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body submitCounselingRequest true "Request details"
// @Success 201 {object} models.CounselingRequest
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /counseling [post]
func (h *CounselingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actorRef, ok := middleware.GetActorRef(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	var req submitCounselingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	request, err := h.counselingService.Submit(actorRef, service.SubmitCounselingInput{
		Kind:          req.Kind,
		Urgency:       req.Urgency,
		Reason:        req.Reason,
		PreferredTime: req.PreferredTime,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, request)
}

// UpdateStatus moves a counseling request through its workflow
// @Summary Update a counseling request
// @Description Schedule, complete or refer a counseling request; scheduling requires a counselor assignment
// @Tags Counseling
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Counseling request ID"
// @Param request body updateCounselingRequest true "Target status and optional counselor"
// @Success 200 {object} models.CounselingRequest
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]interface{} "Illegal transition with allowed next states"
// @Router /counseling/{id}/status [put]
func (h *CounselingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	var req updateCounselingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	request, err := h.counselingService.UpdateStatus(id, req.Status, req.CounselorRef, actorRef)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, request)
}

// List returns counseling requests visible to the caller
// @Summary List counseling requests
// @Description Counselors and admins see every request; other actors see only their own
// @Tags Counseling
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CounselingRequest
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /counseling [get]
func (h *CounselingHandler) List(w http.ResponseWriter, r *http.Request) {
	actorRef, ok := middleware.GetActorRef(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	var (
		requests []models.CounselingRequest
		err      error
	)
	if middleware.ActorHasRole(r, middleware.RoleCounselor) || middleware.ActorHasRole(r, middleware.RoleAdmin) {
		requests, err = h.counselingService.ListAll()
	} else {
		requests, err = h.counselingService.ListForReporter(actorRef)
	}
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, requests)
}
