package handlers

import (
	"encoding/json"
	"net/http"

	"campus-safety/internal/middleware"
	"campus-safety/internal/models"
	"campus-safety/internal/service"
)

// ComplaintHandler handles complaint and investigation trail HTTP requests
type ComplaintHandler struct {
	complaintService *service.ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
	}
}

type submitComplaintRequest struct {
	Category    models.ComplaintCategory `json:"category"`
	Severity    models.Severity          `json:"severity"`
	Description string                   `json:"description"`
	Location    *string                  `json:"location,omitempty"`
	Anonymous   bool                     `json:"anonymous"`
}

type transitionComplaintRequest struct {
	Status models.ComplaintStatus `json:"status"`
}

type assignComplaintRequest struct {
	AssigneeRef string `json:"assignee_ref"`
}

type appendLogRequest struct {
	Content string `json:"content"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// Submit files a new complaint
// @Summary Submit a complaint
// @Description File a complaint; anonymous complaints never expose the reporter to reviewers
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body submitComplaintRequest true "Complaint details"
// @Success 201 {object} models.Complaint
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /complaints [post]
func (h *ComplaintHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actorRef, ok := middleware.GetActorRef(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	var req submitComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	complaint, err := h.complaintService.Submit(actorRef, service.SubmitComplaintInput{
		Category:    req.Category,
		Severity:    req.Severity,
		Description: req.Description,
		Location:    req.Location,
		Anonymous:   req.Anonymous,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, complaint)
}

// List returns complaints visible to the caller
// @Summary List complaints
// @Description Reviewers see every complaint (anonymous ones redacted); other actors see only their own
// @Tags Complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Complaint
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /complaints [get]
func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	actorRef, ok := middleware.GetActorRef(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	var (
		complaints []models.Complaint
		err        error
	)
	if middleware.ActorHasRole(r, middleware.RoleReviewer) || middleware.ActorHasRole(r, middleware.RoleAdmin) {
		complaints, err = h.complaintService.ListForReviewer()
	} else {
		complaints, err = h.complaintService.ListForReporter(actorRef)
	}
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, complaints)
}

// Get returns a single complaint visible to the caller
// @Summary Get a complaint
// @Description Reviewers may fetch any complaint (redacted when anonymous); reporters only their own
// @Tags Complaints
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} models.Complaint
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Router /complaints/{id} [get]
func (h *ComplaintHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	var (
		complaint *models.Complaint
		err       error
	)
	if middleware.ActorHasRole(r, middleware.RoleReviewer) || middleware.ActorHasRole(r, middleware.RoleAdmin) {
		complaint, err = h.complaintService.GetForReviewer(id)
	} else {
		complaint, err = h.complaintService.GetForReporter(id, actorRef)
	}
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, complaint)
}

// Transition moves a complaint through its review lifecycle
// @Summary Transition a complaint
// @Description Move a complaint between Submitted, Under Review, Action Taken and Closed
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body transitionComplaintRequest true "Target status"
// @Success 200 {object} models.Complaint
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Failure 409 {object} map[string]interface{} "Illegal transition with allowed next states"
// @Router /complaints/{id}/status [put]
func (h *ComplaintHandler) Transition(w http.ResponseWriter, r *http.Request) {
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

	var req transitionComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	complaint, err := h.complaintService.Transition(id, req.Status, actorRef)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, complaint)
}

// Assign sets the reviewer responsible for a complaint
// @Summary Assign a complaint
// @Description Assign a reviewer to a complaint without changing its status
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body assignComplaintRequest true "Assignee reference"
// @Success 200 {object} models.Complaint
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Router /complaints/{id}/assign [put]
func (h *ComplaintHandler) Assign(w http.ResponseWriter, r *http.Request) {
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

	var req assignComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	complaint, err := h.complaintService.Assign(id, req.AssigneeRef, actorRef)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, complaint)
}

// AppendLog appends an investigation log entry
// @Summary Append an investigation log entry
// @Description Add an append-only entry to the complaint's investigation trail
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body appendLogRequest true "Entry content"
// @Success 201 {object} models.InvestigationLogEntry
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Router /complaints/{id}/logs [post]
func (h *ComplaintHandler) AppendLog(w http.ResponseWriter, r *http.Request) {
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

	var req appendLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	entry, err := h.complaintService.AppendLog(id, actorRef, req.Content)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, entry)
}

// ListLogs returns the investigation trail for a complaint
// @Summary List investigation log entries
// @Description Get the append-only investigation trail in chronological order
// @Tags Complaints
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {array} models.InvestigationLogEntry
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Router /complaints/{id}/logs [get]
func (h *ComplaintHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, ErrMsgMissingID)
		return
	}

	entries, err := h.complaintService.ListLogs(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, entries)
}

// SendMessage posts a message on a complaint's anonymous channel
// @Summary Send a complaint message
// @Description Post a message on the two-way channel; only the sender's side (reporter or reviewer) is recorded
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body sendMessageRequest true "Message content"
// @Success 201 {object} models.ComplaintMessage
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Actor is neither the reporter nor a reviewer"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Router /complaints/{id}/messages [post]
func (h *ComplaintHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
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

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	role, ok, err := h.senderRole(r, id, actorRef)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if !ok {
		respondWithError(w, http.StatusForbidden, "Not a participant in this complaint")
		return
	}

	message, err := h.complaintService.SendMessage(id, role, req.Content)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, message)
}

// ListMessages returns the message channel for a complaint
// @Summary List complaint messages
// @Description Get the message exchange for a complaint; messages carry roles, never identities
// @Tags Complaints
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {array} models.ComplaintMessage
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Actor is neither the reporter nor a reviewer"
// @Router /complaints/{id}/messages [get]
func (h *ComplaintHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
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

	_, participant, err := h.senderRole(r, id, actorRef)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if !participant {
		respondWithError(w, http.StatusForbidden, "Not a participant in this complaint")
		return
	}

	messages, err := h.complaintService.ListMessages(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, messages)
}

// senderRole resolves which side of the channel the actor speaks for.
// The reporter check runs first so a reviewer who filed their own
// complaint still messages on it as the reporter.
func (h *ComplaintHandler) senderRole(r *http.Request, complaintID, actorRef string) (models.SenderRole, bool, error) {
	isReporter, err := h.complaintService.IsReporterOf(complaintID, actorRef)
	if err != nil {
		return "", false, err
	}
	if isReporter {
		return models.RoleReporter, true, nil
	}
	if middleware.ActorHasRole(r, middleware.RoleReviewer) || middleware.ActorHasRole(r, middleware.RoleAdmin) {
		return models.RoleReviewer, true, nil
	}
	return "", false, nil
}
