package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campus-safety/internal/apperr"
	"campus-safety/internal/lifecycle"
	"campus-safety/internal/models"
	"campus-safety/internal/repository"
)

// CounselingService handles counseling request intake and scheduling
type CounselingService struct {
	counselingRepo *repository.CounselingRepository
	audit          *AuditService
}

// NewCounselingService creates a new counseling service
func NewCounselingService(counselingRepo *repository.CounselingRepository, audit *AuditService) *CounselingService {
	return &CounselingService{
		counselingRepo: counselingRepo,
		audit:          audit,
	}
}

// SubmitCounselingInput carries the intake payload for a support request
type SubmitCounselingInput struct {
	Kind          models.CounselingKind
	Urgency       models.CounselingUrgency
	Reason        string
	PreferredTime *time.Time
}

// Submit registers a new counseling request
func (s *CounselingService) Submit(reporterRef string, input SubmitCounselingInput) (*models.CounselingRequest, error) {
	if reporterRef == "" {
		return nil, apperr.Validation("reporter_ref", "missing reporter identity")
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, apperr.Validation("reason", "reason is required")
	}
	if input.Kind != models.CounselingMedical && input.Kind != models.CounselingPsychological {
		return nil, apperr.Validation("kind", "unknown counseling kind "+string(input.Kind))
	}
	if input.Urgency != models.UrgencyEmergency && input.Urgency != models.UrgencyUrgent && input.Urgency != models.UrgencyRoutine {
		return nil, apperr.Validation("urgency", "unknown urgency "+string(input.Urgency))
	}

	now := time.Now()
	req := &models.CounselingRequest{
		ID:            uuid.NewString(),
		ReporterRef:   reporterRef,
		Kind:          input.Kind,
		Urgency:       input.Urgency,
		Reason:        input.Reason,
		PreferredTime: input.PreferredTime,
		Status:        models.CounselingPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.counselingRepo.Create(req); err != nil {
		return nil, apperr.Transport("counseling create", err)
	}

	s.audit.Log(reporterRef, "counseling.submit", "counseling_request:"+req.ID, string(input.Kind))
	return req, nil
}

// UpdateStatus moves a counseling request along its lifecycle. Scheduling
// requires an assigned counselor identity.
func (s *CounselingService) UpdateStatus(id string, target models.CounselingStatus, counselorRef *string, actorRef string) (*models.CounselingRequest, error) {
	req, err := s.counselingRepo.GetByID(id)
	if err != nil {
		return nil, apperr.Transport("counseling fetch", err)
	}
	if req == nil {
		return nil, apperr.NotFound("counseling_request", id)
	}

	if err := lifecycle.CheckCounseling(id, req.Status, target); err != nil {
		return nil, err
	}

	if target == models.CounselingScheduled {
		if counselorRef == nil || *counselorRef == "" {
			return nil, apperr.Validation("counselor_ref", "scheduling requires an assigned counselor")
		}
		req.AssignedCounselorRef = counselorRef
	}

	now := time.Now()
	req.Status = target
	req.UpdatedAt = now

	switch target {
	case models.CounselingScheduled:
		req.ScheduledAt = &now
	case models.CounselingCompleted:
		req.CompletedAt = &now
	case models.CounselingReferred:
		req.ReferredAt = &now
	}

	if err := s.counselingRepo.Update(req); err != nil {
		return nil, apperr.Transport("counseling update", err)
	}

	s.audit.Log(actorRef, "counseling.transition", "counseling_request:"+id, string(target))
	return req, nil
}

// ListAll returns every counseling request, newest first
func (s *CounselingService) ListAll() ([]models.CounselingRequest, error) {
	requests, err := s.counselingRepo.ListAll()
	if err != nil {
		return nil, apperr.Transport("counseling list", err)
	}
	return requests, nil
}

// ListForReporter returns a reporter's own counseling requests
func (s *CounselingService) ListForReporter(reporterRef string) ([]models.CounselingRequest, error) {
	requests, err := s.counselingRepo.ListByReporter(reporterRef)
	if err != nil {
		return nil, apperr.Transport("counseling list", err)
	}
	return requests, nil
}
