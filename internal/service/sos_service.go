package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"campus-safety/internal/apperr"
	"campus-safety/internal/lifecycle"
	"campus-safety/internal/models"
	"campus-safety/internal/notify"
	"campus-safety/internal/repository"
)

// SosService handles the SOS alert lifecycle
type SosService struct {
	sosRepo  *repository.SosRepository
	notifier notify.Notifier
	audit    *AuditService
}

// NewSosService creates a new SOS service
func NewSosService(sosRepo *repository.SosRepository, notifier notify.Notifier, audit *AuditService) *SosService {
	return &SosService{
		sosRepo:  sosRepo,
		notifier: notifier,
		audit:    audit,
	}
}

// CreateSosInput carries the intake payload for a new SOS alert.
// Coordinates and location are both optional: a single-tap trigger must
// succeed even when the device cannot produce a fix.
type CreateSosInput struct {
	Latitude  *float64
	Longitude *float64
	Location  *string
}

// Create registers a new SOS alert and fans out the responder notification
func (s *SosService) Create(ctx context.Context, reporterRef string, input CreateSosInput) (*models.SosAlert, error) {
	if reporterRef == "" {
		return nil, apperr.Validation("reporter_ref", "missing reporter identity")
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, apperr.Validation("coordinates", "latitude and longitude must be provided together")
	}

	now := time.Now()
	alert := &models.SosAlert{
		ID:          uuid.NewString(),
		ReporterRef: reporterRef,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Location:    input.Location,
		Status:      models.SosActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.sosRepo.Create(alert); err != nil {
		return nil, apperr.Transport("sos create", err)
	}

	s.audit.Log(reporterRef, "sos.create", "sos_alert:"+alert.ID, "")
	s.publish(ctx, "sos.created", alert, "new SOS alert")

	return alert, nil
}

// Transition moves an SOS alert along its lifecycle. The responder identity
// is stamped together with the transition time; terminal states stay final.
func (s *SosService) Transition(ctx context.Context, id string, target models.SosStatus, responderRef string, note *string) (*models.SosAlert, error) {
	if responderRef == "" {
		return nil, apperr.Validation("responder_ref", "missing responder identity")
	}

	alert, err := s.sosRepo.GetByID(id)
	if err != nil {
		return nil, apperr.Transport("sos fetch", err)
	}
	if alert == nil {
		return nil, apperr.NotFound("sos_alert", id)
	}

	if err := lifecycle.CheckSos(id, alert.Status, target); err != nil {
		return nil, err
	}

	now := time.Now()
	alert.Status = target
	alert.ResponderRef = &responderRef
	if note != nil {
		alert.ResponseNote = note
	}
	alert.UpdatedAt = now

	switch target {
	case models.SosResponding:
		alert.RespondingAt = &now
	case models.SosResolved:
		alert.ResolvedAt = &now
	case models.SosCancelled:
		alert.CancelledAt = &now
	}

	if err := s.sosRepo.Update(alert); err != nil {
		return nil, apperr.Transport("sos update", err)
	}

	s.audit.Log(responderRef, "sos.transition", "sos_alert:"+id, string(target))
	s.publish(ctx, "sos."+statusEventSuffix(target), alert, "SOS alert "+string(target))

	return alert, nil
}

// ListActive returns alerts still requiring attention (ACTIVE and RESPONDING)
func (s *SosService) ListActive() ([]models.SosAlert, error) {
	alerts, err := s.sosRepo.ListActive()
	if err != nil {
		return nil, apperr.Transport("sos list", err)
	}
	return alerts, nil
}

// ListAll returns the full SOS history, newest first
func (s *SosService) ListAll() ([]models.SosAlert, error) {
	alerts, err := s.sosRepo.ListAll()
	if err != nil {
		return nil, apperr.Transport("sos list", err)
	}
	return alerts, nil
}

// RemindStale re-notifies responders about alerts still ACTIVE past the
// given age. Returns the number of reminders sent.
func (s *SosService) RemindStale(ctx context.Context, staleAfter time.Duration) (int, error) {
	cutoff := time.Now().Add(-staleAfter)
	alerts, err := s.sosRepo.ListActiveOlderThan(cutoff)
	if err != nil {
		return 0, apperr.Transport("sos stale sweep", err)
	}

	sent := 0
	for i := range alerts {
		alert := &alerts[i]
		if alert.Status != models.SosActive {
			continue
		}
		s.publish(ctx, "sos.stale", alert,
			fmt.Sprintf("SOS alert unattended for over %s", staleAfter))
		sent++
	}
	return sent, nil
}

// publish sends a responder notification. Delivery failures are logged but
// never fail the calling operation: the alert row is already durable.
func (s *SosService) publish(ctx context.Context, kind string, alert *models.SosAlert, summary string) {
	event := notify.Event{
		Kind:       kind,
		ResourceID: alert.ID,
		Summary:    summary,
		OccurredAt: time.Now(),
	}
	if err := s.notifier.Publish(ctx, event); err != nil {
		slog.Warn("SOS notification delivery failed", "kind", kind, "sos_id", alert.ID, "error", err)
	}
}

func statusEventSuffix(status models.SosStatus) string {
	switch status {
	case models.SosResponding:
		return "responding"
	case models.SosResolved:
		return "resolved"
	case models.SosCancelled:
		return "cancelled"
	default:
		return "updated"
	}
}
