package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"campus-safety/internal/apperr"
	"campus-safety/internal/directory"
	"campus-safety/internal/models"
	"campus-safety/internal/notify"
	"campus-safety/internal/repository"
)

// BroadcastService handles institution-wide broadcast alerts
type BroadcastService struct {
	broadcastRepo *repository.BroadcastRepository
	directory     *directory.Directory
	notifier      notify.Notifier
	audit         *AuditService
}

// NewBroadcastService creates a new broadcast service
func NewBroadcastService(
	broadcastRepo *repository.BroadcastRepository,
	dir *directory.Directory,
	notifier notify.Notifier,
	audit *AuditService,
) *BroadcastService {
	return &BroadcastService{
		broadcastRepo: broadcastRepo,
		directory:     dir,
		notifier:      notifier,
		audit:         audit,
	}
}

// CreateBroadcastInput carries the payload for a new broadcast alert
type CreateBroadcastInput struct {
	Title           string
	Description     string
	Category        string
	Severity        models.Severity
	TargetAudience  models.Audience
	DepartmentScope []string
	Location        *string
}

// Create registers a new active broadcast alert
func (s *BroadcastService) Create(ctx context.Context, createdBy string, input CreateBroadcastInput) (*models.BroadcastAlert, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperr.Validation("title", "title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperr.Validation("description", "description is required")
	}
	if !models.ValidSeverity(input.Severity) {
		return nil, apperr.Validation("severity", "unknown severity "+string(input.Severity))
	}
	if !models.ValidAudience(input.TargetAudience) {
		return nil, apperr.Validation("target_audience", "unknown audience "+string(input.TargetAudience))
	}

	if input.TargetAudience == models.AudienceDepartments {
		if len(input.DepartmentScope) == 0 {
			return nil, apperr.Validation("department_scope", "departments audience requires a scope list")
		}
		if unknown, ok := s.directory.ValidateScope(input.DepartmentScope); !ok {
			return nil, apperr.Validation("department_scope", "unknown department "+unknown)
		}
	} else if len(input.DepartmentScope) > 0 {
		return nil, apperr.Validation("department_scope", "scope list is only valid for the departments audience")
	}

	alert := &models.BroadcastAlert{
		ID:              uuid.NewString(),
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		Severity:        input.Severity,
		TargetAudience:  input.TargetAudience,
		DepartmentScope: input.DepartmentScope,
		Location:        input.Location,
		CreatedBy:       createdBy,
		CreatedAt:       time.Now(),
		IsActive:        true,
	}

	if err := s.broadcastRepo.Create(alert); err != nil {
		return nil, apperr.Transport("broadcast create", err)
	}

	s.audit.Log(createdBy, "broadcast.create", "broadcast_alert:"+alert.ID, string(input.TargetAudience))

	event := notify.Event{
		Kind:       "broadcast.created",
		ResourceID: alert.ID,
		Summary:    alert.Title,
		Severity:   string(alert.Severity),
		OccurredAt: time.Now(),
	}
	// The row is already durable; delivery is best-effort
	if err := s.notifier.Publish(ctx, event); err != nil {
		slog.Warn("Broadcast notification delivery failed", "broadcast_id", alert.ID, "error", err)
	}

	return alert, nil
}

// Deactivate retires a broadcast alert. One-way: re-activation is not
// supported, a new alert must be created instead.
func (s *BroadcastService) Deactivate(id, actorRef string) (*models.BroadcastAlert, error) {
	alert, err := s.broadcastRepo.GetByID(id)
	if err != nil {
		return nil, apperr.Transport("broadcast fetch", err)
	}
	if alert == nil {
		return nil, apperr.NotFound("broadcast_alert", id)
	}
	if !alert.IsActive {
		return nil, apperr.Validation("is_active", "broadcast alert is already deactivated")
	}

	now := time.Now()
	affected, err := s.broadcastRepo.Deactivate(id, now)
	if err != nil {
		return nil, apperr.Transport("broadcast deactivate", err)
	}
	if affected == 0 {
		// Lost the race with a concurrent deactivation
		return nil, apperr.Validation("is_active", "broadcast alert is already deactivated")
	}

	alert.IsActive = false
	alert.DeactivatedAt = &now

	s.audit.Log(actorRef, "broadcast.deactivate", "broadcast_alert:"+id, "")
	return alert, nil
}

// ListActive returns all active broadcast alerts
func (s *BroadcastService) ListActive() ([]models.BroadcastAlert, error) {
	alerts, err := s.broadcastRepo.ListActive()
	if err != nil {
		return nil, apperr.Transport("broadcast list", err)
	}
	return alerts, nil
}

// ListAll returns every broadcast alert including deactivated ones
func (s *BroadcastService) ListAll() ([]models.BroadcastAlert, error) {
	alerts, err := s.broadcastRepo.ListAll()
	if err != nil {
		return nil, apperr.Transport("broadcast list", err)
	}
	return alerts, nil
}

// ListForAccount returns the active alerts whose audience includes the
// given account
func (s *BroadcastService) ListForAccount(accountRef, department string) ([]models.BroadcastAlert, error) {
	alerts, err := s.broadcastRepo.ListActive()
	if err != nil {
		return nil, apperr.Transport("broadcast list", err)
	}

	var visible []models.BroadcastAlert
	for i := range alerts {
		if s.directory.MatchesAudience(&alerts[i], accountRef, department) {
			visible = append(visible, alerts[i])
		}
	}
	return visible, nil
}
