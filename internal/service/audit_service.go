package service

import (
	"campus-safety/internal/models"
	"campus-safety/internal/repository"
)

// AuditService handles audit logging
type AuditService struct {
	auditRepo *repository.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo *repository.AuditRepository) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
	}
}

// Log creates an audit log entry, ignoring errors
// This is the recommended way to log audit events as it won't fail the main operation
func (s *AuditService) Log(actorRef, action, resource, details string) {
	var actor *string
	if actorRef != "" {
		actor = &actorRef
	}
	_ = s.auditRepo.Create(&models.AuditLog{
		ActorRef: actor,
		Action:   action,
		Resource: resource,
		Details:  details,
	})
}
