package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campus-safety/internal/apperr"
	"campus-safety/internal/lifecycle"
	"campus-safety/internal/models"
	"campus-safety/internal/repository"
	"campus-safety/internal/securestore"
)

// ComplaintService handles the complaint review workflow and its
// investigation trail
type ComplaintService struct {
	complaintRepo *repository.ComplaintRepository
	trailRepo     *repository.TrailRepository
	cipher        securestore.ContentCipher
	audit         *AuditService
}

// NewComplaintService creates a new complaint service
func NewComplaintService(
	complaintRepo *repository.ComplaintRepository,
	trailRepo *repository.TrailRepository,
	cipher securestore.ContentCipher,
	audit *AuditService,
) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		trailRepo:     trailRepo,
		cipher:        cipher,
		audit:         audit,
	}
}

// SubmitComplaintInput carries the intake payload for a new complaint
type SubmitComplaintInput struct {
	Category    models.ComplaintCategory
	Severity    models.Severity
	Description string
	Location    *string
	Anonymous   bool
}

// Submit registers a new complaint. For anonymous complaints the reporter
// ref is still stored (the reporter keeps access to their own case) but is
// redacted from every reviewer-facing read at the repository boundary.
func (s *ComplaintService) Submit(reporterRef string, input SubmitComplaintInput) (*models.Complaint, error) {
	if reporterRef == "" {
		return nil, apperr.Validation("reporter_ref", "missing reporter identity")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperr.Validation("description", "description is required")
	}
	if !models.ValidCategory(input.Category) {
		return nil, apperr.Validation("category", "unknown category "+string(input.Category))
	}
	if !models.ValidSeverity(input.Severity) {
		return nil, apperr.Validation("severity", "unknown severity "+string(input.Severity))
	}

	now := time.Now()
	complaint := &models.Complaint{
		ID:          uuid.NewString(),
		ReporterRef: &reporterRef,
		Anonymous:   input.Anonymous,
		Category:    input.Category,
		Severity:    input.Severity,
		Description: input.Description,
		Location:    input.Location,
		Status:      models.ComplaintSubmitted,
		SubmittedAt: now,
		UpdatedAt:   now,
	}

	if err := s.complaintRepo.Create(complaint); err != nil {
		return nil, apperr.Transport("complaint create", err)
	}

	s.audit.Log(reporterRef, "complaint.submit", "complaint:"+complaint.ID, string(input.Category))

	// Return the reviewer-facing view so anonymous submissions never echo
	// the reporter ref back through a shared response path
	if input.Anonymous {
		complaint.ReporterRef = nil
	}
	return complaint, nil
}

// Transition moves a complaint along the review graph. Illegal edges are
// rejected without mutating stored state.
func (s *ComplaintService) Transition(id string, target models.ComplaintStatus, actorRef string) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(id)
	if err != nil {
		return nil, apperr.Transport("complaint fetch", err)
	}
	if complaint == nil {
		return nil, apperr.NotFound("complaint", id)
	}

	if err := lifecycle.CheckComplaint(id, complaint.Status, target); err != nil {
		return nil, err
	}

	now := time.Now()
	complaint.Status = target
	complaint.UpdatedAt = now

	switch target {
	case models.ComplaintUnderReview:
		complaint.ReviewedAt = &now
	case models.ComplaintActionTaken:
		complaint.ActionTakenAt = &now
	case models.ComplaintClosed:
		complaint.ClosedAt = &now
	}

	if err := s.complaintRepo.Update(complaint); err != nil {
		return nil, apperr.Transport("complaint update", err)
	}

	s.audit.Log(actorRef, "complaint.transition", "complaint:"+id, string(target))
	return complaint, nil
}

// Assign sets the reviewing assignee. Assignment is orthogonal to status
// and legal at any non-terminal state; it never changes status itself.
func (s *ComplaintService) Assign(id, assigneeRef, actorRef string) (*models.Complaint, error) {
	if assigneeRef == "" {
		return nil, apperr.Validation("assignee_ref", "missing assignee identity")
	}

	complaint, err := s.complaintRepo.GetByID(id)
	if err != nil {
		return nil, apperr.Transport("complaint fetch", err)
	}
	if complaint == nil {
		return nil, apperr.NotFound("complaint", id)
	}
	if models.TerminalComplaint(complaint.Status) {
		return nil, apperr.Validation("status", "cannot assign a closed complaint")
	}

	complaint.AssignedToRef = &assigneeRef
	complaint.UpdatedAt = time.Now()

	if err := s.complaintRepo.Update(complaint); err != nil {
		return nil, apperr.Transport("complaint update", err)
	}

	s.audit.Log(actorRef, "complaint.assign", "complaint:"+id, assigneeRef)
	return complaint, nil
}

// GetForReviewer returns the reviewer-facing view of a complaint. The
// repository redacts the reporter ref of anonymous complaints before the
// row leaves the store.
func (s *ComplaintService) GetForReviewer(id string) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(id)
	if err != nil {
		return nil, apperr.Transport("complaint fetch", err)
	}
	if complaint == nil {
		return nil, apperr.NotFound("complaint", id)
	}
	return complaint, nil
}

// GetForReporter returns a complaint scoped to its own reporter, including
// the reporter ref even when anonymous
func (s *ComplaintService) GetForReporter(id, reporterRef string) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.GetByIDForReporter(id, reporterRef)
	if err != nil {
		return nil, apperr.Transport("complaint fetch", err)
	}
	if complaint == nil {
		return nil, apperr.NotFound("complaint", id)
	}
	return complaint, nil
}

// ListForReviewer returns all complaints, reviewer view
func (s *ComplaintService) ListForReviewer() ([]models.Complaint, error) {
	complaints, err := s.complaintRepo.ListAll()
	if err != nil {
		return nil, apperr.Transport("complaint list", err)
	}
	return complaints, nil
}

// ListForReporter returns a reporter's own complaints
func (s *ComplaintService) ListForReporter(reporterRef string) ([]models.Complaint, error) {
	complaints, err := s.complaintRepo.ListByReporter(reporterRef)
	if err != nil {
		return nil, apperr.Transport("complaint list", err)
	}
	return complaints, nil
}

// AppendLog appends a confidential reviewer case note. The content is
// sealed before it reaches the store; the entry is immutable once written.
func (s *ComplaintService) AppendLog(complaintID, author, content string) (*models.InvestigationLogEntry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.Validation("content", "log content is required")
	}

	complaint, err := s.complaintRepo.GetByID(complaintID)
	if err != nil {
		return nil, apperr.Transport("complaint fetch", err)
	}
	if complaint == nil {
		return nil, apperr.NotFound("complaint", complaintID)
	}

	sealed, err := s.cipher.Seal(complaintID, content)
	if err != nil {
		return nil, apperr.Transport("log seal", err)
	}

	entry := &models.InvestigationLogEntry{
		ComplaintID: complaintID,
		Author:      author,
		Content:     sealed,
	}
	if err := s.trailRepo.AppendLog(entry); err != nil {
		return nil, apperr.Transport("log append", err)
	}

	s.audit.Log(author, "complaint.log", "complaint:"+complaintID, "")

	// Return the plaintext the author wrote, not the stored ciphertext
	entry.Content = content
	return entry, nil
}

// ListLogs returns a complaint's case notes in append order, decrypted
func (s *ComplaintService) ListLogs(complaintID string) ([]models.InvestigationLogEntry, error) {
	complaint, err := s.complaintRepo.GetByID(complaintID)
	if err != nil {
		return nil, apperr.Transport("complaint fetch", err)
	}
	if complaint == nil {
		return nil, apperr.NotFound("complaint", complaintID)
	}

	entries, err := s.trailRepo.ListLogs(complaintID)
	if err != nil {
		return nil, apperr.Transport("log list", err)
	}

	for i := range entries {
		content, err := s.cipher.Open(complaintID, entries[i].Content)
		if err != nil {
			return nil, apperr.Transport("log open", err)
		}
		entries[i].Content = content
	}
	return entries, nil
}

// SendMessage appends one entry to the bidirectional thread. Only the
// complaint id and the sender role go to the store: the thread never
// carries an account identifier, so anonymity cannot leak through it.
func (s *ComplaintService) SendMessage(complaintID string, role models.SenderRole, content string) (*models.ComplaintMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.Validation("content", "message content is required")
	}
	if role != models.RoleReporter && role != models.RoleReviewer {
		return nil, apperr.Validation("sender_role", "unknown sender role "+string(role))
	}

	complaint, err := s.complaintRepo.GetByID(complaintID)
	if err != nil {
		return nil, apperr.Transport("complaint fetch", err)
	}
	if complaint == nil {
		return nil, apperr.NotFound("complaint", complaintID)
	}

	msg := &models.ComplaintMessage{
		ComplaintID: complaintID,
		SenderRole:  role,
		Content:     content,
	}
	if err := s.trailRepo.AppendMessage(msg); err != nil {
		return nil, apperr.Transport("message append", err)
	}
	return msg, nil
}

// ListMessages returns a complaint's message thread in append order
func (s *ComplaintService) ListMessages(complaintID string) ([]models.ComplaintMessage, error) {
	complaint, err := s.complaintRepo.GetByID(complaintID)
	if err != nil {
		return nil, apperr.Transport("complaint fetch", err)
	}
	if complaint == nil {
		return nil, apperr.NotFound("complaint", complaintID)
	}

	messages, err := s.trailRepo.ListMessages(complaintID)
	if err != nil {
		return nil, apperr.Transport("message list", err)
	}
	return messages, nil
}

// IsReporterOf reports whether the actor submitted the complaint. Used by
// handlers to pick the reporter-side view and message role.
func (s *ComplaintService) IsReporterOf(complaintID, actorRef string) (bool, error) {
	complaint, err := s.complaintRepo.GetByIDForReporter(complaintID, actorRef)
	if err != nil {
		return false, apperr.Transport("complaint fetch", err)
	}
	return complaint != nil, nil
}
