package repository

import (
	"database/sql"

	"campus-safety/internal/models"
)

// TrailRepository handles the two append-only streams attached to a
// complaint: confidential investigation log entries and the bidirectional
// message thread. There are no update or delete operations by design.
//
// Both streams read with ORDER BY created_at, id so that successive reads
// are prefix-consistent: callers may cache a prefix and append the suffix.
type TrailRepository struct {
	db *sql.DB
}

// NewTrailRepository creates a new investigation trail repository
func NewTrailRepository(db *sql.DB) *TrailRepository {
	return &TrailRepository{db: db}
}

// AppendLog appends a confidential reviewer case note and fills in the
// generated id and timestamp
func (r *TrailRepository) AppendLog(entry *models.InvestigationLogEntry) error {
	query := `
		INSERT INTO investigation_logs (complaint_id, author, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(query, entry.ComplaintID, entry.Author, entry.Content).
		Scan(&entry.ID, &entry.CreatedAt)
}

// ListLogs retrieves all log entries for a complaint in append order
func (r *TrailRepository) ListLogs(complaintID string) ([]models.InvestigationLogEntry, error) {
	query := `
		SELECT id, complaint_id, author, content, created_at
		FROM investigation_logs
		WHERE complaint_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(query, complaintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.InvestigationLogEntry
	for rows.Next() {
		var e models.InvestigationLogEntry
		if err := rows.Scan(&e.ID, &e.ComplaintID, &e.Author, &e.Content, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AppendMessage appends a thread message and fills in the generated id
// and timestamp
func (r *TrailRepository) AppendMessage(msg *models.ComplaintMessage) error {
	query := `
		INSERT INTO complaint_messages (complaint_id, sender_role, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(query, msg.ComplaintID, msg.SenderRole, msg.Content).
		Scan(&msg.ID, &msg.CreatedAt)
}

// ListMessages retrieves all thread messages for a complaint in append order
func (r *TrailRepository) ListMessages(complaintID string) ([]models.ComplaintMessage, error) {
	query := `
		SELECT id, complaint_id, sender_role, content, created_at
		FROM complaint_messages
		WHERE complaint_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(query, complaintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.ComplaintMessage
	for rows.Next() {
		var m models.ComplaintMessage
		if err := rows.Scan(&m.ID, &m.ComplaintID, &m.SenderRole, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
