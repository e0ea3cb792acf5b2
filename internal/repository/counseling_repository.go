package repository

import (
	"database/sql"

	"campus-safety/internal/models"
)

// CounselingRepository handles database operations for counseling requests
type CounselingRepository struct {
	db *sql.DB
}

// NewCounselingRepository creates a new counseling request repository
func NewCounselingRepository(db *sql.DB) *CounselingRepository {
	return &CounselingRepository{db: db}
}

const counselingColumns = `id, reporter_ref, kind, urgency, reason, preferred_time,
	status, assigned_counselor_ref, created_at, updated_at, scheduled_at,
	completed_at, referred_at`

// Create inserts a new counseling request
func (r *CounselingRepository) Create(req *models.CounselingRequest) error {
	query := `
		INSERT INTO counseling_requests (id, reporter_ref, kind, urgency, reason, preferred_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(query,
		req.ID,
		req.ReporterRef,
		req.Kind,
		req.Urgency,
		req.Reason,
		req.PreferredTime,
		req.Status,
		req.CreatedAt,
		req.UpdatedAt,
	)
	return err
}

// GetByID retrieves a counseling request by ID
func (r *CounselingRepository) GetByID(id string) (*models.CounselingRequest, error) {
	query := `SELECT ` + counselingColumns + ` FROM counseling_requests WHERE id = $1`

	var req models.CounselingRequest
	err := r.db.QueryRow(query, id).Scan(
		&req.ID,
		&req.ReporterRef,
		&req.Kind,
		&req.Urgency,
		&req.Reason,
		&req.PreferredTime,
		&req.Status,
		&req.AssignedCounselorRef,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.ScheduledAt,
		&req.CompletedAt,
		&req.ReferredAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Update persists status, counselor and timestamp changes
func (r *CounselingRepository) Update(req *models.CounselingRequest) error {
	query := `
		UPDATE counseling_requests
		SET status = $2, assigned_counselor_ref = $3, updated_at = $4,
		    scheduled_at = $5, completed_at = $6, referred_at = $7
		WHERE id = $1
	`
	_, err := r.db.Exec(query,
		req.ID,
		req.Status,
		req.AssignedCounselorRef,
		req.UpdatedAt,
		req.ScheduledAt,
		req.CompletedAt,
		req.ReferredAt,
	)
	return err
}

// ListAll retrieves every counseling request, most urgent first within
// equal creation order
func (r *CounselingRepository) ListAll() ([]models.CounselingRequest, error) {
	query := `SELECT ` + counselingColumns + ` FROM counseling_requests ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCounselingRequests(rows)
}

// ListByReporter retrieves a reporter's own counseling requests
func (r *CounselingRepository) ListByReporter(reporterRef string) ([]models.CounselingRequest, error) {
	query := `SELECT ` + counselingColumns + ` FROM counseling_requests WHERE reporter_ref = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(query, reporterRef)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCounselingRequests(rows)
}

func scanCounselingRequests(rows *sql.Rows) ([]models.CounselingRequest, error) {
	var requests []models.CounselingRequest
	for rows.Next() {
		var req models.CounselingRequest
		err := rows.Scan(
			&req.ID,
			&req.ReporterRef,
			&req.Kind,
			&req.Urgency,
			&req.Reason,
			&req.PreferredTime,
			&req.Status,
			&req.AssignedCounselorRef,
			&req.CreatedAt,
			&req.UpdatedAt,
			&req.ScheduledAt,
			&req.CompletedAt,
			&req.ReferredAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
