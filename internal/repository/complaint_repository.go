package repository

import (
	"database/sql"

	"campus-safety/internal/models"
)

// ComplaintRepository handles database operations for complaints.
//
// Anonymity is enforced here, at the data-access boundary: every
// reviewer-facing read redacts reporter_ref in SQL when the complaint is
// anonymous, so the identity never leaves the store. Only the owner-scoped
// reads return it.
type ComplaintRepository struct {
	db *sql.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *sql.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// redactedComplaintColumns nulls reporter_ref for anonymous complaints
const redactedComplaintColumns = `id,
	CASE WHEN anonymous THEN NULL ELSE reporter_ref END AS reporter_ref,
	anonymous, category, severity, description, location, status,
	assigned_to_ref, submitted_at, updated_at, reviewed_at, action_taken_at, closed_at`

const ownComplaintColumns = `id, reporter_ref, anonymous, category, severity,
	description, location, status, assigned_to_ref, submitted_at, updated_at,
	reviewed_at, action_taken_at, closed_at`

// Create inserts a new complaint
func (r *ComplaintRepository) Create(c *models.Complaint) error {
	query := `
		INSERT INTO complaints (id, reporter_ref, anonymous, category, severity, description, location, status, submitted_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(query,
		c.ID,
		c.ReporterRef,
		c.Anonymous,
		c.Category,
		c.Severity,
		c.Description,
		c.Location,
		c.Status,
		c.SubmittedAt,
		c.UpdatedAt,
	)
	return err
}

// GetByID retrieves a complaint for reviewer-facing use; reporter_ref is
// redacted when the complaint is anonymous
func (r *ComplaintRepository) GetByID(id string) (*models.Complaint, error) {
	query := `SELECT ` + redactedComplaintColumns + ` FROM complaints WHERE id = $1`
	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByIDForReporter retrieves a complaint only if reporterRef owns it;
// the owner always sees their own reporter_ref
func (r *ComplaintRepository) GetByIDForReporter(id, reporterRef string) (*models.Complaint, error) {
	query := `SELECT ` + ownComplaintColumns + ` FROM complaints WHERE id = $1 AND reporter_ref = $2`
	return r.scanOne(r.db.QueryRow(query, id, reporterRef))
}

// Update persists status, assignment and timestamp changes. reporter_ref
// and anonymous are immutable after intake and deliberately absent here.
func (r *ComplaintRepository) Update(c *models.Complaint) error {
	query := `
		UPDATE complaints
		SET status = $2, assigned_to_ref = $3, updated_at = $4,
		    reviewed_at = $5, action_taken_at = $6, closed_at = $7
		WHERE id = $1
	`
	_, err := r.db.Exec(query,
		c.ID,
		c.Status,
		c.AssignedToRef,
		c.UpdatedAt,
		c.ReviewedAt,
		c.ActionTakenAt,
		c.ClosedAt,
	)
	return err
}

// ListAll retrieves all complaints for reviewer-facing use, newest first,
// with anonymous reporter refs redacted
func (r *ComplaintRepository) ListAll() ([]models.Complaint, error) {
	query := `SELECT ` + redactedComplaintColumns + ` FROM complaints ORDER BY submitted_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanComplaints(rows)
}

// ListByStatus retrieves reviewer-facing complaints in a given status
func (r *ComplaintRepository) ListByStatus(status models.ComplaintStatus) ([]models.Complaint, error) {
	query := `SELECT ` + redactedComplaintColumns + ` FROM complaints WHERE status = $1 ORDER BY submitted_at DESC`
	rows, err := r.db.Query(query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanComplaints(rows)
}

// ListByReporter retrieves a reporter's own complaints, newest first
func (r *ComplaintRepository) ListByReporter(reporterRef string) ([]models.Complaint, error) {
	query := `SELECT ` + ownComplaintColumns + ` FROM complaints WHERE reporter_ref = $1 ORDER BY submitted_at DESC`
	rows, err := r.db.Query(query, reporterRef)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanComplaints(rows)
}

func (r *ComplaintRepository) scanOne(row *sql.Row) (*models.Complaint, error) {
	var c models.Complaint
	err := row.Scan(
		&c.ID,
		&c.ReporterRef,
		&c.Anonymous,
		&c.Category,
		&c.Severity,
		&c.Description,
		&c.Location,
		&c.Status,
		&c.AssignedToRef,
		&c.SubmittedAt,
		&c.UpdatedAt,
		&c.ReviewedAt,
		&c.ActionTakenAt,
		&c.ClosedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanComplaints(rows *sql.Rows) ([]models.Complaint, error) {
	var complaints []models.Complaint
	for rows.Next() {
		var c models.Complaint
		err := rows.Scan(
			&c.ID,
			&c.ReporterRef,
			&c.Anonymous,
			&c.Category,
			&c.Severity,
			&c.Description,
			&c.Location,
			&c.Status,
			&c.AssignedToRef,
			&c.SubmittedAt,
			&c.UpdatedAt,
			&c.ReviewedAt,
			&c.ActionTakenAt,
			&c.ClosedAt,
		)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}
