package repository

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"campus-safety/internal/models"
)

// BroadcastRepository handles database operations for broadcast alerts
type BroadcastRepository struct {
	db *sql.DB
}

// NewBroadcastRepository creates a new broadcast alert repository
func NewBroadcastRepository(db *sql.DB) *BroadcastRepository {
	return &BroadcastRepository{db: db}
}

const broadcastColumns = `id, title, description, category, severity, target_audience,
	department_scope, location, created_by, created_at, is_active, deactivated_at`

// Create inserts a new broadcast alert
func (r *BroadcastRepository) Create(alert *models.BroadcastAlert) error {
	query := `
		INSERT INTO broadcast_alerts (id, title, description, category, severity, target_audience, department_scope, location, created_by, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(query,
		alert.ID,
		alert.Title,
		alert.Description,
		alert.Category,
		alert.Severity,
		alert.TargetAudience,
		pq.Array(alert.DepartmentScope),
		alert.Location,
		alert.CreatedBy,
		alert.CreatedAt,
		alert.IsActive,
	)
	return err
}

// GetByID retrieves a broadcast alert by ID
func (r *BroadcastRepository) GetByID(id string) (*models.BroadcastAlert, error) {
	query := `SELECT ` + broadcastColumns + ` FROM broadcast_alerts WHERE id = $1`

	var alert models.BroadcastAlert
	err := r.db.QueryRow(query, id).Scan(
		&alert.ID,
		&alert.Title,
		&alert.Description,
		&alert.Category,
		&alert.Severity,
		&alert.TargetAudience,
		pq.Array(&alert.DepartmentScope),
		&alert.Location,
		&alert.CreatedBy,
		&alert.CreatedAt,
		&alert.IsActive,
		&alert.DeactivatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// Deactivate marks an alert inactive. The returned count is 0 when the
// alert was already inactive or does not exist.
func (r *BroadcastRepository) Deactivate(id string, deactivatedAt time.Time) (int64, error) {
	query := `
		UPDATE broadcast_alerts
		SET is_active = FALSE, deactivated_at = $2
		WHERE id = $1 AND is_active = TRUE
	`
	result, err := r.db.Exec(query, id, deactivatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ListActive retrieves all active broadcast alerts, newest first
func (r *BroadcastRepository) ListActive() ([]models.BroadcastAlert, error) {
	query := `SELECT ` + broadcastColumns + ` FROM broadcast_alerts WHERE is_active = TRUE ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBroadcastAlerts(rows)
}

// ListAll retrieves every broadcast alert, newest first
func (r *BroadcastRepository) ListAll() ([]models.BroadcastAlert, error) {
	query := `SELECT ` + broadcastColumns + ` FROM broadcast_alerts ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBroadcastAlerts(rows)
}

func scanBroadcastAlerts(rows *sql.Rows) ([]models.BroadcastAlert, error) {
	var alerts []models.BroadcastAlert
	for rows.Next() {
		var alert models.BroadcastAlert
		err := rows.Scan(
			&alert.ID,
			&alert.Title,
			&alert.Description,
			&alert.Category,
			&alert.Severity,
			&alert.TargetAudience,
			pq.Array(&alert.DepartmentScope),
			&alert.Location,
			&alert.CreatedBy,
			&alert.CreatedAt,
			&alert.IsActive,
			&alert.DeactivatedAt,
		)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	return alerts, rows.Err()
}
