package repository

import (
	"database/sql"
	"time"

	"campus-safety/internal/models"
)

// SosRepository handles database operations for SOS alerts
type SosRepository struct {
	db *sql.DB
}

// NewSosRepository creates a new SOS alert repository
func NewSosRepository(db *sql.DB) *SosRepository {
	return &SosRepository{db: db}
}

const sosColumns = `id, reporter_ref, latitude, longitude, location, status,
	responder_ref, response_note, created_at, updated_at, responding_at,
	resolved_at, cancelled_at`

// Create inserts a new SOS alert
func (r *SosRepository) Create(alert *models.SosAlert) error {
	query := `
		INSERT INTO sos_alerts (id, reporter_ref, latitude, longitude, location, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(query,
		alert.ID,
		alert.ReporterRef,
		alert.Latitude,
		alert.Longitude,
		alert.Location,
		alert.Status,
		alert.CreatedAt,
		alert.UpdatedAt,
	)
	return err
}

// GetByID retrieves an SOS alert by ID
func (r *SosRepository) GetByID(id string) (*models.SosAlert, error) {
	query := `SELECT ` + sosColumns + ` FROM sos_alerts WHERE id = $1`

	var alert models.SosAlert
	err := r.db.QueryRow(query, id).Scan(
		&alert.ID,
		&alert.ReporterRef,
		&alert.Latitude,
		&alert.Longitude,
		&alert.Location,
		&alert.Status,
		&alert.ResponderRef,
		&alert.ResponseNote,
		&alert.CreatedAt,
		&alert.UpdatedAt,
		&alert.RespondingAt,
		&alert.ResolvedAt,
		&alert.CancelledAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// Update persists status, responder and timestamp changes to an alert
func (r *SosRepository) Update(alert *models.SosAlert) error {
	query := `
		UPDATE sos_alerts
		SET status = $2, responder_ref = $3, response_note = $4, updated_at = $5,
		    responding_at = $6, resolved_at = $7, cancelled_at = $8
		WHERE id = $1
	`
	_, err := r.db.Exec(query,
		alert.ID,
		alert.Status,
		alert.ResponderRef,
		alert.ResponseNote,
		alert.UpdatedAt,
		alert.RespondingAt,
		alert.ResolvedAt,
		alert.CancelledAt,
	)
	return err
}

// ListActive retrieves all alerts still requiring attention, newest first
func (r *SosRepository) ListActive() ([]models.SosAlert, error) {
	query := `
		SELECT ` + sosColumns + `
		FROM sos_alerts
		WHERE status IN ($1, $2)
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, models.SosActive, models.SosResponding)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSosAlerts(rows)
}

// ListAll retrieves every alert, newest first
func (r *SosRepository) ListAll() ([]models.SosAlert, error) {
	query := `SELECT ` + sosColumns + ` FROM sos_alerts ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSosAlerts(rows)
}

// ListActiveOlderThan retrieves ACTIVE alerts created before the cutoff,
// oldest first. Used by the stale-alert reminder sweep.
func (r *SosRepository) ListActiveOlderThan(cutoff time.Time) ([]models.SosAlert, error) {
	query := `
		SELECT ` + sosColumns + `
		FROM sos_alerts
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(query, models.SosActive, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSosAlerts(rows)
}

func scanSosAlerts(rows *sql.Rows) ([]models.SosAlert, error) {
	var alerts []models.SosAlert
	for rows.Next() {
		var alert models.SosAlert
		err := rows.Scan(
			&alert.ID,
			&alert.ReporterRef,
			&alert.Latitude,
			&alert.Longitude,
			&alert.Location,
			&alert.Status,
			&alert.ResponderRef,
			&alert.ResponseNote,
			&alert.CreatedAt,
			&alert.UpdatedAt,
			&alert.RespondingAt,
			&alert.ResolvedAt,
			&alert.CancelledAt,
		)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	return alerts, rows.Err()
}
