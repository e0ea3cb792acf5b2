package testutil

import (
	"database/sql"
	"testing"
	"time"

	"campus-safety/internal/models"

	"github.com/google/uuid"
)

// Well-known actor refs used across the fixture set. The prefix on the
// faculty ref matters: directory audience checks key off it.
const (
	FixtureStudentRef   = "S1023"
	FixtureFacultyRef   = "F042"
	FixtureResponderRef = "R007"
	FixtureCounselorRef = "C019"
)

// Fixtures holds test data
type Fixtures struct {
	DB         *sql.DB
	SosAlert   *models.SosAlert
	Complaint  *models.Complaint
	Counseling *models.CounselingRequest
	Broadcast  *models.BroadcastAlert
}

// SetupFixtures creates test data
func SetupFixtures(t *testing.T, db *sql.DB) *Fixtures {
	t.Helper()

	fixtures := &Fixtures{
		DB: db,
	}

	fixtures.SosAlert = createSosAlert(t, db, FixtureStudentRef)
	fixtures.Complaint = createComplaint(t, db, FixtureStudentRef, false)
	fixtures.Counseling = createCounselingRequest(t, db, FixtureStudentRef)
	fixtures.Broadcast = createBroadcastAlert(t, db, FixtureFacultyRef)

	return fixtures
}

// Cleanup removes all test data
func (f *Fixtures) Cleanup(t *testing.T) {
	t.Helper()

	// Cleanup is handled by container termination
	// Data is not persisted between tests
}

// createSosAlert seeds one ACTIVE alert
func createSosAlert(t *testing.T, db *sql.DB, reporterRef string) *models.SosAlert {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	lat, lon := 12.9716, 77.5946
	alert := &models.SosAlert{
		ID:          uuid.NewString(),
		ReporterRef: reporterRef,
		Latitude:    &lat,
		Longitude:   &lon,
		Status:      models.SosActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := db.Exec(`
		INSERT INTO sos_alerts (id, reporter_ref, latitude, longitude, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		alert.ID, alert.ReporterRef, alert.Latitude, alert.Longitude, alert.Status, alert.CreatedAt, alert.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create SOS alert fixture: %v", err)
	}

	return alert
}

// CreateComplaint seeds a complaint for the given reporter
func (f *Fixtures) CreateComplaint(t *testing.T, reporterRef string, anonymous bool) *models.Complaint {
	t.Helper()
	return createComplaint(t, f.DB, reporterRef, anonymous)
}

func createComplaint(t *testing.T, db *sql.DB, reporterRef string, anonymous bool) *models.Complaint {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	complaint := &models.Complaint{
		ID:          uuid.NewString(),
		ReporterRef: &reporterRef,
		Anonymous:   anonymous,
		Category:    models.CategoryHarassment,
		Severity:    models.SeverityHigh,
		Description: "Repeated harassment near the library entrance",
		Status:      models.ComplaintSubmitted,
		SubmittedAt: now,
		UpdatedAt:   now,
	}

	_, err := db.Exec(`
		INSERT INTO complaints (id, reporter_ref, anonymous, category, severity, description, status, submitted_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		complaint.ID, complaint.ReporterRef, complaint.Anonymous, complaint.Category, complaint.Severity,
		complaint.Description, complaint.Status, complaint.SubmittedAt, complaint.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create complaint fixture: %v", err)
	}

	return complaint
}

// createCounselingRequest seeds one pending request
func createCounselingRequest(t *testing.T, db *sql.DB, reporterRef string) *models.CounselingRequest {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	request := &models.CounselingRequest{
		ID:          uuid.NewString(),
		ReporterRef: reporterRef,
		Kind:        models.CounselingPsychological,
		Urgency:     models.UrgencyUrgent,
		Reason:      "Exam anxiety, would like to talk to someone",
		Status:      models.CounselingPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := db.Exec(`
		INSERT INTO counseling_requests (id, reporter_ref, kind, urgency, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		request.ID, request.ReporterRef, request.Kind, request.Urgency, request.Reason,
		request.Status, request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create counseling request fixture: %v", err)
	}

	return request
}

// createBroadcastAlert seeds one active campus-wide alert
func createBroadcastAlert(t *testing.T, db *sql.DB, createdBy string) *models.BroadcastAlert {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	alert := &models.BroadcastAlert{
		ID:             uuid.NewString(),
		Title:          "Heavy rain warning",
		Description:    "Avoid the underpass near gate 2 until further notice",
		Category:       "weather",
		Severity:       models.SeverityMedium,
		TargetAudience: models.AudienceAll,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		IsActive:       true,
	}

	_, err := db.Exec(`
		INSERT INTO broadcast_alerts (id, title, description, category, severity, target_audience, created_by, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		alert.ID, alert.Title, alert.Description, alert.Category, alert.Severity,
		alert.TargetAudience, alert.CreatedBy, alert.CreatedAt, alert.IsActive,
	)
	if err != nil {
		t.Fatalf("Failed to create broadcast alert fixture: %v", err)
	}

	return alert
}
