package service_test

import (
	"testing"

	"campus-safety/internal/models"
	"campus-safety/internal/repository"
	"campus-safety/internal/securestore"
	"campus-safety/internal/service"
	"campus-safety/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComplaintService(db *testutil.TestContainers) (*service.ComplaintService, *repository.ComplaintRepository) {
	complaintRepo := repository.NewComplaintRepository(db.DB)
	trailRepo := repository.NewTrailRepository(db.DB)
	auditService := service.NewAuditService(repository.NewAuditRepository(db.DB))
	svc := service.NewComplaintService(complaintRepo, trailRepo, securestore.PlainCipher{}, auditService)
	return svc, complaintRepo
}

func TestAnonymousComplaintRedaction(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	svc, _ := newComplaintService(containers)

	submitted, err := svc.Submit(testutil.FixtureStudentRef, service.SubmitComplaintInput{
		Category:    models.CategoryRagging,
		Severity:    models.SeverityCritical,
		Description: "Group of seniors harassing first years in hostel block C",
		Anonymous:   true,
	})
	require.NoError(t, err)
	assert.Nil(t, submitted.ReporterRef, "anonymous submission response must not carry the reporter")

	// Reviewer reads never see the reporter of an anonymous complaint
	forReviewer, err := svc.GetForReviewer(submitted.ID)
	require.NoError(t, err)
	assert.Nil(t, forReviewer.ReporterRef)

	listed, err := svc.ListForReviewer()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Nil(t, listed[0].ReporterRef)

	// The reporter still has access to their own case
	own, err := svc.GetForReporter(submitted.ID, testutil.FixtureStudentRef)
	require.NoError(t, err)
	assert.Equal(t, submitted.ID, own.ID)

	// Another account cannot reach it through the reporter view
	_, err = svc.GetForReporter(submitted.ID, "S9999")
	assert.Error(t, err)
}

func TestComplaintLifecycleAndTrail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	svc, repo := newComplaintService(containers)
	id := fixtures.Complaint.ID

	// Submitted -> Under Review -> Action Taken -> Closed
	c, err := svc.Transition(id, models.ComplaintUnderReview, testutil.FixtureFacultyRef)
	require.NoError(t, err)
	assert.NotNil(t, c.ReviewedAt)

	_, err = svc.Assign(id, testutil.FixtureFacultyRef, testutil.FixtureFacultyRef)
	require.NoError(t, err)

	first, err := svc.AppendLog(id, testutil.FixtureFacultyRef, "Spoke to the warden, CCTV requested")
	require.NoError(t, err)
	second, err := svc.AppendLog(id, testutil.FixtureFacultyRef, "CCTV footage confirms the report")
	require.NoError(t, err)

	entries, err := svc.ListLogs(id)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.Content, entries[0].Content)
	assert.Equal(t, second.Content, entries[1].Content)

	c, err = svc.Transition(id, models.ComplaintActionTaken, testutil.FixtureFacultyRef)
	require.NoError(t, err)
	assert.NotNil(t, c.ActionTakenAt)

	c, err = svc.Transition(id, models.ComplaintClosed, testutil.FixtureFacultyRef)
	require.NoError(t, err)
	assert.NotNil(t, c.ClosedAt)

	// Closed is terminal; further transitions are rejected and nothing changes
	_, err = svc.Transition(id, models.ComplaintUnderReview, testutil.FixtureFacultyRef)
	assert.Error(t, err)

	stored, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintClosed, stored.Status)
}

func TestComplaintMessagesCarryRoleOnly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	svc, _ := newComplaintService(containers)
	id := fixtures.Complaint.ID

	_, err := svc.SendMessage(id, models.RoleReporter, "Any update on my complaint?")
	require.NoError(t, err)
	_, err = svc.SendMessage(id, models.RoleReviewer, "Investigation is in progress")
	require.NoError(t, err)

	messages, err := svc.ListMessages(id)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, models.RoleReporter, messages[0].SenderRole)
	assert.Equal(t, models.RoleReviewer, messages[1].SenderRole)

	_, err = svc.SendMessage(id, models.SenderRole("counselor"), "not allowed")
	assert.Error(t, err)
}
