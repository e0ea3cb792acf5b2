package service_test

import (
	"testing"
	"time"

	"campus-safety/internal/apperr"
	"campus-safety/internal/models"
	"campus-safety/internal/repository"
	"campus-safety/internal/service"
	"campus-safety/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCounselingService(db *testutil.TestContainers) (*service.CounselingService, *repository.CounselingRepository) {
	counselingRepo := repository.NewCounselingRepository(db.DB)
	auditService := service.NewAuditService(repository.NewAuditRepository(db.DB))
	svc := service.NewCounselingService(counselingRepo, auditService)
	return svc, counselingRepo
}

func TestCounselingScheduleRequiresCounselor(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	svc, repo := newCounselingService(containers)

	submitted, err := svc.Submit(testutil.FixtureStudentRef, service.SubmitCounselingInput{
		Kind:    models.CounselingPsychological,
		Urgency: models.UrgencyUrgent,
		Reason:  "Exam stress, unable to sleep for days",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CounselingPending, submitted.Status)

	// Scheduling without a counselor is rejected
	_, err = svc.UpdateStatus(submitted.ID, models.CounselingScheduled, nil, testutil.FixtureCounselorRef)
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "counselor_ref", vErr.Field)

	// An empty counselor ref is no better
	empty := ""
	_, err = svc.UpdateStatus(submitted.ID, models.CounselingScheduled, &empty, testutil.FixtureCounselorRef)
	assert.ErrorAs(t, err, &vErr)

	// The rejected attempts left the row untouched
	stored, err := repo.GetByID(submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CounselingPending, stored.Status)
	assert.Nil(t, stored.AssignedCounselorRef)
	assert.Nil(t, stored.ScheduledAt)

	// A schedule naming the counselor stamps assignment and time
	counselor := testutil.FixtureCounselorRef
	scheduled, err := svc.UpdateStatus(submitted.ID, models.CounselingScheduled, &counselor, counselor)
	require.NoError(t, err)
	assert.Equal(t, models.CounselingScheduled, scheduled.Status)
	require.NotNil(t, scheduled.AssignedCounselorRef)
	assert.Equal(t, counselor, *scheduled.AssignedCounselorRef)
	assert.NotNil(t, scheduled.ScheduledAt)
}

func TestCounselingLifecycleAndListing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	svc, repo := newCounselingService(containers)
	counselor := testutil.FixtureCounselorRef

	preferred := time.Now().Add(48 * time.Hour)
	first, err := svc.Submit(testutil.FixtureStudentRef, service.SubmitCounselingInput{
		Kind:          models.CounselingMedical,
		Urgency:       models.UrgencyRoutine,
		Reason:        "Recurring migraines during lab hours",
		PreferredTime: &preferred,
	})
	require.NoError(t, err)

	second, err := svc.Submit("S2044", service.SubmitCounselingInput{
		Kind:    models.CounselingPsychological,
		Urgency: models.UrgencyEmergency,
		Reason:  "Urgent need to talk to someone",
	})
	require.NoError(t, err)

	// Pending -> Scheduled -> Completed
	_, err = svc.UpdateStatus(first.ID, models.CounselingScheduled, &counselor, counselor)
	require.NoError(t, err)
	completed, err := svc.UpdateStatus(first.ID, models.CounselingCompleted, nil, counselor)
	require.NoError(t, err)
	assert.NotNil(t, completed.CompletedAt)

	// Completed is terminal
	_, err = svc.UpdateStatus(first.ID, models.CounselingScheduled, &counselor, counselor)
	assert.Error(t, err)

	// Pending -> Referred needs no counselor assignment
	referred, err := svc.UpdateStatus(second.ID, models.CounselingReferred, nil, counselor)
	require.NoError(t, err)
	assert.NotNil(t, referred.ReferredAt)
	assert.Nil(t, referred.AssignedCounselorRef)

	// Reporters only see their own requests
	own, err := svc.ListForReporter(testutil.FixtureStudentRef)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, first.ID, own[0].ID)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	stored, err := repo.GetByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CounselingCompleted, stored.Status)
}
