package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-safety/internal/apperr"
	"campus-safety/internal/config"
	"campus-safety/internal/directory"
	"campus-safety/internal/models"
	"campus-safety/internal/notify"
	"campus-safety/internal/repository"
	"campus-safety/internal/service"
	"campus-safety/internal/testutil"
)

func newBroadcastService(db *testutil.TestContainers) (*service.BroadcastService, *repository.BroadcastRepository) {
	broadcastRepo := repository.NewBroadcastRepository(db.DB)
	dir := directory.New(config.DirectoryConfig{
		Departments:   []string{"CSE", "ECE"},
		FacultyPrefix: "F",
	})
	auditService := service.NewAuditService(repository.NewAuditRepository(db.DB))
	svc := service.NewBroadcastService(broadcastRepo, dir, notify.NopNotifier{}, auditService)
	return svc, broadcastRepo
}

func TestBroadcastDeactivation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	svc, _ := newBroadcastService(containers)

	alert, err := svc.Create(context.Background(), testutil.FixtureFacultyRef, service.CreateBroadcastInput{
		Title:          "Cyclone warning",
		Description:    "Heavy rain expected tonight, stay indoors",
		Category:       "weather",
		Severity:       models.SeverityHigh,
		TargetAudience: models.AudienceAll,
	})
	require.NoError(t, err)
	assert.True(t, alert.IsActive)

	deactivated, err := svc.Deactivate(alert.ID, testutil.FixtureFacultyRef)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)
	assert.NotNil(t, deactivated.DeactivatedAt)

	// Deactivation is one-way; repeating it on the same alert is rejected
	_, err = svc.Deactivate(alert.ID, testutil.FixtureFacultyRef)
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "is_active", vErr.Field)

	// An unknown alert id is a not-found, not a validation failure
	_, err = svc.Deactivate(uuid.NewString(), testutil.FixtureFacultyRef)
	var nfErr *apperr.NotFoundError
	assert.ErrorAs(t, err, &nfErr)

	// The active view drops the alert while the full history keeps it
	active, err := svc.ListActive()
	require.NoError(t, err)
	assert.Len(t, active, 0)

	all, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)
	assert.NotNil(t, all[0].DeactivatedAt)
}

func TestBroadcastDeactivateConcurrentWriter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	svc, repo := newBroadcastService(containers)

	alert, err := svc.Create(context.Background(), testutil.FixtureFacultyRef, service.CreateBroadcastInput{
		Title:          "Water supply interruption",
		Description:    "Maintenance in hostel blocks A and B",
		Category:       "maintenance",
		Severity:       models.SeverityLow,
		TargetAudience: models.AudienceAll,
	})
	require.NoError(t, err)

	// The update is guarded on is_active, so a writer that loses the race
	// sees zero affected rows instead of clobbering deactivated_at
	affected, err := repo.Deactivate(alert.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Deactivate(alert.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	// The service reports the loss as an already-deactivated rejection
	_, err = svc.Deactivate(alert.ID, testutil.FixtureFacultyRef)
	var vErr *apperr.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
