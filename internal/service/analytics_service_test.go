package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campus-safety/internal/models"
	"campus-safety/internal/service"
)

func strPtr(s string) *string { return &s }

func TestCompute_EmptyCorpus(t *testing.T) {
	snap := service.Compute(nil, nil, 3)

	assert.Equal(t, 0, snap.TotalIncidents)
	assert.Equal(t, 0, snap.ResolvedCount)
	assert.Equal(t, 0, snap.PendingCount)
	assert.Equal(t, 0, snap.ActiveSosCount)
	assert.Zero(t, snap.AvgResponseTimeSecs)
	assert.Empty(t, snap.HighRiskZones)
	assert.False(t, snap.GeneratedAt.IsZero())
}

func TestCompute_CountsPartitionComplaints(t *testing.T) {
	now := time.Now()
	closedAt := now.Add(-time.Hour)
	complaints := []models.Complaint{
		{ID: "c1", Category: models.CategoryHarassment, Severity: models.SeverityHigh, Status: models.ComplaintSubmitted, SubmittedAt: now},
		{ID: "c2", Category: models.CategoryHarassment, Severity: models.SeverityLow, Status: models.ComplaintUnderReview, SubmittedAt: now},
		{ID: "c3", Category: models.CategoryTheft, Severity: models.SeverityMedium, Status: models.ComplaintClosed, SubmittedAt: closedAt.Add(-2 * time.Hour), ClosedAt: &closedAt},
	}

	snap := service.Compute(complaints, nil, 3)

	assert.Equal(t, len(complaints), snap.TotalIncidents)
	assert.Equal(t, 1, snap.ResolvedCount)
	assert.Equal(t, 2, snap.PendingCount)
	assert.Equal(t, snap.TotalIncidents, snap.ResolvedCount+snap.PendingCount)
	assert.Equal(t, 2, snap.ByType["Harassment"])
	assert.Equal(t, 1, snap.ByType["Theft"])
	assert.Equal(t, 1, snap.BySeverity["High"])
}

func TestCompute_AvgResponseTime(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	closedAt := base.Add(2 * time.Hour)
	resolvedAt := base.Add(1 * time.Hour)

	complaints := []models.Complaint{
		{ID: "c1", Category: models.CategoryOther, Severity: models.SeverityLow,
			Status: models.ComplaintClosed, SubmittedAt: base, ClosedAt: &closedAt},
	}
	sos := []models.SosAlert{
		{ID: "s1", Status: models.SosResolved, CreatedAt: base, ResolvedAt: &resolvedAt},
	}

	snap := service.Compute(complaints, sos, 3)

	// (2h + 1h) / 2 = 90 minutes
	assert.InDelta(t, (90 * time.Minute).Seconds(), snap.AvgResponseTimeSecs, 0.001)
}

func TestCompute_ActiveSosCount(t *testing.T) {
	sos := []models.SosAlert{
		{ID: "s1", Status: models.SosActive},
		{ID: "s2", Status: models.SosResponding},
		{ID: "s3", Status: models.SosResolved},
		{ID: "s4", Status: models.SosCancelled},
	}

	snap := service.Compute(nil, sos, 3)
	assert.Equal(t, 2, snap.ActiveSosCount)
}

func TestCompute_HighRiskZones(t *testing.T) {
	complaints := []models.Complaint{
		{ID: "c1", Category: models.CategoryOther, Severity: models.SeverityLow, Status: models.ComplaintSubmitted, Location: strPtr("Hostel B")},
		{ID: "c2", Category: models.CategoryOther, Severity: models.SeverityLow, Status: models.ComplaintSubmitted, Location: strPtr("hostel b")},
		{ID: "c3", Category: models.CategoryOther, Severity: models.SeverityLow, Status: models.ComplaintSubmitted, Location: strPtr("Library")},
	}
	sos := []models.SosAlert{
		{ID: "s1", Status: models.SosActive, Location: strPtr("Hostel B ")},
	}

	snap := service.Compute(complaints, sos, 3)

	// Location matching is case- and whitespace-insensitive; only the
	// recurring zone crosses the threshold
	assert.Equal(t, []string{"hostel b"}, snap.HighRiskZones)
}

func TestCompute_IsPure(t *testing.T) {
	now := time.Now()
	complaints := []models.Complaint{
		{ID: "c1", Category: models.CategoryOther, Severity: models.SeverityLow, Status: models.ComplaintSubmitted, SubmittedAt: now},
	}

	first := service.Compute(complaints, nil, 3)
	second := service.Compute(complaints, nil, 3)

	assert.Equal(t, first.TotalIncidents, second.TotalIncidents)
	assert.Equal(t, first.ByType, second.ByType)
	assert.Equal(t, models.ComplaintSubmitted, complaints[0].Status, "input corpus must not be mutated")
}
