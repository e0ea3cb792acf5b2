package lifecycle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-safety/internal/apperr"
	"campus-safety/internal/lifecycle"
	"campus-safety/internal/models"
)

func TestSosTransitions(t *testing.T) {
	legal := []struct {
		from, to models.SosStatus
	}{
		{models.SosActive, models.SosResponding},
		{models.SosActive, models.SosResolved},
		{models.SosActive, models.SosCancelled},
		{models.SosResponding, models.SosResolved},
		{models.SosResponding, models.SosCancelled},
	}
	for _, tc := range legal {
		assert.NoError(t, lifecycle.CheckSos("x", tc.from, tc.to),
			"%s -> %s should be legal", tc.from, tc.to)
	}

	illegal := []struct {
		from, to models.SosStatus
	}{
		{models.SosResponding, models.SosActive},
		{models.SosResolved, models.SosActive},
		{models.SosResolved, models.SosResponding},
		{models.SosCancelled, models.SosActive},
		{models.SosCancelled, models.SosResolved},
		{models.SosActive, models.SosActive},
	}
	for _, tc := range illegal {
		err := lifecycle.CheckSos("x", tc.from, tc.to)
		assert.Error(t, err, "%s -> %s should be rejected", tc.from, tc.to)
		assert.True(t, apperr.IsInvalidTransition(err))
	}
}

func TestSosRejectionReportsAllowedStates(t *testing.T) {
	err := lifecycle.CheckSos("sos-1", models.SosResponding, models.SosActive)
	require.Error(t, err)

	var te *apperr.InvalidTransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "RESPONDING", te.From)
	assert.Equal(t, "ACTIVE", te.To)
	assert.ElementsMatch(t, []string{"RESOLVED", "CANCELLED"}, te.Allowed)
}

func TestSosTerminalStatesReportNoAllowedStates(t *testing.T) {
	err := lifecycle.CheckSos("sos-1", models.SosResolved, models.SosResponding)
	require.Error(t, err)

	var te *apperr.InvalidTransitionError
	require.True(t, errors.As(err, &te))
	assert.Empty(t, te.Allowed)
	assert.Contains(t, te.Error(), "terminal")
}

func TestComplaintTransitions(t *testing.T) {
	// The review workflow is a small directed graph, not a linear chain
	assert.NoError(t, lifecycle.CheckComplaint("c", models.ComplaintSubmitted, models.ComplaintUnderReview))
	assert.NoError(t, lifecycle.CheckComplaint("c", models.ComplaintUnderReview, models.ComplaintActionTaken))
	assert.NoError(t, lifecycle.CheckComplaint("c", models.ComplaintActionTaken, models.ComplaintUnderReview))
	assert.NoError(t, lifecycle.CheckComplaint("c", models.ComplaintUnderReview, models.ComplaintClosed))
	assert.NoError(t, lifecycle.CheckComplaint("c", models.ComplaintActionTaken, models.ComplaintClosed))
}

func TestComplaintCannotSkipReview(t *testing.T) {
	err := lifecycle.CheckComplaint("c", models.ComplaintSubmitted, models.ComplaintClosed)
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidTransition(err))

	var te *apperr.InvalidTransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, []string{"Under Review"}, te.Allowed)
}

func TestClosedComplaintIsFinal(t *testing.T) {
	for _, target := range []models.ComplaintStatus{
		models.ComplaintSubmitted,
		models.ComplaintUnderReview,
		models.ComplaintActionTaken,
	} {
		err := lifecycle.CheckComplaint("c", models.ComplaintClosed, target)
		assert.Error(t, err, "Closed -> %s should be rejected", target)
		assert.True(t, apperr.IsInvalidTransition(err))
	}
}

func TestCounselingTransitions(t *testing.T) {
	assert.NoError(t, lifecycle.CheckCounseling("r", models.CounselingPending, models.CounselingScheduled))
	assert.NoError(t, lifecycle.CheckCounseling("r", models.CounselingPending, models.CounselingReferred))
	assert.NoError(t, lifecycle.CheckCounseling("r", models.CounselingScheduled, models.CounselingCompleted))

	assert.Error(t, lifecycle.CheckCounseling("r", models.CounselingPending, models.CounselingCompleted))
	assert.Error(t, lifecycle.CheckCounseling("r", models.CounselingCompleted, models.CounselingPending))
	assert.Error(t, lifecycle.CheckCounseling("r", models.CounselingReferred, models.CounselingScheduled))
}

func TestUnknownStatusIsValidationError(t *testing.T) {
	err := lifecycle.CheckSos("x", models.SosStatus("BOGUS"), models.SosResolved)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}
