package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campus-safety/internal/config"
	"campus-safety/internal/directory"
	"campus-safety/internal/models"
)

func newTestDirectory() *directory.Directory {
	return directory.New(config.DirectoryConfig{
		Departments:    []string{"CSE", "ECE", "ME"},
		HostelAccounts: []string{"S1023", "S2048"},
		FacultyPrefix:  "F",
	})
}

func TestKnownDepartment(t *testing.T) {
	d := newTestDirectory()

	assert.True(t, d.KnownDepartment("CSE"))
	assert.True(t, d.KnownDepartment("cse"))
	assert.True(t, d.KnownDepartment(" ece "))
	assert.False(t, d.KnownDepartment("LAW"))
}

func TestValidateScope(t *testing.T) {
	d := newTestDirectory()

	_, ok := d.ValidateScope([]string{"CSE", "ME"})
	assert.True(t, ok)

	unknown, ok := d.ValidateScope([]string{"CSE", "LAW"})
	assert.False(t, ok)
	assert.Equal(t, "LAW", unknown)
}

func TestMatchesAudience_All(t *testing.T) {
	d := newTestDirectory()
	alert := &models.BroadcastAlert{TargetAudience: models.AudienceAll}

	assert.True(t, d.MatchesAudience(alert, "S9999", ""))
	assert.True(t, d.MatchesAudience(alert, "F042", "CSE"))
}

func TestMatchesAudience_Departments(t *testing.T) {
	d := newTestDirectory()
	alert := &models.BroadcastAlert{
		TargetAudience:  models.AudienceDepartments,
		DepartmentScope: []string{"CSE"},
	}

	assert.True(t, d.MatchesAudience(alert, "S1023", "CSE"))
	assert.True(t, d.MatchesAudience(alert, "S1023", "cse"))
	assert.False(t, d.MatchesAudience(alert, "S1023", "ECE"))
	assert.False(t, d.MatchesAudience(alert, "S1023", ""))
}

func TestMatchesAudience_Hostels(t *testing.T) {
	d := newTestDirectory()
	alert := &models.BroadcastAlert{TargetAudience: models.AudienceHostels}

	assert.True(t, d.MatchesAudience(alert, "S1023", "CSE"))
	assert.False(t, d.MatchesAudience(alert, "S7777", "CSE"))
}

func TestMatchesAudience_Faculty(t *testing.T) {
	d := newTestDirectory()
	alert := &models.BroadcastAlert{TargetAudience: models.AudienceFaculty}

	assert.True(t, d.MatchesAudience(alert, "F042", ""))
	assert.False(t, d.MatchesAudience(alert, "S1023", ""))
}
