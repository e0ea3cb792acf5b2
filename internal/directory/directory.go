// Package directory resolves broadcast audiences against the institution's
// account directory. The directory itself is configuration-driven: the
// department roster, hostel account list and faculty prefix come from the
// environment, so the resolver stays free of database access.
package directory

import (
	"strings"

	"campus-safety/internal/config"
	"campus-safety/internal/models"
)

// Directory answers audience-membership questions for account refs
type Directory struct {
	departments    map[string]bool
	hostelAccounts map[string]bool
	facultyPrefix  string
}

// New builds a directory from configuration
func New(cfg config.DirectoryConfig) *Directory {
	d := &Directory{
		departments:    make(map[string]bool, len(cfg.Departments)),
		hostelAccounts: make(map[string]bool, len(cfg.HostelAccounts)),
		facultyPrefix:  cfg.FacultyPrefix,
	}
	for _, dept := range cfg.Departments {
		d.departments[strings.ToUpper(strings.TrimSpace(dept))] = true
	}
	for _, ref := range cfg.HostelAccounts {
		d.hostelAccounts[strings.TrimSpace(ref)] = true
	}
	return d
}

// KnownDepartment reports whether the department code exists in the roster
func (d *Directory) KnownDepartment(code string) bool {
	return d.departments[strings.ToUpper(strings.TrimSpace(code))]
}

// ValidateScope checks every department in a broadcast scope against the
// roster and returns the first unknown code, if any
func (d *Directory) ValidateScope(scope []string) (string, bool) {
	for _, code := range scope {
		if !d.KnownDepartment(code) {
			return code, false
		}
	}
	return "", true
}

// IsFaculty reports whether an account ref belongs to faculty
func (d *Directory) IsFaculty(accountRef string) bool {
	return d.facultyPrefix != "" && strings.HasPrefix(accountRef, d.facultyPrefix)
}

// IsHostelResident reports whether an account ref is on the hostel roster
func (d *Directory) IsHostelResident(accountRef string) bool {
	return d.hostelAccounts[accountRef]
}

// MatchesAudience reports whether an account ref (with its department, which
// may be empty) falls inside a broadcast alert's audience
func (d *Directory) MatchesAudience(alert *models.BroadcastAlert, accountRef, department string) bool {
	switch alert.TargetAudience {
	case models.AudienceAll:
		return true
	case models.AudienceDepartments:
		if department == "" {
			return false
		}
		dept := strings.ToUpper(strings.TrimSpace(department))
		for _, scoped := range alert.DepartmentScope {
			if strings.ToUpper(strings.TrimSpace(scoped)) == dept {
				return true
			}
		}
		return false
	case models.AudienceHostels:
		return d.IsHostelResident(accountRef)
	case models.AudienceFaculty:
		return d.IsFaculty(accountRef)
	default:
		return false
	}
}
