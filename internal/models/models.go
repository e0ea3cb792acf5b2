package models

import (
	"time"
)

// SosStatus is the closed set of states an SOS alert can be in
type SosStatus string

const (
	SosActive     SosStatus = "ACTIVE"
	SosResponding SosStatus = "RESPONDING"
	SosResolved   SosStatus = "RESOLVED"
	SosCancelled  SosStatus = "CANCELLED"
)

// ComplaintStatus is the closed set of states a complaint can be in
type ComplaintStatus string

const (
	ComplaintSubmitted   ComplaintStatus = "Submitted"
	ComplaintUnderReview ComplaintStatus = "Under Review"
	ComplaintActionTaken ComplaintStatus = "Action Taken"
	ComplaintClosed      ComplaintStatus = "Closed"
)

// CounselingStatus is the closed set of states a counseling request can be in
type CounselingStatus string

const (
	CounselingPending   CounselingStatus = "Pending"
	CounselingScheduled CounselingStatus = "Scheduled"
	CounselingCompleted CounselingStatus = "Completed"
	CounselingReferred  CounselingStatus = "Referred"
)

// ComplaintCategory classifies a complaint
type ComplaintCategory string

const (
	CategoryRagging        ComplaintCategory = "Ragging"
	CategoryHarassment     ComplaintCategory = "Harassment"
	CategoryBullying       ComplaintCategory = "Bullying"
	CategoryMisconduct     ComplaintCategory = "Misconduct"
	CategoryViolence       ComplaintCategory = "Violence"
	CategoryInfrastructure ComplaintCategory = "Infrastructure Hazard"
	CategoryDiscrimination ComplaintCategory = "Discrimination"
	CategoryAbuse          ComplaintCategory = "Abuse"
	CategoryTheft          ComplaintCategory = "Theft"
	CategoryOther          ComplaintCategory = "Other"
)

// Severity grades complaints and broadcast alerts
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// CounselingKind distinguishes medical from psychological requests
type CounselingKind string

const (
	CounselingMedical       CounselingKind = "medical"
	CounselingPsychological CounselingKind = "psychological"
)

// CounselingUrgency grades counseling requests
type CounselingUrgency string

const (
	UrgencyEmergency CounselingUrgency = "Emergency"
	UrgencyUrgent    CounselingUrgency = "Urgent"
	UrgencyRoutine   CounselingUrgency = "Routine"
)

// Audience selects who a broadcast alert targets
type Audience string

const (
	AudienceAll         Audience = "all"
	AudienceDepartments Audience = "departments"
	AudienceHostels     Audience = "hostels"
	AudienceFaculty     Audience = "faculty"
)

// SenderRole tags a trail message with the side that wrote it
type SenderRole string

const (
	RoleReporter SenderRole = "reporter"
	RoleReviewer SenderRole = "reviewer"
)

// SosAlert represents a single-tap emergency signal.
// Never deleted; only transitioned to a terminal state.
type SosAlert struct {
	ID           string     `json:"id" db:"id"`
	ReporterRef  string     `json:"reporter_ref" db:"reporter_ref"`
	Latitude     *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude    *float64   `json:"longitude,omitempty" db:"longitude"`
	Location     *string    `json:"location,omitempty" db:"location"`
	Status       SosStatus  `json:"status" db:"status"`
	ResponderRef *string    `json:"responder_ref,omitempty" db:"responder_ref"`
	ResponseNote *string    `json:"response_note,omitempty" db:"response_note"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	RespondingAt *time.Time `json:"responding_at,omitempty" db:"responding_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty" db:"resolved_at"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
}

// Complaint represents a formal, categorized incident report.
// ReporterRef is nil on every reviewer-facing read when Anonymous is true;
// the repository redacts it before the value leaves the store.
type Complaint struct {
	ID            string            `json:"id" db:"id"`
	ReporterRef   *string           `json:"reporter_ref,omitempty" db:"reporter_ref"`
	Anonymous     bool              `json:"anonymous" db:"anonymous"`
	Category      ComplaintCategory `json:"category" db:"category"`
	Severity      Severity          `json:"severity" db:"severity"`
	Description   string            `json:"description" db:"description"`
	Location      *string           `json:"location,omitempty" db:"location"`
	Status        ComplaintStatus   `json:"status" db:"status"`
	AssignedToRef *string           `json:"assigned_to_ref,omitempty" db:"assigned_to_ref"`
	SubmittedAt   time.Time         `json:"submitted_at" db:"submitted_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
	ReviewedAt    *time.Time        `json:"reviewed_at,omitempty" db:"reviewed_at"`
	ActionTakenAt *time.Time        `json:"action_taken_at,omitempty" db:"action_taken_at"`
	ClosedAt      *time.Time        `json:"closed_at,omitempty" db:"closed_at"`
}

// InvestigationLogEntry is a confidential reviewer-side case note.
// Append-only: no update or delete once written.
type InvestigationLogEntry struct {
	ID          uint      `json:"id" db:"id"`
	ComplaintID string    `json:"complaint_id" db:"complaint_id"`
	Author      string    `json:"author" db:"author"`
	Content     string    `json:"content" db:"content"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ComplaintMessage is one entry of the bidirectional reporter/reviewer thread.
// It carries the sender role only, never an account identifier.
type ComplaintMessage struct {
	ID          uint       `json:"id" db:"id"`
	ComplaintID string     `json:"complaint_id" db:"complaint_id"`
	SenderRole  SenderRole `json:"sender_role" db:"sender_role"`
	Content     string     `json:"content" db:"content"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// CounselingRequest represents a request for medical or psychological support
type CounselingRequest struct {
	ID                   string            `json:"id" db:"id"`
	ReporterRef          string            `json:"reporter_ref" db:"reporter_ref"`
	Kind                 CounselingKind    `json:"kind" db:"kind"`
	Urgency              CounselingUrgency `json:"urgency" db:"urgency"`
	Reason               string            `json:"reason" db:"reason"`
	PreferredTime        *time.Time        `json:"preferred_time,omitempty" db:"preferred_time"`
	Status               CounselingStatus  `json:"status" db:"status"`
	AssignedCounselorRef *string           `json:"assigned_counselor_ref,omitempty" db:"assigned_counselor_ref"`
	CreatedAt            time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at" db:"updated_at"`
	ScheduledAt          *time.Time        `json:"scheduled_at,omitempty" db:"scheduled_at"`
	CompletedAt          *time.Time        `json:"completed_at,omitempty" db:"completed_at"`
	ReferredAt           *time.Time        `json:"referred_at,omitempty" db:"referred_at"`
}

// BroadcastAlert is an institution-wide notice independent of any single
// incident. Deactivation is one-way; reactivation means a new alert.
type BroadcastAlert struct {
	ID              string     `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Description     string     `json:"description" db:"description"`
	Category        string     `json:"category" db:"category"`
	Severity        Severity   `json:"severity" db:"severity"`
	TargetAudience  Audience   `json:"target_audience" db:"target_audience"`
	DepartmentScope []string   `json:"department_scope,omitempty" db:"department_scope"`
	Location        *string    `json:"location,omitempty" db:"location"`
	CreatedBy       string     `json:"created_by" db:"created_by"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	IsActive        bool       `json:"is_active" db:"is_active"`
	DeactivatedAt   *time.Time `json:"deactivated_at,omitempty" db:"deactivated_at"`
}

// AuditLog represents an audit log entry
type AuditLog struct {
	ID        uint      `json:"id" db:"id"`
	ActorRef  *string   `json:"actor_ref,omitempty" db:"actor_ref"`
	Action    string    `json:"action" db:"action"`
	Resource  string    `json:"resource" db:"resource"`
	Details   string    `json:"details,omitempty" db:"details"`
	IPAddress string    `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent string    `json:"user_agent,omitempty" db:"user_agent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AnalyticsSnapshot is a derived view computed on demand from the incident
// corpus; it is never persisted
type AnalyticsSnapshot struct {
	TotalIncidents      int            `json:"total_incidents"`
	ResolvedCount       int            `json:"resolved_count"`
	PendingCount        int            `json:"pending_count"`
	ActiveSosCount      int            `json:"active_sos_count"`
	AvgResponseTimeSecs float64        `json:"avg_response_time_secs"`
	ByType              map[string]int `json:"by_type"`
	BySeverity          map[string]int `json:"by_severity"`
	HighRiskZones       []string       `json:"high_risk_zones"`
	GeneratedAt         time.Time      `json:"generated_at"`
}

// TerminalSos reports whether s admits no further transitions
func TerminalSos(s SosStatus) bool {
	return s == SosResolved || s == SosCancelled
}

// TerminalComplaint reports whether s admits no further transitions
func TerminalComplaint(s ComplaintStatus) bool {
	return s == ComplaintClosed
}

// TerminalCounseling reports whether s admits no further transitions
func TerminalCounseling(s CounselingStatus) bool {
	return s == CounselingCompleted || s == CounselingReferred
}

// ValidCategory reports whether c is one of the known complaint categories
func ValidCategory(c ComplaintCategory) bool {
	switch c {
	case CategoryRagging, CategoryHarassment, CategoryBullying, CategoryMisconduct,
		CategoryViolence, CategoryInfrastructure, CategoryDiscrimination,
		CategoryAbuse, CategoryTheft, CategoryOther:
		return true
	}
	return false
}

// ValidSeverity reports whether s is one of the known severities
func ValidSeverity(s Severity) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// ValidAudience reports whether a is one of the known audience selectors
func ValidAudience(a Audience) bool {
	switch a {
	case AudienceAll, AudienceDepartments, AudienceHostels, AudienceFaculty:
		return true
	}
	return false
}
