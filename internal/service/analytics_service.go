package service

import (
	"sort"
	"strings"
	"time"

	"campus-safety/internal/apperr"
	"campus-safety/internal/models"
	"campus-safety/internal/repository"
)

// AnalyticsService derives counts, rates, and risk-zone summaries from the
// incident corpus. Snapshots are computed on demand and never persisted.
type AnalyticsService struct {
	complaintRepo  *repository.ComplaintRepository
	sosRepo        *repository.SosRepository
	highRiskWindow int
}

// NewAnalyticsService creates a new analytics service. highRiskThreshold is
// the minimum number of incidents at one location before it counts as a
// high-risk zone.
func NewAnalyticsService(
	complaintRepo *repository.ComplaintRepository,
	sosRepo *repository.SosRepository,
	highRiskThreshold int,
) *AnalyticsService {
	return &AnalyticsService{
		complaintRepo:  complaintRepo,
		sosRepo:        sosRepo,
		highRiskWindow: highRiskThreshold,
	}
}

// Snapshot fetches the corpus and computes a fresh snapshot
func (s *AnalyticsService) Snapshot() (*models.AnalyticsSnapshot, error) {
	complaints, err := s.complaintRepo.ListAll()
	if err != nil {
		return nil, apperr.Transport("analytics complaint fetch", err)
	}
	sosAlerts, err := s.sosRepo.ListAll()
	if err != nil {
		return nil, apperr.Transport("analytics sos fetch", err)
	}

	snapshot := Compute(complaints, sosAlerts, s.highRiskWindow)
	return &snapshot, nil
}

// Compute derives an analytics snapshot from the incident corpus. Pure:
// no side effects, safely re-computable at any time.
//
// TotalIncidents counts complaints; ResolvedCount and PendingCount
// partition them by terminal status, so ResolvedCount + PendingCount ==
// TotalIncidents always holds. AvgResponseTimeSecs averages
// resolution-minus-creation over closed complaints and resolved SOS
// alerts together.
func Compute(complaints []models.Complaint, sosAlerts []models.SosAlert, highRiskThreshold int) models.AnalyticsSnapshot {
	snapshot := models.AnalyticsSnapshot{
		TotalIncidents: len(complaints),
		ByType:         make(map[string]int),
		BySeverity:     make(map[string]int),
		GeneratedAt:    time.Now(),
	}

	var totalResponse time.Duration
	responded := 0
	locations := make(map[string]int)

	for i := range complaints {
		c := &complaints[i]
		snapshot.ByType[string(c.Category)]++
		snapshot.BySeverity[string(c.Severity)]++

		if models.TerminalComplaint(c.Status) {
			snapshot.ResolvedCount++
			if c.ClosedAt != nil {
				totalResponse += c.ClosedAt.Sub(c.SubmittedAt)
				responded++
			}
		} else {
			snapshot.PendingCount++
		}

		countLocation(locations, c.Location)
	}

	for i := range sosAlerts {
		a := &sosAlerts[i]
		if a.Status == models.SosActive || a.Status == models.SosResponding {
			snapshot.ActiveSosCount++
		}
		if a.Status == models.SosResolved && a.ResolvedAt != nil {
			totalResponse += a.ResolvedAt.Sub(a.CreatedAt)
			responded++
		}
		countLocation(locations, a.Location)
	}

	if responded > 0 {
		snapshot.AvgResponseTimeSecs = totalResponse.Seconds() / float64(responded)
	}

	for loc, n := range locations {
		if n >= highRiskThreshold {
			snapshot.HighRiskZones = append(snapshot.HighRiskZones, loc)
		}
	}
	sort.Strings(snapshot.HighRiskZones)

	return snapshot
}

func countLocation(locations map[string]int, loc *string) {
	if loc == nil {
		return
	}
	normalized := strings.ToLower(strings.TrimSpace(*loc))
	if normalized == "" {
		return
	}
	locations[normalized]++
}
