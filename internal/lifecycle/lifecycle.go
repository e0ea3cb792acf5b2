// Package lifecycle encodes the canonical transition rules for each
// incident kind as explicit adjacency maps. The maps are the single
// source of truth; no transition is inferred anywhere else.
package lifecycle

import (
	"campus-safety/internal/apperr"
	"campus-safety/internal/models"
)

// sosTransitions: forward-only, RESOLVED and CANCELLED are terminal.
var sosTransitions = map[models.SosStatus][]models.SosStatus{
	models.SosActive:     {models.SosResponding, models.SosResolved, models.SosCancelled},
	models.SosResponding: {models.SosResolved, models.SosCancelled},
	models.SosResolved:   {},
	models.SosCancelled:  {},
}

// complaintTransitions: a small directed graph, not a linear chain.
// Under Review and Action Taken may be revisited in either order;
// Closed is final.
var complaintTransitions = map[models.ComplaintStatus][]models.ComplaintStatus{
	models.ComplaintSubmitted:   {models.ComplaintUnderReview},
	models.ComplaintUnderReview: {models.ComplaintActionTaken, models.ComplaintClosed},
	models.ComplaintActionTaken: {models.ComplaintUnderReview, models.ComplaintClosed},
	models.ComplaintClosed:      {},
}

/// counselingTransitions: Referred is an alternate terminal branch out of
// Pending.
var counselingTransitions = map[models.CounselingStatus][]models.CounselingStatus{
	models.CounselingPending:   {models.CounselingScheduled, models.CounselingReferred},
	models.CounselingScheduled: {models.CounselingCompleted},
	models.CounselingCompleted: {},
	models.CounselingReferred:  {},
}

// SosNext returns the states legally reachable from cur
func SosNext(cur models.SosStatus) []models.SosStatus {
	return sosTransitions[cur]
}

// ComplaintNext returns the states legally reachable from cur
func ComplaintNext(cur models.ComplaintStatus) []models.ComplaintStatus {
	return complaintTransitions[cur]
}

// CounselingNext returns the states legally reachable from cur
func CounselingNext(cur models.CounselingStatus) []models.CounselingStatus {
	return counselingTransitions[cur]
}

// CheckSos validates the transition cur -> target for the SOS alert id.
// It returns an InvalidTransitionError carrying the legal next states
// when the edge does not exist.
func CheckSos(id string, cur, target models.SosStatus) error {
	allowed, ok := sosTransitions[cur]
	if !ok {
		return apperr.Validation("status", "unknown SOS status "+string(cur))
	}
	for _, s := range allowed {
		if s == target {
			return nil
		}
	}
	return &apperr.InvalidTransitionError{
		Entity:  "sos_alert",
		ID:      id,
		From:    string(cur),
		To:      string(target),
		Allowed: sosStatusStrings(allowed),
	}
}

// CheckComplaint validates the transition cur -> target for the complaint id
func CheckComplaint(id string, cur, target models.ComplaintStatus) error {
	allowed, ok := complaintTransitions[cur]
	if !ok {
		return apperr.Validation("status", "unknown complaint status "+string(cur))
	}
	for _, s := range allowed {
		if s == target {
			return nil
		}
	}
	return &apperr.InvalidTransitionError{
		Entity:  "complaint",
		ID:      id,
		From:    string(cur),
		To:      string(target),
		Allowed: complaintStatusStrings(allowed),
	}
}

// CheckCounseling validates the transition cur -> target for the request id
func CheckCounseling(id string, cur, target models.CounselingStatus) error {
	allowed, ok := counselingTransitions[cur]
	if !ok {
		return apperr.Validation("status", "unknown counseling status "+string(cur))
	}
	for _, s := range allowed {
		if s == target {
			return nil
		}
	}
	return &apperr.InvalidTransitionError{
		Entity:  "counseling_request",
		ID:      id,
		From:    string(cur),
		To:      string(target),
		Allowed: counselingStatusStrings(allowed),
	}
}

func sosStatusStrings(in []models.SosStatus) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

func complaintStatusStrings(in []models.ComplaintStatus) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

func counselingStatusStrings(in []models.CounselingStatus) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
