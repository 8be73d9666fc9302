package pipeline

import (
	"context"
	"fmt"

	"github.com/Chittaranjans/Recruiter-board/internal/app"
	"github.com/Chittaranjans/Recruiter-board/internal/auth"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

// Status is a candidate's pipeline status. The set is closed: a candidate
// holds exactly one of these at any time.
type Status string

const (
	StatusApplied            Status = "Applied"
	StatusScreening          Status = "Screening"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusOfferExtended      Status = "Offer Extended"
	StatusRejected           Status = "Rejected"
	StatusHired              Status = "Hired"
)

// Statuses lists every pipeline status in board column order
var Statuses = []Status{
	StatusApplied,
	StatusScreening,
	StatusInterviewScheduled,
	StatusOfferExtended,
	StatusRejected,
	StatusHired,
}

// Valid reports whether s is a member of the status enumeration
func Valid(s Status) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether s ends the pipeline. Note that a terminal
// status does not lock the record: any actor holding the status-change
// capability may reopen a rejected candidate.
func Terminal(s Status) bool {
	return s == StatusHired || s == StatusRejected
}

// StatusWriter is the slice of the backend used to persist a status change
type StatusWriter interface {
	SetCandidateStatus(ctx context.Context, candidateID int, status string) (models.Candidate, error)
}

// SetCandidateStatus moves a candidate to newStatus on behalf of actor.
// The authorization check runs locally before anything is sent to the
// backend; a Forbidden result never produces a network call. The target
// only has to be a member of the enumeration: ordering between stages is
// a presentation affordance, not a guarded transition, so jumps and
// reopening a rejected candidate are structurally legal.
//
// On any failure the returned candidate is the zero value and the
// caller's copy is untouched; no partial mutation survives an
// unconfirmed write.
func SetCandidateStatus(ctx context.Context, w StatusWriter, candidate models.Candidate, newStatus Status, actor auth.Session) (models.Candidate, error) {
	if !auth.HasCapability(actor, auth.CapChangeCandidateStatus) {
		return models.Candidate{}, fmt.Errorf("change status of candidate %d as %s: %w", candidate.ID, actor.Role, app.ErrForbidden)
	}
	if !Valid(newStatus) {
		return models.Candidate{}, fmt.Errorf("status %q: %w", newStatus, app.ErrInvalidStatus)
	}

	updated, err := w.SetCandidateStatus(ctx, candidate.ID, string(newStatus))
	if err != nil {
		return models.Candidate{}, fmt.Errorf("update candidate %d: %w", candidate.ID, err)
	}
	return updated, nil
}
