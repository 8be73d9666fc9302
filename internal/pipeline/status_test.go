package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/Chittaranjans/Recruiter-board/internal/app"
	"github.com/Chittaranjans/Recruiter-board/internal/auth"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

// fakeWriter records status writes and can be told to fail
type fakeWriter struct {
	calls int
	err   error
}

func (f *fakeWriter) SetCandidateStatus(ctx context.Context, candidateID int, status string) (models.Candidate, error) {
	f.calls++
	if f.err != nil {
		return models.Candidate{}, f.err
	}
	return models.Candidate{ID: candidateID, Status: status}, nil
}

func TestValid(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected bool
	}{
		{name: "applied", status: StatusApplied, expected: true},
		{name: "screening", status: StatusScreening, expected: true},
		{name: "interview scheduled", status: StatusInterviewScheduled, expected: true},
		{name: "offer extended", status: StatusOfferExtended, expected: true},
		{name: "hired", status: StatusHired, expected: true},
		{name: "rejected", status: StatusRejected, expected: true},
		{name: "empty", status: Status(""), expected: false},
		{name: "lowercase", status: Status("applied"), expected: false},
		{name: "made up", status: Status("On Hold"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.status); got != tt.expected {
				t.Errorf("Valid(%q) = %v, expected %v", tt.status, got, tt.expected)
			}
		})
	}
}

func TestTerminal(t *testing.T) {
	for _, s := range Statuses {
		want := s == StatusHired || s == StatusRejected
		if got := Terminal(s); got != want {
			t.Errorf("Terminal(%q) = %v, expected %v", s, got, want)
		}
	}
}

// A recruiter moving a candidate straight from Applied to Hired is a
// structurally legal jump.
func TestSetCandidateStatusRecruiterDirectHire(t *testing.T) {
	w := &fakeWriter{}
	actor := auth.Session{UserID: 1, Username: "ron", Role: auth.RoleRecruiter}
	candidate := models.Candidate{ID: 42, Name: "Dana", Status: string(StatusApplied)}

	updated, err := SetCandidateStatus(context.Background(), w, candidate, StatusHired, actor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != string(StatusHired) {
		t.Errorf("status = %q, expected %q", updated.Status, StatusHired)
	}
	if w.calls != 1 {
		t.Errorf("backend called %d times, expected 1", w.calls)
	}
}

func TestSetCandidateStatusForbiddenSkipsBackend(t *testing.T) {
	w := &fakeWriter{}
	candidate := models.Candidate{ID: 7, Status: string(StatusScreening)}

	for _, actor := range []auth.Session{
		{Role: auth.RoleInterviewer},
		{Role: auth.RoleCandidate, LinkedCandidateID: 7},
		{Role: auth.RoleUnknown},
	} {
		_, err := SetCandidateStatus(context.Background(), w, candidate, StatusHired, actor)
		if !errors.Is(err, app.ErrForbidden) {
			t.Errorf("role %v: error = %v, expected ErrForbidden", actor.Role, err)
		}
	}
	if w.calls != 0 {
		t.Errorf("forbidden moves reached the backend %d times", w.calls)
	}
}

func TestSetCandidateStatusRejectsUnknownStatus(t *testing.T) {
	w := &fakeWriter{}
	actor := auth.Session{Role: auth.RoleAdmin}
	candidate := models.Candidate{ID: 3, Status: string(StatusApplied)}

	_, err := SetCandidateStatus(context.Background(), w, candidate, Status("Ghosted"), actor)
	if !errors.Is(err, app.ErrInvalidStatus) {
		t.Fatalf("error = %v, expected ErrInvalidStatus", err)
	}
	if w.calls != 0 {
		t.Error("invalid status reached the backend")
	}
}

func TestSetCandidateStatusReopenRejected(t *testing.T) {
	w := &fakeWriter{}
	actor := auth.Session{Role: auth.RoleAdmin}
	candidate := models.Candidate{ID: 11, Status: string(StatusRejected)}

	updated, err := SetCandidateStatus(context.Background(), w, candidate, StatusScreening, actor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != string(StatusScreening) {
		t.Errorf("status = %q, expected %q", updated.Status, StatusScreening)
	}
}

func TestSetCandidateStatusBackendFailureLeavesLocalStateAlone(t *testing.T) {
	w := &fakeWriter{err: app.ErrUnreachable}
	actor := auth.Session{Role: auth.RoleRecruiter}
	candidate := models.Candidate{ID: 5, Status: string(StatusApplied)}

	_, err := SetCandidateStatus(context.Background(), w, candidate, StatusScreening, actor)
	if !errors.Is(err, app.ErrUnreachable) {
		t.Fatalf("error = %v, expected ErrUnreachable", err)
	}
	if candidate.Status != string(StatusApplied) {
		t.Errorf("caller's candidate mutated to %q", candidate.Status)
	}
}
