package interview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Chittaranjans/Recruiter-board/internal/app"
	"github.com/Chittaranjans/Recruiter-board/internal/auth"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

type fakeFeedbackWriter struct {
	calls int
	err   error
}

func (f *fakeFeedbackWriter) SubmitFeedback(ctx context.Context, fb models.Feedback) (models.Feedback, error) {
	f.calls++
	if f.err != nil {
		return models.Feedback{}, f.err
	}
	fb.ID = 101
	fb.CreatedAt = now
	return fb, nil
}

func overdueInterviewFor(interviewer string) models.InterviewWithFeedback {
	return models.InterviewWithFeedback{
		Interview: models.Interview{
			ID:              9,
			CandidateID:     4,
			InterviewerName: interviewer,
			ScheduledDate:   now.Add(-24 * time.Hour),
		},
	}
}

func TestCanSubmitFeedback(t *testing.T) {
	recruiter := auth.Session{UserID: 1, Username: "ron", Role: auth.RoleRecruiter}
	admin := auth.Session{UserID: 2, Username: "root", Role: auth.RoleAdmin}
	alice := auth.Session{UserID: 3, Username: "alice", Role: auth.RoleInterviewer}
	candidate := auth.Session{UserID: 4, Username: "cand", Role: auth.RoleCandidate, LinkedCandidateID: 4}

	tests := []struct {
		name     string
		session  auth.Session
		iv       models.InterviewWithFeedback
		expected bool
	}{
		{name: "recruiter on any interviewer", session: recruiter, iv: overdueInterviewFor("bob"), expected: true},
		{name: "admin on any interviewer", session: admin, iv: overdueInterviewFor("bob"), expected: true},
		{name: "interviewer on own interview", session: alice, iv: overdueInterviewFor("alice"), expected: true},
		{name: "interviewer on someone else's interview", session: alice, iv: overdueInterviewFor("bob"), expected: false},
		{name: "candidate never", session: candidate, iv: overdueInterviewFor("cand"), expected: false},
		{name: "unknown role never", session: auth.Session{Username: "alice"}, iv: overdueInterviewFor("alice"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanSubmitFeedback(tt.session, tt.iv, now); got != tt.expected {
				t.Errorf("CanSubmitFeedback() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCanSubmitFeedbackBeforeScheduledTime(t *testing.T) {
	iv := overdueInterviewFor("alice")
	iv.ScheduledDate = now.Add(time.Hour)

	for _, s := range []auth.Session{
		{Username: "root", Role: auth.RoleAdmin},
		{Username: "alice", Role: auth.RoleInterviewer},
	} {
		if CanSubmitFeedback(s, iv, now) {
			t.Errorf("%s allowed to submit before the interview happened", s.Role)
		}
	}

	// The gate keys off time, not the completed flag: a past interview
	// marked completed but missing feedback stays closed only via the
	// feedback-presence rule, so this one remains open.
	iv.ScheduledDate = now.Add(-time.Hour)
	iv.Completed = true
	if !CanSubmitFeedback(auth.Session{Username: "alice", Role: auth.RoleInterviewer}, iv, now) {
		t.Error("completed flag alone should not close the gate")
	}
}

func TestCanSubmitFeedbackExistingFeedbackClosesGateForAllRoles(t *testing.T) {
	iv := overdueInterviewFor("alice")
	iv.Feedback = &models.Feedback{ID: 1, InterviewID: 9}

	for _, role := range []auth.Role{
		auth.RoleAdmin, auth.RoleRecruiter, auth.RoleInterviewer,
		auth.RoleCandidate, auth.RoleUnknown,
	} {
		s := auth.Session{Username: "alice", Role: role}
		if CanSubmitFeedback(s, iv, now) {
			t.Errorf("role %v allowed a second feedback", role)
		}
	}
}

func TestSubmitFeedbackSuccess(t *testing.T) {
	w := &fakeFeedbackWriter{}
	actor := auth.Session{UserID: 3, Username: "alice", Role: auth.RoleInterviewer}
	iv := overdueInterviewFor("alice")
	fb := models.Feedback{Rating: 4, Recommendation: "Hire", Comments: "strong systems background"}

	updated, err := SubmitFeedback(context.Background(), w, iv, fb, actor, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Feedback == nil || updated.Feedback.ID == 0 {
		t.Fatal("stored feedback not attached to result")
	}
	if updated.Feedback.InterviewID != iv.ID {
		t.Errorf("feedback interview ID = %d, expected %d", updated.Feedback.InterviewID, iv.ID)
	}
	if !updated.Completed {
		t.Error("interview not marked completed after feedback")
	}
	if DeriveStatus(updated, now) != StatusCompleted {
		t.Error("derived status not Completed after feedback")
	}
}

// An interviewer submitting against someone else's interview is refused
// locally, before any write is attempted.
func TestSubmitFeedbackWrongInterviewerForbidden(t *testing.T) {
	w := &fakeFeedbackWriter{}
	actor := auth.Session{UserID: 3, Username: "alice", Role: auth.RoleInterviewer}
	iv := overdueInterviewFor("bob")
	fb := models.Feedback{Rating: 3, Recommendation: "Reject"}

	_, err := SubmitFeedback(context.Background(), w, iv, fb, actor, now)
	if !errors.Is(err, app.ErrForbidden) {
		t.Fatalf("error = %v, expected ErrForbidden", err)
	}
	if w.calls != 0 {
		t.Error("forbidden submission reached the backend")
	}
}

func TestSubmitFeedbackConcurrentDuplicateReportsConflict(t *testing.T) {
	w := &fakeFeedbackWriter{err: app.ErrConflict}
	actor := auth.Session{Username: "ron", Role: auth.RoleRecruiter}
	iv := overdueInterviewFor("alice")
	fb := models.Feedback{Rating: 5, Recommendation: "Hire"}

	_, err := SubmitFeedback(context.Background(), w, iv, fb, actor, now)
	if !errors.Is(err, app.ErrAlreadySubmitted) {
		t.Fatalf("error = %v, expected ErrAlreadySubmitted", err)
	}
}

func TestSubmitFeedbackValidation(t *testing.T) {
	actor := auth.Session{Username: "ron", Role: auth.RoleRecruiter}
	iv := overdueInterviewFor("alice")

	tests := []struct {
		name string
		fb   models.Feedback
	}{
		{name: "rating too low", fb: models.Feedback{Rating: 0, Recommendation: "Hire"}},
		{name: "rating too high", fb: models.Feedback{Rating: 6, Recommendation: "Hire"}},
		{name: "unknown recommendation", fb: models.Feedback{Rating: 3, Recommendation: "Maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeFeedbackWriter{}
			_, err := SubmitFeedback(context.Background(), w, iv, tt.fb, actor, now)
			if !errors.Is(err, app.ErrInvalidArgument) {
				t.Errorf("error = %v, expected ErrInvalidArgument", err)
			}
			if w.calls != 0 {
				t.Error("invalid feedback reached the backend")
			}
		})
	}
}
