package interview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Chittaranjans/Recruiter-board/internal/app"
	"github.com/Chittaranjans/Recruiter-board/internal/auth"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

// Recommendations lists the accepted feedback recommendations
var Recommendations = []string{"Hire", "Reject", "Another Interview"}

// CanSubmitFeedback decides whether the session holder may submit feedback
// for the interview right now:
//
//   - never when feedback already exists (at most one per interview);
//   - never before the scheduled time has passed; the gate keys off the
//     clock and feedback presence, not the completed flag;
//   - recruiters and admins may submit on behalf of any interviewer;
//   - an interviewer may submit only when the interview's interviewer name
//     matches their own username.
func CanSubmitFeedback(s auth.Session, iv models.InterviewWithFeedback, now time.Time) bool {
	if iv.Feedback != nil {
		return false
	}
	if !iv.ScheduledDate.Before(now) {
		return false
	}
	if auth.HasCapability(s, auth.CapSubmitAnyFeedback) {
		return true
	}
	if auth.HasCapability(s, auth.CapSubmitOwnFeedback) {
		return iv.InterviewerName == s.Username
	}
	return false
}

// FeedbackWriter is the slice of the backend used to persist feedback
type FeedbackWriter interface {
	SubmitFeedback(ctx context.Context, fb models.Feedback) (models.Feedback, error)
}

// SubmitFeedback records feedback for an interview on behalf of actor. The
// gate is checked locally first; a Forbidden outcome never reaches the
// backend. A duplicate submission that raced ahead at the backend is
// reported as AlreadySubmitted, never silently overwritten.
//
// On success the returned interview carries the stored feedback and its
// completed flag set; on any failure the caller's copy is untouched.
func SubmitFeedback(ctx context.Context, w FeedbackWriter, iv models.InterviewWithFeedback, fb models.Feedback, actor auth.Session, now time.Time) (models.InterviewWithFeedback, error) {
	if !CanSubmitFeedback(actor, iv, now) {
		return models.InterviewWithFeedback{}, fmt.Errorf("submit feedback for interview %d as %s: %w", iv.ID, actor.Role, app.ErrForbidden)
	}
	if fb.Rating < 1 || fb.Rating > 5 {
		return models.InterviewWithFeedback{}, fmt.Errorf("rating %d out of range: %w", fb.Rating, app.ErrInvalidArgument)
	}
	if !validRecommendation(fb.Recommendation) {
		return models.InterviewWithFeedback{}, fmt.Errorf("recommendation %q: %w", fb.Recommendation, app.ErrInvalidArgument)
	}

	fb.InterviewID = iv.ID
	stored, err := w.SubmitFeedback(ctx, fb)
	if err != nil {
		if errors.Is(err, app.ErrConflict) {
			return models.InterviewWithFeedback{}, fmt.Errorf("interview %d: %w", iv.ID, app.ErrAlreadySubmitted)
		}
		return models.InterviewWithFeedback{}, fmt.Errorf("submit feedback for interview %d: %w", iv.ID, err)
	}

	iv.Feedback = &stored
	iv.Completed = true
	return iv, nil
}

func validRecommendation(r string) bool {
	for _, known := range Recommendations {
		if r == known {
			return true
		}
	}
	return false
}
