package interview

import (
	"time"

	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

// DisplayStatus is the derived interview status shown in every view. It is
// never stored: recomputing it from the record keeps all views agreeing.
type DisplayStatus string

const (
	StatusCompleted       DisplayStatus = "Completed"
	StatusPendingFeedback DisplayStatus = "Pending Feedback"
	StatusUpcoming        DisplayStatus = "Upcoming"
)

// DeriveStatus computes the display status from the stored record and the
// clock. Pure: same inputs, same answer. Completed is sticky; once
// feedback exists or the completed flag is set, no clock value brings the
// interview back to Upcoming or Pending Feedback.
func DeriveStatus(iv models.InterviewWithFeedback, now time.Time) DisplayStatus {
	if iv.Feedback != nil {
		return StatusCompleted
	}
	if iv.Completed {
		return StatusCompleted
	}
	if iv.ScheduledDate.Before(now) {
		return StatusPendingFeedback
	}
	return StatusUpcoming
}

// Overdue reports whether the interview time has passed without a
// completion or feedback.
func Overdue(iv models.InterviewWithFeedback, now time.Time) bool {
	return DeriveStatus(iv, now) == StatusPendingFeedback
}

// DaysOverdue returns the number of whole days since the scheduled time.
// Only meaningful for an overdue interview; callers should check Overdue
// first.
func DaysOverdue(iv models.Interview, now time.Time) int {
	return int(now.Sub(iv.ScheduledDate).Hours() / 24)
}
