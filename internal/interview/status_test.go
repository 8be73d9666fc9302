package interview

import (
	"testing"
	"time"

	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func pastInterview(hoursAgo int) models.InterviewWithFeedback {
	return models.InterviewWithFeedback{
		Interview: models.Interview{
			ID:            1,
			ScheduledDate: now.Add(-time.Duration(hoursAgo) * time.Hour),
		},
	}
}

func TestDeriveStatus(t *testing.T) {
	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)
	fb := &models.Feedback{ID: 1, InterviewID: 1, Rating: 4}

	tests := []struct {
		name      string
		scheduled time.Time
		completed bool
		feedback  *models.Feedback
		expected  DisplayStatus
	}{
		{name: "future interview is upcoming", scheduled: future, expected: StatusUpcoming},
		{name: "past interview awaits feedback", scheduled: past, expected: StatusPendingFeedback},
		{name: "completed flag wins over clock", scheduled: past, completed: true, expected: StatusCompleted},
		{name: "feedback wins even when flag unset", scheduled: past, feedback: fb, expected: StatusCompleted},
		{name: "feedback on a future interview still completed", scheduled: future, feedback: fb, expected: StatusCompleted},
		{name: "completed flag on a future interview", scheduled: future, completed: true, expected: StatusCompleted},
		{name: "scheduled exactly now is upcoming", scheduled: now, expected: StatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv := models.InterviewWithFeedback{
				Interview: models.Interview{ID: 1, ScheduledDate: tt.scheduled, Completed: tt.completed},
				Feedback:  tt.feedback,
			}
			if got := DeriveStatus(iv, now); got != tt.expected {
				t.Errorf("DeriveStatus() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

// Once an interview is completed, no clock value may resurrect it.
func TestDeriveStatusCompletedIsMonotonic(t *testing.T) {
	iv := models.InterviewWithFeedback{
		Interview: models.Interview{ID: 1, ScheduledDate: now, Completed: true},
	}
	clocks := []time.Time{
		now.Add(-365 * 24 * time.Hour),
		now.Add(-time.Minute),
		now,
		now.Add(time.Minute),
		now.Add(365 * 24 * time.Hour),
	}
	for _, clock := range clocks {
		if got := DeriveStatus(iv, clock); got != StatusCompleted {
			t.Errorf("DeriveStatus(completed, %v) = %q", clock, got)
		}
	}

	iv.Completed = false
	iv.Feedback = &models.Feedback{ID: 2}
	for _, clock := range clocks {
		if got := DeriveStatus(iv, clock); got != StatusCompleted {
			t.Errorf("DeriveStatus(with feedback, %v) = %q", clock, got)
		}
	}
}

func TestDeriveStatusIsPure(t *testing.T) {
	iv := pastInterview(3)
	first := DeriveStatus(iv, now)
	for i := 0; i < 5; i++ {
		if DeriveStatus(iv, now) != first {
			t.Fatal("DeriveStatus not stable for fixed inputs")
		}
	}
}

func TestDaysOverdue(t *testing.T) {
	tests := []struct {
		name     string
		hoursAgo int
		expected int
	}{
		{name: "yesterday", hoursAgo: 24, expected: 1},
		{name: "under a day", hoursAgo: 23, expected: 0},
		{name: "one week", hoursAgo: 7 * 24, expected: 7},
		{name: "thirty six hours floors to one", hoursAgo: 36, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv := pastInterview(tt.hoursAgo)
			if !Overdue(iv, now) {
				t.Fatalf("interview %d hours old not overdue", tt.hoursAgo)
			}
			if got := DaysOverdue(iv.Interview, now); got != tt.expected {
				t.Errorf("DaysOverdue() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestOverdue(t *testing.T) {
	if Overdue(models.InterviewWithFeedback{Interview: models.Interview{ScheduledDate: now.Add(time.Hour)}}, now) {
		t.Error("future interview reported overdue")
	}
	done := pastInterview(48)
	done.Completed = true
	if Overdue(done, now) {
		t.Error("completed interview reported overdue")
	}
}
