package sqlitestore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Chittaranjans/Recruiter-board/internal/app"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

// createTestStore creates a temporary test database
func createTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath, "tester")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedJob(t *testing.T, s *Store) models.Job {
	t.Helper()
	job, err := s.CreateJob(context.Background(), models.Job{
		Title:          "Backend Engineer",
		Department:     "Engineering",
		EmploymentType: "full-time",
	})
	if err != nil {
		t.Fatalf("failed to create job: %v", err)
	}
	return job
}

func seedCandidate(t *testing.T, s *Store, jobID int) models.Candidate {
	t.Helper()
	c, err := s.CreateCandidate(context.Background(), models.Candidate{
		Name:  "Dana",
		Email: "dana@example.com",
		JobID: jobID,
	})
	if err != nil {
		t.Fatalf("failed to create candidate: %v", err)
	}
	return c
}

func seedInterview(t *testing.T, s *Store, candidateID, jobID int) models.Interview {
	t.Helper()
	iv, err := s.CreateInterview(context.Background(), models.Interview{
		CandidateID:     candidateID,
		JobID:           jobID,
		InterviewerName: "alice",
		ScheduledDate:   time.Now().Add(-24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("failed to create interview: %v", err)
	}
	return iv
}

func TestCreateCandidateDefaultsToApplied(t *testing.T) {
	s := createTestStore(t)
	job := seedJob(t, s)

	c := seedCandidate(t, s, job.ID)
	if c.ID == 0 {
		t.Error("candidate ID not set after creation")
	}
	if c.Status != "Applied" {
		t.Errorf("status = %q, expected Applied", c.Status)
	}
}

func TestCreateCandidateRequiresExistingJob(t *testing.T) {
	s := createTestStore(t)

	_, err := s.CreateCandidate(context.Background(), models.Candidate{Name: "X", JobID: 999})
	if !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("error = %v, expected ErrNotFound", err)
	}
}

func TestSetCandidateStatus(t *testing.T) {
	s := createTestStore(t)
	job := seedJob(t, s)
	c := seedCandidate(t, s, job.ID)

	updated, err := s.SetCandidateStatus(context.Background(), c.ID, "Screening")
	if err != nil {
		t.Fatalf("failed to update status: %v", err)
	}
	if updated.Status != "Screening" {
		t.Errorf("status = %q, expected Screening", updated.Status)
	}

	if _, err := s.SetCandidateStatus(context.Background(), 999, "Hired"); !errors.Is(err, app.ErrNotFound) {
		t.Errorf("missing candidate error = %v, expected ErrNotFound", err)
	}

	if _, err := s.SetCandidateStatus(context.Background(), c.ID, "Ghosted"); !errors.Is(err, app.ErrInvalidStatus) {
		t.Errorf("bad status error = %v, expected ErrInvalidStatus", err)
	}
}

func TestDeleteJobCascadesToCandidates(t *testing.T) {
	s := createTestStore(t)
	job := seedJob(t, s)
	c := seedCandidate(t, s, job.ID)

	if err := s.DeleteJob(context.Background(), job.ID); err != nil {
		t.Fatalf("failed to delete job: %v", err)
	}
	if _, err := s.GetCandidate(context.Background(), c.ID); !errors.Is(err, app.ErrNotFound) {
		t.Errorf("candidate survived job deletion: %v", err)
	}
}

func TestSubmitFeedbackMarksInterviewCompleted(t *testing.T) {
	s := createTestStore(t)
	job := seedJob(t, s)
	c := seedCandidate(t, s, job.ID)
	iv := seedInterview(t, s, c.ID, job.ID)

	fb, err := s.SubmitFeedback(context.Background(), models.Feedback{
		InterviewID:    iv.ID,
		Rating:         4,
		Recommendation: "Hire",
		Comments:       "solid",
	})
	if err != nil {
		t.Fatalf("failed to submit feedback: %v", err)
	}
	if fb.ID == 0 {
		t.Error("feedback ID not set")
	}

	stored, err := s.GetInterview(context.Background(), iv.ID)
	if err != nil {
		t.Fatalf("failed to get interview: %v", err)
	}
	if !stored.Completed {
		t.Error("interview not marked completed")
	}
	if stored.Feedback == nil || stored.Feedback.Rating != 4 {
		t.Errorf("feedback not attached: %+v", stored.Feedback)
	}
}

func TestSubmitFeedbackTwiceConflicts(t *testing.T) {
	s := createTestStore(t)
	job := seedJob(t, s)
	c := seedCandidate(t, s, job.ID)
	iv := seedInterview(t, s, c.ID, job.ID)

	first := models.Feedback{InterviewID: iv.ID, Rating: 4, Recommendation: "Hire"}
	if _, err := s.SubmitFeedback(context.Background(), first); err != nil {
		t.Fatalf("first submission failed: %v", err)
	}

	second := models.Feedback{InterviewID: iv.ID, Rating: 1, Recommendation: "Reject"}
	_, err := s.SubmitFeedback(context.Background(), second)
	if !errors.Is(err, app.ErrConflict) {
		t.Fatalf("error = %v, expected ErrConflict", err)
	}

	// The original record must not be overwritten.
	stored, _ := s.GetInterview(context.Background(), iv.ID)
	if stored.Feedback == nil || stored.Feedback.Rating != 4 {
		t.Errorf("original feedback overwritten: %+v", stored.Feedback)
	}
}

func TestGetKanbanViewGroupsByStatus(t *testing.T) {
	s := createTestStore(t)
	job := seedJob(t, s)

	ctx := context.Background()
	a := seedCandidate(t, s, job.ID)
	b, _ := s.CreateCandidate(ctx, models.Candidate{Name: "Eli", JobID: job.ID, Status: "Screening"})
	if _, err := s.CreateCandidate(ctx, models.Candidate{Name: "Fay", JobID: job.ID, Status: "Hired"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	view, err := s.GetKanbanView(ctx)
	if err != nil {
		t.Fatalf("failed to get kanban view: %v", err)
	}
	if len(view["Applied"]) != 1 || view["Applied"][0].ID != a.ID {
		t.Errorf("Applied column = %+v", view["Applied"])
	}
	if len(view["Screening"]) != 1 || view["Screening"][0].ID != b.ID {
		t.Errorf("Screening column = %+v", view["Screening"])
	}
	if len(view["Hired"]) != 1 {
		t.Errorf("Hired column = %+v", view["Hired"])
	}
}

func TestMoveKanban(t *testing.T) {
	s := createTestStore(t)
	job := seedJob(t, s)
	c := seedCandidate(t, s, job.ID)

	if err := s.MoveKanban(context.Background(), c.ID, "Offer Extended"); err != nil {
		t.Fatalf("failed to move candidate: %v", err)
	}
	stored, _ := s.GetCandidate(context.Background(), c.ID)
	if stored.Status != "Offer Extended" {
		t.Errorf("status = %q after move", stored.Status)
	}
}

func TestEnsureUserBootstrapAndApproval(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first, err := s.EnsureUser(ctx, "root", "root@example.com", "admin")
	if err != nil {
		t.Fatalf("failed to create first user: %v", err)
	}
	if !first.IsApproved {
		t.Error("first account should be approved on creation")
	}

	second, err := s.EnsureUser(ctx, "ron", "ron@example.com", "recruiter")
	if err != nil {
		t.Fatalf("failed to create second user: %v", err)
	}
	if second.IsApproved {
		t.Error("later non-candidate account should start pending")
	}

	cand, err := s.EnsureUser(ctx, "dana", "", "candidate")
	if err != nil {
		t.Fatalf("failed to create candidate account: %v", err)
	}
	if !cand.IsApproved {
		t.Error("candidate accounts are approved on creation")
	}

	if err := s.ApproveUser(ctx, second.ID); err != nil {
		t.Fatalf("failed to approve: %v", err)
	}
	users, _ := s.GetUsers(ctx)
	for _, u := range users {
		if u.ID == second.ID && !u.IsApproved {
			t.Error("approval not persisted")
		}
	}

	// EnsureUser is idempotent for an existing username.
	again, err := s.EnsureUser(ctx, "root", "", "admin")
	if err != nil {
		t.Fatalf("failed to re-ensure: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("re-ensure created a new account: %d != %d", again.ID, first.ID)
	}
}

func TestGetCurrentUser(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.GetCurrentUser(ctx); !errors.Is(err, app.ErrNotLoggedIn) {
		t.Fatalf("error = %v, expected ErrNotLoggedIn before login", err)
	}

	if _, err := s.EnsureUser(ctx, "tester", "", "recruiter"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	u, err := s.GetCurrentUser(ctx)
	if err != nil {
		t.Fatalf("failed to resolve current user: %v", err)
	}
	if u.Username != "tester" || u.Role != "recruiter" {
		t.Errorf("unexpected user: %+v", u)
	}
}
