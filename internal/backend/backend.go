// Package backend defines the collaborator holding the authoritative
// record state. The rest of the tool only decides; the backend persists
// and is the sole arbiter of concurrent writes to the same record.
package backend

import (
	"context"

	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

// Backend is the transport-agnostic contract consumed by the CLI and the
// core packages. Both the remote hiring API client and the local sqlite
// store satisfy it.
type Backend interface {
	// GetCurrentUser resolves the already-authenticated identity for this
	// process. Returns app.ErrNotLoggedIn when no session exists.
	GetCurrentUser(ctx context.Context) (models.User, error)

	GetJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id int) (models.Job, error)
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)
	DeleteJob(ctx context.Context, id int) error

	GetCandidates(ctx context.Context) ([]models.Candidate, error)
	GetCandidate(ctx context.Context, id int) (models.Candidate, error)
	CreateCandidate(ctx context.Context, c models.Candidate) (models.Candidate, error)
	SetCandidateStatus(ctx context.Context, candidateID int, status string) (models.Candidate, error)
	DeleteCandidate(ctx context.Context, id int) error

	GetInterviews(ctx context.Context) ([]models.InterviewWithFeedback, error)
	GetInterview(ctx context.Context, id int) (models.InterviewWithFeedback, error)
	CreateInterview(ctx context.Context, iv models.Interview) (models.Interview, error)

	// SubmitFeedback stores the single feedback record for an interview
	// and marks the interview completed. Returns app.ErrConflict when a
	// record already exists.
	SubmitFeedback(ctx context.Context, fb models.Feedback) (models.Feedback, error)

	GetKanbanView(ctx context.Context) (map[string][]models.Candidate, error)
	MoveKanban(ctx context.Context, candidateID int, newStatus string) error

	GetUsers(ctx context.Context) ([]models.User, error)
	ApproveUser(ctx context.Context, id int) error
}
