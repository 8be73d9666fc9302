package board

import (
	"context"
	"fmt"

	"github.com/Chittaranjans/Recruiter-board/internal/pipeline"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

// Store is the slice of the backend the board consumes: the grouped view
// and the single-shot move confirmation.
type Store interface {
	GetKanbanView(ctx context.Context) (map[string][]models.Candidate, error)
	MoveKanban(ctx context.Context, candidateID int, newStatus string) error
}

// MoveState is the lifecycle of one drag-drop move. A move progresses
// MoveAppliedLocally -> MoveConfirmed when the backend accepts it, or
// MoveAppliedLocally -> MoveRolledBack when it does not. Rollback is
// always a full reload of ground truth, never a computed inverse, so
// overlapping moves cannot leave drifted local state behind.
type MoveState int

const (
	// MoveSkipped means nothing changed: same source and target column,
	// or a stale drag reference to a candidate not in the source column.
	MoveSkipped MoveState = iota
	// MoveAppliedLocally means the optimistic mutation is in place but the
	// backend has not confirmed it yet.
	MoveAppliedLocally
	// MoveConfirmed means the backend accepted the move; the optimistic
	// state stands.
	MoveConfirmed
	// MoveRolledBack means the backend rejected the move and the partition
	// was replaced by a fresh load.
	MoveRolledBack
)

func (s MoveState) String() string {
	switch s {
	case MoveSkipped:
		return "skipped"
	case MoveAppliedLocally:
		return "applied locally"
	case MoveConfirmed:
		return "confirmed"
	case MoveRolledBack:
		return "rolled back"
	default:
		return "unknown"
	}
}

// Reconciler maintains the board's partition of candidates keyed by
// pipeline status, one bucket per column. It holds no durable state:
// Load replaces everything from the backend, and a failed move falls back
// to Load rather than patching buckets.
//
// Not safe for concurrent use; the board is driven from a single
// event loop.
type Reconciler struct {
	store   Store
	columns map[pipeline.Status][]models.Candidate
}

func New(store Store) *Reconciler {
	return &Reconciler{
		store:   store,
		columns: emptyColumns(),
	}
}

func emptyColumns() map[pipeline.Status][]models.Candidate {
	cols := make(map[pipeline.Status][]models.Candidate, len(pipeline.Statuses))
	for _, s := range pipeline.Statuses {
		cols[s] = nil
	}
	return cols
}

// Load replaces the entire partition from a fresh fetch. Used at
// initialization and as the failure-recovery path. Candidates reported
// under a status outside the enumeration are dropped rather than given a
// phantom column.
func (r *Reconciler) Load(ctx context.Context) error {
	view, err := r.store.GetKanbanView(ctx)
	if err != nil {
		return fmt.Errorf("load board: %w", err)
	}

	cols := emptyColumns()
	for status, candidates := range view {
		s := pipeline.Status(status)
		if !pipeline.Valid(s) {
			continue
		}
		cols[s] = append(cols[s], candidates...)
	}
	r.columns = cols
	return nil
}

// Column returns the candidates in one board column
func (r *Reconciler) Column(s pipeline.Status) []models.Candidate {
	return r.columns[s]
}

// Total returns the candidate count across all columns
func (r *Reconciler) Total() int {
	n := 0
	for _, c := range r.columns {
		n += len(c)
	}
	return n
}

// MoveCandidate performs one optimistic drag-drop move: the candidate
// leaves the from column and joins the to column immediately, then the
// backend is asked to confirm. On confirmation failure the optimistic
// state is discarded wholesale via Load. The returned error carries the
// confirmation failure; when the recovery load itself fails, that error
// is returned instead and the partition is whatever the failed load left.
func (r *Reconciler) MoveCandidate(ctx context.Context, candidateID int, from, to pipeline.Status) (MoveState, error) {
	if from == to {
		return MoveSkipped, nil
	}
	if !pipeline.Valid(to) {
		return MoveSkipped, fmt.Errorf("move candidate %d: target %q not a pipeline status", candidateID, to)
	}

	if !r.applyLocal(candidateID, from, to) {
		// Stale drag reference: the candidate is not where the caller
		// thinks it is. Leave the partition alone.
		return MoveSkipped, nil
	}

	if err := r.store.MoveKanban(ctx, candidateID, string(to)); err != nil {
		if loadErr := r.Load(ctx); loadErr != nil {
			return MoveRolledBack, fmt.Errorf("recover after failed move of candidate %d: %w", candidateID, loadErr)
		}
		return MoveRolledBack, fmt.Errorf("move candidate %d to %q: %w", candidateID, to, err)
	}
	return MoveConfirmed, nil
}

// applyLocal removes the candidate from the from bucket and appends it to
// the to bucket, updating its status in place. Reports false when the
// candidate is not in the from bucket.
func (r *Reconciler) applyLocal(candidateID int, from, to pipeline.Status) bool {
	bucket := r.columns[from]
	for i, c := range bucket {
		if c.ID != candidateID {
			continue
		}
		r.columns[from] = append(bucket[:i:i], bucket[i+1:]...)
		c.Status = string(to)
		r.columns[to] = append(r.columns[to], c)
		return true
	}
	return false
}
