// Package sqlitestore is the local single-user backend: a sqlite database
// under the tool's data directory. In local mode it is the authoritative
// record store the decision core writes through.
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Chittaranjans/Recruiter-board/internal/app"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

// Store implements backend.Backend over a local sqlite database
type Store struct {
	db *sql.DB
	// username identifies the session holder in local mode; set from config
	username string
}

// Open opens (creating if needed) the sqlite database at path and runs
// migrations. username may be empty; GetCurrentUser then reports
// ErrNotLoggedIn.
func Open(path, username string) (*Store, error) {
	// DSN options enable foreign keys and WAL like the rest of our sqlite use
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &Store{db: db, username: username}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// runMigrations creates all necessary tables
func runMigrations(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		email TEXT,
		role TEXT NOT NULL DEFAULT 'candidate',
		candidate_id INTEGER,
		is_active BOOLEAN DEFAULT 1,
		is_approved BOOLEAN DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		CHECK(role IN ('admin', 'recruiter', 'interviewer', 'candidate'))
	);

	CREATE TABLE IF NOT EXISTS jobs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		department TEXT,
		description TEXT,
		required_skills TEXT,
		employment_type TEXT DEFAULT 'full-time'
	);

	CREATE TABLE IF NOT EXISTS candidates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT,
		cv_text TEXT,
		status TEXT NOT NULL DEFAULT 'Applied',
		job_id INTEGER NOT NULL,
		FOREIGN KEY (job_id) REFERENCES jobs(id) ON DELETE CASCADE,
		CHECK(status IN ('Applied', 'Screening', 'Interview Scheduled', 'Offer Extended', 'Rejected', 'Hired'))
	);

	CREATE TABLE IF NOT EXISTS interviews (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		candidate_id INTEGER NOT NULL,
		job_id INTEGER NOT NULL,
		interviewer_name TEXT NOT NULL,
		interviewer_user_id INTEGER,
		scheduled_date DATETIME NOT NULL,
		duration_minutes INTEGER DEFAULT 60,
		completed BOOLEAN DEFAULT 0,
		FOREIGN KEY (candidate_id) REFERENCES candidates(id) ON DELETE CASCADE,
		FOREIGN KEY (job_id) REFERENCES jobs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS feedback (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		interview_id INTEGER UNIQUE NOT NULL,
		rating INTEGER NOT NULL,
		recommendation TEXT,
		comments TEXT,
		strengths TEXT,
		weaknesses TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (interview_id) REFERENCES interviews(id) ON DELETE CASCADE,
		CHECK(rating BETWEEN 1 AND 5)
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		candidate_id INTEGER NOT NULL,
		message TEXT NOT NULL,
		type TEXT,
		is_read BOOLEAN DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (candidate_id) REFERENCES candidates(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_candidates_status ON candidates(status);
	CREATE INDEX IF NOT EXISTS idx_candidates_job_id ON candidates(job_id);
	CREATE INDEX IF NOT EXISTS idx_interviews_candidate_id ON interviews(candidate_id);
	CREATE INDEX IF NOT EXISTS idx_feedback_interview_id ON feedback(interview_id);
	`

	_, err := db.Exec(schema)
	return err
}

// User operations

// GetCurrentUser resolves the configured local identity
func (s *Store) GetCurrentUser(ctx context.Context) (models.User, error) {
	if s.username == "" {
		return models.User{}, app.ErrNotLoggedIn
	}
	return s.getUserByUsername(ctx, s.username)
}

func (s *Store) getUserByUsername(ctx context.Context, username string) (models.User, error) {
	query := `SELECT id, username, email, role, candidate_id, is_active, is_approved, created_at
			  FROM users WHERE username=?`
	return s.scanUser(s.db.QueryRowContext(ctx, query, username))
}

func (s *Store) scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	var candidateID sql.NullInt64
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &candidateID,
		&u.IsActive, &u.IsApproved, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, app.ErrNotLoggedIn
	}
	if err != nil {
		return models.User{}, err
	}
	if candidateID.Valid {
		u.CandidateID = int(candidateID.Int64)
	}
	return u, nil
}

// EnsureUser creates the account for a local login if it does not exist
// yet and returns it. The first account in an empty store is approved
// immediately (bootstrap); later non-candidate accounts start pending and
// wait for an admin approval, candidate accounts are approved on creation.
func (s *Store) EnsureUser(ctx context.Context, username, email, role string) (models.User, error) {
	existing, err := s.getUserByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return models.User{}, err
	}
	approved := total == 0 || role == "candidate"

	query := `INSERT INTO users (username, email, role, is_approved) VALUES (?, ?, ?, ?)`
	result, err := s.db.ExecContext(ctx, query, username, email, role, approved)
	if err != nil {
		return models.User{}, err
	}
	id, _ := result.LastInsertId()
	return models.User{
		ID:         int(id),
		Username:   username,
		Email:      email,
		Role:       role,
		IsActive:   true,
		IsApproved: approved,
		CreatedAt:  time.Now(),
	}, nil
}

func (s *Store) GetUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, username, email, role, candidate_id, is_active, is_approved, created_at
			  FROM users ORDER BY created_at`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		var candidateID sql.NullInt64
		err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &candidateID,
			&u.IsActive, &u.IsApproved, &u.CreatedAt)
		if err != nil {
			return nil, err
		}
		if candidateID.Valid {
			u.CandidateID = int(candidateID.Int64)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) ApproveUser(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, `UPDATE users SET is_approved=1 WHERE id=?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("user %d: %w", id, app.ErrNotFound)
	}
	return nil
}

// Job operations

func (s *Store) GetJobs(ctx context.Context) ([]models.Job, error) {
	query := `SELECT id, title, department, description, required_skills, employment_type
			  FROM jobs ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var j models.Job
		err := rows.Scan(&j.ID, &j.Title, &j.Department, &j.Description,
			&j.RequiredSkills, &j.EmploymentType)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *Store) GetJob(ctx context.Context, id int) (models.Job, error) {
	query := `SELECT id, title, department, description, required_skills, employment_type
			  FROM jobs WHERE id=?`
	var j models.Job
	err := s.db.QueryRowContext(ctx, query, id).Scan(&j.ID, &j.Title, &j.Department,
		&j.Description, &j.RequiredSkills, &j.EmploymentType)
	if err == sql.ErrNoRows {
		return models.Job{}, fmt.Errorf("job %d: %w", id, app.ErrNotFound)
	}
	return j, err
}

func (s *Store) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	query := `INSERT INTO jobs (title, department, description, required_skills, employment_type)
			  VALUES (?, ?, ?, ?, ?)`
	result, err := s.db.ExecContext(ctx, query, job.Title, job.Department,
		job.Description, job.RequiredSkills, job.EmploymentType)
	if err != nil {
		return models.Job{}, err
	}
	id, _ := result.LastInsertId()
	job.ID = int(id)
	return job, nil
}

func (s *Store) DeleteJob(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id=?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("job %d: %w", id, app.ErrNotFound)
	}
	return nil
}

// Candidate operations

func (s *Store) GetCandidates(ctx context.Context) ([]models.Candidate, error) {
	query := `SELECT id, name, email, cv_text, status, job_id FROM candidates ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCandidates(rows)
}

func scanCandidates(rows *sql.Rows) ([]models.Candidate, error) {
	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CVText, &c.Status, &c.JobID); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (s *Store) GetCandidate(ctx context.Context, id int) (models.Candidate, error) {
	query := `SELECT id, name, email, cv_text, status, job_id FROM candidates WHERE id=?`
	var c models.Candidate
	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email,
		&c.CVText, &c.Status, &c.JobID)
	if err == sql.ErrNoRows {
		return models.Candidate{}, fmt.Errorf("candidate %d: %w", id, app.ErrNotFound)
	}
	return c, err
}

func (s *Store) CreateCandidate(ctx context.Context, c models.Candidate) (models.Candidate, error) {
	if c.Status == "" {
		c.Status = "Applied"
	}
	query := `INSERT INTO candidates (name, email, cv_text, status, job_id) VALUES (?, ?, ?, ?, ?)`
	result, err := s.db.ExecContext(ctx, query, c.Name, c.Email, c.CVText, c.Status, c.JobID)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return models.Candidate{}, fmt.Errorf("job %d: %w", c.JobID, app.ErrNotFound)
		}
		return models.Candidate{}, err
	}
	id, _ := result.LastInsertId()
	c.ID = int(id)
	return c, nil
}

func (s *Store) SetCandidateStatus(ctx context.Context, candidateID int, status string) (models.Candidate, error) {
	result, err := s.db.ExecContext(ctx, `UPDATE candidates SET status=? WHERE id=?`, status, candidateID)
	if err != nil {
		if strings.Contains(err.Error(), "CHECK constraint failed") {
			return models.Candidate{}, fmt.Errorf("status %q: %w", status, app.ErrInvalidStatus)
		}
		return models.Candidate{}, err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return models.Candidate{}, fmt.Errorf("candidate %d: %w", candidateID, app.ErrNotFound)
	}
	return s.GetCandidate(ctx, candidateID)
}

func (s *Store) DeleteCandidate(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM candidates WHERE id=?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("candidate %d: %w", id, app.ErrNotFound)
	}
	return nil
}

// Interview operations

const interviewColumns = `i.id, i.candidate_id, i.job_id, i.interviewer_name, i.interviewer_user_id,
	i.scheduled_date, i.duration_minutes, i.completed,
	f.id, f.rating, f.recommendation, f.comments, f.strengths, f.weaknesses, f.created_at`

func (s *Store) GetInterviews(ctx context.Context) ([]models.InterviewWithFeedback, error) {
	query := `SELECT ` + interviewColumns + `
			  FROM interviews i LEFT JOIN feedback f ON f.interview_id = i.id
			  ORDER BY i.scheduled_date`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interviews := []models.InterviewWithFeedback{}
	for rows.Next() {
		iv, err := scanInterview(rows.Scan)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}

func (s *Store) GetInterview(ctx context.Context, id int) (models.InterviewWithFeedback, error) {
	query := `SELECT ` + interviewColumns + `
			  FROM interviews i LEFT JOIN feedback f ON f.interview_id = i.id
			  WHERE i.id=?`
	iv, err := scanInterview(s.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return models.InterviewWithFeedback{}, fmt.Errorf("interview %d: %w", id, app.ErrNotFound)
	}
	return iv, err
}

func scanInterview(scan func(...any) error) (models.InterviewWithFeedback, error) {
	var iv models.InterviewWithFeedback
	var interviewerUserID sql.NullInt64
	var fbID, fbRating sql.NullInt64
	var fbRecommendation, fbComments, fbStrengths, fbWeaknesses sql.NullString
	var fbCreatedAt sql.NullTime

	err := scan(&iv.ID, &iv.CandidateID, &iv.JobID, &iv.InterviewerName, &interviewerUserID,
		&iv.ScheduledDate, &iv.DurationMinutes, &iv.Completed,
		&fbID, &fbRating, &fbRecommendation, &fbComments, &fbStrengths, &fbWeaknesses, &fbCreatedAt)
	if err != nil {
		return models.InterviewWithFeedback{}, err
	}
	if interviewerUserID.Valid {
		iv.InterviewerUserID = int(interviewerUserID.Int64)
	}
	if fbID.Valid {
		iv.Feedback = &models.Feedback{
			ID:             int(fbID.Int64),
			InterviewID:    iv.ID,
			Rating:         int(fbRating.Int64),
			Recommendation: fbRecommendation.String,
			Comments:       fbComments.String,
			Strengths:      fbStrengths.String,
			Weaknesses:     fbWeaknesses.String,
			CreatedAt:      fbCreatedAt.Time,
		}
	}
	return iv, nil
}

func (s *Store) CreateInterview(ctx context.Context, iv models.Interview) (models.Interview, error) {
	if iv.DurationMinutes == 0 {
		iv.DurationMinutes = 60
	}
	var interviewerUserID any
	if iv.InterviewerUserID != 0 {
		interviewerUserID = iv.InterviewerUserID
	}
	query := `INSERT INTO interviews (candidate_id, job_id, interviewer_name, interviewer_user_id,
			  scheduled_date, duration_minutes, completed) VALUES (?, ?, ?, ?, ?, ?, 0)`
	result, err := s.db.ExecContext(ctx, query, iv.CandidateID, iv.JobID, iv.InterviewerName,
		interviewerUserID, iv.ScheduledDate, iv.DurationMinutes)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return models.Interview{}, fmt.Errorf("candidate %d or job %d: %w", iv.CandidateID, iv.JobID, app.ErrNotFound)
		}
		return models.Interview{}, err
	}
	id, _ := result.LastInsertId()
	iv.ID = int(id)
	iv.Completed = false
	return iv, nil
}

// Feedback operations

// SubmitFeedback inserts the single feedback row for an interview and
// marks it completed, in one transaction. The UNIQUE constraint on
// interview_id is the arbiter for concurrent submissions.
func (s *Store) SubmitFeedback(ctx context.Context, fb models.Feedback) (models.Feedback, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Feedback{}, err
	}
	defer tx.Rollback()

	query := `INSERT INTO feedback (interview_id, rating, recommendation, comments, strengths, weaknesses)
			  VALUES (?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, query, fb.InterviewID, fb.Rating, fb.Recommendation,
		fb.Comments, fb.Strengths, fb.Weaknesses)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.Feedback{}, fmt.Errorf("interview %d: %w", fb.InterviewID, app.ErrConflict)
		}
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return models.Feedback{}, fmt.Errorf("interview %d: %w", fb.InterviewID, app.ErrNotFound)
		}
		return models.Feedback{}, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE interviews SET completed=1 WHERE id=?`, fb.InterviewID); err != nil {
		return models.Feedback{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Feedback{}, err
	}

	id, _ := result.LastInsertId()
	fb.ID = int(id)
	fb.CreatedAt = time.Now()
	return fb, nil
}

// Kanban operations

func (s *Store) GetKanbanView(ctx context.Context) (map[string][]models.Candidate, error) {
	candidates, err := s.GetCandidates(ctx)
	if err != nil {
		return nil, err
	}
	view := map[string][]models.Candidate{}
	for _, c := range candidates {
		view[c.Status] = append(view[c.Status], c)
	}
	return view, nil
}

func (s *Store) MoveKanban(ctx context.Context, candidateID int, newStatus string) error {
	_, err := s.SetCandidateStatus(ctx, candidateID, newStatus)
	return err
}
