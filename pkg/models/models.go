package models

import "time"

// User represents an account on the hiring platform
type User struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"` // admin, recruiter, interviewer, candidate
	CandidateID int       `json:"candidate_id"` // 0 unless the account is linked to a candidate
	IsActive    bool      `json:"is_active"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
}

// Job represents an open position candidates are hired against
type Job struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Department     string `json:"department"`
	Description    string `json:"description"`
	RequiredSkills string `json:"required_skills"`
	EmploymentType string `json:"employment_type"` // full-time, part-time, contract
}

// Candidate represents an applicant moving through the hiring pipeline
type Candidate struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	CVText string `json:"cv_text"`
	Status string `json:"status"`
	JobID  int    `json:"job_id"`
}

// Interview represents a scheduled interview for a candidate
type Interview struct {
	ID                int       `json:"id"`
	CandidateID       int       `json:"candidate_id"`
	JobID             int       `json:"job_id"`
	InterviewerName   string    `json:"interviewer_name"`
	InterviewerUserID int       `json:"interviewer_user_id"` // 0 when the interviewer has no account
	ScheduledDate     time.Time `json:"scheduled_date"`
	DurationMinutes   int       `json:"duration_minutes"`
	Completed         bool      `json:"completed"`
}

// Feedback is the single feedback record attached to a completed interview
type Feedback struct {
	ID             int       `json:"id"`
	InterviewID    int       `json:"interview_id"`
	Rating         int       `json:"rating"`         // 1-5
	Recommendation string    `json:"recommendation"` // Hire, Reject, Another Interview
	Comments       string    `json:"comments"`
	Strengths      string    `json:"strengths"`
	Weaknesses     string    `json:"weaknesses"`
	CreatedAt      time.Time `json:"created_at"`
}

// InterviewWithFeedback pairs an interview with its feedback, if any
type InterviewWithFeedback struct {
	Interview
	Feedback *Feedback `json:"feedback,omitempty"`
}

// Notification represents a message queued for a candidate
type Notification struct {
	ID          int       `json:"id"`
	CandidateID int       `json:"candidate_id"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}
