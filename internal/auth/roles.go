package auth

// Role is the closed set of account roles. Anything parsed from the wire
// that is not one of these collapses to RoleUnknown, which holds no
// capabilities.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleRecruiter
	RoleInterviewer
	RoleCandidate
)

// ParseRole maps a stored role string to a Role. Unrecognized strings
// yield RoleUnknown.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "recruiter":
		return RoleRecruiter
	case "interviewer":
		return RoleInterviewer
	case "candidate":
		return RoleCandidate
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleRecruiter:
		return "recruiter"
	case RoleInterviewer:
		return "interviewer"
	case RoleCandidate:
		return "candidate"
	default:
		return "unknown"
	}
}

// Capability is a single permitted action, granted via role membership
type Capability int

const (
	// CapManageJobs covers creating, editing, and deleting job postings
	CapManageJobs Capability = iota
	// CapManageCandidates covers creating, editing, and deleting candidates
	CapManageCandidates
	// CapChangeCandidateStatus allows moving a candidate through the pipeline
	CapChangeCandidateStatus
	// CapScheduleInterviews allows creating interviews
	CapScheduleInterviews
	// CapSubmitAnyFeedback allows feedback on any interview, on behalf of
	// the assigned interviewer
	CapSubmitAnyFeedback
	// CapSubmitOwnFeedback allows feedback only on interviews assigned to
	// the session holder
	CapSubmitOwnFeedback
	// CapViewPipeline covers the candidate list and the kanban board
	CapViewPipeline
	// CapViewUsers covers the account list
	CapViewUsers
	// CapApproveUsers allows approving pending non-candidate accounts
	CapApproveUsers
)

// Session is the authenticated identity passed into every authorization
// and lifecycle decision. It is created at login and carried explicitly;
// there is no ambient global.
type Session struct {
	UserID   int
	Username string
	Role     Role
	// LinkedCandidateID scopes a candidate account to its own records.
	// Zero for non-candidate accounts.
	LinkedCandidateID int
}

// HasCapability reports whether the session's role grants the capability.
// Pure and total: unknown roles hold the empty capability set.
func HasCapability(s Session, c Capability) bool {
	switch s.Role {
	case RoleAdmin:
		return true
	case RoleRecruiter:
		switch c {
		case CapManageJobs, CapManageCandidates, CapChangeCandidateStatus,
			CapScheduleInterviews, CapSubmitAnyFeedback, CapSubmitOwnFeedback,
			CapViewPipeline, CapViewUsers, CapApproveUsers:
			return true
		}
		return false
	case RoleInterviewer:
		switch c {
		case CapScheduleInterviews, CapSubmitOwnFeedback, CapViewPipeline:
			return true
		}
		return false
	case RoleCandidate:
		// Candidate accounts get no pipeline capabilities; their read
		// access is scoped per record via CanViewCandidate.
		return false
	default:
		return false
	}
}

// CanViewCandidate reports whether the session may read a candidate record.
// Candidate accounts see only their own linked record; every other known
// role sees the pipeline.
func CanViewCandidate(s Session, candidateID int) bool {
	switch s.Role {
	case RoleAdmin, RoleRecruiter, RoleInterviewer:
		return true
	case RoleCandidate:
		return s.LinkedCandidateID != 0 && s.LinkedCandidateID == candidateID
	default:
		return false
	}
}
