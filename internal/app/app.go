package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/Chittaranjans/Recruiter-board/internal/auth"
	"github.com/Chittaranjans/Recruiter-board/internal/backend"
	"github.com/Chittaranjans/Recruiter-board/internal/config"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

// App is the dependency container for the CLI application
type App struct {
	Config  *config.Config
	Backend backend.Backend
	// Session is the resolved identity for this invocation. Zero-valued
	// (RoleUnknown) when nobody is logged in or the account is pending
	// approval; every capability check then fails closed.
	Session auth.Session
	// User is the raw account record behind Session, when one exists
	User *models.User
}

// New builds the container around an already-opened backend and resolves
// the session for this invocation
func New(ctx context.Context, cfg *config.Config, be backend.Backend) *App {
	a := &App{
		Config:  cfg,
		Backend: be,
	}
	a.resolveSession(ctx)
	return a
}

// resolveSession turns the backend's identity lookup into the session
// carried through every decision function. A pending-approval account or
// an unreachable identity leaves the zero session in place.
func (a *App) resolveSession(ctx context.Context) {
	user, err := a.Backend.GetCurrentUser(ctx)
	if err != nil {
		return
	}
	a.User = &user
	if user.Role != "candidate" && !user.IsApproved {
		return
	}
	a.Session = auth.Session{
		UserID:            user.ID,
		Username:          user.Username,
		Role:              auth.ParseRole(user.Role),
		LinkedCandidateID: user.CandidateID,
	}
}

// LoggedIn reports whether this invocation carries a usable session
func (a *App) LoggedIn() bool {
	return a.Session.Role != auth.RoleUnknown
}

// RequireCapability returns ErrForbidden unless the session holds the
// capability. The check is local; nothing is sent to the backend.
func (a *App) RequireCapability(c auth.Capability) error {
	if !a.LoggedIn() {
		return ErrNotLoggedIn
	}
	if !auth.HasCapability(a.Session, c) {
		return fmt.Errorf("role %s: %w", a.Session.Role, ErrForbidden)
	}
	return nil
}

// DatabasePath returns the local-mode sqlite path under the data directory
func DatabasePath() (string, error) {
	dir, err := config.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "recruiterboard.db"), nil
}

// Close closes all resources
func (a *App) Close() error {
	if closer, ok := a.Backend.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
