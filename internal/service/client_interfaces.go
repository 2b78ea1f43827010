package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-project-hub/models"
)

// SessionState is the authentication state of the terminal client.
type SessionState int

const (
	// StateUninitialized is the state before Bootstrap.
	StateUninitialized SessionState = iota
	// StateInitializing is held while Bootstrap validates a restored session.
	StateInitializing
	// StateAuthenticated means a user is signed in.
	StateAuthenticated
	// StateAnonymous means bootstrap finished without a valid session.
	StateAnonymous
)

func (s SessionState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "uninitialized"
	}
}

// ClientStorageService drives the storage setup screen.
type ClientStorageService interface {
	// Status reports whether the server has a data directory.
	Status(ctx context.Context) (models.StorageStatus, error)

	// Initialize chooses the server data directory.
	Initialize(ctx context.Context, dataPath string) (models.InitResponse, error)
}

// ClientSessionService owns the client's session. It restores the persisted
// session pointer on Bootstrap and keeps it in sync with Login, Register and
// Logout.
type ClientSessionService interface {
	// Bootstrap restores the saved session and validates it with the server.
	// An invalid or missing session ends in StateAnonymous without an error.
	Bootstrap(ctx context.Context) (SessionState, error)

	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Logout forgets the token and removes the saved session.
	Logout(ctx context.Context) error

	ChangePassword(ctx context.Context, change models.PasswordChange) error

	// CurrentUser returns the signed-in user. ok is false unless the state is
	// StateAuthenticated.
	CurrentUser() (user models.User, ok bool)

	State() SessionState
}

// ClientWorkspaceService mirrors projects, todos, notes and users through the
// server. Every method fails with ErrNotInitialized until the session service
// is authenticated.
type ClientWorkspaceService interface {
	// Load fetches the visible projects with all todos and notes.
	Load(ctx context.Context) (models.Workspace, error)

	// CreateProject creates a project owned by the current user unless
	// project.OwnerID is set.
	CreateProject(ctx context.Context, project models.ProjectCreate) (models.Project, error)
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	MoveProject(ctx context.Context, id string, move models.MoveRequest) ([]models.Project, error)
	ShareProject(ctx context.Context, id, userID string) (models.Project, error)

	CreateTodo(ctx context.Context, todo models.TodoCreate) (models.Todo, error)
	UpdateTodo(ctx context.Context, id string, update models.TodoUpdate) (models.Todo, error)
	DeleteTodo(ctx context.Context, id string) error

	CreateNote(ctx context.Context, note models.NoteCreate) (models.Note, error)
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error

	Dashboard(ctx context.Context, query models.DashboardQuery) ([]models.DashboardTodo, error)

	Users(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.UserCreate) (models.User, error)
	UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// ClientRefreshJob periodically reloads the workspace while the UI runs.
type ClientRefreshJob interface {
	// Start launches the background goroutine. It reloads every interval,
	// defaulting to 30 seconds if interval is zero or negative, and passes
	// each result to onRefresh. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration, onRefresh func(models.Workspace, error))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
