package service

import "errors"

// ErrValidation wraps every payload validation failure.
var ErrValidation = errors.New("validation error")

var (
	ErrDuplicateUsername = errors.New("username already exists")

	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrTodoNotFound    = errors.New("todo not found")
	ErrNoteNotFound    = errors.New("note not found")

	// Invalid references: the payload names an id that does not resolve.
	ErrInvalidOwner            = errors.New("owner does not exist")
	ErrInvalidProjectReference = errors.New("project does not exist")
	ErrInvalidParent           = errors.New("parent project does not exist")
	ErrInvalidUser             = errors.New("user does not exist")

	// ErrProjectCycle is returned when a project would become its own ancestor.
	ErrProjectCycle = errors.New("project cannot be moved below itself")

	// ErrOwnerAccess is returned when sharing is toggled for the owner.
	ErrOwnerAccess = errors.New("owner always has access to the project")
)

var (
	ErrInvalidCredentials      = errors.New("invalid username or password")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrForbidden        = errors.New("admin rights required")
	ErrSelfModification = errors.New("admins cannot revoke their own admin rights or delete themselves")

	// ErrNotProjectOwner is returned when a project member who is not the
	// owner deletes the project or changes who can access it.
	ErrNotProjectOwner = errors.New("only the project owner can do this")
)

// Client errors.
var (
	// ErrNotInitialized is returned by the workspace until a user is signed in.
	ErrNotInitialized = errors.New("session is not initialized")

	ErrSessionRestore = errors.New("error restoring session")
)
