package store

import "errors"

// Sentinel errors returned by the storage handle and repositories.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrStorageNotInitialized is returned by every document operation
	// until a data path has been chosen with [Storage.Initialize].
	ErrStorageNotInitialized = errors.New("storage not initialized")

	// ErrEmptyDataPath is returned when Initialize is called without a path.
	ErrEmptyDataPath = errors.New("data path is empty")

	// ErrStorageUnavailable is returned when the backing database cannot be
	// reached (connection class errors).
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrReadingDocument  = errors.New("error reading document")
	ErrDecodingDocument = errors.New("error decoding document")
	ErrWritingDocument  = errors.New("error writing document")

	ErrReadingStorageConfig = errors.New("error reading storage config")
	ErrWritingStorageConfig = errors.New("error writing storage config")
)

// Entity errors.
var (
	// ErrUsernameAlreadyExists is returned when a user with the same
	// username is already present in the document.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	ErrUserNotFound    = errors.New("user was not found")
	ErrProjectNotFound = errors.New("project was not found")
	ErrTodoNotFound    = errors.New("todo was not found")
	ErrNoteNotFound    = errors.New("note was not found")

	// ErrSessionNotFound is returned by the client session store when no
	// session has been persisted yet.
	ErrSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing the upsert fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning the document body fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrUnsupportedDSN is returned when no driver matches the DSN.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)
