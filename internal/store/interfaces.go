package store

import (
	"context"

	"github.com/MKhiriev/go-project-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentBackend persists the whole [models.Document] as one unit.
// Load of a document that was never saved returns an empty document.
type DocumentBackend interface {
	Load(ctx context.Context) (models.Document, error)
	Save(ctx context.Context, doc models.Document) error
}

// Storage is the initialisable document handle shared by all repositories.
type Storage interface {
	DocumentBackend

	Initialize(ctx context.Context, dataPath string) error
	Initialized() bool
	DataPath() string
}

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, user models.User) (models.User, error)
	Delete(ctx context.Context, id string) error
}

type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	FindByID(ctx context.Context, id string) (models.Project, error)
	Create(ctx context.Context, project models.Project) (models.Project, error)
	Update(ctx context.Context, project models.Project) (models.Project, error)
	Delete(ctx context.Context, id string) error
	// Rearrange replaces the project collection with the result of fn,
	// loading and saving the document once.
	Rearrange(ctx context.Context, fn func(projects []models.Project) ([]models.Project, error)) ([]models.Project, error)
}

type TodoRepository interface {
	List(ctx context.Context) ([]models.Todo, error)
	ListByProject(ctx context.Context, projectID string) ([]models.Todo, error)
	FindByID(ctx context.Context, id string) (models.Todo, error)
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)
	Update(ctx context.Context, todo models.Todo) (models.Todo, error)
	Delete(ctx context.Context, id string) error
}

type NoteRepository interface {
	List(ctx context.Context) ([]models.Note, error)
	ListByProject(ctx context.Context, projectID string) ([]models.Note, error)
	FindByID(ctx context.Context, id string) (models.Note, error)
	Create(ctx context.Context, note models.Note) (models.Note, error)
	Update(ctx context.Context, note models.Note) (models.Note, error)
	Delete(ctx context.Context, id string) error
}

// SessionStore keeps the client's session pointer between runs.
type SessionStore interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
}
