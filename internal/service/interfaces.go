package service

import (
	"context"

	"github.com/MKhiriev/go-project-hub/models"
)

type StorageService interface {
	Initialize(ctx context.Context, request models.InitRequest) (models.StorageStatus, error)
	Status(ctx context.Context) models.StorageStatus
}

type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Me(ctx context.Context, userID string) (models.User, error)
	ChangePassword(ctx context.Context, userID string, change models.PasswordChange) error
}

// UserService is the admin view of user accounts. actorID is the admin
// performing the change.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	Create(ctx context.Context, user models.UserCreate) (models.User, error)
	Update(ctx context.Context, actorID, id string, update models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, actorID, id string) error
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	ListVisible(ctx context.Context, userID string) ([]models.Project, error)
	Get(ctx context.Context, id string) (models.Project, error)
	Create(ctx context.Context, project models.ProjectCreate) (models.Project, error)
	Update(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error)
	Delete(ctx context.Context, id string) error
	Move(ctx context.Context, id string, move models.MoveRequest) ([]models.Project, error)
	Share(ctx context.Context, id string, share models.ShareRequest) (models.Project, error)
}

// TodoService lists all todos when projectID is empty.
type TodoService interface {
	List(ctx context.Context, projectID string) ([]models.Todo, error)
	Create(ctx context.Context, todo models.TodoCreate) (models.Todo, error)
	Update(ctx context.Context, id string, update models.TodoUpdate) (models.Todo, error)
	Delete(ctx context.Context, id string) error
}

// NoteService lists all notes when projectID is empty.
type NoteService interface {
	List(ctx context.Context, projectID string) ([]models.Note, error)
	Create(ctx context.Context, note models.NoteCreate) (models.Note, error)
	Update(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)
	Delete(ctx context.Context, id string) error
}

type DashboardService interface {
	Todos(ctx context.Context, userID string, query models.DashboardQuery) ([]models.DashboardTodo, error)
}

// Wrappers decorate a service with additional behaviour such as validation.

type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

type ProjectServiceWrapper interface {
	Wrap(ProjectService) ProjectService
}

type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService
}

type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}
