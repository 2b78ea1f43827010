package service

import (
	"context"

	"github.com/MKhiriev/go-project-hub/internal/adapter"
	"github.com/MKhiriev/go-project-hub/models"
)

type clientWorkspaceService struct {
	adapter adapter.ServerAdapter
	session ClientSessionService
}

func NewClientWorkspaceService(serverAdapter adapter.ServerAdapter, session ClientSessionService) ClientWorkspaceService {
	return &clientWorkspaceService{adapter: serverAdapter, session: session}
}

func (w *clientWorkspaceService) ready() (models.User, error) {
	user, ok := w.session.CurrentUser()
	if !ok {
		return models.User{}, ErrNotInitialized
	}
	return user, nil
}

func (w *clientWorkspaceService) Load(ctx context.Context) (models.Workspace, error) {
	if _, err := w.ready(); err != nil {
		return models.Workspace{}, err
	}

	projects, err := w.adapter.ListProjects(ctx)
	if err != nil {
		return models.Workspace{}, mapAdapterError(err)
	}
	todos, err := w.adapter.ListTodos(ctx, "")
	if err != nil {
		return models.Workspace{}, mapAdapterError(err)
	}
	notes, err := w.adapter.ListNotes(ctx, "")
	if err != nil {
		return models.Workspace{}, mapAdapterError(err)
	}

	return models.Workspace{Projects: projects, Todos: todos, Notes: notes}, nil
}

func (w *clientWorkspaceService) CreateProject(ctx context.Context, project models.ProjectCreate) (models.Project, error) {
	user, err := w.ready()
	if err != nil {
		return models.Project{}, err
	}
	if project.OwnerID == "" {
		project.OwnerID = user.ID
	}

	created, err := w.adapter.CreateProject(ctx, project)
	return created, mapAdapterError(err)
}

func (w *clientWorkspaceService) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	if _, err := w.ready(); err != nil {
		return models.Project{}, err
	}
	project, err := w.adapter.UpdateProject(ctx, id, update)
	return project, mapAdapterError(err)
}

func (w *clientWorkspaceService) DeleteProject(ctx context.Context, id string) error {
	if _, err := w.ready(); err != nil {
		return err
	}
	return mapAdapterError(w.adapter.DeleteProject(ctx, id))
}

func (w *clientWorkspaceService) MoveProject(ctx context.Context, id string, move models.MoveRequest) ([]models.Project, error) {
	if _, err := w.ready(); err != nil {
		return nil, err
	}
	projects, err := w.adapter.MoveProject(ctx, id, move)
	return projects, mapAdapterError(err)
}

func (w *clientWorkspaceService) ShareProject(ctx context.Context, id, userID string) (models.Project, error) {
	if _, err := w.ready(); err != nil {
		return models.Project{}, err
	}
	project, err := w.adapter.ShareProject(ctx, id, models.ShareRequest{UserID: userID})
	return project, mapAdapterError(err)
}

func (w *clientWorkspaceService) CreateTodo(ctx context.Context, todo models.TodoCreate) (models.Todo, error) {
	if _, err := w.ready(); err != nil {
		return models.Todo{}, err
	}
	created, err := w.adapter.CreateTodo(ctx, todo)
	return created, mapAdapterError(err)
}

func (w *clientWorkspaceService) UpdateTodo(ctx context.Context, id string, update models.TodoUpdate) (models.Todo, error) {
	if _, err := w.ready(); err != nil {
		return models.Todo{}, err
	}
	todo, err := w.adapter.UpdateTodo(ctx, id, update)
	return todo, mapAdapterError(err)
}

func (w *clientWorkspaceService) DeleteTodo(ctx context.Context, id string) error {
	if _, err := w.ready(); err != nil {
		return err
	}
	return mapAdapterError(w.adapter.DeleteTodo(ctx, id))
}

func (w *clientWorkspaceService) CreateNote(ctx context.Context, note models.NoteCreate) (models.Note, error) {
	if _, err := w.ready(); err != nil {
		return models.Note{}, err
	}
	created, err := w.adapter.CreateNote(ctx, note)
	return created, mapAdapterError(err)
}

func (w *clientWorkspaceService) UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	if _, err := w.ready(); err != nil {
		return models.Note{}, err
	}
	note, err := w.adapter.UpdateNote(ctx, id, update)
	return note, mapAdapterError(err)
}

func (w *clientWorkspaceService) DeleteNote(ctx context.Context, id string) error {
	if _, err := w.ready(); err != nil {
		return err
	}
	return mapAdapterError(w.adapter.DeleteNote(ctx, id))
}

func (w *clientWorkspaceService) Dashboard(ctx context.Context, query models.DashboardQuery) ([]models.DashboardTodo, error) {
	if _, err := w.ready(); err != nil {
		return nil, err
	}
	todos, err := w.adapter.DashboardTodos(ctx, query)
	return todos, mapAdapterError(err)
}

func (w *clientWorkspaceService) Users(ctx context.Context) ([]models.User, error) {
	if _, err := w.ready(); err != nil {
		return nil, err
	}
	users, err := w.adapter.ListUsers(ctx)
	return users, mapAdapterError(err)
}

func (w *clientWorkspaceService) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	if _, err := w.ready(); err != nil {
		return models.User{}, err
	}
	created, err := w.adapter.CreateUser(ctx, user)
	return created, mapAdapterError(err)
}

func (w *clientWorkspaceService) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error) {
	if _, err := w.ready(); err != nil {
		return models.User{}, err
	}
	user, err := w.adapter.UpdateUser(ctx, id, update)
	return user, mapAdapterError(err)
}

func (w *clientWorkspaceService) DeleteUser(ctx context.Context, id string) error {
	if _, err := w.ready(); err != nil {
		return err
	}
	return mapAdapterError(w.adapter.DeleteUser(ctx, id))
}
