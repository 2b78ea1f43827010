package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/models"
)

// Access services restrict the wrapped service to the projects the caller
// may see. The caller is the user id stored in the context by the auth
// middleware. Admins see every project; everyone else sees the projects
// whose access set contains them. Hidden projects are reported exactly like
// missing ones.

// accessControl answers visibility questions for the caller in ctx.
type accessControl struct {
	userRepository    store.UserRepository
	projectRepository store.ProjectRepository
}

func newAccessControl(userRepository store.UserRepository, projectRepository store.ProjectRepository) *accessControl {
	return &accessControl{
		userRepository:    userRepository,
		projectRepository: projectRepository,
	}
}

func (a *accessControl) caller(ctx context.Context) (models.User, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	user, err := a.userRepository.FindByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	return user, err
}

// visibility is the set of project ids the caller may see. A nil set means
// every project.
type visibility map[string]struct{}

func (v visibility) allows(projectID string) bool {
	if v == nil {
		return true
	}
	_, ok := v[projectID]
	return ok
}

func (a *accessControl) visible(ctx context.Context) (visibility, error) {
	user, err := a.caller(ctx)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin {
		return nil, nil
	}

	projects, err := a.projectRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	ids := make(visibility)
	for _, project := range projects {
		if project.HasUser(user.ID) {
			ids[project.ID] = struct{}{}
		}
	}
	return ids, nil
}

// canSee reports whether projectID exists and is visible to the caller.
func (a *accessControl) canSee(ctx context.Context, projectID string) (bool, error) {
	user, err := a.caller(ctx)
	if err != nil {
		return false, err
	}
	project, err := a.projectRepository.FindByID(ctx, projectID)
	if errors.Is(err, store.ErrProjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin || project.HasUser(user.ID), nil
}

// checkVisible fails with notFound when projectID is missing or hidden.
func (a *accessControl) checkVisible(ctx context.Context, projectID string, notFound error) error {
	ok, err := a.canSee(ctx, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}

// checkOwner lets through admins and the owner of projectID. Members who are
// not the owner get ErrNotProjectOwner.
func (a *accessControl) checkOwner(ctx context.Context, projectID string) error {
	user, err := a.caller(ctx)
	if err != nil {
		return err
	}
	project, err := a.projectRepository.FindByID(ctx, projectID)
	if err != nil {
		return mapProjectError(err)
	}
	switch {
	case user.IsAdmin, project.OwnerID == user.ID:
		return nil
	case project.HasUser(user.ID):
		logger.FromContext(ctx).Warn().Str("user_id", user.ID).Str("project_id", projectID).Msg("project owner access denied")
		return ErrNotProjectOwner
	}
	return ErrProjectNotFound
}

type ProjectAccessService struct {
	ProjectService
	access *accessControl
}

func NewProjectAccessService(userRepository store.UserRepository, projectRepository store.ProjectRepository) ProjectServiceWrapper {
	return &ProjectAccessService{access: newAccessControl(userRepository, projectRepository)}
}

func (p *ProjectAccessService) List(ctx context.Context) ([]models.Project, error) {
	user, err := p.access.caller(ctx)
	if err != nil {
		return nil, err
	}
	return p.ProjectService.ListVisible(ctx, user.ID)
}

func (p *ProjectAccessService) Get(ctx context.Context, id string) (models.Project, error) {
	if err := p.access.checkVisible(ctx, id, ErrProjectNotFound); err != nil {
		return models.Project{}, err
	}
	return p.ProjectService.Get(ctx, id)
}

// Create lets non-admins create projects they own only.
func (p *ProjectAccessService) Create(ctx context.Context, project models.ProjectCreate) (models.Project, error) {
	user, err := p.access.caller(ctx)
	if err != nil {
		return models.Project{}, err
	}
	if !user.IsAdmin && project.OwnerID != user.ID {
		return models.Project{}, ErrNotProjectOwner
	}
	if project.ParentID != nil {
		if err = p.access.checkVisible(ctx, *project.ParentID, ErrInvalidParent); err != nil {
			return models.Project{}, err
		}
	}
	return p.ProjectService.Create(ctx, project)
}

// Update is open to every member. Changing the access set needs the owner.
func (p *ProjectAccessService) Update(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	if err := p.access.checkVisible(ctx, id, ErrProjectNotFound); err != nil {
		return models.Project{}, err
	}
	if update.UserIDs != nil {
		if err := p.access.checkOwner(ctx, id); err != nil {
			return models.Project{}, err
		}
	}
	if update.ParentID.Set && update.ParentID.Value != nil {
		if err := p.access.checkVisible(ctx, *update.ParentID.Value, ErrInvalidParent); err != nil {
			return models.Project{}, err
		}
	}
	return p.ProjectService.Update(ctx, id, update)
}

func (p *ProjectAccessService) Delete(ctx context.Context, id string) error {
	if err := p.access.checkOwner(ctx, id); err != nil {
		return err
	}
	return p.ProjectService.Delete(ctx, id)
}

// Move needs both the moved project and the target to be visible. The answer
// is narrowed to the caller's projects.
func (p *ProjectAccessService) Move(ctx context.Context, id string, move models.MoveRequest) ([]models.Project, error) {
	if err := p.access.checkVisible(ctx, id, ErrProjectNotFound); err != nil {
		return nil, err
	}
	if move.TargetID != "" {
		if err := p.access.checkVisible(ctx, move.TargetID, ErrProjectNotFound); err != nil {
			return nil, err
		}
	}

	projects, err := p.ProjectService.Move(ctx, id, move)
	if err != nil {
		return nil, err
	}
	visible, err := p.access.visible(ctx)
	if err != nil {
		return nil, err
	}
	return filterByProject(projects, visible, func(project models.Project) string { return project.ID }), nil
}

func (p *ProjectAccessService) Share(ctx context.Context, id string, share models.ShareRequest) (models.Project, error) {
	if err := p.access.checkOwner(ctx, id); err != nil {
		return models.Project{}, err
	}
	return p.ProjectService.Share(ctx, id, share)
}

func (p *ProjectAccessService) Wrap(inner ProjectService) ProjectService {
	p.ProjectService = inner
	return p
}

type TodoAccessService struct {
	TodoService
	access         *accessControl
	todoRepository store.TodoRepository
}

func NewTodoAccessService(userRepository store.UserRepository, projectRepository store.ProjectRepository, todoRepository store.TodoRepository) TodoServiceWrapper {
	return &TodoAccessService{
		access:         newAccessControl(userRepository, projectRepository),
		todoRepository: todoRepository,
	}
}

// List drops the todos of hidden projects. Listing a hidden project yields an
// empty list, the same as an unknown one.
func (t *TodoAccessService) List(ctx context.Context, projectID string) ([]models.Todo, error) {
	visible, err := t.access.visible(ctx)
	if err != nil {
		return nil, err
	}
	todos, err := t.TodoService.List(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return filterByProject(todos, visible, func(todo models.Todo) string { return todo.ProjectID }), nil
}

func (t *TodoAccessService) Create(ctx context.Context, todo models.TodoCreate) (models.Todo, error) {
	if err := t.access.checkVisible(ctx, todo.ProjectID, ErrInvalidProjectReference); err != nil {
		return models.Todo{}, err
	}
	return t.TodoService.Create(ctx, todo)
}

func (t *TodoAccessService) Update(ctx context.Context, id string, update models.TodoUpdate) (models.Todo, error) {
	if err := t.checkTodo(ctx, id); err != nil {
		return models.Todo{}, err
	}
	if update.ProjectID != nil {
		if err := t.access.checkVisible(ctx, *update.ProjectID, ErrInvalidProjectReference); err != nil {
			return models.Todo{}, err
		}
	}
	return t.TodoService.Update(ctx, id, update)
}

func (t *TodoAccessService) Delete(ctx context.Context, id string) error {
	if err := t.checkTodo(ctx, id); err != nil {
		return err
	}
	return t.TodoService.Delete(ctx, id)
}

func (t *TodoAccessService) checkTodo(ctx context.Context, id string) error {
	todo, err := t.todoRepository.FindByID(ctx, id)
	if err != nil {
		return mapTodoError(err)
	}
	return t.access.checkVisible(ctx, todo.ProjectID, ErrTodoNotFound)
}

func (t *TodoAccessService) Wrap(inner TodoService) TodoService {
	t.TodoService = inner
	return t
}

type NoteAccessService struct {
	NoteService
	access         *accessControl
	noteRepository store.NoteRepository
}

func NewNoteAccessService(userRepository store.UserRepository, projectRepository store.ProjectRepository, noteRepository store.NoteRepository) NoteServiceWrapper {
	return &NoteAccessService{
		access:         newAccessControl(userRepository, projectRepository),
		noteRepository: noteRepository,
	}
}

func (n *NoteAccessService) List(ctx context.Context, projectID string) ([]models.Note, error) {
	visible, err := n.access.visible(ctx)
	if err != nil {
		return nil, err
	}
	notes, err := n.NoteService.List(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return filterByProject(notes, visible, func(note models.Note) string { return note.ProjectID }), nil
}

func (n *NoteAccessService) Create(ctx context.Context, note models.NoteCreate) (models.Note, error) {
	if err := n.access.checkVisible(ctx, note.ProjectID, ErrInvalidProjectReference); err != nil {
		return models.Note{}, err
	}
	return n.NoteService.Create(ctx, note)
}

func (n *NoteAccessService) Update(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	if err := n.checkNote(ctx, id); err != nil {
		return models.Note{}, err
	}
	if update.ProjectID != nil {
		if err := n.access.checkVisible(ctx, *update.ProjectID, ErrInvalidProjectReference); err != nil {
			return models.Note{}, err
		}
	}
	return n.NoteService.Update(ctx, id, update)
}

func (n *NoteAccessService) Delete(ctx context.Context, id string) error {
	if err := n.checkNote(ctx, id); err != nil {
		return err
	}
	return n.NoteService.Delete(ctx, id)
}

func (n *NoteAccessService) checkNote(ctx context.Context, id string) error {
	note, err := n.noteRepository.FindByID(ctx, id)
	if err != nil {
		return mapNoteError(err)
	}
	return n.access.checkVisible(ctx, note.ProjectID, ErrNoteNotFound)
}

func (n *NoteAccessService) Wrap(inner NoteService) NoteService {
	n.NoteService = inner
	return n
}

// filterByProject keeps the items whose project is visible.
func filterByProject[T any](items []T, visible visibility, projectOf func(T) string) []T {
	if visible == nil {
		return items
	}
	result := make([]T, 0, len(items))
	for _, item := range items {
		if visible.allows(projectOf(item)) {
			result = append(result, item)
		}
	}
	return result
}
