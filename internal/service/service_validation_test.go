package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-project-hub/internal/validators"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: ProjectService
// ─────────────────────────────────────────────

type mockProjectService struct {
	ProjectService
	createFn func(ctx context.Context, project models.ProjectCreate) (models.Project, error)
	moveFn   func(ctx context.Context, id string, move models.MoveRequest) ([]models.Project, error)
	calls    int
}

func (m *mockProjectService) Create(ctx context.Context, project models.ProjectCreate) (models.Project, error) {
	m.calls++
	if m.createFn != nil {
		return m.createFn(ctx, project)
	}
	return models.Project{}, nil
}

func (m *mockProjectService) Move(ctx context.Context, id string, move models.MoveRequest) ([]models.Project, error) {
	m.calls++
	if m.moveFn != nil {
		return m.moveFn(ctx, id, move)
	}
	return nil, nil
}

func TestProjectValidationService_RejectsBeforeInner(t *testing.T) {
	inner := &mockProjectService{}
	svc := NewProjectValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.ProjectCreate{OwnerID: "u0"})
	require.ErrorIs(t, err, ErrValidation)
	require.ErrorIs(t, err, validators.ErrEmptyProjectName)

	_, err = svc.Move(ctx, "a", models.MoveRequest{TargetID: "b", Mode: "sideways"})
	require.ErrorIs(t, err, validators.ErrInvalidMoveMode)

	_, err = svc.Update(ctx, "a", models.ProjectUpdate{})
	require.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)

	assert.Zero(t, inner.calls)
}

func TestProjectValidationService_DelegatesValidPayload(t *testing.T) {
	inner := &mockProjectService{
		createFn: func(_ context.Context, project models.ProjectCreate) (models.Project, error) {
			return models.Project{ID: "p1", Name: project.Name}, nil
		},
	}
	svc := NewProjectValidationService().Wrap(inner)

	project, err := svc.Create(context.Background(), models.ProjectCreate{Name: "Site", OwnerID: "u0"})

	require.NoError(t, err)
	assert.Equal(t, "p1", project.ID)
	assert.Equal(t, 1, inner.calls)
}

func TestValidationServices_WrapDomainServices(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)
	f.addProject("a", "u0", nil)
	ctx := context.Background()

	auth := NewAuthValidationService().Wrap(f.authService())
	_, err := auth.Register(ctx, models.Credentials{Username: "bob"})
	require.ErrorIs(t, err, validators.ErrEmptyPassword)
	err = auth.ChangePassword(ctx, "u0", models.PasswordChange{CurrentPassword: "secret"})
	require.ErrorIs(t, err, validators.ErrEmptyNewPassword)

	users := NewUserValidationService().Wrap(f.userService())
	_, err = users.Create(ctx, models.UserCreate{Password: "pw"})
	require.ErrorIs(t, err, validators.ErrEmptyUsername)
	_, err = users.Update(ctx, "u0", "u0", models.UserUpdate{})
	require.ErrorIs(t, err, ErrValidation)

	todos := NewTodoValidationService().Wrap(f.todoService())
	_, err = todos.Create(ctx, models.TodoCreate{ProjectID: "a"})
	require.ErrorIs(t, err, validators.ErrEmptyTitle)
	_, err = todos.Create(ctx, models.TodoCreate{ProjectID: "a", Title: "x", Priority: "urgent"})
	require.ErrorIs(t, err, validators.ErrInvalidPriority)

	notes := NewNoteValidationService().Wrap(f.noteService())
	_, err = notes.Create(ctx, models.NoteCreate{})
	require.ErrorIs(t, err, validators.ErrEmptyProjectID)

	assert.Len(t, f.backend.doc.Users, 1)
	assert.Empty(t, f.backend.doc.Todos)
	assert.Empty(t, f.backend.doc.Notes)

	// valid payloads reach the domain service
	todo, err := todos.Create(ctx, models.TodoCreate{ProjectID: "a", Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, "t1", todo.ID)
}
