package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-project-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoService_Create(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)
	f.addProject("a", "u0", nil)
	svc := f.todoService()

	todo, err := svc.Create(context.Background(), models.TodoCreate{
		ProjectID: "a",
		Title:     " Ship it ",
		Tags:      []string{" release", "release", "", "ops "},
	})

	require.NoError(t, err)
	assert.Equal(t, "t1", todo.ID)
	assert.Equal(t, "Ship it", todo.Title)
	assert.Equal(t, models.PriorityMedium, todo.Priority)
	assert.Equal(t, []string{"release", "ops"}, todo.Tags)
	assert.Equal(t, fixedNow, todo.CreatedAt)
	assert.Len(t, f.backend.doc.Todos, 1)
}

func TestTodoService_Create_UnknownProject(t *testing.T) {
	f := newFixture()

	_, err := f.todoService().Create(context.Background(), models.TodoCreate{ProjectID: "ghost", Title: "x"})

	require.ErrorIs(t, err, ErrInvalidProjectReference)
	assert.Empty(t, f.backend.doc.Todos)
}

func TestTodoService_List(t *testing.T) {
	f := newFixture()
	f.addTodo(models.Todo{ID: "t1", ProjectID: "a"})
	f.addTodo(models.Todo{ID: "t2", ProjectID: "b"})
	f.addTodo(models.Todo{ID: "t3", ProjectID: "a"})
	svc := f.todoService()
	ctx := context.Background()

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byProject, err := svc.List(ctx, "a")
	require.NoError(t, err)
	require.Len(t, byProject, 2)
	assert.Equal(t, "t1", byProject[0].ID)
	assert.Equal(t, "t3", byProject[1].ID)

	none, err := svc.List(ctx, "zzz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestTodoService_Update(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)
	f.addProject("a", "u0", nil)
	f.addProject("b", "u0", nil)
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	f.addTodo(models.Todo{ID: "t1", ProjectID: "a", Title: "old", Priority: models.PriorityLow, DueDate: &due})
	svc := f.todoService()
	ctx := context.Background()

	high := models.PriorityHigh
	todo, err := svc.Update(ctx, "t1", models.TodoUpdate{
		ProjectID: ptr("b"),
		Completed: ptr(true),
		Priority:  &high,
		DueDate:   models.NewNullableTime(nil),
		Tags:      &[]string{"a", "a"},
	})
	require.NoError(t, err)
	assert.Equal(t, "b", todo.ProjectID)
	assert.Equal(t, "old", todo.Title)
	assert.True(t, todo.Completed)
	assert.Equal(t, models.PriorityHigh, todo.Priority)
	assert.Nil(t, todo.DueDate)
	assert.Equal(t, []string{"a"}, todo.Tags)
	assert.Equal(t, fixedNow, todo.UpdatedAt)

	_, err = svc.Update(ctx, "t1", models.TodoUpdate{ProjectID: ptr("ghost")})
	require.ErrorIs(t, err, ErrInvalidProjectReference)

	_, err = svc.Update(ctx, "ghost", models.TodoUpdate{Title: ptr("x")})
	require.ErrorIs(t, err, ErrTodoNotFound)
}

func TestTodoService_Delete(t *testing.T) {
	f := newFixture()
	f.addTodo(models.Todo{ID: "t1", ProjectID: "a"})
	svc := f.todoService()

	require.NoError(t, svc.Delete(context.Background(), "t1"))
	require.ErrorIs(t, svc.Delete(context.Background(), "t1"), ErrTodoNotFound)
	assert.Empty(t, f.backend.doc.Todos)
}

func TestNoteService_Lifecycle(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)
	f.addProject("a", "u0", nil)
	f.addProject("b", "u0", nil)
	svc := f.noteService()
	ctx := context.Background()

	note, err := svc.Create(ctx, models.NoteCreate{ProjectID: "a"})
	require.NoError(t, err)
	assert.Equal(t, "n1", note.ID)
	assert.Empty(t, note.Content)

	_, err = svc.Create(ctx, models.NoteCreate{ProjectID: "ghost", Content: "x"})
	require.ErrorIs(t, err, ErrInvalidProjectReference)

	note, err = svc.Update(ctx, "n1", models.NoteUpdate{ProjectID: ptr("b"), Content: ptr("# Notes")})
	require.NoError(t, err)
	assert.Equal(t, "b", note.ProjectID)
	assert.Equal(t, "# Notes", note.Content)

	notes, err := svc.List(ctx, "b")
	require.NoError(t, err)
	require.Len(t, notes, 1)

	_, err = svc.Update(ctx, "ghost", models.NoteUpdate{Content: ptr("x")})
	require.ErrorIs(t, err, ErrNoteNotFound)

	require.NoError(t, svc.Delete(ctx, "n1"))
	require.ErrorIs(t, svc.Delete(ctx, "n1"), ErrNoteNotFound)
}
