package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/MKhiriev/go-project-hub/internal/tree"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// commands wraps every server call of the workspace screen into a tea.Cmd.
type commands struct {
	ctx       context.Context
	session   service.ClientSessionService
	workspace service.ClientWorkspaceService
}

func (c commands) load() tea.Cmd {
	return func() tea.Msg {
		ws, err := c.workspace.Load(c.ctx)
		return workspaceLoadedMsg{workspace: ws, err: err}
	}
}

// op runs fn and reports status on success.
func (c commands) op(status string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{status: status, err: fn(c.ctx)}
	}
}

func (c commands) createProject(project models.ProjectCreate) tea.Cmd {
	return c.op("Project created", func(ctx context.Context) error {
		_, err := c.workspace.CreateProject(ctx, project)
		return err
	})
}

func (c commands) updateProject(id string, update models.ProjectUpdate) tea.Cmd {
	return c.op("Project saved", func(ctx context.Context) error {
		_, err := c.workspace.UpdateProject(ctx, id, update)
		return err
	})
}

func (c commands) deleteProject(id string) tea.Cmd {
	return c.op("Project deleted", func(ctx context.Context) error {
		return c.workspace.DeleteProject(ctx, id)
	})
}

func (c commands) moveProject(move tree.Move) tea.Cmd {
	return func() tea.Msg {
		projects, err := c.workspace.MoveProject(c.ctx, move.SourceID, models.MoveRequest{
			TargetID: move.TargetID,
			Mode:     move.Mode,
			Position: move.Position,
		})
		return projectsMovedMsg{projects: projects, err: err}
	}
}

func (c commands) shareProject(id, userID string) tea.Cmd {
	return c.op("Access updated", func(ctx context.Context) error {
		_, err := c.workspace.ShareProject(ctx, id, userID)
		return err
	})
}

func (c commands) createTodo(todo models.TodoCreate) tea.Cmd {
	return c.op("Todo created", func(ctx context.Context) error {
		_, err := c.workspace.CreateTodo(ctx, todo)
		return err
	})
}

func (c commands) updateTodo(id string, update models.TodoUpdate) tea.Cmd {
	return c.op("Todo saved", func(ctx context.Context) error {
		_, err := c.workspace.UpdateTodo(ctx, id, update)
		return err
	})
}

func (c commands) deleteTodo(id string) tea.Cmd {
	return c.op("Todo deleted", func(ctx context.Context) error {
		return c.workspace.DeleteTodo(ctx, id)
	})
}

func (c commands) createNote(note models.NoteCreate) tea.Cmd {
	return c.op("Note created", func(ctx context.Context) error {
		_, err := c.workspace.CreateNote(ctx, note)
		return err
	})
}

func (c commands) updateNote(id string, update models.NoteUpdate) tea.Cmd {
	return c.op("Note saved", func(ctx context.Context) error {
		_, err := c.workspace.UpdateNote(ctx, id, update)
		return err
	})
}

func (c commands) deleteNote(id string) tea.Cmd {
	return c.op("Note deleted", func(ctx context.Context) error {
		return c.workspace.DeleteNote(ctx, id)
	})
}

func (c commands) dashboard(query models.DashboardQuery) tea.Cmd {
	return func() tea.Msg {
		todos, err := c.workspace.Dashboard(c.ctx, query)
		return dashboardLoadedMsg{todos: todos, err: err}
	}
}

func (c commands) users(forShare bool) tea.Cmd {
	return func() tea.Msg {
		users, err := c.workspace.Users(c.ctx)
		return usersLoadedMsg{users: users, forShare: forShare, err: err}
	}
}

func (c commands) createUser(user models.UserCreate) tea.Cmd {
	return c.op("User created", func(ctx context.Context) error {
		_, err := c.workspace.CreateUser(ctx, user)
		return err
	})
}

func (c commands) updateUser(id string, update models.UserUpdate) tea.Cmd {
	return c.op("User saved", func(ctx context.Context) error {
		_, err := c.workspace.UpdateUser(ctx, id, update)
		return err
	})
}

func (c commands) deleteUser(id string) tea.Cmd {
	return c.op("User deleted", func(ctx context.Context) error {
		return c.workspace.DeleteUser(ctx, id)
	})
}

func (c commands) changePassword(change models.PasswordChange) tea.Cmd {
	return c.op("Password changed", func(ctx context.Context) error {
		return c.session.ChangePassword(ctx, change)
	})
}

func (c commands) logout() tea.Cmd {
	return func() tea.Msg {
		return logoutDoneMsg{err: c.session.Logout(c.ctx)}
	}
}

func cmdCopy(text, what string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
