package tui

import (
	"context"

	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/MKhiriev/go-project-hub/models"
	tea "github.com/charmbracelet/bubbletea"
)

type moveCall struct {
	id      string
	request models.MoveRequest
}

// stubWorkspace records the calls the screens make.
type stubWorkspace struct {
	service.ClientWorkspaceService

	moves       []moveCall
	queries     []models.DashboardQuery
	todoUpdates map[string]models.TodoUpdate
}

func (s *stubWorkspace) MoveProject(_ context.Context, id string, move models.MoveRequest) ([]models.Project, error) {
	s.moves = append(s.moves, moveCall{id: id, request: move})
	return nil, nil
}

func (s *stubWorkspace) Dashboard(_ context.Context, query models.DashboardQuery) ([]models.DashboardTodo, error) {
	s.queries = append(s.queries, query)
	return []models.DashboardTodo{}, nil
}

func (s *stubWorkspace) UpdateTodo(_ context.Context, id string, update models.TodoUpdate) (models.Todo, error) {
	if s.todoUpdates == nil {
		s.todoUpdates = make(map[string]models.TodoUpdate)
	}
	s.todoUpdates[id] = update
	return models.Todo{ID: id}, nil
}

type stubSession struct {
	service.ClientSessionService

	registered []models.Credentials
	err        error
}

func (s *stubSession) Register(_ context.Context, credentials models.Credentials) (models.User, error) {
	s.registered = append(s.registered, credentials)
	return models.User{ID: "u1", Username: credentials.Username}, s.err
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func ptr[T any](v T) *T { return &v }
