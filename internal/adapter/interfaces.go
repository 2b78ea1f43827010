// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the project hub server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrStorageUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-project-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the project hub
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Status reports whether the server storage is initialised.
	Status(ctx context.Context) (models.StorageStatus, error)

	// Init chooses the server data directory.
	Init(ctx context.Context, request models.InitRequest) (models.InitResponse, error)

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Login authenticates with username and password. On success the
	// returned token is stored via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Me returns the user the stored token belongs to. It is used to validate
	// a restored session.
	Me(ctx context.Context) (models.User, error)

	ChangePassword(ctx context.Context, change models.PasswordChange) error

	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, project models.ProjectCreate) (models.Project, error)
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	// MoveProject nests or reorders a project and returns the whole
	// rearranged collection.
	MoveProject(ctx context.Context, id string, move models.MoveRequest) ([]models.Project, error)

	// ShareProject toggles access of a user to a project.
	ShareProject(ctx context.Context, id string, share models.ShareRequest) (models.Project, error)

	// ListTodos returns all todos when projectID is empty.
	ListTodos(ctx context.Context, projectID string) ([]models.Todo, error)
	CreateTodo(ctx context.Context, todo models.TodoCreate) (models.Todo, error)
	UpdateTodo(ctx context.Context, id string, update models.TodoUpdate) (models.Todo, error)
	DeleteTodo(ctx context.Context, id string) error

	// ListNotes returns all notes when projectID is empty.
	ListNotes(ctx context.Context, projectID string) ([]models.Note, error)
	CreateNote(ctx context.Context, note models.NoteCreate) (models.Note, error)
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error

	DashboardTodos(ctx context.Context, query models.DashboardQuery) ([]models.DashboardTodo, error)

	// User management requires an admin token.
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.UserCreate) (models.User, error)
	UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}
