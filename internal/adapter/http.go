package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-project-hub/internal/config"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] for the address and timeout in adapterCfg. A bare
// "host:port" address is given the http scheme.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if strings.TrimSpace(adapterCfg.HTTPAddress) == "" {
		return nil, ErrEmptyAddress
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Status(ctx context.Context) (models.StorageStatus, error) {
	return call[models.StorageStatus](ctx, h.client.R(), http.MethodGet, "/api/status", "status")
}

func (h *httpServerAdapter) Init(ctx context.Context, request models.InitRequest) (models.InitResponse, error) {
	return call[models.InitResponse](ctx, h.client.R().SetBody(request), http.MethodPost, "/api/init", "init")
}

// Register implements [ServerAdapter]. The token is taken from the response
// body and, failing that, from the Authorization header.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, credentials, "/api/auth/register", "register")
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, credentials, "/api/auth/login", "login")
}

func (h *httpServerAdapter) authenticate(ctx context.Context, credentials models.Credentials, path, op string) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode %s response: %w", op, err)
	}
	if auth.Token == "" {
		if auth.Token, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s: %w", op, ErrEmptyToken)
		}
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	return call[models.User](ctx, h.authedRequest(), http.MethodGet, "/api/auth/me", "me")
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	_, err := call[struct{}](ctx, h.authedRequest().SetBody(change), http.MethodPut, "/api/auth/password", "change password")
	return err
}

func (h *httpServerAdapter) ListProjects(ctx context.Context) ([]models.Project, error) {
	return call[[]models.Project](ctx, h.authedRequest(), http.MethodGet, "/api/projects", "list projects")
}

func (h *httpServerAdapter) CreateProject(ctx context.Context, project models.ProjectCreate) (models.Project, error) {
	return call[models.Project](ctx, h.authedRequest().SetBody(project), http.MethodPost, "/api/projects", "create project")
}

func (h *httpServerAdapter) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	req := h.authedRequest().SetPathParam("id", id).SetBody(update)
	return call[models.Project](ctx, req, http.MethodPut, "/api/projects/{id}", "update project")
}

func (h *httpServerAdapter) DeleteProject(ctx context.Context, id string) error {
	_, err := call[struct{}](ctx, h.authedRequest().SetPathParam("id", id), http.MethodDelete, "/api/projects/{id}", "delete project")
	return err
}

func (h *httpServerAdapter) MoveProject(ctx context.Context, id string, move models.MoveRequest) ([]models.Project, error) {
	req := h.authedRequest().SetPathParam("id", id).SetBody(move)
	return call[[]models.Project](ctx, req, http.MethodPost, "/api/projects/{id}/move", "move project")
}

func (h *httpServerAdapter) ShareProject(ctx context.Context, id string, share models.ShareRequest) (models.Project, error) {
	req := h.authedRequest().SetPathParam("id", id).SetBody(share)
	return call[models.Project](ctx, req, http.MethodPost, "/api/projects/{id}/share", "share project")
}

func (h *httpServerAdapter) ListTodos(ctx context.Context, projectID string) ([]models.Todo, error) {
	req := h.authedRequest()
	if projectID != "" {
		req.SetQueryParam("projectId", projectID)
	}
	return call[[]models.Todo](ctx, req, http.MethodGet, "/api/todos", "list todos")
}

func (h *httpServerAdapter) CreateTodo(ctx context.Context, todo models.TodoCreate) (models.Todo, error) {
	return call[models.Todo](ctx, h.authedRequest().SetBody(todo), http.MethodPost, "/api/todos", "create todo")
}

func (h *httpServerAdapter) UpdateTodo(ctx context.Context, id string, update models.TodoUpdate) (models.Todo, error) {
	req := h.authedRequest().SetPathParam("id", id).SetBody(update)
	return call[models.Todo](ctx, req, http.MethodPut, "/api/todos/{id}", "update todo")
}

func (h *httpServerAdapter) DeleteTodo(ctx context.Context, id string) error {
	_, err := call[models.MessageResponse](ctx, h.authedRequest().SetPathParam("id", id), http.MethodDelete, "/api/todos/{id}", "delete todo")
	return err
}

func (h *httpServerAdapter) ListNotes(ctx context.Context, projectID string) ([]models.Note, error) {
	req := h.authedRequest()
	if projectID != "" {
		req.SetQueryParam("projectId", projectID)
	}
	return call[[]models.Note](ctx, req, http.MethodGet, "/api/notes", "list notes")
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.NoteCreate) (models.Note, error) {
	return call[models.Note](ctx, h.authedRequest().SetBody(note), http.MethodPost, "/api/notes", "create note")
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	req := h.authedRequest().SetPathParam("id", id).SetBody(update)
	return call[models.Note](ctx, req, http.MethodPut, "/api/notes/{id}", "update note")
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) error {
	_, err := call[models.MessageResponse](ctx, h.authedRequest().SetPathParam("id", id), http.MethodDelete, "/api/notes/{id}", "delete note")
	return err
}

func (h *httpServerAdapter) DashboardTodos(ctx context.Context, query models.DashboardQuery) ([]models.DashboardTodo, error) {
	req := h.authedRequest()
	if query.Sort != "" {
		req.SetQueryParam("sort", string(query.Sort))
	}
	if query.Order != "" {
		req.SetQueryParam("order", string(query.Order))
	}
	return call[[]models.DashboardTodo](ctx, req, http.MethodGet, "/api/dashboard/todos", "dashboard todos")
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	return call[[]models.User](ctx, h.authedRequest(), http.MethodGet, "/api/users", "list users")
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	return call[models.User](ctx, h.authedRequest().SetBody(user), http.MethodPost, "/api/users", "create user")
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error) {
	req := h.authedRequest().SetPathParam("id", id).SetBody(update)
	return call[models.User](ctx, req, http.MethodPut, "/api/users/{id}", "update user")
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, id string) error {
	_, err := call[struct{}](ctx, h.authedRequest().SetPathParam("id", id), http.MethodDelete, "/api/users/{id}", "delete user")
	return err
}

func (h *httpServerAdapter) authedRequest() *resty.Request {
	req := h.client.R()
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// call executes req and decodes a JSON body into T. An empty body, as sent
// with 204 No Content, leaves T zero.
func call[T any](ctx context.Context, req *resty.Request, method, path, op string) (T, error) {
	var result T

	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		return result, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	if len(resp.Body()) == 0 {
		return result, nil
	}
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("decode %s response: %w", op, err)
	}
	return result, nil
}
