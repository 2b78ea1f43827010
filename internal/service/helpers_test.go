package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/models"
)

// ─────────────────────────────────────────────
// In-memory document backend
// ─────────────────────────────────────────────

type memoryBackend struct {
	doc     models.Document
	loadErr error
	saveErr error
	saves   int
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{doc: models.NewDocument()}
}

func (m *memoryBackend) Load(_ context.Context) (models.Document, error) {
	if m.loadErr != nil {
		return models.Document{}, m.loadErr
	}
	doc := m.doc
	doc.Users = append([]models.User(nil), m.doc.Users...)
	doc.Projects = append([]models.Project(nil), m.doc.Projects...)
	doc.Todos = append([]models.Todo(nil), m.doc.Todos...)
	doc.Notes = append([]models.Note(nil), m.doc.Notes...)
	return doc, nil
}

func (m *memoryBackend) Save(_ context.Context, doc models.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.doc = doc
	return nil
}

// ─────────────────────────────────────────────
// Fake: crypto.PasswordHasher
// ─────────────────────────────────────────────

// fakeHasher stores passwords as "hashed:<password>". "legacy:<password>"
// stands for an outdated format that needs a rehash. Error paths use the
// gomock hasher from internal/mock.
type fakeHasher struct{}

func (m *fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *fakeHasher) Verify(password, encoded string) (bool, error) {
	switch {
	case strings.HasPrefix(encoded, "hashed:"):
		return encoded == "hashed:"+password, nil
	case strings.HasPrefix(encoded, "legacy:"):
		return encoded == "legacy:"+password, nil
	}
	return false, errors.New("malformed hash")
}

func (m *fakeHasher) NeedsRehash(encoded string) bool {
	return strings.HasPrefix(encoded, "legacy:")
}

// ─────────────────────────────────────────────
// Fixture
// ─────────────────────────────────────────────

var (
	errBackend = errors.New("backend error")
	fixedNow   = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func clock() time.Time { return fixedNow }

type fixture struct {
	backend  *memoryBackend
	users    store.UserRepository
	projects store.ProjectRepository
	todos    store.TodoRepository
	notes    store.NoteRepository
}

func newFixture() *fixture {
	backend := newMemoryBackend()
	log := logger.Nop()
	return &fixture{
		backend:  backend,
		users:    store.NewUserRepository(backend, log),
		projects: store.NewProjectRepository(backend, log),
		todos:    store.NewTodoRepository(backend, log),
		notes:    store.NewNoteRepository(backend, log),
	}
}

func (f *fixture) addUser(id, username string, admin bool) models.User {
	u := models.User{ID: id, Username: username, PasswordHash: "hashed:secret", IsAdmin: admin, CreatedAt: fixedNow}
	f.backend.doc.Users = append(f.backend.doc.Users, u)
	return u
}

func (f *fixture) addProject(id, owner string, parentID *string, userIDs ...string) models.Project {
	p := models.Project{
		ID:        id,
		Name:      "project " + id,
		OwnerID:   owner,
		UserIDs:   append([]string{owner}, userIDs...),
		ParentID:  parentID,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
	f.backend.doc.Projects = append(f.backend.doc.Projects, p)
	return p
}

func (f *fixture) addTodo(t models.Todo) {
	f.backend.doc.Todos = append(f.backend.doc.Todos, t)
}

func (f *fixture) authService() *authService {
	return &authService{
		userRepository: f.users,
		hasher:         &fakeHasher{},
		ids:            &utils.SequenceGenerator{IDs: []string{"u1", "u2", "u3"}},
		now:            clock,
		tokenSignKey:   "sign-key",
		tokenIssuer:    "hub-test",
		tokenDuration:  time.Hour,
		logger:         logger.Nop(),
	}
}

func (f *fixture) userService() *userService {
	return &userService{
		userRepository: f.users,
		hasher:         &fakeHasher{},
		ids:            &utils.SequenceGenerator{IDs: []string{"u1", "u2", "u3"}},
		now:            clock,
		logger:         logger.Nop(),
	}
}

func (f *fixture) projectService() *projectService {
	return &projectService{
		projectRepository: f.projects,
		userRepository:    f.users,
		ids:               &utils.SequenceGenerator{IDs: []string{"p1", "p2", "p3"}},
		now:               clock,
		logger:            logger.Nop(),
	}
}

func (f *fixture) todoService() *todoService {
	return &todoService{
		todoRepository:    f.todos,
		projectRepository: f.projects,
		ids:               &utils.SequenceGenerator{IDs: []string{"t1", "t2", "t3"}},
		now:               clock,
		logger:            logger.Nop(),
	}
}

func (f *fixture) noteService() *noteService {
	return &noteService{
		noteRepository:    f.notes,
		projectRepository: f.projects,
		ids:               &utils.SequenceGenerator{IDs: []string{"n1", "n2", "n3"}},
		now:               clock,
		logger:            logger.Nop(),
	}
}

func ptr[T any](v T) *T { return &v }
