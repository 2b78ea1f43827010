package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/models"
)

// sessionFileStore keeps the client session pointer in a JSON file.
type sessionFileStore struct {
	mu     sync.Mutex
	path   string
	logger *logger.Logger
}

func NewSessionStore(path string, logger *logger.Logger) SessionStore {
	return &sessionFileStore{
		path:   path,
		logger: logger,
	}
}

func (s *sessionFileStore) Load(ctx context.Context) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	body, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("read local session file: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(body, &session); err != nil {
		return models.Session{}, fmt.Errorf("decode local session file: %w", err)
	}
	if session.Token == "" {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *sessionFileStore) Save(ctx context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.User = session.User.Public()
	body, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local session: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create local session dir: %w", err)
		}
	}
	if err = os.WriteFile(s.path, body, 0o600); err != nil {
		s.logger.Err(err).Str("func", "*sessionFileStore.Save").Msg("error writing session file")
		return fmt.Errorf("write local session file: %w", err)
	}

	return nil
}

// Clear removes the session file; clearing a missing session is not an error.
func (s *sessionFileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove local session file: %w", err)
	}
	return nil
}
