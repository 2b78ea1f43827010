package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-project-hub/internal/adapter"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/models"
)

type clientSessionService struct {
	adapter  adapter.ServerAdapter
	sessions store.SessionStore

	mu    sync.RWMutex
	state SessionState
	user  models.User

	logger *logger.Logger
}

func NewClientSessionService(serverAdapter adapter.ServerAdapter, sessions store.SessionStore, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		adapter:  serverAdapter,
		sessions: sessions,
		logger:   logger,
	}
}

// Bootstrap implements [ClientSessionService]. A rejected token removes the
// saved session. Other failures, such as an unreachable server, keep it so
// that a later Bootstrap can succeed.
func (s *clientSessionService) Bootstrap(ctx context.Context) (SessionState, error) {
	s.setState(StateInitializing, models.User{})

	session, err := s.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			s.logger.Warn().Err(err).Str("func", "*clientSessionService.Bootstrap").Msg("saved session is unreadable")
		}
		s.setState(StateAnonymous, models.User{})
		return StateAnonymous, nil
	}

	s.adapter.SetToken(session.Token)
	user, err := s.adapter.Me(ctx)
	if err != nil {
		s.adapter.SetToken("")
		s.setState(StateAnonymous, models.User{})

		err = mapAdapterError(err)
		if errors.Is(err, ErrTokenIsExpiredOrInvalid) || errors.Is(err, ErrUserNotFound) {
			s.logger.Info().Msg("saved session expired")
			if clearErr := s.sessions.Clear(ctx); clearErr != nil {
				s.logger.Warn().Err(clearErr).Msg("error removing expired session")
			}
			return StateAnonymous, nil
		}
		return StateAnonymous, fmt.Errorf("%w: %w", ErrSessionRestore, err)
	}

	s.remember(ctx, session.Token, user)
	return StateAuthenticated, nil
}

func (s *clientSessionService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	auth, err := s.adapter.Login(ctx, credentials)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	s.remember(ctx, auth.Token, auth.User)
	return auth.User, nil
}

func (s *clientSessionService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	auth, err := s.adapter.Register(ctx, credentials)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	s.remember(ctx, auth.Token, auth.User)
	return auth.User, nil
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	s.adapter.SetToken("")
	s.setState(StateAnonymous, models.User{})

	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("error removing session: %w", err)
	}
	return nil
}

func (s *clientSessionService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	if _, ok := s.CurrentUser(); !ok {
		return ErrNotInitialized
	}
	return mapAdapterError(s.adapter.ChangePassword(ctx, change))
}

func (s *clientSessionService) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.state == StateAuthenticated
}

func (s *clientSessionService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// remember marks the session authenticated and persists it. A failed write
// only costs the next start a login.
func (s *clientSessionService) remember(ctx context.Context, token string, user models.User) {
	s.adapter.SetToken(token)
	s.setState(StateAuthenticated, user)

	if err := s.sessions.Save(ctx, models.Session{Token: token, User: user}); err != nil {
		s.logger.Warn().Err(err).Str("func", "*clientSessionService.remember").Msg("error saving session")
	}
}

func (s *clientSessionService) setState(state SessionState, user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = user
}
