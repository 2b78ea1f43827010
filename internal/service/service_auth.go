package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/config"
	"github.com/MKhiriev/go-project-hub/internal/crypto"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/models"
)

// authService registers users, checks their passwords and issues the JWT
// tokens the HTTP layer authenticates with.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	ids            utils.IDGenerator
	now            func() time.Time

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a user. The first user of a fresh document becomes admin.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.Create(ctx, models.User{
		ID:           a.ids.Generate(),
		Username:     strings.TrimSpace(credentials.Username),
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, mapUserError(err)
	}

	log.Info().Str("user_id", user.ID).Bool("is_admin", user.IsAdmin).Msg("user registered")
	return user.Public(), nil
}

// Login verifies the password. Hashes in an outdated format are upgraded
// after a successful login.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByUsername(ctx, strings.TrimSpace(credentials.Username))
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := a.hasher.Verify(credentials.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("stored password hash is malformed")
		return models.User{}, ErrInvalidCredentials
	}
	if !ok {
		log.Warn().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if a.hasher.NeedsRehash(user.PasswordHash) {
		a.rehash(ctx, user, credentials.Password)
	}

	return user.Public(), nil
}

func (a *authService) rehash(ctx context.Context, user models.User, password string) {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("func", "*authService.rehash").Msg("error hashing password")
		return
	}
	user.PasswordHash = hash
	if _, err = a.userRepository.Update(ctx, user); err != nil {
		log.Err(err).Str("func", "*authService.rehash").Str("user_id", user.ID).Msg("error upgrading password hash")
		return
	}
	log.Info().Str("user_id", user.ID).Msg("password hash upgraded")
}

func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) Me(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, mapUserError(err)
	}
	return user.Public(), nil
}

func (a *authService) ChangePassword(ctx context.Context, userID string, change models.PasswordChange) error {
	user, err := a.userRepository.FindByID(ctx, userID)
	if err != nil {
		return mapUserError(err)
	}

	ok, err := a.hasher.Verify(change.CurrentPassword, user.PasswordHash)
	if err != nil || !ok {
		return ErrInvalidCredentials
	}

	if user.PasswordHash, err = a.hasher.Hash(change.NewPassword); err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	if _, err = a.userRepository.Update(ctx, user); err != nil {
		return mapUserError(err)
	}

	logger.FromContext(ctx).Info().Str("user_id", user.ID).Msg("password changed")
	return nil
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return fmt.Errorf("%w: %w", ErrDuplicateUsername, err)
	case errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	default:
		return err
	}
}
