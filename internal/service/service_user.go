package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/crypto"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	ids            utils.IDGenerator
	now            func() time.Time
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

func (u *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	public := make([]models.User, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}
	return public, nil
}

func (u *userService) GetByUsername(ctx context.Context, username string) (models.User, error) {
	user, err := u.userRepository.FindByUsername(ctx, username)
	if err != nil {
		return models.User{}, mapUserError(err)
	}
	return user.Public(), nil
}

func (u *userService) Create(ctx context.Context, create models.UserCreate) (models.User, error) {
	hash, err := u.hasher.Hash(create.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := u.userRepository.Create(ctx, models.User{
		ID:           u.ids.Generate(),
		Username:     strings.TrimSpace(create.Username),
		PasswordHash: hash,
		IsAdmin:      create.IsAdmin,
		CreatedAt:    u.now().UTC(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.Create").Msg("user creation ended with error")
		return models.User{}, mapUserError(err)
	}

	return user.Public(), nil
}

// Update applies a partial change. An admin cannot revoke their own admin flag.
func (u *userService) Update(ctx context.Context, actorID, id string, update models.UserUpdate) (models.User, error) {
	if actorID == id && update.IsAdmin != nil && !*update.IsAdmin {
		return models.User{}, ErrSelfModification
	}

	user, err := u.userRepository.FindByID(ctx, id)
	if err != nil {
		return models.User{}, mapUserError(err)
	}

	if update.Username != nil {
		user.Username = strings.TrimSpace(*update.Username)
	}
	if update.Password != nil {
		if user.PasswordHash, err = u.hasher.Hash(*update.Password); err != nil {
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
	}
	if update.IsAdmin != nil {
		user.IsAdmin = *update.IsAdmin
	}

	updated, err := u.userRepository.Update(ctx, user)
	if err != nil {
		return models.User{}, mapUserError(err)
	}

	logger.FromContext(ctx).Info().Str("actor_id", actorID).Str("user_id", id).Msg("user updated")
	return updated.Public(), nil
}

// Delete removes a user. Projects they own are kept as they are.
func (u *userService) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return ErrSelfModification
	}

	if err := u.userRepository.Delete(ctx, id); err != nil {
		return mapUserError(err)
	}

	logger.FromContext(ctx).Info().Str("actor_id", actorID).Str("user_id", id).Msg("user deleted")
	return nil
}

func (u *userService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	user, err := u.userRepository.FindByID(ctx, userID)
	if err != nil {
		return false, mapUserError(err)
	}
	return user.IsAdmin, nil
}
