package store

import (
	"context"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/models"
)

// userRepository keeps users in the Users collection of the document.
type userRepository struct {
	backend DocumentBackend
	logger  *logger.Logger
}

func NewUserRepository(backend DocumentBackend, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		backend: backend,
		logger:  logger,
	}
}

func userID(u models.User) string { return u.ID }

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	doc, err := r.backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	doc, err := r.backend.Load(ctx)
	if err != nil {
		return models.User{}, err
	}

	i := indexOf(doc.Users, id, userID)
	if i < 0 {
		return models.User{}, ErrUserNotFound
	}
	return doc.Users[i], nil
}

// FindByUsername matches usernames exactly.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	doc, err := r.backend.Load(ctx)
	if err != nil {
		return models.User{}, err
	}

	i := indexOf(doc.Users, username, func(u models.User) string { return u.Username })
	if i < 0 {
		return models.User{}, ErrUserNotFound
	}
	return doc.Users[i], nil
}

// Create appends the user. The first user of a document is always an admin.
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	err := update(ctx, r.backend, func(doc *models.Document) error {
		if indexOf(doc.Users, user.Username, func(u models.User) string { return u.Username }) >= 0 {
			return ErrUsernameAlreadyExists
		}
		if len(doc.Users) == 0 {
			user.IsAdmin = true
		}
		doc.Users = append(doc.Users, user)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.Create").Str("username", user.Username).Msg("error creating user")
		return models.User{}, err
	}

	return user, nil
}

// Update replaces the stored user with the same id.
func (r *userRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	err := update(ctx, r.backend, func(doc *models.Document) error {
		i := indexOf(doc.Users, user.ID, userID)
		if i < 0 {
			return ErrUserNotFound
		}
		for j, other := range doc.Users {
			if j != i && other.Username == user.Username {
				return ErrUsernameAlreadyExists
			}
		}
		doc.Users[i] = user
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return update(ctx, r.backend, func(doc *models.Document) error {
		i := indexOf(doc.Users, id, userID)
		if i < 0 {
			return ErrUserNotFound
		}
		doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)
		return nil
	})
}
