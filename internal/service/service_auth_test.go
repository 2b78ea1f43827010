// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-project-hub/internal/mock"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Register_FirstUserIsAdmin(t *testing.T) {
	f := newFixture()
	svc := f.authService()
	ctx := context.Background()

	first, err := svc.Register(ctx, models.Credentials{Username: " alice ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "u1", first.ID)
	assert.Equal(t, "alice", first.Username)
	assert.True(t, first.IsAdmin)
	assert.Empty(t, first.PasswordHash, "password hash must not leave the service")
	assert.Equal(t, fixedNow, first.CreatedAt)

	second, err := svc.Register(ctx, models.Credentials{Username: "bob", Password: "pw"})
	require.NoError(t, err)
	assert.False(t, second.IsAdmin)

	require.Len(t, f.backend.doc.Users, 2)
	assert.Equal(t, "hashed:pw", f.backend.doc.Users[0].PasswordHash)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)

	_, err := f.authService().Register(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.ErrorIs(t, err, ErrDuplicateUsername)
	assert.Len(t, f.backend.doc.Users, 1)
}

func TestAuthService_Register_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockPasswordHasher(ctrl)
	hasher.EXPECT().Hash("pw").Return("", errors.New("boom"))

	f := newFixture()
	svc := f.authService()
	svc.hasher = hasher

	_, err := svc.Register(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.Empty(t, f.backend.doc.Users)
}

func TestAuthService_Register_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockPasswordHasher(ctrl)
	users := mock.NewMockUserRepository(ctrl)
	hasher.EXPECT().Hash("pw").Return("$argon2id$stub", nil)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "$argon2id$stub", user.PasswordHash)
			return models.User{}, store.ErrUsernameAlreadyExists
		})

	svc := newFixture().authService()
	svc.hasher = hasher
	svc.userRepository = users

	_, err := svc.Register(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.ErrorIs(t, err, ErrDuplicateUsername)
}

// A failed hash upgrade must not fail the login itself.
func TestAuthService_Login_RehashFailureKeepsLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockPasswordHasher(ctrl)
	users := mock.NewMockUserRepository(ctrl)

	stored := models.User{ID: "u0", Username: "alice", PasswordHash: "legacy-sha256-hex"}
	users.EXPECT().FindByUsername(gomock.Any(), "alice").Return(stored, nil)
	hasher.EXPECT().Verify("secret", stored.PasswordHash).Return(true, nil)
	hasher.EXPECT().NeedsRehash(stored.PasswordHash).Return(true)
	hasher.EXPECT().Hash("secret").Return("$argon2id$new", nil)
	users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(models.User{}, errBackend)

	svc := newFixture().authService()
	svc.hasher = hasher
	svc.userRepository = users

	user, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "u0", user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_Login(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)
	svc := f.authService()

	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{name: "valid", creds: models.Credentials{Username: "alice", Password: "secret"}},
		{name: "wrong password", creds: models.Credentials{Username: "alice", Password: "nope"}, wantErr: ErrInvalidCredentials},
		{name: "unknown user", creds: models.Credentials{Username: "carol", Password: "secret"}, wantErr: ErrInvalidCredentials},
		{name: "username is case sensitive", creds: models.Credentials{Username: "Alice", Password: "secret"}, wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Login(context.Background(), tt.creds)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u0", user.ID)
			assert.Empty(t, user.PasswordHash)
		})
	}
}

func TestAuthService_Login_UpgradesLegacyHash(t *testing.T) {
	f := newFixture()
	f.backend.doc.Users = append(f.backend.doc.Users, models.User{ID: "u0", Username: "alice", PasswordHash: "legacy:secret"})

	_, err := f.authService().Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "hashed:secret", f.backend.doc.Users[0].PasswordHash)
}

func TestAuthService_Login_MalformedHash(t *testing.T) {
	f := newFixture()
	f.backend.doc.Users = append(f.backend.doc.Users, models.User{ID: "u0", Username: "alice", PasswordHash: "???"})

	_, err := f.authService().Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_BackendError(t *testing.T) {
	f := newFixture()
	f.backend.loadErr = errBackend

	_, err := f.authService().Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	require.ErrorIs(t, err, errBackend)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	f := newFixture()
	svc := f.authService()
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: "u0"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u0", parsed.UserID)

	other := f.authService()
	other.tokenSignKey = "another-key"
	_, err = other.ParseToken(ctx, token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_EmptyUser(t *testing.T) {
	_, err := newFixture().authService().CreateToken(context.Background(), models.User{})

	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_Me(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)
	svc := f.authService()

	user, err := svc.Me(context.Background(), "u0")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.Me(context.Background(), "missing")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_ChangePassword(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)
	svc := f.authService()
	ctx := context.Background()

	err := svc.ChangePassword(ctx, "u0", models.PasswordChange{CurrentPassword: "wrong", NewPassword: "next"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, "hashed:secret", f.backend.doc.Users[0].PasswordHash)

	err = svc.ChangePassword(ctx, "u0", models.PasswordChange{CurrentPassword: "secret", NewPassword: "next"})
	require.NoError(t, err)
	assert.Equal(t, "hashed:next", f.backend.doc.Users[0].PasswordHash)

	err = svc.ChangePassword(ctx, "missing", models.PasswordChange{CurrentPassword: "secret", NewPassword: "next"})
	require.ErrorIs(t, err, ErrUserNotFound)
}
