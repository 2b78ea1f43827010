package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-project-hub/internal/adapter"
	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/mock"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (*clientSessionService, *mock.MockServerAdapter, *mock.MockSessionStore) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionStore(ctrl)

	svc := NewClientSessionService(mockAdapter, mockSessions, logger.Nop()).(*clientSessionService)
	return svc, mockAdapter, mockSessions
}

// ── Bootstrap ────────────────────────────────────────────────────────────────

func TestClientSessionService_Bootstrap_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().Load(ctx).Return(models.Session{}, store.ErrSessionNotFound)

	state, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, state)
	assert.Equal(t, StateAnonymous, svc.State())
}

func TestClientSessionService_Bootstrap_CorruptSessionIsAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().Load(ctx).Return(models.Session{}, errors.New("unexpected EOF"))

	state, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, state)
}

func TestClientSessionService_Bootstrap_Restores(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	saved := models.Session{Token: "tok", User: models.User{ID: "u1", Username: "old-name"}}
	fresh := models.User{ID: "u1", Username: "alice", IsAdmin: true}

	gomock.InOrder(
		mockSessions.EXPECT().Load(ctx).Return(saved, nil),
		mockAdapter.EXPECT().SetToken("tok"),
		mockAdapter.EXPECT().Me(ctx).Return(fresh, nil),
		mockAdapter.EXPECT().SetToken("tok"),
		mockSessions.EXPECT().Save(ctx, models.Session{Token: "tok", User: fresh}).Return(nil),
	)

	state, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, state)

	user, ok := svc.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, fresh, user)
}

func TestClientSessionService_Bootstrap_ExpiredTokenClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().Load(ctx).Return(models.Session{Token: "stale"}, nil)
	mockAdapter.EXPECT().SetToken("stale")
	mockAdapter.EXPECT().Me(ctx).Return(models.User{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid))
	mockAdapter.EXPECT().SetToken("")
	mockSessions.EXPECT().Clear(ctx).Return(nil)

	state, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, state)

	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestClientSessionService_Bootstrap_DeletedUserClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().Load(ctx).Return(models.Session{Token: "tok"}, nil)
	mockAdapter.EXPECT().SetToken(gomock.Any()).Times(2)
	mockAdapter.EXPECT().Me(ctx).Return(models.User{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgUserNotFound))
	mockSessions.EXPECT().Clear(ctx).Return(nil)

	state, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, state)
}

func TestClientSessionService_Bootstrap_ServerDownKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().Load(ctx).Return(models.Session{Token: "tok"}, nil)
	mockAdapter.EXPECT().SetToken(gomock.Any()).Times(2)
	mockAdapter.EXPECT().Me(ctx).Return(models.User{}, errors.New("connection refused"))
	mockSessions.EXPECT().Clear(gomock.Any()).Times(0)

	state, err := svc.Bootstrap(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionRestore)
	assert.Equal(t, StateAnonymous, state)
}

// ── Login / Register ─────────────────────────────────────────────────────────

func TestClientSessionService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{Username: "alice", Password: "secret1"}
	user := models.User{ID: "u1", Username: "alice"}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, creds).Return(models.AuthResponse{User: user, Token: "tok"}, nil),
		mockAdapter.EXPECT().SetToken("tok"),
		mockSessions.EXPECT().Save(ctx, models.Session{Token: "tok", User: user}).Return(nil),
	)

	got, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Equal(t, StateAuthenticated, svc.State())
}

func TestClientSessionService_Login_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials))

	_, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotEqual(t, StateAuthenticated, svc.State())
}

func TestClientSessionService_Login_SaveFailureStillAuthenticates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.AuthResponse{User: models.User{ID: "u1"}, Token: "tok"}, nil)
	mockAdapter.EXPECT().SetToken("tok")
	mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("read-only file system"))

	_, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, svc.State())
}

func TestClientSessionService_Register_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgUserAlreadyExists))

	_, err := svc.Register(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestClientSessionService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: "u1", Username: "alice", IsAdmin: true}
	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.AuthResponse{User: user, Token: "tok"}, nil)
	mockAdapter.EXPECT().SetToken("tok")
	mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	got, err := svc.Register(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)
}

// ── Logout / ChangePassword ──────────────────────────────────────────────────

func TestClientSessionService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	svc.setState(StateAuthenticated, models.User{ID: "u1"})

	mockAdapter.EXPECT().SetToken("")
	mockSessions.EXPECT().Clear(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, StateAnonymous, svc.State())
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestClientSessionService_ChangePassword_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestSessionSvc(t, ctrl)

	err := svc.ChangePassword(context.Background(), models.PasswordChange{CurrentPassword: "a", NewPassword: "bbbbbb"})
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestClientSessionService_ChangePassword_WrongCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	svc.setState(StateAuthenticated, models.User{ID: "u1"})

	mockAdapter.EXPECT().ChangePassword(ctx, gomock.Any()).
		Return(fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials))

	err := svc.ChangePassword(ctx, models.PasswordChange{CurrentPassword: "bad", NewPassword: "secret2"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "authenticated", StateAuthenticated.String())
	assert.Equal(t, "anonymous", StateAnonymous.String())
}
