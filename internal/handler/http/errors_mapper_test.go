package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "wrapped duplicate username",
			err:        fmt.Errorf("%w: %w", service.ErrDuplicateUsername, store.ErrUsernameAlreadyExists),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgUserAlreadyExists,
		},
		{
			name:       "validation keeps validator message",
			err:        fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrEmptyTitle),
			wantStatus: http.StatusBadRequest,
			wantMsg:    validators.ErrEmptyTitle.Error(),
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: %w", service.ErrTodoNotFound, store.ErrTodoNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    app.MsgTodoNotFound,
		},
		{
			name:       "storage not initialized",
			err:        fmt.Errorf("error listing projects: %w", store.ErrStorageNotInitialized),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    app.MsgStorageNotInitialized,
		},
		{
			name:       "self modification",
			err:        service.ErrSelfModification,
			wantStatus: http.StatusForbidden,
			wantMsg:    app.MsgSelfModification,
		},
		{
			name:       "not the project owner",
			err:        fmt.Errorf("error sharing project: %w", service.ErrNotProjectOwner),
			wantStatus: http.StatusForbidden,
			wantMsg:    app.MsgProjectOwnerRequired,
		},
		{
			name:       "expired token",
			err:        service.ErrTokenIsExpiredOrInvalid,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:       "unknown",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := responseFromError(tt.err, "fallback")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
