// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-project-hub/internal/adapter"
	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgUserAlreadyExists:
			return ErrDuplicateUsername
		case app.MsgInvalidOwner:
			return ErrInvalidOwner
		case app.MsgInvalidUser:
			return ErrInvalidUser
		case app.MsgInvalidParent:
			return ErrInvalidParent
		case app.MsgInvalidProject:
			return ErrInvalidProjectReference
		case app.MsgProjectCycle:
			return ErrProjectCycle
		case app.MsgOwnerAccess:
			return ErrOwnerAccess
		}
		return fmt.Errorf("%w: %s", ErrValidation, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return ErrInvalidCredentials
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		switch msg {
		case app.MsgSelfModification:
			return ErrSelfModification
		case app.MsgProjectOwnerRequired:
			return ErrNotProjectOwner
		}
		return ErrForbidden

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return ErrUserNotFound
		case app.MsgProjectNotFound:
			return ErrProjectNotFound
		case app.MsgTodoNotFound:
			return ErrTodoNotFound
		case app.MsgNoteNotFound:
			return ErrNoteNotFound
		}

	case errors.Is(err, adapter.ErrStorageUnavailable):
		return store.ErrStorageNotInitialized
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
