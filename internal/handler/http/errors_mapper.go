package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/MKhiriev/go-project-hub/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order. The plain-text messages are part of the
// API: the client recognises business errors by them.
var errorResponses = []errorResponse{
	{service.ErrDuplicateUsername, http.StatusBadRequest, app.MsgUserAlreadyExists},
	{service.ErrInvalidOwner, http.StatusBadRequest, app.MsgInvalidOwner},
	{service.ErrInvalidUser, http.StatusBadRequest, app.MsgInvalidUser},
	{service.ErrInvalidParent, http.StatusBadRequest, app.MsgInvalidParent},
	{service.ErrInvalidProjectReference, http.StatusBadRequest, app.MsgInvalidProject},
	{service.ErrProjectCycle, http.StatusBadRequest, app.MsgProjectCycle},
	{service.ErrOwnerAccess, http.StatusBadRequest, app.MsgOwnerAccess},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrSelfModification, http.StatusForbidden, app.MsgSelfModification},
	{service.ErrNotProjectOwner, http.StatusForbidden, app.MsgProjectOwnerRequired},
	{service.ErrForbidden, http.StatusForbidden, app.MsgAdminRequired},

	{service.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{service.ErrProjectNotFound, http.StatusNotFound, app.MsgProjectNotFound},
	{service.ErrTodoNotFound, http.StatusNotFound, app.MsgTodoNotFound},
	{service.ErrNoteNotFound, http.StatusNotFound, app.MsgNoteNotFound},

	{store.ErrStorageNotInitialized, http.StatusServiceUnavailable, app.MsgStorageNotInitialized},
}

// responseFromError returns the status code and body for err. Validation
// errors carry the validator's own message; anything unknown is a 500 with
// fallback as its body.
func responseFromError(err error, fallback string) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}

	if errors.Is(err, service.ErrValidation) {
		msg := strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
		return http.StatusBadRequest, msg
	}

	return http.StatusInternalServerError, fallback
}

// writeError logs err and answers with the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	status, msg := responseFromError(err, fallback)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	http.Error(w, msg, status)
}
