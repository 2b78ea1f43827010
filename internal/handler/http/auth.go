package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, true)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, false)
}

// authenticate registers or logs in the user from the body and answers with
// the user and a fresh token, which is also set as the Authorization header.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request, register bool) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if !decodeJSON(w, r, &credentials) {
		return
	}

	var (
		user     models.User
		err      error
		status   = http.StatusOK
		fallback = app.MsgLoginFailed
	)
	if register {
		status, fallback = http.StatusCreated, app.MsgRegistrationFailed
		user, err = h.services.AuthService.Register(ctx, credentials)
	} else {
		user, err = h.services.AuthService.Login(ctx, credentials)
	}
	if err != nil {
		writeError(w, r, err, fallback)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, fallback, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("user_id", user.ID).Bool("register", register).Msg("user authenticated")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeJSON(w, r, models.AuthResponse{User: user, Token: token.SignedString}, status)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.Me(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var change models.PasswordChange
	if !decodeJSON(w, r, &change) {
		return
	}

	if err := h.services.AuthService.ChangePassword(r.Context(), userID(r), change); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
