package http

import (
	"net/http"

	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/go-chi/chi/v5"
)

// listUsers answers with all users, or with the single user named by
// ?username=.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if username := r.URL.Query().Get("username"); username != "" {
		user, err := h.services.UserService.GetByUsername(ctx, username)
		if err != nil {
			writeError(w, r, err, app.MsgInternalServerError)
			return
		}
		writeJSON(w, r, user, http.StatusOK)
		return
	}

	users, err := h.services.UserService.List(ctx)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, nonNil(users), http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.UserCreate
	if !decodeJSON(w, r, &user) {
		return
	}

	created, err := h.services.UserService.Create(r.Context(), user)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var update models.UserUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	user, err := h.services.UserService.Update(r.Context(), userID(r), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.services.UserService.Delete(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
