package http

import (
	"net/http"

	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.ListVisible(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, nonNil(projects), http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var project models.ProjectCreate
	if !decodeJSON(w, r, &project) {
		return
	}
	if project.OwnerID == "" {
		project.OwnerID = userID(r)
	}

	created, err := h.services.ProjectService.Create(r.Context(), project)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	var update models.ProjectUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	project, err := h.services.ProjectService.Update(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, project, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ProjectService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// moveProject applies a drag-and-drop move and answers with the whole
// rearranged project list.
func (h *Handler) moveProject(w http.ResponseWriter, r *http.Request) {
	var move models.MoveRequest
	if !decodeJSON(w, r, &move) {
		return
	}

	projects, err := h.services.ProjectService.Move(r.Context(), chi.URLParam(r, "id"), move)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, nonNil(projects), http.StatusOK)
}

// shareProject toggles the access of one user.
func (h *Handler) shareProject(w http.ResponseWriter, r *http.Request) {
	var share models.ShareRequest
	if !decodeJSON(w, r, &share) {
		return
	}

	project, err := h.services.ProjectService.Share(r.Context(), chi.URLParam(r, "id"), share)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, project, http.StatusOK)
}
