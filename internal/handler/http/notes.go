package http

import (
	"net/http"

	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.List(r.Context(), r.URL.Query().Get("projectId"))
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, nonNil(notes), http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var note models.NoteCreate
	if !decodeJSON(w, r, &note) {
		return
	}

	created, err := h.services.NoteService.Create(r.Context(), note)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	var update models.NoteUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	note, err := h.services.NoteService.Update(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.services.NoteService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, models.MessageResponse{Message: app.MsgNoteDeleted}, http.StatusOK)
}
