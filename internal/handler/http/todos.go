package http

import (
	"net/http"

	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.services.TodoService.List(r.Context(), r.URL.Query().Get("projectId"))
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, nonNil(todos), http.StatusOK)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	var todo models.TodoCreate
	if !decodeJSON(w, r, &todo) {
		return
	}

	created, err := h.services.TodoService.Create(r.Context(), todo)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	var update models.TodoUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	todo, err := h.services.TodoService.Update(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, todo, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	if err := h.services.TodoService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, models.MessageResponse{Message: app.MsgTodoDeleted}, http.StatusOK)
}
