package http

import (
	"net/http"

	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/models"
)

// dashboardTodos lists the todos of every project visible to the caller,
// sorted by ?sort= (updated, created, due) and ?order= (asc, desc).
func (h *Handler) dashboardTodos(w http.ResponseWriter, r *http.Request) {
	query := models.DashboardQuery{
		Sort:  models.SortKey(r.URL.Query().Get("sort")),
		Order: models.SortOrder(r.URL.Query().Get("order")),
	}

	todos, err := h.services.DashboardService.Todos(r.Context(), userID(r), query)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	writeJSON(w, r, nonNil(todos), http.StatusOK)
}
