package http

import (
	"net/http"

	"github.com/MKhiriev/go-project-hub/internal/app"
)

// checkInitialized answers 503 until a data directory has been chosen.
func (h *Handler) checkInitialized(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.services.StorageService.Status(r.Context()).Initialized {
			http.Error(w, app.MsgStorageNotInitialized, http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r)
	})
}
