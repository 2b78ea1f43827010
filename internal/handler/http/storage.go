package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/MKhiriev/go-project-hub/models"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.StorageService.Status(r.Context()), http.StatusOK)
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	status := h.services.StorageService.Status(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(status.Version))
}

func (h *Handler) initStorage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.InitRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	status, err := h.services.StorageService.Initialize(r.Context(), request)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, app.MsgStoragePathRequired, http.StatusBadRequest)
			return
		}
		log.Err(err).Str("func", "*Handler.initStorage").Msg("error initializing storage")
		http.Error(w, app.MsgStorageInitFailed, http.StatusInternalServerError)
		return
	}

	log.Info().Str("data_path", status.DataPath).Msg("storage initialized")
	writeJSON(w, r, models.InitResponse{
		Message:  app.MsgStorageInitialized,
		DataPath: status.DataPath,
	}, http.StatusOK)
}
