package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/utils"
)

// decodeJSON reads the request body into dst and answers 400 when the body is
// not valid JSON. It reports whether the handler may continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg(ErrInvalidJSON.Error())
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// userID returns the id stored by the auth middleware.
func userID(r *http.Request) string {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// nonNil makes empty lists encode as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
