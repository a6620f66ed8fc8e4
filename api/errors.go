package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gazetteerhq/gazetteer/gazetteer"
)

func encodeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.Encode(data) // nolint: errcheck
}

// sendError is the boundary: internal typed failures become the
// external status code + envelope with no additional logic. The
// adapter catch-all makes anything outside the taxonomy unreachable
// in practice, but an unknown error still gets a generic 500 envelope
// rather than leaking.
func sendError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var serviceErr *gazetteer.Error
	if errors.As(err, &serviceErr) {
		w.WriteHeader(serviceErr.StatusCode())

		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		encoder.Encode(serviceErr) // nolint: errcheck

		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]map[string]string{ // nolint: errcheck
		"error": {
			"type":    "internal_error",
			"message": "internal server error",
		},
	})
}
