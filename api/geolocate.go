package api

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/gazetteerhq/gazetteer/gazetteer"
)

func (h handlers) geolocateIP(w http.ResponseWriter, req *http.Request) {
	record, err := h.service.Lookup(req.Context(), chi.URLParam(req, "ip"))
	if err != nil {
		sendError(w, err)

		return
	}

	encodeJSON(w, record)
}

func (h handlers) geolocateClient(w http.ResponseWriter, req *http.Request) {
	ip, err := gazetteer.ClientIP(req)
	if err != nil {
		sendError(w, err)

		return
	}

	record, err := h.service.Lookup(req.Context(), ip)
	if err != nil {
		sendError(w, err)

		return
	}

	encodeJSON(w, record)
}
