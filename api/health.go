package api

import "net/http"

// The health endpoint never fails: a broken provider degrades the
// response body, not the status code.
func (h handlers) health(w http.ResponseWriter, req *http.Request) {
	response := healthResponseStruct{
		Status:         statusHealthy,
		Version:        h.version,
		Provider:       h.service.ProviderName(),
		ProviderStatus: providerAvailable,
	}

	if !h.service.CheckHealth(req.Context()) {
		response.Status = statusDegraded
		response.ProviderStatus = providerUnavailable
	}

	encodeJSON(w, response)
}
