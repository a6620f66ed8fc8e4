package api

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"

	providerAvailable   = "available"
	providerUnavailable = "unavailable"
)

type healthResponseStruct struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	Provider       string `json:"provider"`
	ProviderStatus string `json:"provider_status"`
}
