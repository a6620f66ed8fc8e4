package gazetteer

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

type httpClient struct {
	userAgent   string
	client      *http.Client
	rateLimiter *rate.Limiter
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	if err := h.rateLimiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", h.userAgent)

	return h.client.Do(req)
}

// NewHTTPClient wraps a pooled http.Client with a user agent and a
// client-side rate limiter. The wrapped client is shared by every
// caller and safe for concurrent use; timeouts are the caller's
// business (providers bound each call with a context deadline).
//
// Please see https://pkg.go.dev/golang.org/x/time/rate to get a
// meaning of the rate limiter parameters.
func NewHTTPClient(client *http.Client,
	userAgent string,
	rateLimiterInterval time.Duration,
	rateLimitBurst int) HTTPClient {
	return httpClient{
		userAgent:   userAgent,
		client:      client,
		rateLimiter: rate.NewLimiter(rate.Every(rateLimiterInterval), rateLimitBurst),
	}
}
