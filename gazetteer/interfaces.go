package gazetteer

import (
	"context"
	"net/http"
)

// Provider is the capability contract any geolocation backend has to
// satisfy. The Service, the error taxonomy and the tests depend on
// this interface only, never on a concrete upstream.
type Provider interface {
	// Name returns a stable human-readable provider identifier,
	// included in error messages and health responses.
	Name() string

	// Lookup resolves a validated public address into a Record. On
	// failure it returns an *Error with one of the provider kinds
	// (KindNotFound, KindRateLimited, KindUnavailable).
	Lookup(ctx context.Context, addr Address) (Record, error)

	// HealthCheck probes the upstream. It never returns an error:
	// any fault, timeout included, degrades to false.
	HealthCheck(ctx context.Context) bool
}

// HTTPClient is what providers use to talk to their upstreams. The
// concrete implementation owns the pooled connections, the user agent
// and client-side rate limiting.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Logger interface {
	LookupError(ip string, name string, err error)
	HealthCheck(name string, healthy bool)
}

type nopLogger struct{}

func (n nopLogger) LookupError(ip string, name string, err error) {}

func (n nopLogger) HealthCheck(name string, healthy bool) {}
