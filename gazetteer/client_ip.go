package gazetteer

import (
	"net"
	"net/http"
	"strings"
)

const (
	headerForwardedFor = "X-Forwarded-For"
	headerRealIP       = "X-Real-IP"
)

// ClientIP derives the requesting caller's address: the first
// comma-separated X-Forwarded-For token, then X-Real-IP, then the
// transport peer address. The returned string is not validated here;
// Service.Lookup performs the real validation.
func ClientIP(req *http.Request) (string, error) {
	if forwarded := req.Header.Get(headerForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0]), nil
	}

	if realIP := req.Header.Get(headerRealIP); realIP != "" {
		return strings.TrimSpace(realIP), nil
	}

	if req.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(req.RemoteAddr); err == nil {
			return host, nil
		}

		return req.RemoteAddr, nil
	}

	return "", NewClientIPError()
}
