package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the originating client address, preferring the first
// X-Forwarded-For hop when the server sits behind a proxy.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// UserID extracts the caller's identity token. The token is passed
// explicitly on every call, either as an X-User-ID header or a userId
// query parameter.
func UserID(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return r.URL.Query().Get("userId")
}
