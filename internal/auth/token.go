package auth

import (
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// BearerToken extracts the session token from the Authorization header.
// Only the Bearer scheme is accepted; any other scheme or a malformed
// value is treated the same as a missing header. The remainder after the
// prefix is returned verbatim, with no trimming or shape validation, so a
// garbage token simply fails the store lookup later.
func BearerToken(h http.Header) (string, bool) {
	value := h.Get("Authorization")
	if !strings.HasPrefix(value, bearerPrefix) {
		return "", false
	}
	return strings.TrimPrefix(value, bearerPrefix), true
}
