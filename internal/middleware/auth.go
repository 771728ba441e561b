package middleware

import (
	"net/http"

	"github.com/mywallet/backend/internal/services"
	log "github.com/sirupsen/logrus"
)

// RequireToken rejects requests that carry no bearer token at all. Whether
// the token is bound to a session is decided by the handlers.
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if services.ExtractToken(r.Header.Get("Authorization")) == "" {
			log.WithField("path", r.URL.Path).Debug("request without token")
			services.SendErrorResponse(w, "Authorization header required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
