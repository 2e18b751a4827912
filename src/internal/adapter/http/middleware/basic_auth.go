package middleware

import (
	"crypto/subtle"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/meita/saudi-banks/src/internal/logger"
)

// BasicAuth accepts requests whose basic-auth credentials equal channelID and channelKey.
func BasicAuth(channelID, channelKey string) func(http.Handler) http.Handler {
	return channelAuth(channelID, channelKey, func(key string) bool {
		return secureEqual(key, channelKey)
	})
}

// BasicAuthHashed is BasicAuth with the channel key stored as a bcrypt hash.
func BasicAuthHashed(channelID, channelKeyHash string) func(http.Handler) http.Handler {
	return channelAuth(channelID, channelKeyHash, func(key string) bool {
		return bcrypt.CompareHashAndPassword([]byte(channelKeyHash), []byte(key)) == nil
	})
}

func channelAuth(channelID, secret string, keyMatches func(key string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if channelID == "" || secret == "" {
				logger.Error("basic auth middleware missing server configuration", nil, logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				http.Error(w, "server auth configuration is missing", http.StatusInternalServerError)
				return
			}

			id, key, ok := r.BasicAuth()
			if !ok || !secureEqual(id, channelID) || !keyMatches(key) {
				logger.Info("basic auth middleware unauthorized request", logger.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"credentials": "invalid_or_missing",
				})
				w.Header().Set("WWW-Authenticate", `Basic realm="saudi-banks"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
