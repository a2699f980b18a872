package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/accountd-dev/accountd/internal/server/handlers"
	"github.com/accountd-dev/accountd/internal/server/sessions"
)

// AuthMiddleware resolves the bearer token on each request and stores the
// resulting identity in the request context. Requests without a resolvable
// session are rejected with 401 before reaching the handler.
func AuthMiddleware(logger *slog.Logger, manager *sessions.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := handlers.BearerToken(r)
			if token == "" {
				logger.Warn("missing or malformed Authorization header")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			identity, err := manager.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, sessions.ErrUnauthenticated) {
					logger.Warn("unresolvable session token")
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				logger.Error("failed to resolve session", "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			logger.Debug("request authenticated",
				"user_id", identity.UserID,
				"role", string(identity.Role))

			ctx := handlers.ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
