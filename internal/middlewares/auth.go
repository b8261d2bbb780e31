package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/phixelforge/internal/auth"
	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// Verifier checks a bearer token and returns the identity it asserts.
type Verifier interface {
	Verify(ctx context.Context, token string) (*models.Identity, error)
}

// UserResolver maps an identity to a local user, creating it when needed.
type UserResolver interface {
	Resolve(ctx context.Context, identity *models.Identity) (*models.User, error)
}

type userKey struct{}

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the authenticated user, or nil for anonymous requests.
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey{}).(*models.User)
	return user
}

// AuthMiddleware rejects requests without a valid bearer token with 401 and
// puts the resolved user into the request context.
func AuthMiddleware(verifier Verifier, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := auth.GetTokenFromRequest(r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			identity, err := verifier.Verify(ctx, token)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := resolver.Resolve(ctx, identity)
			if err != nil {
				logger.Log.Errorw("failed to resolve user", "uid", identity.UID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

// OptionalAuthMiddleware attaches the user when a valid bearer token is sent
// and otherwise lets the request through anonymously.
func OptionalAuthMiddleware(verifier Verifier, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := auth.GetTokenFromRequest(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := verifier.Verify(ctx, token)
			if err != nil {
				logger.Log.Debugw("ignoring invalid optional token", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			user, err := resolver.Resolve(ctx, identity)
			if err != nil {
				logger.Log.Errorw("failed to resolve user", "uid", identity.UID, "err", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}
