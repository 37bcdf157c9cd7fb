package middlewares

import (
	"context"
	"net/http"

	"github.com/localbiz/marketplace-api/internal/logger"
	"github.com/localbiz/marketplace-api/internal/models"
)

// CognitoVerifier defines the minimal interface needed by the middleware.
type CognitoVerifier interface {
	Verify(ctx context.Context, tokenString string) (*models.AuthUser, error)
}

// TokenExtractor pulls the bearer token out of the request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

type authUserKey struct{}

// SetAuthUserToContext stores the provider-verified identity in the context.
func SetAuthUserToContext(ctx context.Context, user *models.AuthUser) context.Context {
	return context.WithValue(ctx, authUserKey{}, user)
}

// GetAuthUserFromContext retrieves the provider-verified identity from the
// context. Returns nil if the request was not authenticated.
func GetAuthUserFromContext(ctx context.Context) *models.AuthUser {
	user, _ := ctx.Value(authUserKey{}).(*models.AuthUser)
	return user
}

// AuthenticateCognito returns a middleware that validates a provider-issued
// bearer token. An absent or malformed header gets 401; a token the verifier
// rejects gets 403. On success the derived identity is attached to the
// request context.
func AuthenticateCognito(extractor TokenExtractor, verifier CognitoVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := extractor.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("cognito authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := verifier.Verify(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("cognito token rejected", "err", err)
				writeAuthError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetAuthUserToContext(ctx, user)))
		})
	}
}
