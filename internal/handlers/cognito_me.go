package handlers

import (
	"net/http"

	"github.com/localbiz/marketplace-api/internal/middlewares"
)

// NewCognitoMeHandler returns a handler exposing the identity derived from a
// provider-issued token. Useful for clients verifying a hosted-UI session.
// @Summary Current provider-verified identity
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} handlers.Response "Verified identity"
// @Failure 401 {object} handlers.Response "Missing or malformed token"
// @Router /auth/cognito/me [get]
func NewCognitoMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetAuthUserFromContext(r.Context())
		if user == nil {
			writeError(w, errUnauthorized)
			return
		}
		writeSuccess(w, http.StatusOK, user)
	}
}
