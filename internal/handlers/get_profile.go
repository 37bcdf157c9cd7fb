package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/localbiz/marketplace-api/internal/middlewares"
	"github.com/localbiz/marketplace-api/internal/models"
)

// ProfileGetter defines the interface that the profile service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// NewGetProfileHandler returns an HTTP handler serving the authenticated
// user's profile.
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response "User profile"
// @Failure 401 {object} handlers.Response "Unauthorized"
// @Failure 404 {object} handlers.Response "User not found"
// @Router /api/users/me [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, errUnauthorized)
			return
		}

		user, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, user)
	}
}
