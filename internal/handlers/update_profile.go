package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/localbiz/marketplace-api/internal/middlewares"
	"github.com/localbiz/marketplace-api/internal/models"
	"github.com/localbiz/marketplace-api/internal/services"
	"github.com/localbiz/marketplace-api/internal/validation"
)

// ProfileUpdater defines the interface that the profile service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, update services.ProfileUpdate) (*models.User, error)
}

// UpdateProfileRequest represents the JSON body for a profile update.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// First name
	FirstName string `json:"first_name" validate:"max=100"`

	// Last name
	LastName string `json:"last_name" validate:"max=100"`

	// Contact phone number
	Phone string `json:"phone" validate:"max=32"`

	// Home location
	Location models.UserLocation `json:"location"`
}

// NewUpdateProfileHandler returns an HTTP handler updating the authenticated
// user's profile fields.
// @Summary Update current user profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} handlers.Response "Updated profile"
// @Failure 400 {object} handlers.Response "Invalid request body"
// @Failure 401 {object} handlers.Response "Unauthorized"
// @Router /api/users/me [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, errUnauthorized)
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		if details := validation.Struct(req); details != nil {
			writeValidationError(w, details)
			return
		}

		user, err := svc.UpdateProfile(r.Context(), claims.UserID, services.ProfileUpdate{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
			Location:  req.Location,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, user)
	}
}
