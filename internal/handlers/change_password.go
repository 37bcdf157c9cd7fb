package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/localbiz/marketplace-api/internal/middlewares"
	"github.com/localbiz/marketplace-api/internal/validation"
)

// PasswordChanger defines the interface that the password service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

// ChangePasswordRequest represents the JSON body for a password change.
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"current_password" validate:"required"`

	// New password, 8 to 72 characters
	// required: true
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// NewChangePasswordHandler returns an HTTP handler rotating the authenticated
// user's password.
// @Summary Change current user password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Password change request"
// @Success 200 {object} handlers.Response "Password changed"
// @Failure 400 {object} handlers.Response "Invalid body or wrong current password"
// @Failure 401 {object} handlers.Response "Unauthorized"
// @Router /api/users/me/password [put]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, errUnauthorized)
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		if details := validation.Struct(req); details != nil {
			writeValidationError(w, details)
			return
		}

		if err := svc.ChangePassword(r.Context(), claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			writeError(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, map[string]string{"message": "password updated"})
	}
}
