package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/localbiz/marketplace-api/internal/services"
	"github.com/localbiz/marketplace-api/internal/validation"
)

// Refresher defines the interface that the token-refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPairDTO, error)
}

// RefreshRequest represents the JSON body for token refresh
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Refresh token
	// required: true
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// NewRefreshHandler returns an HTTP handler that rotates a token pair.
// @Summary Refresh tokens
// @Description Exchanges a valid refresh token for a fresh access/refresh pair
// @Tags auth
// @Accept json
// @Produce json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh Request"
// @Success 200 {object} handlers.Response "Token pair returned"
// @Failure 400 {object} handlers.Response "Invalid request body"
// @Failure 401 {object} handlers.Response "Invalid refresh token"
// @Router /auth/refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		if details := validation.Struct(req); details != nil {
			writeValidationError(w, details)
			return
		}

		pair, err := svc.Refresh(r.Context(), req.RefreshToken)
		if err != nil {
			writeError(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, pair)
	}
}
