package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/localbiz/marketplace-api/internal/cognito"
	"github.com/localbiz/marketplace-api/internal/validation"
)

// CognitoLoginer defines the interface that the code-exchange service must implement.
type CognitoLoginer interface {
	Login(ctx context.Context, code string) (*cognito.TokenPair, error)
}

// CognitoLoginRequest represents the JSON body for the hosted-UI code exchange
// swagger:model CognitoLoginRequest
type CognitoLoginRequest struct {
	// Authorization code from the hosted UI redirect
	// required: true
	Code string `json:"code" validate:"required"`
}

// NewCognitoLoginHandler returns an HTTP handler exchanging an authorization
// code for the identity provider's token set.
// @Summary Cognito code exchange
// @Description Exchanges a hosted-UI authorization code for provider-issued tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param cognitoLoginRequest body handlers.CognitoLoginRequest true "Code exchange request"
// @Success 200 {object} handlers.Response "Provider token set"
// @Failure 400 {object} handlers.Response "Invalid request body"
// @Failure 401 {object} handlers.Response "Invalid or expired authorization code"
// @Router /auth/cognito [post]
func NewCognitoLoginHandler(svc CognitoLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CognitoLoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		if details := validation.Struct(req); details != nil {
			writeValidationError(w, details)
			return
		}

		pair, err := svc.Login(r.Context(), req.Code)
		if err != nil {
			writeError(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, pair)
	}
}
