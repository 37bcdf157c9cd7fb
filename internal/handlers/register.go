package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/localbiz/marketplace-api/internal/models"
	"github.com/localbiz/marketplace-api/internal/validation"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, role, firstName, lastName string) (*models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=8,max=72"`

	// Role, defaults to consumer
	// default: consumer
	Role string `json:"role" validate:"omitempty,oneof=consumer business_owner admin"`

	// First name
	FirstName string `json:"first_name" validate:"omitempty,max=100"`

	// Last name
	LastName string `json:"last_name" validate:"omitempty,max=100"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.Response "User successfully registered"
// @Failure 400 {object} handlers.Response "Invalid request body"
// @Failure 409 {object} handlers.Response "Email already registered"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		if details := validation.Struct(req); details != nil {
			writeValidationError(w, details)
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Password, req.Role, req.FirstName, req.LastName)
		if err != nil {
			writeError(w, err)
			return
		}

		writeSuccess(w, http.StatusCreated, user)
	}
}
