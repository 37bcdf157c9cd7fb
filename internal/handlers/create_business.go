package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/localbiz/marketplace-api/internal/jwt"
	"github.com/localbiz/marketplace-api/internal/middlewares"
	"github.com/localbiz/marketplace-api/internal/models"
	"github.com/localbiz/marketplace-api/internal/services"
	"github.com/localbiz/marketplace-api/internal/validation"
)

// BusinessCreator defines the interface that the business service must implement.
type BusinessCreator interface {
	Create(ctx context.Context, actor *jwt.Claims, input services.BusinessInput) (*models.Business, error)
}

// BusinessRequest represents the JSON body for creating or updating a listing.
// swagger:model BusinessRequest
type BusinessRequest struct {
	// Business name
	// required: true
	Name string `json:"name" validate:"required,max=200"`

	// Free-form description
	Description string `json:"description" validate:"max=2000"`

	// Physical location
	Location models.BusinessLocation `json:"location"`

	// Category slugs
	// required: true
	Categories models.StringList `json:"categories" validate:"required,min=1"`

	// Weekly opening hours keyed by day name
	Hours models.Hours `json:"hours"`

	// Contact details
	Contact models.Contact `json:"contact"`

	// Offered services
	Services models.StringList `json:"services"`
}

func (req BusinessRequest) toInput() services.BusinessInput {
	return services.BusinessInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Categories:  req.Categories,
		Hours:       req.Hours,
		Contact:     req.Contact,
		Services:    req.Services,
	}
}

// NewCreateBusinessHandler returns an HTTP handler creating a business listing.
// @Summary Create business listing
// @Tags businesses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param businessRequest body handlers.BusinessRequest true "Business fields"
// @Success 201 {object} handlers.Response "Created business"
// @Failure 400 {object} handlers.Response "Invalid body or unknown category"
// @Failure 401 {object} handlers.Response "Unauthorized"
// @Failure 403 {object} handlers.Response "Caller is not a business owner"
// @Failure 409 {object} handlers.Response "Duplicate business name"
// @Router /api/businesses [post]
func NewCreateBusinessHandler(svc BusinessCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, errUnauthorized)
			return
		}

		var req BusinessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		if details := validation.Struct(req); details != nil {
			writeValidationError(w, details)
			return
		}

		business, err := svc.Create(r.Context(), claims, req.toInput())
		if err != nil {
			writeError(w, err)
			return
		}

		writeSuccess(w, http.StatusCreated, business)
	}
}
