package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/localbiz/marketplace-api/internal/jwt"
	"github.com/localbiz/marketplace-api/internal/middlewares"
	"github.com/localbiz/marketplace-api/internal/models"
	"github.com/localbiz/marketplace-api/internal/services"
	"github.com/localbiz/marketplace-api/internal/validation"
)

// BusinessUpdater defines the interface that the business service must implement.
type BusinessUpdater interface {
	Update(ctx context.Context, businessID uuid.UUID, actor *jwt.Claims, input services.BusinessInput) (*models.Business, error)
}

// NewUpdateBusinessHandler returns an HTTP handler updating a business listing.
// @Summary Update business listing
// @Tags businesses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param businessID path string true "Business ID"
// @Param businessRequest body handlers.BusinessRequest true "Business fields"
// @Success 200 {object} handlers.Response "Updated business"
// @Failure 400 {object} handlers.Response "Invalid body or unknown category"
// @Failure 401 {object} handlers.Response "Unauthorized"
// @Failure 403 {object} handlers.Response "Caller does not own this business"
// @Failure 404 {object} handlers.Response "Business not found"
// @Failure 409 {object} handlers.Response "Duplicate business name"
// @Router /api/businesses/{businessID} [put]
func NewUpdateBusinessHandler(svc BusinessUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, errUnauthorized)
			return
		}

		businessID, err := uuid.Parse(chi.URLParam(r, "businessID"))
		if err != nil {
			writeBadRequest(w, "invalid business id")
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

		business, err := svc.Update(r.Context(), businessID, claims, req.toInput())
		if err != nil {
			writeError(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, business)
	}
}
