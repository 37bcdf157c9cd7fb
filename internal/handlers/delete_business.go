package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/localbiz/marketplace-api/internal/jwt"
	"github.com/localbiz/marketplace-api/internal/middlewares"
)

// BusinessDeleter defines the interface that the business service must implement.
type BusinessDeleter interface {
	Delete(ctx context.Context, businessID uuid.UUID, actor *jwt.Claims) error
}

// NewDeleteBusinessHandler returns an HTTP handler soft-deleting a listing.
// @Summary Delete business listing
// @Tags businesses
// @Produce json
// @Security BearerAuth
// @Param businessID path string true "Business ID"
// @Success 200 {object} handlers.Response "Business deleted"
// @Failure 400 {object} handlers.Response "Malformed business ID"
// @Failure 401 {object} handlers.Response "Unauthorized"
// @Failure 403 {object} handlers.Response "Caller does not own this business"
// @Failure 404 {object} handlers.Response "Business not found"
// @Router /api/businesses/{businessID} [delete]
func NewDeleteBusinessHandler(svc BusinessDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), businessID, claims); err != nil {
			writeError(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, map[string]string{"message": "business deleted"})
	}
}
