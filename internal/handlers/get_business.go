package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/localbiz/marketplace-api/internal/models"
)

// BusinessGetter defines the interface that the business service must implement.
type BusinessGetter interface {
	Get(ctx context.Context, businessID uuid.UUID) (*models.Business, error)
}

// NewGetBusinessHandler returns an HTTP handler serving a single listing.
// @Summary Get business listing
// @Tags businesses
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} handlers.Response "Business listing"
// @Failure 400 {object} handlers.Response "Malformed business ID"
// @Failure 404 {object} handlers.Response "Business not found"
// @Router /api/businesses/{businessID} [get]
func NewGetBusinessHandler(svc BusinessGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID, err := uuid.Parse(chi.URLParam(r, "businessID"))
		if err != nil {
			writeBadRequest(w, "invalid business id")
			return
		}

		business, err := svc.Get(r.Context(), businessID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, business)
	}
}
