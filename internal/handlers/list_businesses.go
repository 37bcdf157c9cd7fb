package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/localbiz/marketplace-api/internal/models"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// BusinessLister defines the interface that the business service must implement.
type BusinessLister interface {
	List(ctx context.Context, filter models.BusinessFilter, page, limit int) ([]*models.Business, models.Pagination, error)
}

// BusinessPage is the payload for a paginated business listing.
// swagger:model BusinessPage
type BusinessPage struct {
	// Businesses on this page
	Businesses []*models.Business `json:"businesses"`

	// Page metadata
	Pagination models.Pagination `json:"pagination"`
}

// parsePositiveInt parses a query value, falling back on absent or bad input.
func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// NewListBusinessesHandler returns an HTTP handler serving a filtered,
// paginated listing of active businesses.
// @Summary List business listings
// @Tags businesses
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, capped at 100"
// @Param category query string false "Category slug filter"
// @Param search query string false "Case-insensitive name/description search"
// @Param owner_id query string false "Owner ID filter"
// @Success 200 {object} handlers.Response "One page of businesses"
// @Failure 400 {object} handlers.Response "Malformed owner_id"
// @Router /api/businesses [get]
func NewListBusinessesHandler(svc BusinessLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		page := parsePositiveInt(q.Get("page"), 1)
		limit := parsePositiveInt(q.Get("limit"), defaultPageLimit)
		if limit > maxPageLimit {
			limit = maxPageLimit
		}

		filter := models.BusinessFilter{
			Category: q.Get("category"),
			Search:   q.Get("search"),
		}
		if raw := q.Get("owner_id"); raw != "" {
			ownerID, err := uuid.Parse(raw)
			if err != nil {
				writeBadRequest(w, "invalid owner id")
				return
			}
			filter.OwnerID = &ownerID
		}

		businesses, pagination, err := svc.List(r.Context(), filter, page, limit)
		if err != nil {
			writeError(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, BusinessPage{
			Businesses: businesses,
			Pagination: pagination,
		})
	}
}
