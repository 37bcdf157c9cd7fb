package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/localbiz/marketplace-api/internal/jwt"
	"github.com/localbiz/marketplace-api/internal/middlewares"
)

// MediaDeleter defines the interface that the media service must implement.
type MediaDeleter interface {
	Delete(ctx context.Context, businessID, mediaID uuid.UUID, actor *jwt.Claims) error
}

// NewMediaDeleteHandler returns an HTTP handler removing a media item and its
// stored variants.
// @Summary Delete media item
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param businessID path string true "Business ID"
// @Param mediaID path string true "Media ID"
// @Success 200 {object} handlers.Response "Media deleted"
// @Failure 400 {object} handlers.Response "Malformed ID"
// @Failure 401 {object} handlers.Response "Unauthorized"
// @Failure 403 {object} handlers.Response "Caller does not own this business"
// @Failure 404 {object} handlers.Response "Business or media not found"
// @Router /api/businesses/{businessID}/media/{mediaID} [delete]
func NewMediaDeleteHandler(svc MediaDeleter) http.HandlerFunc {
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
		mediaID, err := uuid.Parse(chi.URLParam(r, "mediaID"))
		if err != nil {
			writeBadRequest(w, "invalid media id")
			return
		}

		if err := svc.Delete(r.Context(), businessID, mediaID, claims); err != nil {
			writeError(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, map[string]string{"message": "media deleted"})
	}
}
