package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/localbiz/marketplace-api/internal/jwt"
	"github.com/localbiz/marketplace-api/internal/middlewares"
	"github.com/localbiz/marketplace-api/internal/services"
	"github.com/localbiz/marketplace-api/internal/validation"
)

// UploadRequester defines the interface that the media service must implement.
type UploadRequester interface {
	RequestUpload(ctx context.Context, businessID uuid.UUID, actor *jwt.Claims, req services.UploadRequest) (*services.UploadTicket, error)
}

// UploadURLRequest represents the JSON body requesting a signed upload URL.
// swagger:model UploadURLRequest
type UploadURLRequest struct {
	// Original file name including extension
	// required: true
	FileName string `json:"file_name" validate:"required"`

	// MIME type the client will upload with
	// required: true
	ContentType string `json:"content_type" validate:"required"`

	// File size in bytes
	// required: true
	Size int64 `json:"size" validate:"required,gt=0"`

	// Media type, logo or photo
	// required: true
	MediaType string `json:"media_type" validate:"required,oneof=logo photo"`
}

// NewMediaUploadURLHandler returns an HTTP handler issuing a time-limited
// signed upload URL for a business media file.
// @Summary Request signed media upload URL
// @Tags media
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param businessID path string true "Business ID"
// @Param uploadURLRequest body handlers.UploadURLRequest true "File metadata"
// @Success 200 {object} handlers.Response "Signed upload ticket"
// @Failure 400 {object} handlers.Response "Invalid body, file name, type, or size"
// @Failure 401 {object} handlers.Response "Unauthorized"
// @Failure 403 {object} handlers.Response "Caller does not own this business"
// @Failure 404 {object} handlers.Response "Business not found"
// @Router /api/businesses/{businessID}/media/upload-url [post]
func NewMediaUploadURLHandler(svc UploadRequester) http.HandlerFunc {
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

		var req UploadURLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		if details := validation.Struct(req); details != nil {
			writeValidationError(w, details)
			return
		}

		ticket, err := svc.RequestUpload(r.Context(), businessID, claims, services.UploadRequest{
			FileName:    req.FileName,
			ContentType: req.ContentType,
			Size:        req.Size,
			MediaType:   req.MediaType,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, ticket)
	}
}
