package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/localbiz/marketplace-api/internal/jwt"
	"github.com/localbiz/marketplace-api/internal/metrics"
	"github.com/localbiz/marketplace-api/internal/middlewares"
	"github.com/localbiz/marketplace-api/internal/models"
	"github.com/localbiz/marketplace-api/internal/services"
	"github.com/localbiz/marketplace-api/internal/validation"
)

// UploadConfirmer defines the interface that the media service must implement.
type UploadConfirmer interface {
	ConfirmUpload(ctx context.Context, businessID uuid.UUID, actor *jwt.Claims, req services.ConfirmRequest) (*models.Media, error)
}

// ConfirmUploadRequest represents the JSON body finalizing an upload.
// swagger:model ConfirmUploadRequest
type ConfirmUploadRequest struct {
	// Upload ID from the upload ticket
	// required: true
	UploadID uuid.UUID `json:"upload_id" validate:"required"`

	// Original file name, must match the upload request
	// required: true
	FileName string `json:"file_name" validate:"required"`

	// Media type, logo or photo
	// required: true
	MediaType string `json:"media_type" validate:"required,oneof=logo photo"`

	// Optional caption
	Description string `json:"description" validate:"max=500"`

	// File size in bytes
	Size int64 `json:"size" validate:"gte=0"`

	// MIME type the file was uploaded with
	ContentType string `json:"content_type"`
}

// NewMediaConfirmHandler returns an HTTP handler finalizing an upload:
// the temp object is decoded, resized into variants, and recorded.
// @Summary Confirm media upload
// @Tags media
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param businessID path string true "Business ID"
// @Param confirmUploadRequest body handlers.ConfirmUploadRequest true "Upload confirmation"
// @Success 201 {object} handlers.Response "Created media item"
// @Failure 400 {object} handlers.Response "Invalid body, missing upload, or non-image file"
// @Failure 401 {object} handlers.Response "Unauthorized"
// @Failure 403 {object} handlers.Response "Caller does not own this business"
// @Failure 404 {object} handlers.Response "Business not found"
// @Router /api/businesses/{businessID}/media/confirm [post]
func NewMediaConfirmHandler(svc UploadConfirmer) http.HandlerFunc {
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

		var req ConfirmUploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		if details := validation.Struct(req); details != nil {
			writeValidationError(w, details)
			return
		}

		media, err := svc.ConfirmUpload(r.Context(), businessID, claims, services.ConfirmRequest{
			UploadID:    req.UploadID,
			FileName:    req.FileName,
			MediaType:   req.MediaType,
			Description: req.Description,
			Size:        req.Size,
			ContentType: req.ContentType,
		})
		if err != nil {
			metrics.ObserveMediaUpload(req.MediaType, "error")
			writeError(w, err)
			return
		}
		metrics.ObserveMediaUpload(req.MediaType, "ok")

		writeSuccess(w, http.StatusCreated, media)
	}
}
