package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/localbiz/marketplace-api/internal/apperrors"
	"github.com/localbiz/marketplace-api/internal/jwt"
	"github.com/localbiz/marketplace-api/internal/logger"
	"github.com/localbiz/marketplace-api/internal/models"
	"github.com/localbiz/marketplace-api/internal/storage"
)

var (
	ErrMediaNotFound    = apperrors.New("media not found", http.StatusNotFound)
	ErrInvalidMediaType = apperrors.New("media type must be logo or photo", http.StatusBadRequest)
	ErrUploadMissing    = apperrors.New("uploaded file not found, request a new upload URL", http.StatusBadRequest)
	ErrNotAnImage       = apperrors.New("uploaded file is not a decodable image", http.StatusBadRequest)
)

// allowedContentTypes is the MIME allow-list for uploads.
var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// allowedExtensions is the file-extension allow-list for uploads.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// blockedPatterns are malicious filename fragments rejected outright.
var blockedPatterns = []string{"..", "/", "\\", "\x00", "<", ">", "%00"}

// reservedNames matches Windows reserved device names as a bare base name.
var reservedNames = regexp.MustCompile(`(?i)^(CON|PRN|AUX|NUL|COM[1-9]|LPT[1-9])$`)

// variantSizes maps each generated size variant to its bounding box in pixels.
var variantSizes = map[string]int{
	storage.SizeThumbnail: 150,
	storage.SizeSmall:     320,
	storage.SizeMedium:    640,
	storage.SizeLarge:     1280,
}

const logoSize = 256

const maxFileNameLen = 200

// MediaStore is the object-storage surface the media pipeline needs.
type MediaStore interface {
	SignedUploadURL(ctx context.Context, key, contentType string) (string, time.Time, error)
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	ObjectURL(key string) string
}

// MediaWriter defines write operations for business media.
type MediaWriter interface {
	Save(ctx context.Context, m *models.MediaDB) error
	Delete(ctx context.Context, mediaID uuid.UUID) error
}

// UploadTicket is handed to the client so it can PUT the file straight to
// object storage.
type UploadTicket struct {
	UploadID  uuid.UUID `json:"upload_id"`
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UploadRequest describes the file the client intends to upload.
type UploadRequest struct {
	FileName    string
	ContentType string
	Size        int64
	MediaType   string
}

// ConfirmRequest finalizes an upload after the client PUT succeeded.
type ConfirmRequest struct {
	UploadID    uuid.UUID
	FileName    string
	MediaType   string
	Description string
	Size        int64
	ContentType string
}

// MediaService runs the upload pipeline: validate -> signed URL -> confirm
// (variant generation) -> deterministic storage keys.
type MediaService struct {
	businesses  BusinessReader
	reader      MediaReader
	writer      MediaWriter
	store       MediaStore
	cache       BusinessCache
	kafkaWriter KafkaWriter
	maxSize     int64
}

// NewMediaService creates a new MediaService instance. maxSize caps upload
// size in bytes.
func NewMediaService(
	businesses BusinessReader,
	reader MediaReader,
	writer MediaWriter,
	store MediaStore,
	cache BusinessCache,
	kafkaWriter KafkaWriter,
	maxSize int64,
) *MediaService {
	if maxSize <= 0 {
		maxSize = 10 << 20
	}
	return &MediaService{
		businesses:  businesses,
		reader:      reader,
		writer:      writer,
		store:       store,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		maxSize:     maxSize,
	}
}

// ValidateMediaFile checks an upload's name, MIME type, and size against the
// allow-lists and the malicious-pattern blocklist.
func (svc *MediaService) ValidateMediaFile(fileName, contentType string, size int64) error {
	if fileName == "" {
		return apperrors.New("file name is required", http.StatusBadRequest)
	}
	if len(fileName) > maxFileNameLen {
		return apperrors.New("file name is too long", http.StatusBadRequest)
	}

	for _, pattern := range blockedPatterns {
		if strings.Contains(fileName, pattern) {
			return apperrors.New("file name contains forbidden characters", http.StatusBadRequest)
		}
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if reservedNames.MatchString(base) {
		return apperrors.New("file name is a reserved system name", http.StatusBadRequest)
	}

	if !allowedExtensions[ext] {
		return apperrors.New(fmt.Sprintf("file extension %q is not allowed", ext), http.StatusBadRequest)
	}
	if !allowedContentTypes[strings.ToLower(contentType)] {
		return apperrors.New(fmt.Sprintf("content type %q is not allowed", contentType), http.StatusBadRequest)
	}

	if size <= 0 {
		return apperrors.New("file size must be greater than zero", http.StatusBadRequest)
	}
	if size > svc.maxSize {
		return apperrors.New(
			fmt.Sprintf("file size %d exceeds the maximum of %d bytes", size, svc.maxSize),
			http.StatusBadRequest,
		)
	}

	return nil
}

// RequestUpload validates the file metadata and issues a time-limited signed
// upload URL under the temp-uploads prefix.
func (svc *MediaService) RequestUpload(ctx context.Context, businessID uuid.UUID, actor *jwt.Claims, req UploadRequest) (*UploadTicket, error) {
	if req.MediaType != models.MediaTypeLogo && req.MediaType != models.MediaTypePhoto {
		return nil, ErrInvalidMediaType
	}
	if err := svc.ValidateMediaFile(req.FileName, req.ContentType, req.Size); err != nil {
		return nil, err
	}

	business, err := svc.businesses.GetByID(ctx, businessID)
	if err != nil {
		logger.Log.Errorw("failed to get business", "err", err)
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}
	if !canManage(business, actor) {
		return nil, ErrForbidden
	}

	uploadID := uuid.New()
	key := storage.TempUploadKey(uploadID, req.FileName)

	url, expiresAt, err := svc.store.SignedUploadURL(ctx, key, req.ContentType)
	if err != nil {
		logger.Log.Errorw("failed to issue signed upload URL", "key", key, "err", err)
		return nil, err
	}

	return &UploadTicket{
		UploadID:  uploadID,
		Key:       key,
		URL:       url,
		ExpiresAt: expiresAt,
	}, nil
}

// ConfirmUpload fetches the temp object the client uploaded, generates the
// fixed-size variants, writes them under deterministic keys, records the
// media row, and removes the temp object.
func (svc *MediaService) ConfirmUpload(ctx context.Context, businessID uuid.UUID, actor *jwt.Claims, req ConfirmRequest) (*models.Media, error) {
	if req.MediaType != models.MediaTypeLogo && req.MediaType != models.MediaTypePhoto {
		return nil, ErrInvalidMediaType
	}

	business, err := svc.businesses.GetByID(ctx, businessID)
	if err != nil {
		logger.Log.Errorw("failed to get business", "err", err)
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}
	if !canManage(business, actor) {
		return nil, ErrForbidden
	}

	tempKey := storage.TempUploadKey(req.UploadID, req.FileName)
	body, err := svc.store.Get(ctx, tempKey)
	if err != nil {
		logger.Log.Errorw("temp upload missing", "key", tempKey, "err", err)
		return nil, ErrUploadMissing
	}
	defer body.Close()

	img, err := imaging.Decode(body, imaging.AutoOrientation(true))
	if err != nil {
		logger.Log.Errorw("uploaded file is not an image", "key", tempKey, "err", err)
		return nil, ErrNotAnImage
	}

	mediaID := uuid.New()
	urls, err := svc.generateVariants(ctx, img, req.MediaType, businessID, mediaID)
	if err != nil {
		return nil, err
	}

	media := &models.MediaDB{
		MediaID:     mediaID,
		BusinessID:  businessID,
		MediaType:   req.MediaType,
		URLs:        urls,
		Description: req.Description,
		FileName:    req.FileName,
		FileSize:    req.Size,
		ContentType: req.ContentType,
	}

	if err := svc.writer.Save(ctx, media); err != nil {
		logger.Log.Errorw("failed to save media", "media_id", mediaID, "err", err)
		return nil, err
	}

	if err := svc.store.Delete(ctx, tempKey); err != nil {
		logger.Log.Warnw("failed to delete temp upload", "key", tempKey, "err", err)
	}
	if svc.cache != nil {
		if err := svc.cache.Delete(ctx, businessID); err != nil {
			logger.Log.Warnw("failed to evict business from cache", "business_id", businessID, "err", err)
		}
	}

	publishEvent(ctx, svc.kafkaWriter, EventMediaCreated, mediaID.String(), map[string]string{
		"business_id": businessID.String(),
		"media_type":  req.MediaType,
	})

	return media.ToMedia(), nil
}

// generateVariants resizes the image once per configured size and uploads
// each variant, returning the size -> URL map.
func (svc *MediaService) generateVariants(ctx context.Context, img image.Image, mediaType string, businessID, mediaID uuid.UUID) (models.VariantURLs, error) {
	sizes := make(map[string]int, len(variantSizes)+1)
	for name, px := range variantSizes {
		sizes[name] = px
	}
	if mediaType == models.MediaTypeLogo {
		sizes[storage.SizeLogo] = logoSize
	}

	urls := make(models.VariantURLs, len(sizes))
	for name, px := range sizes {
		resized := imaging.Fit(img, px, px, imaging.Lanczos)

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
			logger.Log.Errorw("failed to encode variant", "size", name, "err", err)
			return nil, err
		}

		key := storage.VariantKey(mediaType, businessID, mediaID, name)
		if err := svc.store.Put(ctx, key, "image/jpeg", &buf); err != nil {
			logger.Log.Errorw("failed to upload variant", "key", key, "err", err)
			return nil, err
		}
		urls[name] = svc.store.ObjectURL(key)
	}

	return urls, nil
}

// Delete removes a media item's variants from storage and its row.
func (svc *MediaService) Delete(ctx context.Context, businessID, mediaID uuid.UUID, actor *jwt.Claims) error {
	business, err := svc.businesses.GetByID(ctx, businessID)
	if err != nil {
		logger.Log.Errorw("failed to get business", "err", err)
		return err
	}
	if business == nil {
		return ErrBusinessNotFound
	}
	if !canManage(business, actor) {
		return ErrForbidden
	}

	media, err := svc.reader.GetByID(ctx, mediaID)
	if err != nil {
		logger.Log.Errorw("failed to get media", "err", err)
		return err
	}
	if media == nil || media.BusinessID != businessID {
		return ErrMediaNotFound
	}

	for name := range media.URLs {
		key := storage.VariantKey(media.MediaType, businessID, mediaID, name)
		if err := svc.store.Delete(ctx, key); err != nil {
			logger.Log.Warnw("failed to delete variant", "key", key, "err", err)
		}
	}

	if err := svc.writer.Delete(ctx, mediaID); err != nil {
		logger.Log.Errorw("failed to delete media row", "media_id", mediaID, "err", err)
		return err
	}

	if svc.cache != nil {
		if err := svc.cache.Delete(ctx, businessID); err != nil {
			logger.Log.Warnw("failed to evict business from cache", "business_id", businessID, "err", err)
		}
	}

	publishEvent(ctx, svc.kafkaWriter, EventMediaDeleted, mediaID.String(), map[string]string{
		"business_id": businessID.String(),
	})

	return nil
}
