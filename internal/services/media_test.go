package services_test

import (
	"bytes"
	"context"
	"image/color"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/localbiz/marketplace-api/internal/jwt"
	"github.com/localbiz/marketplace-api/internal/models"
	"github.com/localbiz/marketplace-api/internal/services"
	"github.com/localbiz/marketplace-api/internal/storage"
)

type mediaMocks struct {
	businesses *services.MockBusinessReader
	reader     *services.MockMediaReader
	writer     *services.MockMediaWriter
	store      *services.MockMediaStore
	cache      *services.MockBusinessCache
}

func newMediaService(ctrl *gomock.Controller, maxSize int64) (*services.MediaService, mediaMocks) {
	m := mediaMocks{
		businesses: services.NewMockBusinessReader(ctrl),
		reader:     services.NewMockMediaReader(ctrl),
		writer:     services.NewMockMediaWriter(ctrl),
		store:      services.NewMockMediaStore(ctrl),
		cache:      services.NewMockBusinessCache(ctrl),
	}
	return services.NewMediaService(m.businesses, m.reader, m.writer, m.store, m.cache, nil, maxSize), m
}

// testJPEG encodes a solid-color image of the given dimensions.
func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 120, G: 30, B: 200, A: 255})
	var buf bytes.Buffer
	assert.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return buf.Bytes()
}

func TestMediaService_ValidateMediaFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newMediaService(ctrl, 10<<20)

	tests := []struct {
		name        string
		fileName    string
		contentType string
		size        int64
		wantErr     string
	}{
		{
			name:        "valid jpeg",
			fileName:    "storefront.jpg",
			contentType: "image/jpeg",
			size:        1024,
		},
		{
			name:        "valid png with uppercase mime",
			fileName:    "logo.png",
			contentType: "IMAGE/PNG",
			size:        1024,
		},
		{
			name:        "empty name",
			fileName:    "",
			contentType: "image/jpeg",
			size:        1024,
			wantErr:     "file name is required",
		},
		{
			name:        "path traversal",
			fileName:    "../../etc/passwd.jpg",
			contentType: "image/jpeg",
			size:        1024,
			wantErr:     "file name contains forbidden characters",
		},
		{
			name:        "null byte",
			fileName:    "evil\x00.jpg",
			contentType: "image/jpeg",
			size:        1024,
			wantErr:     "file name contains forbidden characters",
		},
		{
			name:        "html injection",
			fileName:    "<script>.jpg",
			contentType: "image/jpeg",
			size:        1024,
			wantErr:     "file name contains forbidden characters",
		},
		{
			name:        "windows reserved device name",
			fileName:    "CON.jpg",
			contentType: "image/jpeg",
			size:        1024,
			wantErr:     "file name is a reserved system name",
		},
		{
			name:        "windows reserved name case-insensitive",
			fileName:    "lpt5.png",
			contentType: "image/png",
			size:        1024,
			wantErr:     "file name is a reserved system name",
		},
		{
			name:        "disallowed extension",
			fileName:    "payload.exe",
			contentType: "image/jpeg",
			size:        1024,
			wantErr:     `file extension ".exe" is not allowed`,
		},
		{
			name:        "disallowed content type",
			fileName:    "doc.jpg",
			contentType: "application/pdf",
			size:        1024,
			wantErr:     `content type "application/pdf" is not allowed`,
		},
		{
			name:        "zero size",
			fileName:    "empty.jpg",
			contentType: "image/jpeg",
			size:        0,
			wantErr:     "file size must be greater than zero",
		},
		{
			name:        "oversized file reports both numbers",
			fileName:    "huge.jpg",
			contentType: "image/jpeg",
			size:        11 << 20,
			wantErr:     "file size 11534336 exceeds the maximum of 10485760 bytes",
		},
		{
			name:        "name too long",
			fileName:    strings.Repeat("a", 201) + ".jpg",
			contentType: "image/jpeg",
			size:        1024,
			wantErr:     "file name is too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidateMediaFile(tt.fileName, tt.contentType, tt.size)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMediaService_RequestUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	businessID := uuid.New()
	owner := &jwt.Claims{UserID: ownerID, Role: models.RoleBusinessOwner}
	business := &models.BusinessDB{BusinessID: businessID, OwnerID: ownerID, IsActive: true}

	req := services.UploadRequest{
		FileName:    "storefront.jpg",
		ContentType: "image/jpeg",
		Size:        2048,
		MediaType:   models.MediaTypePhoto,
	}

	t.Run("success", func(t *testing.T) {
		svc, m := newMediaService(ctrl, 0)
		expiresAt := time.Now().Add(15 * time.Minute)

		m.businesses.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
		m.store.EXPECT().
			SignedUploadURL(gomock.Any(), gomock.Any(), "image/jpeg").
			DoAndReturn(func(_ context.Context, key, _ string) (string, time.Time, error) {
				assert.True(t, strings.HasPrefix(key, storage.PrefixTempUploads+"/"))
				assert.True(t, strings.HasSuffix(key, "/storefront.jpg"))
				return "https://example.com/signed", expiresAt, nil
			})

		ticket, err := svc.RequestUpload(context.Background(), businessID, owner, req)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, ticket.UploadID)
		assert.Equal(t, "https://example.com/signed", ticket.URL)
		assert.Equal(t, expiresAt, ticket.ExpiresAt)
	})

	t.Run("invalid media type", func(t *testing.T) {
		svc, _ := newMediaService(ctrl, 0)

		bad := req
		bad.MediaType = "banner"
		ticket, err := svc.RequestUpload(context.Background(), businessID, owner, bad)
		assert.ErrorIs(t, err, services.ErrInvalidMediaType)
		assert.Nil(t, ticket)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		svc, m := newMediaService(ctrl, 0)
		m.businesses.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)

		stranger := &jwt.Claims{UserID: uuid.New(), Role: models.RoleBusinessOwner}
		ticket, err := svc.RequestUpload(context.Background(), businessID, stranger, req)
		assert.ErrorIs(t, err, services.ErrForbidden)
		assert.Nil(t, ticket)
	})
}

func TestMediaService_ConfirmUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	businessID := uuid.New()
	uploadID := uuid.New()
	owner := &jwt.Claims{UserID: ownerID, Role: models.RoleBusinessOwner}
	business := &models.BusinessDB{BusinessID: businessID, OwnerID: ownerID, IsActive: true}

	req := services.ConfirmRequest{
		UploadID:    uploadID,
		FileName:    "storefront.jpg",
		MediaType:   models.MediaTypePhoto,
		Size:        2048,
		ContentType: "image/jpeg",
	}
	tempKey := storage.TempUploadKey(uploadID, "storefront.jpg")

	t.Run("photo produces four variants", func(t *testing.T) {
		svc, m := newMediaService(ctrl, 0)

		m.businesses.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
		m.store.EXPECT().
			Get(gomock.Any(), tempKey).
			Return(io.NopCloser(bytes.NewReader(testJPEG(t, 1600, 900))), nil)

		uploadedKeys := map[string]bool{}
		m.store.EXPECT().
			Put(gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).
			DoAndReturn(func(_ context.Context, key, _ string, body io.Reader) error {
				img, err := imaging.Decode(body)
				assert.NoError(t, err)
				bounds := img.Bounds()
				assert.LessOrEqual(t, bounds.Dx(), 1280)
				assert.LessOrEqual(t, bounds.Dy(), 1280)
				uploadedKeys[key] = true
				return nil
			}).
			Times(4)
		m.store.EXPECT().
			ObjectURL(gomock.Any()).
			DoAndReturn(func(key string) string { return "https://cdn.example.com/" + key }).
			Times(4)
		m.writer.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, media *models.MediaDB) error {
				assert.Equal(t, businessID, media.BusinessID)
				assert.Len(t, media.URLs, 4)
				assert.Contains(t, media.URLs, storage.SizeThumbnail)
				assert.Contains(t, media.URLs, storage.SizeLarge)
				assert.NotContains(t, media.URLs, storage.SizeLogo)
				return nil
			})
		m.store.EXPECT().Delete(gomock.Any(), tempKey).Return(nil)
		m.cache.EXPECT().Delete(gomock.Any(), businessID).Return(nil)

		media, err := svc.ConfirmUpload(context.Background(), businessID, owner, req)
		assert.NoError(t, err)
		assert.Equal(t, models.MediaTypePhoto, media.MediaType)

		for key := range uploadedKeys {
			assert.True(t, strings.HasPrefix(key, storage.PrefixBusinessPhotos+"/"))
			assert.True(t, strings.HasSuffix(key, ".jpg"))
		}
	})

	t.Run("logo gets the extra logo variant", func(t *testing.T) {
		svc, m := newMediaService(ctrl, 0)

		logoReq := req
		logoReq.MediaType = models.MediaTypeLogo

		m.businesses.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
		m.store.EXPECT().
			Get(gomock.Any(), tempKey).
			Return(io.NopCloser(bytes.NewReader(testJPEG(t, 512, 512))), nil)
		m.store.EXPECT().
			Put(gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).
			DoAndReturn(func(_ context.Context, key, _ string, _ io.Reader) error {
				assert.True(t, strings.HasPrefix(key, storage.PrefixBusinessLogos+"/"))
				return nil
			}).
			Times(5)
		m.store.EXPECT().ObjectURL(gomock.Any()).Return("https://cdn.example.com/x").Times(5)
		m.writer.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, media *models.MediaDB) error {
				assert.Len(t, media.URLs, 5)
				assert.Contains(t, media.URLs, storage.SizeLogo)
				return nil
			})
		m.store.EXPECT().Delete(gomock.Any(), tempKey).Return(nil)
		m.cache.EXPECT().Delete(gomock.Any(), businessID).Return(nil)

		_, err := svc.ConfirmUpload(context.Background(), businessID, owner, logoReq)
		assert.NoError(t, err)
	})

	t.Run("temp object missing", func(t *testing.T) {
		svc, m := newMediaService(ctrl, 0)

		m.businesses.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
		m.store.EXPECT().Get(gomock.Any(), tempKey).Return(nil, errNoSuchKey)

		media, err := svc.ConfirmUpload(context.Background(), businessID, owner, req)
		assert.ErrorIs(t, err, services.ErrUploadMissing)
		assert.Nil(t, media)
	})

	t.Run("not an image", func(t *testing.T) {
		svc, m := newMediaService(ctrl, 0)

		m.businesses.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
		m.store.EXPECT().
			Get(gomock.Any(), tempKey).
			Return(io.NopCloser(strings.NewReader("definitely not an image")), nil)

		media, err := svc.ConfirmUpload(context.Background(), businessID, owner, req)
		assert.ErrorIs(t, err, services.ErrNotAnImage)
		assert.Nil(t, media)
	})
}

func TestMediaService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	businessID := uuid.New()
	mediaID := uuid.New()
	owner := &jwt.Claims{UserID: ownerID, Role: models.RoleBusinessOwner}
	business := &models.BusinessDB{BusinessID: businessID, OwnerID: ownerID, IsActive: true}

	row := &models.MediaDB{
		MediaID:    mediaID,
		BusinessID: businessID,
		MediaType:  models.MediaTypePhoto,
		URLs: models.VariantURLs{
			storage.SizeThumbnail: "https://cdn.example.com/t",
			storage.SizeLarge:     "https://cdn.example.com/l",
		},
	}

	t.Run("success", func(t *testing.T) {
		svc, m := newMediaService(ctrl, 0)

		m.businesses.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
		m.reader.EXPECT().GetByID(gomock.Any(), mediaID).Return(row, nil)
		m.store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.writer.EXPECT().Delete(gomock.Any(), mediaID).Return(nil)
		m.cache.EXPECT().Delete(gomock.Any(), businessID).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), businessID, mediaID, owner))
	})

	t.Run("media belongs to another business", func(t *testing.T) {
		svc, m := newMediaService(ctrl, 0)

		foreign := *row
		foreign.BusinessID = uuid.New()
		m.businesses.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
		m.reader.EXPECT().GetByID(gomock.Any(), mediaID).Return(&foreign, nil)

		err := svc.Delete(context.Background(), businessID, mediaID, owner)
		assert.ErrorIs(t, err, services.ErrMediaNotFound)
	})
}

var errNoSuchKey = &noSuchKeyError{}

type noSuchKeyError struct{}

func (e *noSuchKeyError) Error() string { return "NoSuchKey: the specified key does not exist" }
