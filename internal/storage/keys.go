package storage

import (
	"fmt"

	"github.com/google/uuid"
)

// Object key prefixes, one per asset type.
const (
	PrefixTempUploads    = "temp-uploads"
	PrefixBusinessLogos  = "business-logos"
	PrefixBusinessPhotos = "business-photos"
)

// Size variant names, used as per-size key suffixes.
const (
	SizeThumbnail = "thumbnail"
	SizeSmall     = "small"
	SizeMedium    = "medium"
	SizeLarge     = "large"
	SizeLogo      = "logo"
)

// TempUploadKey builds the key a client uploads the original file to.
func TempUploadKey(uploadID uuid.UUID, fileName string) string {
	return fmt.Sprintf("%s/%s/%s", PrefixTempUploads, uploadID, fileName)
}

// VariantKey builds the deterministic key for one generated size variant.
// Logos and photos live under separate prefixes.
func VariantKey(mediaType string, businessID, mediaID uuid.UUID, size string) string {
	prefix := PrefixBusinessPhotos
	if mediaType == "logo" {
		prefix = PrefixBusinessLogos
	}
	return fmt.Sprintf("%s/%s/%s/%s.jpg", prefix, businessID, mediaID, size)
}
