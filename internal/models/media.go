package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Media types.
const (
	MediaTypeLogo  = "logo"
	MediaTypePhoto = "photo"
)

// VariantURLs maps a size variant name (thumbnail/small/medium/large/logo)
// to its object-storage URL, stored as JSONB.
type VariantURLs map[string]string

func (v VariantURLs) Value() (driver.Value, error) { return json.Marshal(v) }
func (v *VariantURLs) Scan(src any) error          { return scanJSON(src, v) }

// MediaDB represents a business media record in the database
type MediaDB struct {
	MediaID     uuid.UUID   `json:"media_id" db:"media_id"`       // Primary key
	BusinessID  uuid.UUID   `json:"business_id" db:"business_id"` // FK to businesses
	MediaType   string      `json:"media_type" db:"media_type"`   // logo | photo
	URLs        VariantURLs `json:"urls" db:"urls"`               // One URL per generated size variant (JSONB)
	Description string      `json:"description" db:"description"`
	SortOrder   int         `json:"sort_order" db:"sort_order"` // Display ordering within the business
	FileName    string      `json:"file_name" db:"file_name"`   // Original upload name
	FileSize    int64       `json:"file_size" db:"file_size"`   // Original size in bytes
	ContentType string      `json:"content_type" db:"content_type"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

// Media is the public DTO for a media item.
type Media struct {
	MediaID     uuid.UUID   `json:"id"`
	BusinessID  uuid.UUID   `json:"business_id"`
	MediaType   string      `json:"type"`
	URLs        VariantURLs `json:"urls"`
	Description string      `json:"description"`
	SortOrder   int         `json:"sort_order"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ToMedia maps a persistence row to the public DTO, dropping file metadata.
func (m *MediaDB) ToMedia() *Media {
	return &Media{
		MediaID:     m.MediaID,
		BusinessID:  m.BusinessID,
		MediaType:   m.MediaType,
		URLs:        m.URLs,
		Description: m.Description,
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
	}
}
