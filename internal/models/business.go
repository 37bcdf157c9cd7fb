package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Categories is the fixed business taxonomy. Incoming categories must be a
// subset of this list.
var Categories = []string{
	"restaurant",
	"cafe",
	"retail",
	"grocery",
	"beauty",
	"health",
	"fitness",
	"automotive",
	"home_services",
	"professional_services",
	"entertainment",
	"education",
	"pets",
	"other",
}

// ValidCategory reports whether c belongs to the fixed taxonomy.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// BusinessLocation is the business address plus geocoordinates, stored as JSONB.
type BusinessLocation struct {
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Region     string  `json:"region,omitempty"`
	PostalCode string  `json:"postal_code,omitempty"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
}

func (l BusinessLocation) Value() (driver.Value, error) { return json.Marshal(l) }
func (l *BusinessLocation) Scan(src any) error          { return scanJSON(src, l) }

// DayHours describes one weekday: either closed, or an open/close interval
// in "HH:MM" 24h format.
type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// Hours maps lowercase weekday names ("monday".."sunday") to day hours.
type Hours map[string]DayHours

func (h Hours) Value() (driver.Value, error) { return json.Marshal(h) }
func (h *Hours) Scan(src any) error          { return scanJSON(src, h) }

// Contact holds the business contact info, stored as JSONB.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

func (c Contact) Value() (driver.Value, error) { return json.Marshal(c) }
func (c *Contact) Scan(src any) error          { return scanJSON(src, c) }

// StringList is a JSONB-backed list of strings (categories, services).
type StringList []string

func (s StringList) Value() (driver.Value, error) { return json.Marshal(s) }
func (s *StringList) Scan(src any) error          { return scanJSON(src, s) }

// BusinessDB represents a business record in the database
type BusinessDB struct {
	BusinessID  uuid.UUID        `json:"business_id" db:"business_id"` // Primary key
	OwnerID     uuid.UUID        `json:"owner_id" db:"owner_id"`       // FK to users
	Name        string           `json:"name" db:"name"`               // Unique per owner, best-effort
	Description string           `json:"description" db:"description"`
	Location    BusinessLocation `json:"location" db:"location"`   // Address + coordinates (JSONB)
	Categories  StringList       `json:"categories" db:"categories"` // Subset of the fixed taxonomy (JSONB)
	Hours       Hours            `json:"hours" db:"hours"`           // Per-weekday open/close (JSONB)
	Contact     Contact          `json:"contact" db:"contact"`       // Phone/email/website (JSONB)
	Services    StringList       `json:"services" db:"services"`     // Offered services (JSONB)
	IsActive    bool             `json:"is_active" db:"is_active"`   // Soft-delete flag
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
}

// Business is the public DTO for a business listing, media included.
type Business struct {
	BusinessID  uuid.UUID        `json:"id"`
	OwnerID     uuid.UUID        `json:"owner_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Location    BusinessLocation `json:"location"`
	Categories  StringList       `json:"categories"`
	Hours       Hours            `json:"hours"`
	Contact     Contact          `json:"contact"`
	Services    StringList       `json:"services"`
	IsActive    bool             `json:"is_active"`
	Media       []*Media         `json:"media"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ToBusiness maps a persistence row to the public DTO. Media is attached
// separately by the service layer.
func (b *BusinessDB) ToBusiness() *Business {
	return &Business{
		BusinessID:  b.BusinessID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Location:    b.Location,
		Categories:  b.Categories,
		Hours:       b.Hours,
		Contact:     b.Contact,
		Services:    b.Services,
		IsActive:    b.IsActive,
		Media:       []*Media{},
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// BusinessFilter narrows business listings.
type BusinessFilter struct {
	Category string     // exact category from the taxonomy
	Search   string     // substring match on name/description
	OwnerID  *uuid.UUID // listings of a single owner
}
