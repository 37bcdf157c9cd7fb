package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User roles. Role gating happens in middleware; the whitelist is enforced
// at registration time in the auth service.
const (
	RoleConsumer      = "consumer"
	RoleBusinessOwner = "business_owner"
	RoleAdmin         = "admin"
)

// ValidRoles is the set of roles accepted at registration.
var ValidRoles = map[string]bool{
	RoleConsumer:      true,
	RoleBusinessOwner: true,
	RoleAdmin:         true,
}

// UserLocation holds the user's location preferences, stored as JSONB.
type UserLocation struct {
	City       string  `json:"city,omitempty"`
	Region     string  `json:"region,omitempty"`
	PostalCode string  `json:"postal_code,omitempty"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
}

func (l UserLocation) Value() (driver.Value, error) { return json.Marshal(l) }
func (l *UserLocation) Scan(src any) error          { return scanJSON(src, l) }

// UserDB represents a user record in the database
type UserDB struct {
	UserID        uuid.UUID    `json:"user_id" db:"user_id"`               // Primary key
	Email         string       `json:"email" db:"email"`                   // Unique email
	PasswordHash  string       `json:"-" db:"password_hash"`               // Hashed password, never serialized
	Role          string       `json:"role" db:"role"`                     // consumer | business_owner | admin
	FirstName     string       `json:"first_name" db:"first_name"`         // Profile first name
	LastName      string       `json:"last_name" db:"last_name"`           // Profile last name
	Phone         string       `json:"phone" db:"phone"`                   // Contact phone
	Location      UserLocation `json:"location" db:"location"`             // Location preferences (JSONB)
	EmailVerified bool         `json:"email_verified" db:"email_verified"` // Email verification flag
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`         // Creation timestamp
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`         // Last update timestamp
}

// User is the public DTO for a user, with sensitive fields stripped.
type User struct {
	UserID        uuid.UUID    `json:"id"`
	Email         string       `json:"email"`
	Role          string       `json:"role"`
	FirstName     string       `json:"first_name"`
	LastName      string       `json:"last_name"`
	Phone         string       `json:"phone"`
	Location      UserLocation `json:"location"`
	EmailVerified bool         `json:"email_verified"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// ToUser maps a persistence row to the public DTO, dropping the password hash.
func (u *UserDB) ToUser() *User {
	return &User{
		UserID:        u.UserID,
		Email:         u.Email,
		Role:          u.Role,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		Location:      u.Location,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// AuthUser is the identity attached to a request by the auth middlewares.
type AuthUser struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	EmailVerified bool   `json:"email_verified"`
}
