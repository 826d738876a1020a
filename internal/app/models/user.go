package models

import (
	"time"
)

// User defines the user model based on the 'users' table. UserID is the
// login identifier participants type in; it is normalized to uppercase.
type User struct {
	ID                 string    `json:"id" db:"id"`
	UserID             string    `json:"userId" db:"user_id" example:"WS2024-017"`
	Password           string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Name               string    `json:"name" db:"name" example:"Ada Lovelace"`
	Email              string    `json:"email,omitempty" db:"email"`
	Role               RoleType  `json:"role" db:"role" example:"participant"`
	NeedsPasswordSetup bool      `json:"needsPasswordSetup" db:"needs_password_setup"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}
