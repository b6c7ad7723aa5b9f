package models

import "time"

// Role classifies a user account. The set of valid roles is fixed and
// enforced both here and by a CHECK constraint on the users table.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// UserRoles is the exhaustive set of accepted Role values.
var UserRoles = []Role{RoleAdmin, RoleMember, RoleViewer}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	for _, role := range UserRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User represents an account entity used for authentication.
// The API exposes users read-only; accounts are created through the
// registration endpoint or directly by an operator.
//
// PasswordHash holds the bcrypt hash of the user's password and must never
// cross a serialization boundary.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`

	// PasswordHash is the bcrypt digest of the account password.
	// Excluded from JSON in both directions.
	PasswordHash string `json:"-"`

	// Operational flags mirroring the back-office account model.
	// Stored but never exposed through the public API.
	IsStaff     bool `json:"-"`
	IsSuperuser bool `json:"-"`
	IsActive    bool `json:"-"`

	DateJoined time.Time `json:"date_joined"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the inbound payload for registration and login.
// Password is accepted as plain text over the transport and hashed before
// it ever reaches storage.
type Credentials struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
}
