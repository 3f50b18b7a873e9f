package models

import "github.com/golang-jwt/jwt/v5"

// Role is the access level a session has over the document tree.
// Enforcement happens above the tree engine: Owner and Editor may invoke
// mutations, Viewer is limited to reads and search.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// ValidRole reports whether r is a member of the Role enumeration.
func ValidRole(r Role) bool {
	switch r {
	case RoleOwner, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// CanMutate reports whether the role permits state-changing operations.
func (r Role) CanMutate() bool {
	return r == RoleOwner || r == RoleEditor
}

// Claims represents the JWT claims structure issued by the identity
// provider. The workspace role rides in a custom claim.
type Claims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string `json:"email"`
	Role                 Role   `json:"role"` // owner, editor or viewer
}

// GetUserID returns the user ID from the JWT subject claim.
// This is the primary identifier for the authenticated user.
func (c *Claims) GetUserID() string {
	return c.Subject
}
