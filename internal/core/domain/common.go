package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Role is the authorization role of an authenticated user.
type Role string

const (
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// ParseRole validates a role string coming from a token claim or request.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleHR, RoleEmployee:
		return Role(s), true
	}
	return "", false
}

// AuthContext identifies the caller of a service operation. It is always passed
// explicitly as an argument; services never read caller identity from ambient state.
type AuthContext struct {
	UserID string
	Role   Role
}

// IsHR reports whether the caller holds the HR role.
func (a AuthContext) IsHR() bool {
	return a.Role == RoleHR
}

// CanActOn reports whether the caller may operate on the given user's data:
// HR is unrestricted, employees only reach their own records.
func (a AuthContext) CanActOn(targetUserID string) bool {
	return a.IsHR() || a.UserID == targetUserID
}
