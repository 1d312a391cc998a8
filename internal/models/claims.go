package models

// Role represents user roles in the system
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

// Claims represents JWT claims carried by API callers. Tokens are issued by
// the agency's identity service; this core only validates them.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Exp      int64  `json:"exp"`
}

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleOperator, RoleViewer:
		return true
	default:
		return false
	}
}

// CanMutate reports whether the role may hit mutating endpoints
// (alert publication, usage reporting, channel management).
func (r Role) CanMutate() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleOperator:
		return true
	default:
		return false
	}
}
