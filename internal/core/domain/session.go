package domain

// SessionClaims are the facts recovered from a verified session token.
type SessionClaims struct {
	SubjectID string `json:"subject_id"`
	Role      Role   `json:"role"`
}

// IsAdmin reports whether the claims carry the admin role. Nil claims are
// never admin.
func (c *SessionClaims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
