package models

// Role is the closed set of privilege levels. NORMAL identities are scoped
// to resources they own; ADMIN identities are unscoped.
type Role string

const (
	RoleNormal Role = "NORMAL"
	RoleAdmin  Role = "ADMIN"
)

// ParseRole maps a stored or transmitted role string onto the closed enum.
// Anything unrecognized collapses to RoleNormal (least privilege), so a
// corrupted or hand-crafted role value can never escalate.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleNormal
}

// IsAdmin reports whether the role grants unscoped access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User is a registered account. ID and Email are immutable after creation;
// PasswordHash holds a bcrypt hash, never plaintext.
type User struct {
	ID           string
	Nickname     string
	Email        string
	PasswordHash string
	Role         Role
}
