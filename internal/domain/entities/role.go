package entities

// Role is the caller-supplied role claim. Writes and analysis require
// operator; reads are open to both.
type Role string

const (
	RoleOperator Role = "operator"
	RoleBasic    Role = "basic"
)

// ParseRole rejects unknown role values at the boundary.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleOperator, RoleBasic:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// RoleContext is the explicit caller identity passed into every write
// operation. Stores and the analysis agent never re-derive the role from
// ambient request state.
type RoleContext struct {
	UserID string
	Role   Role
}

// CanWrite reports whether the caller may ingest or trigger analysis.
func (rc RoleContext) CanWrite() bool {
	return rc.Role == RoleOperator
}
