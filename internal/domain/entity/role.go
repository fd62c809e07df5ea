package entity

// Role describes a user's position within their family.
type Role string

const (
	// RoleAdmin is assigned to the user who created the family.
	RoleAdmin Role = "ADMIN"
	// RoleMember is the default role, and the role of users who join an existing family.
	RoleMember Role = "MEMBER"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

func (r Role) String() string {
	return string(r)
}
