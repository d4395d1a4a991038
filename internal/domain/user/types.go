package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is issued by the identity provider and trusted as given.
type Role string

const (
	RoleSkier Role = "skier"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

var roleRank = map[Role]int{
	RoleSkier: 1,
	RoleStaff: 2,
	RoleAdmin: 3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles never qualify.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	want, ok := roleRank[min]
	return ok && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
