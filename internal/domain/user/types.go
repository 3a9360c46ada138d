package user

import "strings"

type Role string

const (
	RoleEditor     Role = "Editor"
	RoleManager    Role = "Manager"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "Super Admin"
)

var roleRank = map[Role]int{
	RoleEditor:     1,
	RoleManager:    2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

// NewRole accepts the display names case-insensitively, plus "super_admin"/"superadmin".
func NewRole(s string) (Role, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)
	if key == "superadmin" {
		key = "super admin"
	}
	for r := range roleRank {
		if strings.ToLower(string(r)) == key {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above min in Editor < Manager < Admin < Super Admin.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min] && roleRank[r] > 0
}

func (r Role) String() string { return string(r) }
