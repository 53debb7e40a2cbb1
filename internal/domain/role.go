package domain

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

type Permission string

const (
	PermissionAdminAdd     Permission = "admin:read"
	PermissionAdminUpdate  Permission = "admin:update"
	PermissionAdminDelete  Permission = "admin:delete"
	PermissionAdminView    Permission = "admin:view"
	PermissionManagerView  Permission = "manager:view"
	PermissionEmployeeView Permission = "employee:view"
)

// rolePermissions is fixed at compile time. Roles outside this table carry
// no permissions and only their ROLE_ authority.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAdminAdd,
		PermissionAdminUpdate,
		PermissionAdminDelete,
		PermissionAdminView,
		PermissionManagerView,
		PermissionEmployeeView,
	},
	RoleManager: {
		PermissionManagerView,
		PermissionEmployeeView,
	},
	RoleEmployee: {
		PermissionEmployeeView,
	},
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

func (r Role) Permissions() []Permission {
	perms := rolePermissions[r]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// Authority returns the role authority string, e.g. ROLE_ADMIN.
func (r Role) Authority() string {
	return "ROLE_" + string(r)
}

// Authorities returns the role's permission tags followed by its role
// authority. Consumers test membership of a ROLE_ entry for route guards.
func (r Role) Authorities() []string {
	perms := rolePermissions[r]
	out := make([]string, 0, len(perms)+1)
	for _, p := range perms {
		out = append(out, string(p))
	}
	return append(out, r.Authority())
}
