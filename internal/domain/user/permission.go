package user

type Permission string

const (
	// Self service
	PermissionViewOwnProfile    Permission = "profile.view_own"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionDashboardViewOwn  Permission = "dashboard.view_own"

	// Management
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionReportsView       Permission = "reports.view"
	PermissionReportsExport     Permission = "reports.export"
	PermissionDashboardViewAll  Permission = "dashboard.view_all"
	PermissionEmployeeViewAll   Permission = "employee.view_all"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionAttendanceCreate,
		PermissionAttendanceViewOwn,
		PermissionDashboardViewOwn,
		PermissionAttendanceViewAll,
		PermissionReportsView,
		PermissionReportsExport,
		PermissionDashboardViewAll,
		PermissionEmployeeViewAll,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionAttendanceCreate,
		PermissionAttendanceViewOwn,
		PermissionDashboardViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
