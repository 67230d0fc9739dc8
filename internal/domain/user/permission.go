package user

type Permission string

const (
	// Self service
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionDirectoryView  Permission = "directory.view"
	PermissionTaskManageOwn  Permission = "task.manage_own"
	PermissionPayrollViewOwn Permission = "payroll.view_own"
	PermissionDocumentView   Permission = "document.view"

	// Attendance
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Leave
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Announcements
	PermissionAnnouncementView   Permission = "announcement.view"
	PermissionAnnouncementManage Permission = "announcement.manage"

	// Administration
	PermissionUserManage     Permission = "user.manage"
	PermissionPayrollViewAll Permission = "payroll.view_all"
	PermissionDashboardView  Permission = "dashboard.view"
	PermissionSystemReset    Permission = "system.reset"
)

// RolePermissions maps roles to their permissions. Check-in and leave
// creation belong to the employee area only.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionDirectoryView,
		PermissionTaskManageOwn,
		PermissionPayrollViewOwn,
		PermissionDocumentView,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionAnnouncementView,
		PermissionAnnouncementManage,
		PermissionUserManage,
		PermissionPayrollViewAll,
		PermissionDashboardView,
		PermissionSystemReset,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionDirectoryView,
		PermissionTaskManageOwn,
		PermissionPayrollViewOwn,
		PermissionDocumentView,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionAnnouncementView,
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
