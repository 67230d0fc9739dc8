// Package kvstore implements the domain repositories on top of the
// persistent store. Every repository owns exactly one store key and reads the
// whole list on each call; there is no index.
package kvstore

// Store keys, before namespacing
const (
	KeyUsers         = "users"
	KeyAttendance    = "attendance"
	KeyLeaves        = "leaves"
	KeyAnnouncements = "announcements"
	KeyDocuments     = "documents"
	KeyTasks         = "tasks"
	KeyPayroll       = "payroll"
	KeyNotifications = "notifications"
)
