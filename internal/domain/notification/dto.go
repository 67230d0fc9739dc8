package notification

// ============= Request DTOs =============

// CreateNotificationRequest represents a notification raised by another service
type CreateNotificationRequest struct {
	TargetRole   TargetRole
	TargetUserID *string
	Message      string
	Type         NotificationType
}

// ============= Response DTOs =============

// NotificationListResponse represents the notifications visible to one user
type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
	UnreadCount   int            `json:"unread_count"`
}

// SSETokenResponse represents the SSE token response
type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
