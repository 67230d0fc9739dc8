package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexus-os/office-backend/internal/domain/user"
)

func ptr(s string) *string { return &s }

func TestVisibleTo(t *testing.T) {
	tests := []struct {
		name string
		n    Notification
		user string
		role user.Role
		want bool
	}{
		{"all reaches admins", Notification{TargetRole: TargetAll}, "u1", user.RoleAdmin, true},
		{"all reaches employees", Notification{TargetRole: TargetAll}, "u2", user.RoleEmployee, true},
		{"admin only", Notification{TargetRole: TargetAdmin}, "u2", user.RoleEmployee, false},
		{"employee only", Notification{TargetRole: TargetEmployee}, "u2", user.RoleEmployee, true},
		{"targeted at me", Notification{TargetRole: TargetEmployee, TargetUserID: ptr("u2")}, "u2", user.RoleEmployee, true},
		{"targeted at someone else", Notification{TargetRole: TargetEmployee, TargetUserID: ptr("u3")}, "u2", user.RoleEmployee, false},
		{"targeted at me with other role", Notification{TargetRole: TargetAdmin, TargetUserID: ptr("u2")}, "u2", user.RoleEmployee, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.VisibleTo(tt.user, tt.role))
		})
	}
}

func TestAppliesTo(t *testing.T) {
	tests := []struct {
		name string
		n    Notification
		user string
		role user.Role
		want bool
	}{
		{"targeted at me", Notification{TargetRole: TargetAdmin, TargetUserID: ptr("u2")}, "u2", user.RoleEmployee, true},
		{"all", Notification{TargetRole: TargetAll}, "u2", user.RoleEmployee, true},
		{"role match", Notification{TargetRole: TargetEmployee}, "u2", user.RoleEmployee, true},
		{"role match but targeted elsewhere", Notification{TargetRole: TargetEmployee, TargetUserID: ptr("u3")}, "u2", user.RoleEmployee, true},
		{"other role", Notification{TargetRole: TargetAdmin}, "u2", user.RoleEmployee, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.AppliesTo(tt.user, tt.role))
		})
	}
}
