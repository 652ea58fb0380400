package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleEmployee, PermissionAttendanceCreate, true},
		{RoleEmployee, PermissionAttendanceViewOwn, true},
		{RoleEmployee, PermissionReportsExport, false},
		{RoleEmployee, PermissionDashboardViewAll, false},
		{RoleManager, PermissionReportsExport, true},
		{RoleManager, PermissionAttendanceCreate, true},
		{Role("intern"), PermissionViewOwnProfile, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.permission), func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestIsManager(t *testing.T) {
	assert.True(t, (&User{Role: RoleManager}).IsManager())
	assert.False(t, (&User{Role: RoleEmployee}).IsManager())
}
