//go:build unit

package user_test

import (
	"testing"

	"lift-reservation/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"skier", "staff", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("viewer")
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	_, err = user.NewRole("")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestRole_AtLeast(t *testing.T) {
	testCases := []struct {
		name string
		role user.Role
		min  user.Role
		want bool
	}{
		{name: "skier is not staff", role: user.RoleSkier, min: user.RoleStaff, want: false},
		{name: "staff meets staff", role: user.RoleStaff, min: user.RoleStaff, want: true},
		{name: "admin exceeds staff", role: user.RoleAdmin, min: user.RoleStaff, want: true},
		{name: "unknown role never qualifies", role: user.Role("root"), min: user.RoleSkier, want: false},
		{name: "unknown minimum never matches", role: user.RoleAdmin, min: user.Role("root"), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.role.AtLeast(tc.min))
		})
	}
}
