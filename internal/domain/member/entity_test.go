//go:build unit

package member_test

import (
	"testing"

	"membership-portal/internal/domain/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUsername(t *testing.T, s string) member.Username {
	t.Helper()
	u, err := member.NewUsername(s)
	require.NoError(t, err)
	return u
}

func TestNewUsername(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "simple", input: "ayse.yilmaz", want: "ayse.yilmaz"},
		{name: "normalizes case and whitespace", input: "  Ayse.Yilmaz  ", want: "ayse.yilmaz"},
		{name: "minimum length", input: "ab1", want: "ab1"},
		{name: "too short", input: "ab", errIs: member.ErrInvalidUsername},
		{name: "spaces inside", input: "ayse yilmaz", errIs: member.ErrInvalidUsername},
		{name: "empty", input: "", errIs: member.ErrInvalidUsername},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := member.NewUsername(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, u.String())
		})
	}
}

func TestNewMember(t *testing.T) {
	username := mustUsername(t, "ayse.yilmaz")

	t.Run("starts unapproved", func(t *testing.T) {
		m, err := member.NewMember("Ayse", "Yilmaz", username, "hashed", false)
		require.NoError(t, err)
		assert.False(t, m.IsApproved())
		assert.Equal(t, member.RoleMember, m.Role())
	})

	t.Run("admin flag drives role", func(t *testing.T) {
		m, err := member.NewMember("Ayse", "Yilmaz", username, "hashed", true)
		require.NoError(t, err)
		assert.Equal(t, member.RoleAdmin, m.Role())
	})

	t.Run("approve flips state", func(t *testing.T) {
		m, err := member.NewMember("Ayse", "Yilmaz", username, "hashed", false)
		require.NoError(t, err)
		m.Approve()
		assert.True(t, m.IsApproved())
	})

	t.Run("requires name and surname", func(t *testing.T) {
		_, err := member.NewMember(" ", "Yilmaz", username, "hashed", false)
		assert.ErrorIs(t, err, member.ErrEmptyName)

		_, err = member.NewMember("Ayse", "", username, "hashed", false)
		assert.ErrorIs(t, err, member.ErrEmptyName)
	})
}
