package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("ADMIN")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	r, err = ParseRole(" USER ")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, r)

	for _, bad := range []string{"", "admin", "ROOT", "ROLE_ADMIN"} {
		_, err := ParseRole(bad)
		assert.ErrorIs(t, err, ErrUnknownRole, bad)
	}
}

func TestAuthorityFor(t *testing.T) {
	assert.Equal(t, RoleAdmin, AuthorityFor("ADMIN"))
	assert.Equal(t, RoleUser, AuthorityFor("USER"))
	assert.Equal(t, RoleUser, AuthorityFor("admin"))
	assert.Equal(t, RoleUser, AuthorityFor(""))
}

func TestRoleAllows(t *testing.T) {
	assert.True(t, RoleAdmin.Allows(RequireAdmin))
	assert.True(t, RoleAdmin.Allows(RequireAuthenticated))
	assert.True(t, RoleUser.Allows(RequireAuthenticated))
	assert.False(t, RoleUser.Allows(RequireAdmin))
	assert.False(t, Role("").Allows(RequireAuthenticated))
	assert.False(t, RoleAdmin.Allows(Requirement(42)))
}

func TestPrincipalNilSafe(t *testing.T) {
	var p *Principal
	assert.False(t, p.IsAdmin())
	assert.False(t, p.Is(1))
	assert.Empty(t, p.Actor())
	assert.Empty(t, p.DisplayName())

	p = &Principal{UserID: 7, Username: "jdoe", Role: RoleUser}
	assert.True(t, p.Is(7))
	assert.Equal(t, "jdoe", p.DisplayName())
	p.Fullname = "John Doe"
	assert.Equal(t, "John Doe", p.DisplayName())
}
