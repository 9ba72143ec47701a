package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMatchPattern(t *testing.T) {
	cases := []struct {
		pattern, path string
		want          bool
	}{
		{"/login", "/login", true},
		{"/login", "/login/x", false},
		{"/user/**", "/user", true},
		{"/user/**", "/user/list", true},
		{"/user/**", "/user/update/3", true},
		{"/user/**", "/userx", false},
		{"/css/**", "/css/poseidon.css", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MatchPattern(tc.pattern, tc.path), "%s ~ %s", tc.pattern, tc.path)
	}
}

func TestPolicyRequired(t *testing.T) {
	p := NewPolicy(
		[]string{"/login", "/css/**", "/app/login"},
		[]string{"/user/**", "/admin/**", "/app/secure/**"},
	)

	assert.Equal(t, RequirePublic, p.Required("/login"))
	assert.Equal(t, RequirePublic, p.Required("/css/poseidon.css"))
	assert.Equal(t, RequireAdmin, p.Required("/user/list"))
	assert.Equal(t, RequireAdmin, p.Required("/app/secure/article-details"))
	assert.Equal(t, RequireAuthenticated, p.Required("/bidList/list"))
	assert.Equal(t, RequireAuthenticated, p.Required("/"))
}

func TestPolicyPublicWinsOverAdmin(t *testing.T) {
	p := NewPolicy([]string{"/admin/health"}, []string{"/admin/**"})
	assert.Equal(t, RequirePublic, p.Required("/admin/health"))
	assert.Equal(t, RequireAdmin, p.Required("/admin/home"))
}

func TestSessionExpiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &Session{ExpiresAt: now.Add(10 * time.Minute)}

	assert.False(t, s.IsExpired(now))
	assert.True(t, s.IsExpired(now.Add(10*time.Minute)))
	assert.False(t, s.NeedsRefresh(now, 10*time.Minute))
	assert.True(t, s.NeedsRefresh(now.Add(6*time.Minute), 10*time.Minute))
}
