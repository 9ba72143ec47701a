package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	for _, ok := range []string{"admin", "jdoe42", "A1"} {
		assert.True(t, ValidUsername(ok), ok)
	}
	for _, bad := range []string{"", "john doe", "john.doe", "jöhn", "user_1", "<script>"} {
		assert.False(t, ValidUsername(bad), bad)
	}
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("Secret123"))
	assert.True(t, ValidPassword("ABCDEFG1"))

	assert.False(t, ValidPassword("Sec123"), "too short")
	assert.False(t, ValidPassword("secret123"), "no uppercase")
	assert.False(t, ValidPassword("SecretPass"), "no digit")
	assert.False(t, ValidPassword(""))

	for _, tc := range []struct {
		name     string
		password string
		want     bool
	}{
		{"seven characters in twelve bytes", "Aé1éééé", false},
		{"eight multibyte characters", "Aé1ééééé", true},
		{"non-ASCII uppercase only", "Éclair12", false},
		{"non-ASCII digit only", "Secret١٢٣", false},
		{"72 bytes", "A1" + strings.Repeat("a", 70), true},
		{"73 bytes", "A1" + strings.Repeat("a", 71), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidPassword(tc.password))
		})
	}
}
