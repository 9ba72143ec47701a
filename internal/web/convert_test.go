package web

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullDecimal(t *testing.T) {
	assert.False(t, NullDecimal("").Valid)
	assert.False(t, NullDecimal("  ").Valid)
	assert.False(t, NullDecimal("abc").Valid)

	d := NullDecimal(" 10.50 ")
	require.True(t, d.Valid)
	assert.True(t, d.Decimal.Equal(decimal.RequireFromString("10.5")))
	assert.Equal(t, "10.5", DecimalString(d))
	assert.Empty(t, DecimalString(decimal.NullDecimal{}))

	assert.True(t, Decimal("x").IsZero())
	assert.True(t, Decimal("3.25").Equal(decimal.RequireFromString("3.25")))
}

func TestInt(t *testing.T) {
	assert.Nil(t, NullInt(""))
	assert.Nil(t, NullInt("1.5"))
	n := NullInt("42")
	require.NotNil(t, n)
	assert.Equal(t, 42, *n)
	assert.Equal(t, "42", IntString(n))
	assert.Empty(t, IntString(nil))
	assert.Equal(t, 0, Int("x"))
	assert.Equal(t, 7, Int(" 7 "))
}

func TestDateTime(t *testing.T) {
	assert.Nil(t, DateTime(""))
	assert.Nil(t, DateTime("2024-13-01T00:00"))

	d := DateTime("2024-03-01T09:30")
	require.NotNil(t, d)
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 9, d.Hour())
	assert.Equal(t, "2024-03-01T09:30", DateTimeString(d))
	assert.Empty(t, DateTimeString(nil))
}
