package web

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormFieldNeverEchoesPassword(t *testing.T) {
	html := string(formField("Password", "password", "password", "Secret123", nil))
	assert.NotContains(t, html, "Secret123")
	assert.Contains(t, html, `value=""`)
}

func TestFormFieldEscapesAndShowsError(t *testing.T) {
	html := string(formField("Account", "account", "text", `<b>"x"</b>`, FieldErrors{"account": "account is mandatory"}))
	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "&lt;b&gt;")
	assert.Contains(t, html, `<p class="text-danger">account is mandatory</p>`)
}

func TestFormatters(t *testing.T) {
	n := 5
	assert.Equal(t, "5", formatNumber(&n))
	assert.Equal(t, "", formatNumber((*int)(nil)))
	assert.Equal(t, "1.25", formatNumber(decimal.NewNullDecimal(decimal.RequireFromString("1.25"))))
	assert.Equal(t, "", formatNumber(decimal.NullDecimal{}))
	assert.Equal(t, "7", formatNumber(decimal.NewFromInt(7)))

	d := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-01 09:30", formatDate(&d))
	assert.Equal(t, "", formatDate(nil))
}
