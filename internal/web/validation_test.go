package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Account     string `form:"account" binding:"required,max=30"`
	BidQuantity string `form:"bidQuantity" binding:"omitempty,numeric,amount"`
	OrderNumber string `form:"orderNumber" binding:"omitempty,number,max=9"`
	Date        string `form:"bidListDate" binding:"omitempty,datetime=2006-01-02T15:04"`
	Password    string `form:"password" binding:"omitempty,strongpassword"`
	Role        string `form:"role" binding:"omitempty,role"`
	Username    string `form:"username" binding:"omitempty,alnum_username"`
}

func bind(t *testing.T, values url.Values) FieldErrors {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req

	var form sampleForm
	return BindForm(c, &form)
}

func TestBindForm_Valid(t *testing.T) {
	errs := bind(t, url.Values{
		"account":     {"ACC-1"},
		"bidQuantity": {"10.5"},
		"orderNumber": {"12"},
		"bidListDate": {"2024-03-01T09:30"},
		"password":    {"Secret123"},
		"role":        {"USER"},
		"username":    {"jdoe"},
	})
	assert.False(t, errs.Has())
}

func TestBindForm_FieldErrorsUseFormNames(t *testing.T) {
	errs := bind(t, url.Values{
		"bidQuantity": {"ten"},
		"orderNumber": {"1.5"},
		"bidListDate": {"yesterday"},
		"password":    {"weak"},
		"role":        {"ROOT"},
		"username":    {"j doe"},
	})
	require.True(t, errs.Has())

	assert.Equal(t, "account is mandatory", errs["account"])
	assert.Equal(t, "must be a number", errs["bidQuantity"])
	assert.Equal(t, "must be an integer", errs["orderNumber"])
	assert.Contains(t, errs["bidListDate"], "must be a date")
	assert.Contains(t, errs["password"], "uppercase letter")
	assert.Equal(t, "Role must be ADMIN or USER", errs["role"])
	assert.Contains(t, errs["username"], "letters and digits")
}

func TestBindForm_MaxLength(t *testing.T) {
	errs := bind(t, url.Values{"account": {strings.Repeat("x", 31)}})
	assert.Equal(t, "must be at most 30 characters", errs["account"])
}

func TestBindForm_AmountDigits(t *testing.T) {
	for _, tc := range []struct {
		value string
		ok    bool
	}{
		{"999999999999.99999999", true},
		{"-000123.45000000000", true},
		{"1000000000000", false},
		{"0.123456789", false},
	} {
		t.Run(tc.value, func(t *testing.T) {
			errs := bind(t, url.Values{"account": {"ACC"}, "bidQuantity": {tc.value}})
			if tc.ok {
				assert.False(t, errs.Has(), errs)
				return
			}
			assert.Equal(t, "must have at most 12 integer digits and 8 decimals", errs["bidQuantity"])
		})
	}
}
