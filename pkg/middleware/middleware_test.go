package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGinRecoveryMiddleware(t *testing.T) {
	serve := func(onPanic func(*gin.Context, error)) *httptest.ResponseRecorder {
		r := gin.New()
		r.Use(GinRecoveryMiddleware(onPanic))
		r.GET("/boom", func(*gin.Context) { panic("kaboom") })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
		return w
	}

	t.Run("renders through hook", func(t *testing.T) {
		var got error
		w := serve(func(c *gin.Context, err error) {
			got = err
			c.String(http.StatusInternalServerError, "error page")
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "error page", w.Body.String())
		require.Error(t, got)
		assert.Contains(t, got.Error(), "kaboom")
	})

	t.Run("status only without hook", func(t *testing.T) {
		w := serve(nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestGinRecoveryMiddlewareKeepsWrittenResponse(t *testing.T) {
	r := gin.New()
	called := false
	r.Use(GinRecoveryMiddleware(func(*gin.Context, error) { called = true }))
	r.GET("/partial", func(c *gin.Context) {
		c.String(http.StatusAccepted, "started")
		panic(errors.New("late failure"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/partial", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "started", w.Body.String())
	assert.False(t, called)
}
