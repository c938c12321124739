package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobportal-forms/internal/delivery/http/middleware"
	"go-jobportal-forms/internal/delivery/http/response"
	"go-jobportal-forms/internal/domain"
	redisrepo "go-jobportal-forms/internal/repository/redis"
	"go-jobportal-forms/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		fromCtx, _ := c.Request.Context().Value(domain.KeyRequestID).(string)
		assert.Equal(t, c.GetString(string(domain.KeyRequestID)), fromCtx)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(middleware.HeaderRequestID))
}

func TestRequireUser(t *testing.T) {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RequireUser())
	r.POST("/apply", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(domain.KeyUserID)))
	})

	t.Run("rejects anonymous callers with a login redirect", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/apply", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		resp := decode(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "Please log in to continue.", resp.Message)
		assert.Equal(t, map[string]interface{}{"next_view": domain.ViewUserLogin}, resp.Data)
	})

	t.Run("accepts header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/apply", nil)
		req.Header.Set(middleware.HeaderUserID, "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u-1", w.Body.String())
	})

	t.Run("accepts cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/apply", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CookieUserID, Value: "u-2"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "u-2", w.Body.String())
	})
}

func TestSingleSubmission(t *testing.T) {
	guard := redisrepo.NewMemoryInflightGuard()
	entered := make(chan struct{})
	release := make(chan struct{})

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/submit", middleware.SingleSubmission("apply", guard, time.Minute), func(c *gin.Context) {
		entered <- struct{}{}
		<-release
		c.Status(http.StatusCreated)
	})

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.Header.Set(middleware.HeaderFormInstance, "tab-1")
		return req
	}

	first := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		r.ServeHTTP(first, newReq())
		close(done)
	}()
	<-entered

	second := httptest.NewRecorder()
	r.ServeHTTP(second, newReq())
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, "A submission for this form is already in progress.", decode(t, second).Message)

	close(release)
	<-done
	assert.Equal(t, http.StatusCreated, first.Code)

	// Released after the first request finished
	go func() { <-entered }()
	third := httptest.NewRecorder()
	r.ServeHTTP(third, newReq())
	assert.Equal(t, http.StatusCreated, third.Code)
}

type brokenGuard struct{}

func (brokenGuard) Acquire(context.Context, string, time.Duration) (string, error) {
	return "", errors.New("redis down")
}
func (brokenGuard) Release(context.Context, string, string) error { return nil }

func TestSingleSubmission_FailsOpen(t *testing.T) {
	r := gin.New()
	r.POST("/submit", middleware.SingleSubmission("apply", brokenGuard{}, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperror.ValidationFailure("Validation failed", gin.H{"fields": gin.H{"email": "Email is required."}}))
	})
	r.GET("/data", func(c *gin.Context) {
		_ = c.Error(apperror.Unauthorized("Please log in to continue.").WithData(gin.H{"next_view": "/loginuser"}))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Equal(t, map[string]interface{}{"fields": map[string]interface{}{"email": "Email is required."}}, resp.Error)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp = decode(t, w)
	assert.Equal(t, map[string]interface{}{"next_view": "/loginuser"}, resp.Data)
	assert.Nil(t, resp.Error)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}
