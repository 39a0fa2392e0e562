package user

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestNewSessionService(t *testing.T) {
	service := NewSessionService(testKey)
	assert.NotNil(t, service)
}

func TestGetTokenFromCookie(t *testing.T) {
	service := NewSessionService(testKey)
	res := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	token := "mock-jwt-token-abc"
	err := service.SetTokenCookie(res, token)
	assert.NoError(t, err)

	req.Header.Set("Cookie", res.Header().Get("Set-Cookie"))

	retrieved, err := service.GetTokenFromCookie(req)
	assert.NoError(t, err)
	assert.Equal(t, token, retrieved)
}

func TestSetTokenCookie(t *testing.T) {
	service := NewSessionService(testKey)
	res := httptest.NewRecorder()

	err := service.SetTokenCookie(res, "mock-jwt-token-abc")
	assert.NoError(t, err)

	cookie := res.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, CookieName)
	assert.Contains(t, cookie, "HttpOnly")
}

func TestGetTokenFromCookieErrors(t *testing.T) {
	service := NewSessionService(testKey)

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := service.GetTokenFromCookie(req)
		assert.ErrorIs(t, err, http.ErrNoCookie)
	})

	t.Run("signed with another key", func(t *testing.T) {
		res := httptest.NewRecorder()
		other := NewSessionService("fedcba9876543210fedcba9876543210")
		assert.NoError(t, other.SetTokenCookie(res, "mock-jwt-token-abc"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Cookie", res.Header().Get("Set-Cookie"))
		_, err := service.GetTokenFromCookie(req)
		assert.Error(t, err)
	})
}
