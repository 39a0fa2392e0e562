// Package user keeps the mock session of an authenticated caller in a signed cookie.
package user

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// CookieName is the name of the session cookie.
const CookieName = "AuthToken"

const cookieTTL = 24 * time.Hour

// session implements SessionService with a signed cookie.
type session struct {
	cookieName string
	cookie     *securecookie.SecureCookie
}

// SessionService - stores and restores the mock auth token of a caller.
type SessionService interface {
	// GetTokenFromCookie returns the token stored in the request cookie.
	GetTokenFromCookie(r *http.Request) (string, error)
	// SetTokenCookie sets the cookie carrying token.
	SetTokenCookie(res http.ResponseWriter, token string) error
}

// NewSessionService creates a SessionService signing cookies with hashKey.
func NewSessionService(hashKey string) SessionService {
	return &session{
		cookieName: CookieName,
		cookie:     securecookie.New([]byte(hashKey), nil),
	}
}

// GetTokenFromCookie returns the token from the HTTP request.
func (s *session) GetTokenFromCookie(req *http.Request) (string, error) {
	cookie, err := req.Cookie(s.cookieName)
	if err != nil {
		return "", err
	}

	var token string
	if err := s.cookie.Decode(s.cookieName, cookie.Value, &token); err != nil {
		return "", err
	}

	return token, nil
}

// SetTokenCookie sets the HTTP cookie with the token.
func (s *session) SetTokenCookie(res http.ResponseWriter, token string) error {
	encoded, err := s.cookie.Encode(s.cookieName, token)
	if err != nil {
		return err
	}

	http.SetCookie(res, &http.Cookie{
		Name:     s.cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(cookieTTL),
	})
	return nil
}
