package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/Adheeb11/PropVista/models"
	"github.com/golang-jwt/jwt"
)

// SessionCookie names the signed cookie that carries the session. It is
// session-scoped (no Max-Age), so nothing outlives the browser session.
const SessionCookie = "propvista_session"

// Claims embeds the logged-in user record in the session token.
type Claims struct {
	User models.User `json:"user"`
	jwt.StandardClaims
}

// Sessions signs and verifies session cookies.
type Sessions struct {
	secret []byte
}

func NewSessions(secret string) *Sessions {
	return &Sessions{secret: []byte(secret)}
}

// issue signs a token holding the user record.
func (s *Sessions) issue(user models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		User: user,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(24 * time.Hour).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "propvista",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// verify parses and validates a session token, returning the user it holds.
func (s *Sessions) verify(tokenStr string) (*models.User, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if err == jwt.ErrSignatureInvalid {
			return nil, errors.New("invalid session signature")
		}
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session")
	}
	return &claims.User, nil
}

// Begin replaces the session with one holding user. Login and register are
// the only callers; mutation is always a full replace.
func (s *Sessions) Begin(w http.ResponseWriter, user models.User) error {
	token, err := s.issue(user)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// End clears the session cookie.
func (s *Sessions) End(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Current returns the user carried by the request's session cookie, or nil
// when there is no valid session.
func (s *Sessions) Current(r *http.Request) *models.User {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil
	}
	user, err := s.verify(cookie.Value)
	if err != nil {
		return nil
	}
	return user
}
