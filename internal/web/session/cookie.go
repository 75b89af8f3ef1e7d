package session

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "dealership_session"

type claims struct {
	User User `json:"user"`
	jwt.RegisteredClaims
}

// Manager signs session records into an HttpOnly cookie without expiry, so the
// browser drops it when it closes.
type Manager struct {
	secret []byte
	secure bool
}

func NewManager(secret string, secure bool) *Manager {
	return &Manager{secret: []byte(secret), secure: secure}
}

// For binds a Store to one request.
func (m *Manager) For(c *gin.Context) *Cookie {
	return &Cookie{manager: m, ctx: c}
}

// encode signs user into a session value. The session expires with the bearer
// token it carries.
func (m *Manager) encode(user User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		User:             user,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: tokenExpiry(user.Token)},
	})
	return token.SignedString(m.secret)
}

// tokenExpiry reads exp from a bearer token without verifying it, since only
// the backend holds its key. Opaque tokens have no expiry.
func tokenExpiry(token string) *jwt.NumericDate {
	var registered jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &registered); err != nil {
		return nil
	}
	return registered.ExpiresAt
}

func (m *Manager) decode(value string) (User, error) {
	parsed, err := jwt.ParseWithClaims(value, &claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return User{}, err
	}
	cl, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return User{}, errors.New("invalid session")
	}
	return cl.User, nil
}

// Cookie is the Store of a single request.
type Cookie struct {
	manager *Manager
	ctx     *gin.Context
	loaded  bool
	user    *User
}

func (s *Cookie) Login(user User) error {
	value, err := s.manager.encode(user)
	if err != nil {
		return err
	}
	s.set(value, 0)
	s.user = &user
	s.loaded = true
	return nil
}

func (s *Cookie) Logout() {
	s.set("", -1)
	s.user = nil
	s.loaded = true
}

func (s *Cookie) Current() (User, bool) {
	if !s.loaded {
		s.loaded = true
		if value, err := s.ctx.Cookie(CookieName); err == nil && value != "" {
			if user, err := s.manager.decode(value); err == nil {
				s.user = &user
			}
		}
	}
	if s.user == nil || s.user.Username == "" {
		return User{}, false
	}
	return *s.user, true
}

func (s *Cookie) set(value string, maxAge int) {
	s.ctx.SetSameSite(http.SameSiteLaxMode)
	s.ctx.SetCookie(CookieName, value, maxAge, "/", "", s.manager.secure, true)
}
