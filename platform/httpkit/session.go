// Package httpkit provides the session cookie authentication layer.
// The dashboard uses a single signed session cookie rather than bearer
// tokens; every reporting route sits behind SessionRequired.
package httpkit

import (
	"errors"
	"net/http"
	"time"

	"esensi_dashboard_backend/platform/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// ContextSessionKey is the gin context key for the authenticated session.
	ContextSessionKey = "session"

	sessionTokenType = "session"
)

var errInvalidSession = errors.New("invalid session token")

// Session is the authenticated dashboard session carried by the cookie.
type Session struct {
	Username string
	Role     string
}

// IssueSessionToken signs a session token for the given user.
func IssueSessionToken(cfg config.SessionConfig, session Session, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  session.Username,
		"role": session.Role,
		"type": sessionTokenType,
		"iat":  now.Unix(),
		"exp":  now.Add(cfg.GetSessionTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.GetSessionSecret()))
}

// ParseSessionToken validates a raw session token and returns the session.
func ParseSessionToken(cfg config.SessionConfig, rawToken string) (Session, error) {
	parsed, err := jwt.Parse(rawToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(cfg.GetSessionSecret()), nil
	})
	if err != nil || !parsed.Valid {
		return Session{}, errInvalidSession
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, errInvalidSession
	}
	if tokenType, _ := claims["type"].(string); tokenType != sessionTokenType {
		return Session{}, errInvalidSession
	}

	username, _ := claims["sub"].(string)
	if username == "" {
		return Session{}, errInvalidSession
	}
	role, _ := claims["role"].(string)

	return Session{Username: username, Role: role}, nil
}

// SetSessionCookie writes the session cookie on the response.
func SetSessionCookie(c *gin.Context, cfg config.SessionConfig, rawToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		cfg.GetSessionCookieName(),
		rawToken,
		int(cfg.GetSessionTTL().Seconds()),
		"/",
		"",
		cfg.GetSessionCookieSecure(),
		true,
	)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, cfg config.SessionConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		cfg.GetSessionCookieName(),
		"",
		-1,
		"/",
		"",
		cfg.GetSessionCookieSecure(),
		true,
	)
}

// SessionRequired returns middleware that validates the session cookie.
// Unauthenticated calls are rejected before any handler runs.
func SessionRequired(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, err := c.Cookie(cfg.GetSessionCookieName())
		if err != nil || rawToken == "" {
			abortUnauthorized(c)
			return
		}

		session, err := ParseSessionToken(cfg, rawToken)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ContextSessionKey, session)
		c.Next()
	}
}

// GetSession extracts the authenticated session from a gin context.
func GetSession(c *gin.Context) (Session, bool) {
	value, ok := c.Get(ContextSessionKey)
	if !ok {
		return Session{}, false
	}
	session, ok := value.(Session)
	return session, ok
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
		Error:   "Unauthorized",
		Message: "Authentication required",
	})
}
