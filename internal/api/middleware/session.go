package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloodchain/portal/internal/core/domain"
)

// Context keys set by the session middlewares.
const (
	ContextKeySID     = "sid"
	ContextKeySession = "session"
	ContextKeyRole    = "role"
)

// CookieConfig describes the signed session cookie.
type CookieConfig struct {
	Name   string
	Secret string
	TTL    time.Duration
	Secure bool
}

// SessionCookie makes sure every request carries a session id. The id lives
// in an HS256-signed token inside the cookie; a missing, expired or tampered
// cookie starts a fresh session.
func SessionCookie(cfg CookieConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if ck, err := c.Cookie(cfg.Name); err == nil {
				sid, _ = ParseSessionToken(ck.Value, cfg.Secret)
			}

			if sid == "" {
				sid = uuid.NewString()
				token, err := SignSessionToken(sid, cfg.Secret, cfg.TTL)
				if err != nil {
					return err
				}
				c.SetCookie(&http.Cookie{
					Name:     cfg.Name,
					Value:    token,
					Path:     "/",
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(ContextKeySID, sid)
			return next(c)
		}
	}
}

// SignSessionToken issues a token carrying sid.
func SignSessionToken(sid, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

var errNoSID = errors.New("token has no sid claim")

// ParseSessionToken validates the token and returns its sid.
func ParseSessionToken(token, secret string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", err
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errNoSID
	}
	return sid, nil
}

// SessionReader is the part of the session service the middleware needs.
type SessionReader interface {
	Current(ctx context.Context, sid string) (domain.Session, error)
}

// LoadSession resolves the session for the request's sid and stores it in the
// context. A logged-in session also sets ContextKeyRole for RBAC. A store
// failure is logged and the request continues as logged out.
func LoadSession(sessions SessionReader, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := sessions.Current(c.Request().Context(), SessionID(c))
			if err != nil {
				log.Warn().Err(err).Msg("session unavailable, continuing logged out")
				sess.LoggedIn = false
				sess.User = ""
			}

			c.Set(ContextKeySession, sess)
			if sess.LoggedIn {
				c.Set(ContextKeyRole, string(sess.Role))
			}
			return next(c)
		}
	}
}

// SessionID returns the sid set by SessionCookie.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(ContextKeySID).(string)
	return sid
}

// CurrentSession returns the session set by LoadSession.
func CurrentSession(c echo.Context) domain.Session {
	sess, _ := c.Get(ContextKeySession).(domain.Session)
	return sess
}
