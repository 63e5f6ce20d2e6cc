package middleware

import (
	"log/slog"
	"net/http"

	"soundlight-quotes/internal/pkg/config"
	"soundlight-quotes/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "session_id"

// SessionMiddleware gives every browser an anonymous signed session
// cookie. The session id scopes the wizard draft; there are no accounts.
type SessionMiddleware struct {
	service *session.Service
	cfg     config.SessionConfig
}

func NewSessionMiddleware(service *session.Service, cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{service: service, cfg: cfg.Session}
}

// EnsureSession validates the cookie when present, and mints a new
// session otherwise. An expired or tampered cookie silently becomes a
// fresh session; that is equivalent to an expired draft.
func (m *SessionMiddleware) EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(m.cfg.CookieName); err == nil && token != "" {
			if sessionID, err := m.service.Validate(token); err == nil {
				c.Set(ctxSessionIDKey, sessionID.String())
				c.Next()
				return
			}
			slog.Debug("session cookie rejected, issuing a new session")
		}

		sessionID := uuid.New()
		token, err := m.service.Issue(sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}

		c.SetSameSite(sameSite(m.cfg.SameSite))
		c.SetCookie(
			m.cfg.CookieName,
			token,
			int(m.service.Duration().Seconds()),
			"/",
			m.cfg.CookieDomain,
			m.cfg.CookieSecure,
			true, // HttpOnly
		)

		c.Set(ctxSessionIDKey, sessionID.String())
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString(ctxSessionIDKey)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func sameSite(mode string) http.SameSite {
	switch mode {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
