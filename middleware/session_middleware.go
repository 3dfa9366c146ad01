package middleware

import (
	"errors"
	"net/http"
	"time"

	apperrors "storefront-bff/errors"
	"storefront-bff/models"
	"storefront-bff/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookieName = "storefront_session"
	SessionContextKey = "session"
)

// SessionResolver attaches the request's session mirror to the gin context,
// creating a fresh one (with an initial upstream identity check) when no
// valid session cookie is presented. Auth must resolve before anything else
// runs, so dependent handlers never see an unknown auth state.
func SessionResolver(sessions services.SessionStore, auth *services.AuthService, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var session *models.Session
		if sid, err := c.Cookie(SessionCookieName); err == nil && sid != "" {
			session, _ = sessions.Get(ctx, sid)
		}

		if session == nil {
			session = &models.Session{
				ID:        uuid.NewString(),
				Cart:      models.Cart{Items: []models.CartItem{}},
				CreatedAt: time.Now().UTC(),
			}
			// one-time identity resolution; failure leaves the session
			// unauthenticated, which is a valid resolved state
			_ = auth.CheckSession(ctx, session)
			c.SetCookie(SessionCookieName, session.ID, int(ttl.Seconds()), "/", "", false, true)
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// GetSession returns the session attached by SessionResolver.
func GetSession(c *gin.Context) (*models.Session, error) {
	val, exists := c.Get(SessionContextKey)
	if !exists {
		return nil, errors.New("session not found in context")
	}
	session, ok := val.(*models.Session)
	if !ok || session == nil {
		return nil, errors.New("session has invalid type in context")
	}
	return session, nil
}

// RequireAuth rejects requests whose session carries no identity.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := GetSession(c)
		if err != nil || !session.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"kind":  apperrors.KindAuthRequired,
				"error": "login required",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects non-admin sessions.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := GetSession(c)
		if err != nil || !session.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"kind":  apperrors.KindAuthRequired,
				"error": "login required",
			})
			return
		}
		if !session.User.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"kind":  apperrors.KindAuthRequired,
				"error": "admin access required",
			})
			return
		}
		c.Next()
	}
}
