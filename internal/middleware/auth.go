package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere/internal/config"
	"github.com/synergysphere/synergysphere/internal/models"
	"github.com/synergysphere/synergysphere/internal/utils"
	"gorm.io/gorm"
)

const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextUserName  = "user_name"
	ContextSessionID = "session_id"
)

// SessionRequired checks the session cookie against both the signed token and
// the server-held sessions row. An unauthenticated request is redirected to
// /login, never answered with an error page.
func SessionRequired(db *gorm.DB, cfg *config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveSession(c, db, cfg)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserName, claims.Name)
		c.Set(ContextSessionID, claims.SessionID)

		c.Next()
	}
}

// CurrentUserID returns the user id for an optionally-authenticated route
// (the home redirect), without aborting when the session is absent.
func CurrentUserID(c *gin.Context, db *gorm.DB, cfg *config.SessionConfig) (uint, bool) {
	claims, ok := resolveSession(c, db, cfg)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

func resolveSession(c *gin.Context, db *gorm.DB, cfg *config.SessionConfig) (*utils.Claims, bool) {
	tokenString, err := c.Cookie(cfg.CookieName)
	if err != nil || tokenString == "" {
		return nil, false
	}

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return nil, false
	}

	var session models.Session
	if err := db.First(&session, claims.SessionID).Error; err != nil {
		return nil, false
	}
	if session.UserID != claims.UserID {
		return nil, false
	}
	if session.RevokedAt != nil || time.Now().After(session.ExpiresAt) {
		return nil, false
	}

	return claims, true
}

// GetUserID gets the current user ID from context.
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextUserID); exists {
		return id.(uint)
	}
	return 0
}

// GetUserEmail gets the current user's email from context.
func GetUserEmail(c *gin.Context) string {
	if email, exists := c.Get(ContextUserEmail); exists {
		return email.(string)
	}
	return ""
}

// GetUserName gets the current user's display name from context.
func GetUserName(c *gin.Context) string {
	if name, exists := c.Get(ContextUserName); exists {
		return name.(string)
	}
	return ""
}

// GetSessionID gets the current session ID from context.
func GetSessionID(c *gin.Context) uint {
	if id, exists := c.Get(ContextSessionID); exists {
		return id.(uint)
	}
	return 0
}
