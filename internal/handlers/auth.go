package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere/internal/config"
	"github.com/synergysphere/synergysphere/internal/middleware"
	"github.com/synergysphere/synergysphere/internal/services"
	"github.com/synergysphere/synergysphere/pkg/flash"
	"gorm.io/gorm"
)

type AuthHandler struct {
	authService *services.AuthService
	sessionCfg  *config.SessionConfig
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: services.NewAuthService(db, &cfg.Session),
		sessionCfg:  &cfg.Session,
	}
}

// ShowLogin serves the login page view model.
// GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	view(c, gin.H{"page": "login"})
}

// Login handles the login form.
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		flash.Set(c, flash.CategoryDanger, "Invalid credentials")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	result, err := h.authService.Login(&req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			flash.Set(c, flash.CategoryDanger, "Invalid credentials")
		} else {
			flash.Set(c, flash.CategoryDanger, "Login failed, please try again")
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessionCfg.CookieName, result.Token, h.sessionCfg.ExpireHour*3600, "/", "", h.sessionCfg.Secure, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// ShowRegister serves the registration page view model.
// GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	view(c, gin.H{"page": "register"})
}

// Register handles the registration form.
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		flash.Set(c, flash.CategoryWarning, "Please fill in all fields correctly (password must be at least 6 characters)")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if _, err := h.authService.Register(&req); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			flash.Set(c, flash.CategoryWarning, "That email is already registered")
		} else {
			flash.Set(c, flash.CategoryDanger, "Signup failed, please try again")
		}
		c.Redirect(http.StatusFound, "/register")
		return
	}

	flash.Set(c, flash.CategorySuccess, "Registration successful. Please login.")
	c.Redirect(http.StatusFound, "/login")
}

// Logout revokes the session and clears the cookie.
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID := middleware.GetSessionID(c); sessionID > 0 {
		_ = h.authService.Logout(sessionID)
	}

	c.SetCookie(h.sessionCfg.CookieName, "", -1, "/", "", h.sessionCfg.Secure, true)
	c.Redirect(http.StatusFound, "/login")
}
