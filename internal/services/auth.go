package services

import (
	"errors"
	"strings"
	"time"

	"github.com/synergysphere/synergysphere/internal/config"
	"github.com/synergysphere/synergysphere/internal/models"
	"github.com/synergysphere/synergysphere/internal/utils"
	"gorm.io/gorm"
)

type AuthService struct {
	db         *gorm.DB
	sessionCfg *config.SessionConfig
}

func NewAuthService(db *gorm.DB, sessionCfg *config.SessionConfig) *AuthService {
	return &AuthService{db: db, sessionCfg: sessionCfg}
}

type RegisterRequest struct {
	FirstName string `form:"first_name" binding:"required,max=50"`
	LastName  string `form:"last_name" binding:"required,max=50"`
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

type LoginResult struct {
	Token    string
	ExpireAt time.Time
	User     *models.User
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Name:     strings.TrimSpace(req.FirstName) + " " + strings.TrimSpace(req.LastName),
		Password: hashed,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Login verifies credentials, opens a server-held session and returns the
// signed cookie token referencing it.
func (s *AuthService) Login(req *LoginRequest, clientIP, userAgent string) (*LoginResult, error) {
	var user models.User
	if err := s.db.Where("email = ?", normalizeEmail(req.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	expireAt := time.Now().Add(time.Duration(s.sessionCfg.ExpireHour) * time.Hour)
	session := models.Session{
		UserID:      user.ID,
		ExpiresAt:   expireAt,
		CreatedByIP: clientIP,
		UserAgent:   userAgent,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Name, session.ID, s.sessionCfg.ExpireHour)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpireAt: expireAt, User: &user}, nil
}

// Logout revokes the session so the cookie token stops being honored.
func (s *AuthService) Logout(sessionID uint) error {
	now := time.Now()
	return s.db.Model(&models.Session{}).
		Where("id = ? AND revoked_at IS NULL", sessionID).
		Update("revoked_at", now).Error
}

// GetUserByID retrieves a user by ID.
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// PurgeExpiredSessions deletes sessions that have expired or been revoked.
// Returns the number of deleted rows.
func (s *AuthService) PurgeExpiredSessions() (int64, error) {
	result := s.db.Where("expires_at < ? OR revoked_at IS NOT NULL", time.Now()).
		Delete(&models.Session{})
	return result.RowsAffected, result.Error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
