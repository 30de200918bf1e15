package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/synergysphere/synergysphere/internal/config"
	"github.com/synergysphere/synergysphere/internal/models"
	"github.com/synergysphere/synergysphere/internal/utils"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	utils.SetJWTSecret("test-secret")
}

// newTestDB opens a fresh in-memory database migrated with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.Task{},
		&models.Message{},
		&models.Session{},
		&models.ActivityLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testSessionConfig() *config.SessionConfig {
	return &config.SessionConfig{
		Secret:     "test-secret",
		ExpireHour: 1,
		CookieName: "ss_session",
	}
}

// registerTestUser creates an account through the real registration path.
func registerTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	svc := NewAuthService(db, testSessionConfig())
	user, err := svc.Register(&RegisterRequest{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "password123",
	})
	if err != nil {
		t.Fatalf("failed to register test user %s: %v", email, err)
	}
	return user
}

// createTestProject creates a project owned by the given user.
func createTestProject(t *testing.T, db *gorm.DB, name string, ownerID uint) *models.Project {
	t.Helper()

	svc := NewProjectService(db)
	project, err := svc.Create(&CreateProjectRequest{Name: name}, ownerID)
	if err != nil {
		t.Fatalf("failed to create test project %s: %v", name, err)
	}
	return project
}
