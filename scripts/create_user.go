// One-off ops script: create a user account directly in the database,
// bypassing the registration rate limit. Useful for seeding a fresh install.
//
// Usage: go run scripts/create_user.go <email> <name> <password>
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/synergysphere/synergysphere/internal/config"
	"github.com/synergysphere/synergysphere/internal/models"
	"github.com/synergysphere/synergysphere/internal/utils"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Println("usage: create_user <email> <name> <password>")
		os.Exit(1)
	}
	email := strings.ToLower(strings.TrimSpace(os.Args[1]))
	name := strings.TrimSpace(os.Args[2])
	password := os.Args[3]

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := models.InitDB(&cfg.Database); err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		os.Exit(1)
	}

	db := models.GetDB()

	var count int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		fmt.Printf("User %s already exists\n", email)
		os.Exit(1)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		fmt.Printf("Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	user := models.User{Email: email, Name: name, Password: hash}
	if err := db.Create(&user).Error; err != nil {
		fmt.Printf("Failed to create user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created user %s (id=%d)\n", user.Email, user.ID)
}
