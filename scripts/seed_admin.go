// Seed an administrator account.
//
// Intended for first deployment, before any users exist. Safe to re-run:
// an existing account with the same email is left untouched.
//
// Usage: go run scripts/seed_admin.go -email admin@example.com -password <pw> -name Admin
package main

import (
	"flag"
	"log"
	"os"

	"ielts_edu_backend/internal/config"
	"ielts_edu_backend/internal/model"
	"ielts_edu_backend/internal/repository"
	"ielts_edu_backend/pkg/database"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "Admin", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	users := repository.NewUserRepository(db)

	if _, err := users.FindByEmail(*email); err == nil {
		log.Printf("account %s already exists, nothing to do", *email)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to look up account: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := &model.User{
		Name:     *name,
		Email:    *email,
		Password: string(hashed),
		Role:     model.Admin,
	}
	if err := users.Create(admin); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("admin account %s created (id %d)", *email, admin.ID)
}
