// Seeds the default roles and an initial verified admin account.
package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"raccoon/internal/config"
	"raccoon/internal/db"
	"raccoon/internal/model"
	"raccoon/internal/repository"
	"raccoon/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Post{},
		&model.Message{},
		&model.Comment{},
		&model.CommentRef{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	if err := service.NewRoleService(roleRepo).EnsureDefaultRoles(ctx); err != nil {
		log.Fatalf("Failed to ensure default roles: %v", err)
	}

	adminUsername := envOr("SEED_ADMIN_USERNAME", "admin")
	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@raccoon.local")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", "admin-change-me")

	if _, err := userRepo.FindByUsername(ctx, adminUsername); err == nil {
		log.Printf("Admin user %q already exists, nothing to do", adminUsername)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to check admin user: %v", err)
	}

	adminRole, err := roleRepo.FindByName(ctx, model.RoleAdmin)
	if err != nil {
		log.Fatalf("Failed to load admin role: %v", err)
	}
	userRole, err := roleRepo.FindByName(ctx, model.RoleUser)
	if err != nil {
		log.Fatalf("Failed to load user role: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &model.User{
		Username:      adminUsername,
		Email:         adminEmail,
		PasswordHash:  string(hash),
		EmailVerified: true, // seeded accounts skip the confirmation flow
		Roles:         []model.Role{*adminRole, *userRole},
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Seeded admin user %q", adminUsername)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
