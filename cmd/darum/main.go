package main

import (
	"context"
	"errors"
	"log"
	"os"

	"darum/internal/config"
	"darum/internal/domain"
	"darum/internal/infra/auth"
	"darum/internal/infra/db"
	httpinfra "darum/internal/infra/http"

	"gorm.io/gorm"
)

func main() {
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	conn, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(conn); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := seedAdmin(context.Background(), conn); err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	srv := httpinfra.NewServer(cfg, conn)
	if err := srv.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// seedAdmin bootstraps the first administrator account when the seed
// variables are set. An existing account with the same email is left alone.
func seedAdmin(ctx context.Context, conn *gorm.DB) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	users := db.NewUserRepository(conn)
	if _, err := users.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hasher := &auth.BcryptHasher{}
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}
	_, err = users.Create(ctx, domain.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Enabled:      true,
	})
	return err
}
