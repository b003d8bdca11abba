// seed bootstraps a fresh database: a default owner account and the
// shop-wide settings row. Safe to run repeatedly, existing data is kept.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/internal/infrastructure/postgres"
	"github.com/tanvirul/shopledger-api/pkg/config"
)

const (
	ownerUsername = "owner"
	ownerPassword = "password123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)

	existing, err := userRepo.GetByUsername(ctx, ownerUsername)
	if err != nil {
		fmt.Fprintf(os.Stderr, "look up owner: %v\n", err)
		os.Exit(1)
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(ownerPassword), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
			os.Exit(1)
		}
		now := time.Now()
		owner := &entity.User{
			ID:           uuid.New().String(),
			Name:         "Shop Owner",
			Username:     ownerUsername,
			PasswordHash: string(hash),
			Role:         entity.RoleOwner,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, owner); err != nil {
			fmt.Fprintf(os.Stderr, "create owner: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("owner account created (username %q)\n", ownerUsername)
	} else {
		fmt.Println("owner account already exists, skipping")
	}

	settings, err := settingsRepo.Get(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "look up settings: %v\n", err)
		os.Exit(1)
	}
	if settings == nil {
		now := time.Now()
		if err := settingsRepo.Create(ctx, &entity.Settings{
			ID:                  1,
			OwnerSecretPassword: "admin",
			LowStockThreshold:   entity.DefaultLowStockThreshold,
			CreatedAt:           now,
			UpdatedAt:           now,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "create settings: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("default settings created")
	} else {
		fmt.Println("settings already exist, skipping")
	}
}
