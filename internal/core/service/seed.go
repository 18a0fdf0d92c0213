package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

// SeedAccount is a plain-text account definition for provisioning.
type SeedAccount struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// DefaultAccounts are the demo accounts provisioned by cmd/seed.
var DefaultAccounts = []SeedAccount{
	{Name: "Admin", Email: "admin@sneakstreet.com", Password: "Admin123!", Role: domain.RoleAdmin},
	{Name: "Cliente", Email: "cliente@sneakstreet.com", Password: "Admin123!", Role: domain.RoleClient},
}

// SeedUsers hashes each password and upserts the account by email.
func SeedUsers(ctx context.Context, repo ports.UserRepository, accounts []SeedAccount, log zerolog.Logger) error {
	for _, a := range accounts {
		if !a.Role.Valid() {
			return fmt.Errorf("seed %s: unknown role %q", a.Email, a.Role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), PasswordCost)
		if err != nil {
			return fmt.Errorf("seed %s: %w", a.Email, err)
		}

		now := time.Now().UTC()
		user, err := repo.Upsert(ctx, &domain.User{
			Name:         a.Name,
			Email:        domain.NormalizeEmail(a.Email),
			PasswordHash: string(hash),
			Role:         a.Role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", a.Email, err)
		}
		log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("account seeded")
	}
	return nil
}
