package ports

import (
	"context"

	"github.com/sneakstreet/storefront/internal/core/domain"
)

// UserRepository is the credential store. Emails are matched lower-case.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Upsert inserts or replaces the account keyed by email.
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
}
