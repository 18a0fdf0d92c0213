package ports

import (
	"context"

	"github.com/sneakstreet/storefront/internal/core/domain"
)

// CredentialVerifier checks an email/password pair against the credential store.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*domain.Identity, error)
}

// SessionIssuer turns a verified identity into a signed session token.
type SessionIssuer interface {
	Issue(identity *domain.Identity) (string, error)
}

// SessionReader recovers claims from a token, or returns domain.ErrSessionInvalid.
type SessionReader interface {
	Read(token string) (*domain.SessionClaims, error)
}

// AuthService logs a user in: verify, then issue.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.Identity, error)
}

// LoginLimiter throttles login attempts per key.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
