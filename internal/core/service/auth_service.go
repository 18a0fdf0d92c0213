package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

// PasswordCost is the bcrypt cost used for stored hashes.
const PasswordCost = 10

// dummyHash is compared against when no account matches, so a missing user
// costs the same bcrypt work as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("sneakstreet-missing-user"), PasswordCost)

// AuthService verifies credentials and issues sessions.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionIssuer
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, log: log}
}

// Verify looks up the account by normalized email and checks the password.
// Every failure is reported as domain.ErrInvalidCredentials, except for
// store errors which are wrapped so the caller can tell an outage apart.
func (s *AuthService) Verify(ctx context.Context, email, password string) (*domain.Identity, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify credentials: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	role, ok := domain.ParseRole(string(user.Role))
	if !ok {
		s.log.Warn().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("stored account has unknown role")
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.Identity{ID: user.ID, Name: user.Name, Email: user.Email, Role: role}, nil
}

// Login verifies the credentials and issues a session token for the identity.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Identity, error) {
	identity, err := s.Verify(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.sessions.Issue(identity)
	if err != nil {
		return "", nil, fmt.Errorf("issue session: %w", err)
	}

	s.log.Info().Str("user_id", identity.ID).Str("role", string(identity.Role)).Msg("login succeeded")
	return token, identity, nil
}
