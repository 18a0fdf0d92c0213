package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sneakstreet/storefront/internal/core/domain"
)

const (
	sessionIssuer     = "sneakstreet"
	defaultSessionTTL = 24 * time.Hour
)

// SessionClaims is the signed token payload.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SessionService issues and reads HS256-signed session tokens. It holds no
// server-side state; a token is valid until it expires.
type SessionService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionService fails when the signing secret is blank.
func NewSessionService(secret string, ttl time.Duration) (*SessionService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("session secret is empty: %w", domain.ErrConfigurationFatal)
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL is the lifetime of issued tokens.
func (s *SessionService) TTL() time.Duration { return s.ttl }

// Issue signs a token carrying the identity's id and role.
func (s *SessionService) Issue(identity *domain.Identity) (string, error) {
	if identity == nil || identity.ID == "" || !identity.Role.Valid() {
		return "", domain.ErrInvalidCredentials
	}

	now := s.now()
	claims := SessionClaims{
		Role: string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Read verifies signature, issuer and expiry, then returns the claims.
// Any failure yields domain.ErrSessionInvalid.
func (s *SessionService) Read(token string) (*domain.SessionClaims, error) {
	if token == "" {
		return nil, domain.ErrSessionInvalid
	}

	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrSessionInvalid
	}

	if claims.Subject == "" {
		return nil, domain.ErrSessionInvalid
	}
	role, ok := domain.ParseRole(claims.Role)
	if !ok {
		return nil, domain.ErrSessionInvalid
	}

	return &domain.SessionClaims{SubjectID: claims.Subject, Role: role}, nil
}
