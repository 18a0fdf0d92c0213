// Package access holds the single route authorization policy. Both the
// server-side guard and the view layer read its decision; nothing else
// re-implements it.
package access

import (
	"strings"

	"github.com/sneakstreet/storefront/internal/core/domain"
)

const (
	LoginPath = "/login"
	HomePath  = "/"
	adminRoot = "/admin"
)

// Class is the sensitivity of a path.
type Class int

const (
	Public Class = iota
	AdminOnly
)

// Classify returns AdminOnly for /admin and everything below it.
func Classify(path string) Class {
	if path == adminRoot || strings.HasPrefix(path, adminRoot+"/") {
		return AdminOnly
	}
	return Public
}

// State is the authentication state of a request.
type State int

const (
	Unauthenticated State = iota
	AuthenticatedClient
	AuthenticatedAdmin
)

func (s State) String() string {
	switch s {
	case AuthenticatedClient:
		return "client"
	case AuthenticatedAdmin:
		return "admin"
	default:
		return "guest"
	}
}

// StateOf maps claims to a state. Claims with an unknown role or no subject
// are treated as absent.
func StateOf(claims *domain.SessionClaims) State {
	if claims == nil || claims.SubjectID == "" {
		return Unauthenticated
	}
	switch claims.Role {
	case domain.RoleAdmin:
		return AuthenticatedAdmin
	case domain.RoleClient:
		return AuthenticatedClient
	}
	return Unauthenticated
}

// Decision is the outcome of Authorize. Redirect is set only when Allow is false.
type Decision struct {
	Allow    bool
	Redirect string
}

func allow() Decision             { return Decision{Allow: true} }
func deny(target string) Decision { return Decision{Redirect: target} }

// Authorize decides whether a request for path may proceed with the given
// claims. Admin-only paths send unauthenticated callers to the login page
// and non-admin callers to the home page.
func Authorize(path string, claims *domain.SessionClaims) Decision {
	if Classify(path) == Public {
		return allow()
	}
	switch StateOf(claims) {
	case AuthenticatedAdmin:
		return allow()
	case AuthenticatedClient:
		return deny(HomePath)
	default:
		return deny(LoginPath)
	}
}

// RequireAdmin is the same rule for callers that report errors instead of
// redirecting.
func RequireAdmin(claims *domain.SessionClaims) error {
	switch StateOf(claims) {
	case AuthenticatedAdmin:
		return nil
	case AuthenticatedClient:
		return domain.ErrUnauthorized
	default:
		return domain.ErrSessionInvalid
	}
}
