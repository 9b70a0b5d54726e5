package domain

import (
	"context"
	"time"
)

// AdminSubject is the token subject of the shared administrator account.
const AdminSubject = "admin"

// TokenIssuer issues tokens (e.g. JWT) for an authenticated subject.
type TokenIssuer interface {
	Issue(subject string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// PasswordChecker compares a plaintext password against a stored hash.
// Implementations may use bcrypt, argon2, etc.
type PasswordChecker interface {
	Compare(hash, password string) error
}

// AuthService authenticates the administrator.
type AuthService interface {
	Login(ctx context.Context, password string) (token string, expiresAt time.Time, err error)
}
