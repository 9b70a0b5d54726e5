package services

import (
	"context"
	"fmt"
	"time"

	"campuscalendar/internal/domain"
)

const adminRole = "admin"

type authService struct {
	checker      domain.PasswordChecker
	issuer       domain.TokenIssuer
	passwordHash string
	jwtExpiry    time.Duration
	now          func() time.Time
}

// NewAuthService creates an AuthService for the single administrator whose
// bcrypt password hash is passwordHash.
func NewAuthService(checker domain.PasswordChecker, issuer domain.TokenIssuer, passwordHash string, jwtExpiry time.Duration) domain.AuthService {
	return &authService{
		checker:      checker,
		issuer:       issuer,
		passwordHash: passwordHash,
		jwtExpiry:    jwtExpiry,
		now:          time.Now,
	}
}

func (s *authService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if s.passwordHash == "" || password == "" {
		return "", time.Time{}, domain.ErrUnauthorized
	}
	if err := s.checker.Compare(s.passwordHash, password); err != nil {
		return "", time.Time{}, domain.ErrUnauthorized
	}
	expiresAt := s.now().Add(s.jwtExpiry)
	token, err := s.issuer.Issue(domain.AdminSubject, []string{adminRole}, s.jwtExpiry)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue token: %w", err)
	}
	return token, expiresAt, nil
}
