package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campuscalendar/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePasswordChecker accepts exactly one password.
type fakePasswordChecker struct {
	password string
}

func (f *fakePasswordChecker) Compare(hash, password string) error {
	if password != f.password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err     error
	subject string
	roles   []string
}

func (f *fakeTokenIssuer) Issue(subject string, roles []string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.subject = subject
	f.roles = roles
	return "token-" + subject, nil
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

	t.Run("correct password issues admin token", func(t *testing.T) {
		issuer := &fakeTokenIssuer{}
		svc := NewAuthService(&fakePasswordChecker{password: "s3cret"}, issuer, "$2a$hash", 12*time.Hour).(*authService)
		svc.now = func() time.Time { return fixed }

		token, exp, err := svc.Login(ctx, "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "token-admin", token)
		assert.Equal(t, fixed.Add(12*time.Hour), exp)
		assert.Equal(t, domain.AdminSubject, issuer.subject)
		assert.Equal(t, []string{"admin"}, issuer.roles)
	})

	tests := []struct {
		name     string
		hash     string
		password string
	}{
		{"wrong password", "$2a$hash", "nope"},
		{"empty password", "$2a$hash", ""},
		{"no hash configured", "", "s3cret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(&fakePasswordChecker{password: "s3cret"}, &fakeTokenIssuer{}, tt.hash, time.Hour)
			_, _, err := svc.Login(ctx, tt.password)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}

	t.Run("issuer error", func(t *testing.T) {
		svc := NewAuthService(&fakePasswordChecker{password: "s3cret"}, &fakeTokenIssuer{err: errors.New("sign")}, "$2a$hash", time.Hour)
		_, _, err := svc.Login(ctx, "s3cret")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrUnauthorized)
	})
}
