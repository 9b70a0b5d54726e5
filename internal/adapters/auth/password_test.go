package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_and_Compare(t *testing.T) {
	hash, err := HashPassword("my-secret-password", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	c := NewBcryptChecker()
	require.NoError(t, c.Compare(hash, "my-secret-password"))
}

func TestBcryptChecker_Compare_wrong_password(t *testing.T) {
	hash, err := HashPassword("correct", bcrypt.MinCost)
	require.NoError(t, err)

	err = NewBcryptChecker().Compare(hash, "wrong")
	assert.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)
}

func TestBcryptChecker_Compare_malformed_hash(t *testing.T) {
	err := NewBcryptChecker().Compare("not-a-hash", "password")
	assert.Error(t, err)
}

func TestHashPassword_default_cost(t *testing.T) {
	hash, err := HashPassword("pw", 0)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestHashPassword_too_long(t *testing.T) {
	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}
	_, err := HashPassword(string(long), bcrypt.MinCost)
	assert.Error(t, err)
}
