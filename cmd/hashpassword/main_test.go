package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashConfirmed(t *testing.T) {
	hash, err := hashConfirmed("s3cret", "s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))

	_, err = hashConfirmed("", "", bcrypt.MinCost)
	assert.EqualError(t, err, "password cannot be empty")

	_, err = hashConfirmed("a", "b", bcrypt.MinCost)
	assert.EqualError(t, err, "passwords do not match")
}

func TestReadLine(t *testing.T) {
	got, err := readLine(strings.NewReader("hunter2\r\nignored"))
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)

	got, err = readLine(strings.NewReader("no-newline"))
	require.NoError(t, err)
	assert.Equal(t, "no-newline", got)
}
