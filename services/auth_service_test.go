package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	s := newStack(t)

	token, user, err := s.Auth.Register("New@Test.com", "secret123", "New User", "9876543210")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "new@test.com", user.Email) // normalized
	assert.Equal(t, "customer", user.Role)

	// login straight after registration with the same credentials
	token, user, err = s.Auth.Login("new@test.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "New User", user.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newStack(t)

	_, _, err := s.Auth.Register("dup@test.com", "secret123", "First", "")
	require.NoError(t, err)

	_, _, err = s.Auth.Register("dup@test.com", "other456", "Second", "")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// case-insensitive duplicate too
	_, _, err = s.Auth.Register("DUP@test.com", "other456", "Third", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginInvalidCredentials(t *testing.T) {
	s := newStack(t)

	_, _, err := s.Auth.Register("who@test.com", "secret123", "Who", "")
	require.NoError(t, err)

	// wrong password and unknown user fail the same way
	_, _, err = s.Auth.Login("who@test.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = s.Auth.Login("nobody@test.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	s := newStack(t)

	_, user, err := s.Auth.Register("prof@test.com", "secret123", "Before", "")
	require.NoError(t, err)

	updated, err := s.Auth.UpdateProfile(user.ID, map[string]any{
		"name":         "After",
		"phone_number": "9123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, "9123456789", updated.PhoneNumber)
}
