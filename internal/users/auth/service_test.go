// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/manhwaverse/internal/platform/apperr"
	"github.com/taibuivan/manhwaverse/internal/platform/sec"
	"github.com/taibuivan/manhwaverse/internal/users/auth"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testService(t *testing.T) *auth.Service {
	t.Helper()

	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	tokens, err := sec.NewTokenService("test-secret-at-least-16b", "manhwaverse.test")
	require.NoError(t, err)

	admin := auth.AdminAccount{Email: "admin@manhwaverse.app", PasswordHash: hash}
	return auth.NewService(admin, tokens, time.Hour, testLogger())
}

/*
TestService_Login verifies the credential checks and the issued session.
*/
func TestService_Login(t *testing.T) {
	t.Run("valid_credentials", func(t *testing.T) {
		session, err := testService(t).Login(auth.LoginInput{
			Email:    "admin@manhwaverse.app",
			Password: "correct horse battery staple",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, session.AccessToken)
		assert.Equal(t, string(sec.RoleAdmin), session.Role)
		assert.True(t, session.ExpiresAt.After(time.Now()))
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := testService(t).Login(auth.LoginInput{
			Email:    "admin@manhwaverse.app",
			Password: "guess",
		})
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	t.Run("wrong_email", func(t *testing.T) {
		_, err := testService(t).Login(auth.LoginInput{
			Email:    "intruder@example.com",
			Password: "correct horse battery staple",
		})
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})
}

/*
TestService_Login_Unconfigured verifies login is cleanly disabled when no
admin account is configured.
*/
func TestService_Login_Unconfigured(t *testing.T) {
	tokens, err := sec.NewTokenService("test-secret-at-least-16b", "manhwaverse.test")
	require.NoError(t, err)

	service := auth.NewService(auth.AdminAccount{}, tokens, time.Hour, testLogger())

	_, err = service.Login(auth.LoginInput{Email: "a@b.c", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, "SERVICE_UNAVAILABLE", apperr.As(err).Code)
}

/*
TestService_Login_TokenRoundTrip verifies the issued token carries the
admin role claim the authorization middleware relies on.
*/
func TestService_Login_TokenRoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	tokens, err := sec.NewTokenService("test-secret-at-least-16b", "manhwaverse.test")
	require.NoError(t, err)

	service := auth.NewService(
		auth.AdminAccount{Email: "admin@manhwaverse.app", PasswordHash: hash},
		tokens, time.Hour, testLogger(),
	)

	session, err := service.Login(auth.LoginInput{
		Email:    "admin@manhwaverse.app",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)

	claims, err := tokens.VerifyToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, string(sec.RoleAdmin), claims.Role)
	assert.Equal(t, "admin@manhwaverse.app", claims.Username)
}
