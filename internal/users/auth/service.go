// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements admin sign-in for catalog curation.

Manhwaverse has exactly one privileged account, configured through the
environment (email plus bcrypt hash); there is no registration, no user
table, and no session store. A successful login yields a short-lived HS256
access token whose role claim gates every mutation endpoint.

Architecture:

  - Service: Verifies the configured credentials and issues tokens.
  - Security: bcrypt password comparison, JWT via the platform sec package.
  - Degradation: With no admin configured, login is disabled and the
    catalog is effectively read-only.
*/
package auth

import (
	"log/slog"
	"time"

	"github.com/taibuivan/manhwaverse/internal/platform/apperr"
	"github.com/taibuivan/manhwaverse/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// AdminAccount is the single privileged identity, sourced from config.
type AdminAccount struct {
	Email        string
	PasswordHash string // bcrypt
}

// Configured reports whether the account can actually be logged into.
func (account AdminAccount) Configured() bool {
	return account.Email != "" && account.PasswordHash != ""
}

// Service implements the admin sign-in use case.
type Service struct {
	admin         AdminAccount
	tokenProvider TokenProvider
	tokenTTL      time.Duration
	logger        *slog.Logger
}

// NewService constructs an auth [Service] for the configured admin.
func NewService(admin AdminAccount, tokenProvider TokenProvider, tokenTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		admin:         admin,
		tokenProvider: tokenProvider,
		tokenTTL:      tokenTTL,
		logger:        logger,
	}
}

// # Login Flow

// LoginInput holds the submitted credentials.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the successful login result.
type Session struct {
	AccessToken string    `json:"accessToken"`
	Role        string    `json:"role"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

/*
Login verifies the submitted credentials against the configured admin.

Description: Both a wrong email and a wrong password produce the same
UNAUTHORIZED response, so the endpoint leaks nothing about which part was
wrong. The bcrypt comparison runs even on an email mismatch to keep the
two failure paths timing-comparable.

Parameters:
  - input: LoginInput

Returns:
  - Session: Access token with its role and expiry
  - error: apperr.Unauthorized or apperr.ServiceUnavailable
*/
func (service *Service) Login(input LoginInput) (Session, error) {
	if !service.admin.Configured() {
		return Session{}, apperr.ServiceUnavailable("Admin login is not configured on this server")
	}

	emailMatches := input.Email == service.admin.Email
	passwordMatches := sec.CheckPasswordHash(input.Password, service.admin.PasswordHash)

	if !emailMatches || !passwordMatches {
		service.logger.Warn("admin_login_rejected", slog.String("email", input.Email))
		return Session{}, apperr.Unauthorized("Invalid credentials")
	}

	expiresAt := time.Now().Add(service.tokenTTL)
	token, err := service.tokenProvider.GenerateAccessToken(
		service.admin.Email,
		service.admin.Email,
		string(sec.RoleAdmin),
		service.tokenTTL,
	)
	if err != nil {
		return Session{}, apperr.Internal(err)
	}

	service.logger.Info("admin_login_succeeded", slog.String("email", input.Email))
	return Session{
		AccessToken: token,
		Role:        string(sec.RoleAdmin),
		ExpiresAt:   expiresAt,
	}, nil
}
