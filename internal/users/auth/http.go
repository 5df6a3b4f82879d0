// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/manhwaverse/internal/platform/request"
	"github.com/taibuivan/manhwaverse/internal/platform/respond"
	"github.com/taibuivan/manhwaverse/internal/platform/validate"
)

// # Handler Implementation

// Handler implements the HTTP layer for admin authentication.
type Handler struct {
	service *Service
}

// NewHandler constructs an auth [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the auth endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Get("/me", handler.me)

	return router
}

// # Endpoints

/*
POST /api/v1/auth/login.

Request:
  - email: string
  - password: string

Response:
  - 200: Session with the access token
  - 401: Invalid credentials
  - 503: No admin configured
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("email", input.Email).Email("email", input.Email)
	validator.Required("password", input.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

/*
GET /api/v1/auth/me.

Description: Echoes the authenticated identity from the verified token, so
the admin UI can restore its session state after a reload.

Response:
  - 200: {"userId": ..., "username": ..., "role": ...}
  - 401: Missing or invalid token
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		"userId":   claims.UserID,
		"username": claims.Username,
		"role":     claims.Role,
	})
}
