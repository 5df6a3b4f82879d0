// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package recommend

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/manhwaverse/internal/platform/request"
	"github.com/taibuivan/manhwaverse/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for recommendations.
type Handler struct {
	service *Service
}

// NewHandler constructs a recommendation [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /recommendations.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.recommend)
	return router
}

// # Payloads

type recommendRequest struct {
	ReadingHistory string `json:"readingHistory"`
	Preferences    string `json:"preferences"`
}

type recommendResponse struct {
	Recommendation string `json:"recommendation"`
}

// # Endpoints

/*
POST /api/v1/recommendations.

Description: Generates a free-text reading recommendation from the
viewer's history and preferences.

Request:
  - readingHistory: string (Min 10 characters)
  - preferences: string (Min 10 characters)

Response:
  - 200: {"recommendation": "..."}
  - 400: Inputs too short
  - 503: No generator configured
*/
func (handler *Handler) recommend(writer http.ResponseWriter, request *http.Request) {
	var input recommendRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	text, err := handler.service.Recommend(request.Context(), input.ReadingHistory, input.Preferences)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, recommendResponse{Recommendation: text})
}
