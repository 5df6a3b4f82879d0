// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package library

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/manhwaverse/internal/catalog"
	"github.com/taibuivan/manhwaverse/internal/platform/middleware"
	requestutil "github.com/taibuivan/manhwaverse/internal/platform/request"
	"github.com/taibuivan/manhwaverse/internal/platform/respond"
	"github.com/taibuivan/manhwaverse/internal/platform/sec"
)

// CatalogReader supplies catalog snapshots for id-set hydration.
// It is satisfied by the catalog service.
type CatalogReader interface {
	ListTitles(q, genre string) []catalog.Title
	Trending() []catalog.Title
}

// # Handler Implementation

// Handler implements the HTTP layer for the trending selection and the
// viewer's bookmarks.
type Handler struct {
	trending  *TrendingSet
	bookmarks *BookmarkSet
	titles    CatalogReader
}

// NewHandler constructs a library [Handler].
func NewHandler(trending *TrendingSet, bookmarks *BookmarkSet, titles CatalogReader) *Handler {
	return &Handler{
		trending:  trending,
		bookmarks: bookmarks,
		titles:    titles,
	}
}

// TrendingRoutes returns the router mounted at /trending.
func (handler *Handler) TrendingRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listTrending)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Put("/", handler.replaceTrending)
	})

	return router
}

// BookmarkRoutes returns the router mounted at /bookmarks.
func (handler *Handler) BookmarkRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listBookmarks)
	router.Post("/{id}/toggle", handler.toggleBookmark)

	return router
}

// # Payloads

type replaceTrendingRequest struct {
	IDs []string `json:"ids"`
}

type toggleBookmarkResponse struct {
	TitleID    string `json:"titleId"`
	Bookmarked bool   `json:"bookmarked"`
}

// # Trending Endpoints

/*
GET /api/v1/trending.

Description: Returns the curated trending titles in collection order.
Selection ids pointing at deleted titles are dropped silently.

Response:
  - 200: []Title
*/
func (handler *Handler) listTrending(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.titles.Trending())
}

/*
PUT /api/v1/trending. Requires admin.

Description: Overwrites the whole curated trending selection.

Request:
  - ids: []string (At least one title id)

Response:
  - 200: {"ids": [...]} — the selection as stored
  - 400: Empty selection
*/
func (handler *Handler) replaceTrending(writer http.ResponseWriter, request *http.Request) {
	var input replaceTrendingRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.trending.ReplaceAll(request.Context(), input.IDs); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, replaceTrendingRequest{IDs: handler.trending.IDs()})
}

// # Bookmark Endpoints

/*
GET /api/v1/bookmarks.

Description: Returns the bookmarked titles hydrated from the catalog, in
collection order. Bookmarks pointing at deleted titles are dropped
silently rather than erroring.

Response:
  - 200: []Title
*/
func (handler *Handler) listBookmarks(writer http.ResponseWriter, request *http.Request) {
	bookmarked := catalog.FilterByIDs(handler.titles.ListTitles("", ""), handler.bookmarks.IDs())
	respond.OK(writer, bookmarked)
}

/*
POST /api/v1/bookmarks/{id}/toggle.

Description: Flips the bookmark state of one title and reports the new
membership. Toggling twice restores the original state.

Response:
  - 200: {"titleId": ..., "bookmarked": bool}
*/
func (handler *Handler) toggleBookmark(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")
	bookmarked := handler.bookmarks.Toggle(request.Context(), id)

	respond.OK(writer, toggleBookmarkResponse{TitleID: id, Bookmarked: bookmarked})
}
