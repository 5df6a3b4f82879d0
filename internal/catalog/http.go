// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/manhwaverse/internal/platform/constants"
	"github.com/taibuivan/manhwaverse/internal/platform/middleware"
	requestutil "github.com/taibuivan/manhwaverse/internal/platform/request"
	"github.com/taibuivan/manhwaverse/internal/platform/respond"
	"github.com/taibuivan/manhwaverse/internal/platform/sec"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalog browsing and curation.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a catalog [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the catalog's endpoints.
//
// # Routing Strategy
//
//   - Discovery (Public): Browsing, search, reader payloads.
//   - Curation (Restricted): Mutations require [sec.RoleAdmin].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/titles", handler.listTitles)
	router.Get("/titles/recently-updated", handler.recentlyUpdated)
	router.Get("/titles/{id}", handler.getTitle)
	router.Get("/titles/{id}/chapters/{chapterID}", handler.readChapter)
	router.Get("/chapters/new", handler.newChapters)
	router.Get("/genres", handler.listGenres)
	router.Get("/genres/{genre}", handler.listByGenre)

	// ## Catalog Curation (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/titles", handler.saveTitle)
		admin.Put("/titles/{id}", handler.updateTitle)
		admin.Delete("/titles/{id}", handler.deleteTitle)
		admin.Post("/titles/{id}/chapters", handler.publishChapter)
		admin.Delete("/titles/{id}/chapters/{chapterID}", handler.deleteChapter)
	})

	return router
}

// # Discovery Endpoints

/*
GET /api/v1/titles.

Description: Retrieves the browsable title collection.

Request:
  - q: string (Case-insensitive substring over title text and genres)
  - genre: string (Exact genre filter, case-insensitive)

Response:
  - 200: []Title in collection order
*/
func (handler *Handler) listTitles(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()
	titles := handler.service.ListTitles(queryParams.Get("q"), queryParams.Get("genre"))
	respond.OK(writer, titles)
}

/*
GET /api/v1/titles/{id}.

Response:
  - 200: Title with its full chapter list
  - 404: Unknown slug
*/
func (handler *Handler) getTitle(writer http.ResponseWriter, request *http.Request) {
	title, err := handler.service.GetTitle(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, title)
}

/*
GET /api/v1/titles/{id}/chapters/{chapterID}.

Description: Resolves the reader payload: the chapter's pages plus
previous/next navigation references.

Response:
  - 200: ReaderView
  - 404: Unknown title or chapter
*/
func (handler *Handler) readChapter(writer http.ResponseWriter, request *http.Request) {
	chapterID, err := requestutil.IntParam(request, "chapterID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Reader(requestutil.Param(request, "id"), chapterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

/*
GET /api/v1/titles/recently-updated.

Request:
  - limit: int (Optional, defaults to the homepage cap)

Response:
  - 200: []UpdatedEntry ordered by newest chapter descending
*/
func (handler *Handler) recentlyUpdated(writer http.ResponseWriter, request *http.Request) {
	limit := requestutil.LimitQuery(request, constants.DefaultRecentlyUpdatedLimit)
	respond.OK(writer, handler.service.RecentlyUpdated(limit, constants.LatestChapterPreviewCount))
}

/*
GET /api/v1/chapters/new.

Request:
  - limit: int (Optional, defaults to the homepage cap)

Response:
  - 200: []ChapterFeedItem ordered by publication descending
*/
func (handler *Handler) newChapters(writer http.ResponseWriter, request *http.Request) {
	limit := requestutil.LimitQuery(request, constants.DefaultNewChaptersLimit)
	respond.OK(writer, handler.service.NewChapters(limit))
}

/*
GET /api/v1/genres.

Response:
  - 200: []string, distinct genres sorted ascending
*/
func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Genres())
}

/*
GET /api/v1/genres/{genre}.

Response:
  - 200: []Title carrying the genre, collection order preserved
*/
func (handler *Handler) listByGenre(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.ListTitles("", requestutil.Param(request, "genre")))
}

// # Curation Endpoints

/*
POST /api/v1/titles. Requires admin.

Description: Creates a new title (id synthesized from the title text) or,
when the body carries an id, updates that title's metadata in place.

Response:
  - 201: The affected Title
  - 400: Validation failure
  - 409: Synthesized slug collides with an existing title
*/
func (handler *Handler) saveTitle(writer http.ResponseWriter, request *http.Request) {
	var input TitleInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	title, err := handler.service.SaveTitle(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, title)
}

/*
PUT /api/v1/titles/{id}. Requires admin.

Description: Updates the addressed title's metadata, preserving chapters.
The URL id wins over any id in the body.

Response:
  - 200: The updated Title
  - 400: Validation failure
*/
func (handler *Handler) updateTitle(writer http.ResponseWriter, request *http.Request) {
	var input TitleInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.ID = requestutil.Param(request, "id")

	title, err := handler.service.SaveTitle(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, title)
}

/*
DELETE /api/v1/titles/{id}. Requires admin.

Response:
  - 204: Deleted (or already absent; the delete is idempotent)
*/
func (handler *Handler) deleteTitle(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.RemoveTitle(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
POST /api/v1/titles/{id}/chapters. Requires admin.

Response:
  - 201: The published Chapter with its assigned id
  - 400: Validation failure
  - 404: Unknown title
*/
func (handler *Handler) publishChapter(writer http.ResponseWriter, request *http.Request) {
	var input ChapterInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.PublishChapter(request.Context(), requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, chapter)
}

/*
DELETE /api/v1/titles/{id}/chapters/{chapterID}. Requires admin.

Response:
  - 204: Deleted (or chapter already absent)
  - 404: Unknown title
*/
func (handler *Handler) deleteChapter(writer http.ResponseWriter, request *http.Request) {
	chapterID, err := requestutil.IntParam(request, "chapterID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveChapter(request.Context(), requestutil.Param(request, "id"), chapterID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
