// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/manhwaverse/internal/platform/validate"
	"github.com/taibuivan/manhwaverse/pkg/query"
)

// # Service Layer

// TrendingProvider supplies the curated set of trending title ids.
//
// Defined here so the catalog service depends on behaviour, not on the
// library package that persists the selection.
type TrendingProvider interface {
	IDs() []string
}

// Service orchestrates catalog reads and mutations.
//
// It is the validation boundary: every mutation input is checked here
// before it reaches the repository, so the repository can assume
// semantically valid data.
type Service struct {
	repository *Repository
	trending   TrendingProvider
	logger     *slog.Logger
}

// NewService constructs a catalog [Service].
func NewService(repository *Repository, trending TrendingProvider, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		trending:   trending,
		logger:     logger,
	}
}

// # Read Models

// UpdatedEntry is one recently-updated listing: a title plus a short strip
// of its newest chapters for preview.
type UpdatedEntry struct {
	Title          Title     `json:"title"`
	LatestChapters []Chapter `json:"latestChapters"`
}

// ReaderView is the full payload the chapter reader renders: the resolved
// chapter with its pages and the neighbouring chapters for navigation.
type ReaderView struct {
	TitleID   string      `json:"titleId"`
	TitleText string      `json:"titleText"`
	Chapter   Chapter     `json:"chapter"`
	Previous  *ChapterRef `json:"previous,omitempty"`
	Next      *ChapterRef `json:"next,omitempty"`
}

// # Discovery

/*
ListTitles retrieves the browsable collection, optionally narrowed.

Description: A genre narrows by exact case-insensitive genre membership; a
search query then narrows by case-insensitive substring over title text and
genres. An empty query returns everything, so the browse page and the
search page share this one entry point.

Parameters:
  - q: string (Substring search; empty means unfiltered)
  - genre: string (Exact genre filter; empty means unfiltered)

Returns:
  - []Title: Matching titles in collection order
*/
func (service *Service) ListTitles(q, genre string) []Title {
	titles := service.repository.Titles()
	if genre != "" {
		titles = FilterByGenre(titles, genre)
	}
	return Search(titles, q)
}

// GetTitle resolves one title by its slug.
func (service *Service) GetTitle(id string) (Title, error) {
	return service.repository.FindTitle(id)
}

// Trending returns the curated trending titles in collection order,
// silently dropping selection ids that no longer resolve.
func (service *Service) Trending() []Title {
	return TrendingTitles(service.repository.Titles(), service.trending.IDs())
}

// RecentlyUpdated returns up to limit titles ordered by newest chapter,
// each with a short preview strip of its latest chapters.
func (service *Service) RecentlyUpdated(limit, previewCount int) []UpdatedEntry {
	titles := RecentlyUpdated(service.repository.Titles(), limit)

	entries := make([]UpdatedEntry, 0, len(titles))
	for _, title := range titles {
		entries = append(entries, UpdatedEntry{
			Title:          title,
			LatestChapters: LatestChapters(title, previewCount),
		})
	}
	return entries
}

// NewChapters returns the cross-title feed of newest chapters.
func (service *Service) NewChapters(limit int) []ChapterFeedItem {
	return NewChapters(service.repository.Titles(), limit)
}

// Genres returns the sorted distinct genre index.
func (service *Service) Genres() []string {
	return GenreIndex(service.repository.Titles())
}

// # Reader

/*
Reader resolves the payload for the chapter reading screen.

Description: Locates the title, orders its chapters ascending by id, and
returns the requested chapter together with its previous/next neighbours.
Neighbours are nil at the sequence boundaries; there is no wraparound.

Parameters:
  - titleID: string
  - chapterID: int

Returns:
  - ReaderView: Chapter pages plus navigation refs
  - error: apperr.NotFound when the title or chapter does not resolve
*/
func (service *Service) Reader(titleID string, chapterID int) (ReaderView, error) {
	title, err := service.repository.FindTitle(titleID)
	if err != nil {
		return ReaderView{}, err
	}

	position, err := ResolveChapter(title, chapterID)
	if err != nil {
		return ReaderView{}, err
	}

	return ReaderView{
		TitleID:   title.ID,
		TitleText: title.TitleText,
		Chapter:   position.Chapter,
		Previous:  position.Previous,
		Next:      position.Next,
	}, nil
}

// # Curation

/*
SaveTitle validates and applies a title create-or-update.

Description: Enforces the metadata constraints (required fields, minimum
description length, well-formed cover URL, at least one genre) before
delegating the id resolution and persistence to the repository.

Parameters:
  - ctx: context.Context
  - input: TitleInput

Returns:
  - Title: The affected title
  - error: apperr.ValidationError or apperr.DuplicateID
*/
func (service *Service) SaveTitle(ctx context.Context, input TitleInput) (Title, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitleText, input.TitleText)
	validator.Required(FieldAuthor, input.Author)
	validator.Required(FieldDescription, input.Description).MinLen(FieldDescription, input.Description, 10)
	validator.Required(FieldCoverURL, input.CoverURL).URL(FieldCoverURL, input.CoverURL)
	validator.Custom(FieldGenres, len(query.StringSlice(input.Genres)) == 0, "At least one genre is required")

	if err := validator.Err(); err != nil {
		return Title{}, err
	}

	return service.repository.UpsertTitle(ctx, input)
}

// RemoveTitle deletes a title. Absent ids are a silent no-op.
func (service *Service) RemoveTitle(ctx context.Context, id string) error {
	return service.repository.DeleteTitle(ctx, id)
}

/*
PublishChapter validates and appends a new chapter to a title.

Description: Requires a chapter label and at least one page URL. The
repository assigns the next chapter id and stamps the publication instant.

Parameters:
  - ctx: context.Context
  - titleID: string
  - input: ChapterInput

Returns:
  - Chapter: The published chapter with its assigned id
  - error: apperr.ValidationError or apperr.NotFound
*/
func (service *Service) PublishChapter(ctx context.Context, titleID string, input ChapterInput) (Chapter, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitleText, input.Title)
	validator.Custom(FieldPages, len(query.StringSlice(input.Pages)) == 0, "At least one page URL is required")

	if err := validator.Err(); err != nil {
		return Chapter{}, err
	}

	return service.repository.AddChapter(ctx, titleID, input)
}

// RemoveChapter deletes a chapter. A missing title errors; a missing
// chapter id within an existing title is a silent no-op.
func (service *Service) RemoveChapter(ctx context.Context, titleID string, chapterID int) error {
	return service.repository.DeleteChapter(ctx, titleID, chapterID)
}
