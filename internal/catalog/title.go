// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog owns the canonical title/chapter collection of Manhwaverse
and everything derived from it.

It manages the lifecycle of serialised titles (creation, metadata updates,
chapter publication) and derives the read views the rest of the application
renders (trending carousel, recently-updated list, new-chapter feed, genre
index, search results, reader navigation).

Core Responsibility:

  - Collection: The single source of truth for all titles, chapters and pages.
  - Persistence: Rewrites the whole serialized collection on every mutation.
  - Derivation: Pure, call-on-demand view functions with no hidden caching.

The persisted format is a JSON array of [Title] under one key-value entry, so
a snapshot can be exported, inspected, and re-imported as-is.
*/
package catalog

import (
	"strings"
	"time"
)

// # Core Entities

// Title is the central aggregate of the Manhwaverse domain.
// It represents one series in the catalog and exclusively owns its chapters.
type Title struct {
	ID          string    `json:"id"` // Stable slug, immutable after creation
	TitleText   string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	CoverURL    string    `json:"coverUrl"`
	Genres      []string  `json:"genres"` // Insertion order preserved for display
	Chapters    []Chapter `json:"chapters"`

	// IsTrendingDefault is a seed hint, consulted only while no curated
	// trending selection has ever been persisted.
	IsTrendingDefault bool `json:"isTrending,omitempty"`
}

// Chapter is one installment of a [Title].
//
// Its ID is unique within the parent title only. Two different titles may
// both contain a chapter 1; ids carry no global meaning and are never
// renumbered after a deletion.
type Chapter struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"publishedAt"` // Set at creation, immutable
	Pages       []Page    `json:"pages"`
}

// Page is a single displayable image unit within a [Chapter].
type Page struct {
	ID       int    `json:"id"` // 1-based position in display order
	ImageURL string `json:"imageUrl"`
}

// # Mutation Inputs

// TitleInput carries the fields for creating or updating a [Title].
//
// When ID is set and matches an existing title, the mutable metadata is
// replaced and the chapter list is preserved. When ID is empty, a slug is
// synthesized from TitleText and a new title is appended.
type TitleInput struct {
	ID          string `json:"id,omitempty"`
	TitleText   string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`

	// Genres is free-text comma-separated input ("Action, Drama"),
	// split and trimmed into the ordered genre sequence.
	Genres string `json:"genres"`
}

// ChapterInput carries the fields for publishing a new [Chapter].
type ChapterInput struct {
	Title string `json:"title"`

	// Pages is free-text comma-separated page-URL input; entries are
	// trimmed and numbered 1..n in input order.
	Pages string `json:"pages"`
}

// # Field Identifiers

// Field names used for validation details and JSON payloads.
const (
	FieldID          = "id"
	FieldTitleText   = "title"
	FieldAuthor      = "author"
	FieldDescription = "description"
	FieldCoverURL    = "coverUrl"
	FieldGenres      = "genres"
	FieldPages       = "pages"
	FieldChapterID   = "chapterId"
)

// latestPublishedAt returns the most recent chapter publication instant,
// or the zero time if the title has no chapters.
func (t Title) latestPublishedAt() time.Time {
	var latest time.Time
	for _, chapter := range t.Chapters {
		if chapter.PublishedAt.After(latest) {
			latest = chapter.PublishedAt
		}
	}
	return latest
}

// HasGenre reports whether the title carries genre under case-insensitive
// comparison.
func (t Title) HasGenre(genre string) bool {
	for _, g := range t.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}
