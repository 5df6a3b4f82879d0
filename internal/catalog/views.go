// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"sort"
	"strings"
)

// # Derived Views
//
// Pure functions over a title snapshot. None mutate their inputs, none
// cache, and all of them silently drop ids that no longer resolve to a
// title (the trending and bookmark sets are never cascade-cleaned).

// ChapterFeedItem is one entry of the new-chapters feed: a chapter paired
// with just enough of its parent title to render a card.
type ChapterFeedItem struct {
	TitleID   string  `json:"titleId"`
	TitleText string  `json:"titleText"`
	CoverURL  string  `json:"coverUrl"`
	Chapter   Chapter `json:"chapter"`
}

// TrendingTitles returns the titles whose id is in the trending selection,
// preserving the collection's insertion order rather than the selection's.
func TrendingTitles(titles []Title, ids []string) []Title {
	return FilterByIDs(titles, ids)
}

// FilterByIDs returns the titles whose id is in ids, collection order
// preserved. Both the trending carousel and the bookmark list are id-set
// projections, so they share this one filter.
//
// Dangling ids (deleted titles still referenced by a set) are dropped,
// never an error.
func FilterByIDs(titles []Title, ids []string) []Title {
	member := make(map[string]bool, len(ids))
	for _, id := range ids {
		member[id] = true
	}

	var result []Title
	for _, title := range titles {
		if member[title.ID] {
			result = append(result, title)
		}
	}
	return result
}

// RecentlyUpdated returns up to limit titles that have at least one
// chapter, ordered by their newest chapter's publication instant
// descending. Ties keep collection order.
func RecentlyUpdated(titles []Title, limit int) []Title {
	var withChapters []Title
	for _, title := range titles {
		if len(title.Chapters) > 0 {
			withChapters = append(withChapters, title)
		}
	}

	sort.SliceStable(withChapters, func(i, j int) bool {
		return withChapters[i].latestPublishedAt().After(withChapters[j].latestPublishedAt())
	})

	return truncate(withChapters, limit)
}

// NewChapters returns up to limit (title, chapter) pairs across the whole
// collection, newest publication first. Ties keep collection order.
func NewChapters(titles []Title, limit int) []ChapterFeedItem {
	var feed []ChapterFeedItem
	for _, title := range titles {
		for _, chapter := range title.Chapters {
			feed = append(feed, ChapterFeedItem{
				TitleID:   title.ID,
				TitleText: title.TitleText,
				CoverURL:  title.CoverURL,
				Chapter:   chapter,
			})
		}
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Chapter.PublishedAt.After(feed[j].Chapter.PublishedAt)
	})

	return truncate(feed, limit)
}

// GenreIndex returns the distinct genre strings across all titles,
// case-sensitive as stored, sorted ascending.
func GenreIndex(titles []Title) []string {
	seen := make(map[string]bool)
	var genres []string
	for _, title := range titles {
		for _, genre := range title.Genres {
			if !seen[genre] {
				seen[genre] = true
				genres = append(genres, genre)
			}
		}
	}

	sort.Strings(genres)
	return genres
}

// FilterByGenre returns the titles carrying genre under case-insensitive
// comparison, collection order preserved.
func FilterByGenre(titles []Title, genre string) []Title {
	var result []Title
	for _, title := range titles {
		if title.HasGenre(genre) {
			result = append(result, title)
		}
	}
	return result
}

// Search returns the titles whose title text or any genre contains q as a
// case-insensitive substring. An empty q returns the full collection in
// original order. Whitespace is matched as-is, not trimmed.
func Search(titles []Title, q string) []Title {
	if q == "" {
		result := make([]Title, len(titles))
		copy(result, titles)
		return result
	}

	needle := strings.ToLower(q)

	var result []Title
	for _, title := range titles {
		if strings.Contains(strings.ToLower(title.TitleText), needle) {
			result = append(result, title)
			continue
		}
		for _, genre := range title.Genres {
			if strings.Contains(strings.ToLower(genre), needle) {
				result = append(result, title)
				break
			}
		}
	}
	return result
}

// LatestChapters returns the title's newest count chapters by publication
// instant, newest first. Used for the recently-updated preview strip.
func LatestChapters(title Title, count int) []Chapter {
	chapters := make([]Chapter, len(title.Chapters))
	copy(chapters, title.Chapters)

	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].PublishedAt.After(chapters[j].PublishedAt)
	})

	return truncate(chapters, count)
}

// truncate caps a slice at limit; non-positive limits mean "no cap".
func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
