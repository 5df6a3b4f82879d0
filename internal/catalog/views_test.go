// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/manhwaverse/internal/catalog"
)

// viewFixture builds a small collection with known publication instants.
func viewFixture() []catalog.Title {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	return []catalog.Title{
		{
			ID:        "action-one",
			TitleText: "Action One",
			Genres:    []string{"Action", "Fantasy"},
			Chapters: []catalog.Chapter{
				{ID: 1, Title: "Ch 1", PublishedAt: base},
				{ID: 2, Title: "Ch 2", PublishedAt: base.AddDate(0, 0, 5)},
			},
		},
		{
			ID:        "drama-two",
			TitleText: "Drama Two",
			Genres:    []string{"Drama"},
			Chapters: []catalog.Chapter{
				{ID: 1, Title: "Ch 1", PublishedAt: base.AddDate(0, 0, 10)},
			},
		},
		{
			ID:        "empty-three",
			TitleText: "Empty Three",
			Genres:    []string{"action"}, // Lowercase on purpose: stored as-is
			Chapters:  []catalog.Chapter{},
		},
	}
}

/*
TestTrendingTitles verifies collection-order output and dangling-id
tolerance.
*/
func TestTrendingTitles(t *testing.T) {
	titles := viewFixture()

	t.Run("collection_order_wins", func(t *testing.T) {
		// Selection order is reversed relative to the collection.
		result := catalog.TrendingTitles(titles, []string{"drama-two", "action-one"})
		require.Len(t, result, 2)
		assert.Equal(t, "action-one", result[0].ID)
		assert.Equal(t, "drama-two", result[1].ID)
	})

	t.Run("dangling_id_dropped", func(t *testing.T) {
		result := catalog.TrendingTitles(titles, []string{"deleted-title", "drama-two"})
		require.Len(t, result, 1)
		assert.Equal(t, "drama-two", result[0].ID)
	})

	t.Run("empty_selection", func(t *testing.T) {
		assert.Empty(t, catalog.TrendingTitles(titles, nil))
	})
}

/*
TestRecentlyUpdated verifies newest-chapter ordering, chapterless
exclusion, and the limit cap.
*/
func TestRecentlyUpdated(t *testing.T) {
	titles := viewFixture()

	result := catalog.RecentlyUpdated(titles, 5)
	require.Len(t, result, 2) // empty-three excluded: zero chapters
	assert.Equal(t, "drama-two", result[0].ID)
	assert.Equal(t, "action-one", result[1].ID)

	capped := catalog.RecentlyUpdated(titles, 1)
	require.Len(t, capped, 1)
	assert.Equal(t, "drama-two", capped[0].ID)
}

/*
TestNewChapters verifies the flattened cross-title feed is ordered by
publication descending and truncated to the limit.
*/
func TestNewChapters(t *testing.T) {
	feed := catalog.NewChapters(viewFixture(), 10)
	require.Len(t, feed, 3)

	assert.Equal(t, "drama-two", feed[0].TitleID)
	assert.Equal(t, 1, feed[0].Chapter.ID)
	assert.Equal(t, "action-one", feed[1].TitleID)
	assert.Equal(t, 2, feed[1].Chapter.ID)
	assert.Equal(t, "action-one", feed[2].TitleID)
	assert.Equal(t, 1, feed[2].Chapter.ID)

	capped := catalog.NewChapters(viewFixture(), 2)
	assert.Len(t, capped, 2)
}

/*
TestGenreIndex verifies distinct, case-sensitive-as-stored, sorted output.
*/
func TestGenreIndex(t *testing.T) {
	genres := catalog.GenreIndex(viewFixture())
	assert.Equal(t, []string{"Action", "Drama", "Fantasy", "action"}, genres)
}

/*
TestFilterByGenre verifies case-insensitive matching with collection order
preserved.
*/
func TestFilterByGenre(t *testing.T) {
	result := catalog.FilterByGenre(viewFixture(), "ACTION")
	require.Len(t, result, 2)
	assert.Equal(t, "action-one", result[0].ID)
	assert.Equal(t, "empty-three", result[1].ID)

	assert.Empty(t, catalog.FilterByGenre(viewFixture(), "Horror"))
}

/*
TestSearch verifies the empty-query passthrough and case-insensitive
substring matching over title text and genres.
*/
func TestSearch(t *testing.T) {
	titles := viewFixture()

	t.Run("empty_query_returns_all", func(t *testing.T) {
		result := catalog.Search(titles, "")
		require.Len(t, result, len(titles))
		for i := range titles {
			assert.Equal(t, titles[i].ID, result[i].ID)
		}
	})

	t.Run("case_insensitive", func(t *testing.T) {
		upper := catalog.Search(titles, "ACTION")
		lower := catalog.Search(titles, "action")
		assert.Equal(t, upper, lower)
		require.Len(t, upper, 2)
	})

	t.Run("matches_title_text", func(t *testing.T) {
		result := catalog.Search(titles, "drama t")
		require.Len(t, result, 1)
		assert.Equal(t, "drama-two", result[0].ID)
	})

	t.Run("no_match", func(t *testing.T) {
		assert.Empty(t, catalog.Search(titles, "zzz"))
	})
}

/*
TestLatestChapters verifies the preview strip is newest-first and capped.
*/
func TestLatestChapters(t *testing.T) {
	titles := viewFixture()

	strip := catalog.LatestChapters(titles[0], 3)
	require.Len(t, strip, 2)
	assert.Equal(t, 2, strip[0].ID)
	assert.Equal(t, 1, strip[1].ID)

	capped := catalog.LatestChapters(titles[0], 1)
	require.Len(t, capped, 1)
	assert.Equal(t, 2, capped[0].ID)
}
