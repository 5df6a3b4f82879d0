// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/manhwaverse/internal/catalog"
	"github.com/taibuivan/manhwaverse/internal/platform/apperr"
	"github.com/taibuivan/manhwaverse/internal/platform/kvstore"
)

// stubTrending satisfies [catalog.TrendingProvider] with a fixed selection.
type stubTrending struct{ ids []string }

func (stub stubTrending) IDs() []string { return stub.ids }

func newTestService(t *testing.T, titles []catalog.Title, trendingIDs []string) *catalog.Service {
	t.Helper()

	repository := loadedRepository(t, kvstore.NewMemory(), titles)
	return catalog.NewService(repository, stubTrending{ids: trendingIDs}, testLogger())
}

/*
TestService_SaveTitle_Validation verifies the metadata constraints at the
mutation boundary: nothing invalid ever reaches the repository.
*/
func TestService_SaveTitle_Validation(t *testing.T) {
	tests := []struct {
		name     string
		input    catalog.TitleInput
		badField string
	}{
		{
			name: "missing_title_text",
			input: catalog.TitleInput{
				Author: "X", Description: "0123456789", CoverURL: "https://x/y.png", Genres: "Action",
			},
			badField: catalog.FieldTitleText,
		},
		{
			name: "short_description",
			input: catalog.TitleInput{
				TitleText: "Show", Author: "X", Description: "too short", CoverURL: "https://x/y.png", Genres: "Action",
			},
			badField: catalog.FieldDescription,
		},
		{
			name: "malformed_cover_url",
			input: catalog.TitleInput{
				TitleText: "Show", Author: "X", Description: "0123456789", CoverURL: "not-a-url", Genres: "Action",
			},
			badField: catalog.FieldCoverURL,
		},
		{
			name: "empty_genres",
			input: catalog.TitleInput{
				TitleText: "Show", Author: "X", Description: "0123456789", CoverURL: "https://x/y.png", Genres: " , ",
			},
			badField: catalog.FieldGenres,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t, nil, nil)

			_, err := service.SaveTitle(context.Background(), tt.input)
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)

			require.NotEmpty(t, appError.Details)
			assert.Equal(t, tt.badField, appError.Details[0].Field)
		})
	}
}

/*
TestService_SaveTitle_Valid verifies the happy path end to end through the
service boundary.
*/
func TestService_SaveTitle_Valid(t *testing.T) {
	service := newTestService(t, nil, nil)

	title, err := service.SaveTitle(context.Background(), catalog.TitleInput{
		TitleText:   "New Show",
		Author:      "X",
		Description: "0123456789",
		CoverURL:    "https://x/y.png",
		Genres:      "Action, Drama",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-show", title.ID)
}

/*
TestService_PublishChapter_Validation verifies the chapter constraints:
label required, at least one page URL after splitting.
*/
func TestService_PublishChapter_Validation(t *testing.T) {
	service := newTestService(t, fixtureTitles(), nil)

	t.Run("empty_pages", func(t *testing.T) {
		_, err := service.PublishChapter(context.Background(), "beta", catalog.ChapterInput{
			Title: "Chapter 2",
			Pages: "  ,  ",
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("missing_label", func(t *testing.T) {
		_, err := service.PublishChapter(context.Background(), "beta", catalog.ChapterInput{
			Pages: "https://img/1.png",
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

/*
TestService_RecentlyUpdatedScenario exercises the publish-then-list flow:
a fresh chapter moves its title to the head of the recently-updated view.
*/
func TestService_RecentlyUpdatedScenario(t *testing.T) {
	service := newTestService(t, fixtureTitles(), nil)

	chapter, err := service.PublishChapter(context.Background(), "beta", catalog.ChapterInput{
		Title: "Ch2",
		Pages: "u1,u2",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, chapter.ID)

	entries := service.RecentlyUpdated(5, 3)
	require.Len(t, entries, 1) // alpha excluded: zero chapters
	assert.Equal(t, "beta", entries[0].Title.ID)
	assert.Len(t, entries[0].Title.Chapters, 2)

	// Preview strip is newest-first.
	require.NotEmpty(t, entries[0].LatestChapters)
	assert.Equal(t, 2, entries[0].LatestChapters[0].ID)
}

/*
TestService_TrendingAfterDelete verifies stale trending references are
dropped silently after a title deletion.
*/
func TestService_TrendingAfterDelete(t *testing.T) {
	repository := loadedRepository(t, kvstore.NewMemory(), fixtureTitles())
	service := catalog.NewService(repository, stubTrending{ids: []string{"alpha", "beta"}}, testLogger())

	require.Len(t, service.Trending(), 2)

	require.NoError(t, service.RemoveTitle(context.Background(), "alpha"))

	trending := service.Trending()
	require.Len(t, trending, 1)
	assert.Equal(t, "beta", trending[0].ID)
}

/*
TestService_Reader verifies the reader payload and its error paths.
*/
func TestService_Reader(t *testing.T) {
	service := newTestService(t, fixtureTitles(), nil)

	t.Run("resolves_payload", func(t *testing.T) {
		view, err := service.Reader("beta", 1)
		require.NoError(t, err)

		assert.Equal(t, "beta", view.TitleID)
		assert.Equal(t, "Beta", view.TitleText)
		assert.Equal(t, 1, view.Chapter.ID)
		assert.Nil(t, view.Previous)
		assert.Nil(t, view.Next)
	})

	t.Run("unknown_title", func(t *testing.T) {
		_, err := service.Reader("ghost", 1)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("unknown_chapter", func(t *testing.T) {
		_, err := service.Reader("beta", 42)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})
}
