// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/manhwaverse/internal/catalog"
	"github.com/taibuivan/manhwaverse/internal/platform/apperr"
	"github.com/taibuivan/manhwaverse/internal/platform/constants"
	"github.com/taibuivan/manhwaverse/internal/platform/kvstore"
)

// # Test Fixtures

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// failingStore rejects every write, simulating an unavailable backend.
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, kvstore.ErrKeyNotFound
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func (failingStore) Remove(context.Context, string) error {
	return errors.New("disk full")
}

// loadedRepository returns a repository loaded with the given collection.
func loadedRepository(t *testing.T, store kvstore.Store, titles []catalog.Title) *catalog.Repository {
	t.Helper()

	raw, err := json.Marshal(titles)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), constants.StoreKeyCatalog, raw))

	repository := catalog.NewRepository(store, testLogger())
	repository.Load(context.Background())
	return repository
}

func fixtureTitles() []catalog.Title {
	yesterday := time.Now().AddDate(0, 0, -1)

	return []catalog.Title{
		{
			ID:        "alpha",
			TitleText: "Alpha",
			Author:    "A",
			Genres:    []string{"Action"},
			Chapters:  []catalog.Chapter{},
		},
		{
			ID:        "beta",
			TitleText: "Beta",
			Author:    "B",
			Genres:    []string{"Drama"},
			Chapters: []catalog.Chapter{
				{ID: 1, Title: "Chapter 1", PublishedAt: yesterday, Pages: []catalog.Page{{ID: 1, ImageURL: "https://img/1.png"}}},
			},
		},
	}
}

// # Loading & Persistence

/*
TestRepository_Load_SeedFallback verifies that a missing or corrupt store
entry resolves to the built-in seed dataset without erroring.
*/
func TestRepository_Load_SeedFallback(t *testing.T) {
	t.Run("empty_store", func(t *testing.T) {
		repository := catalog.NewRepository(kvstore.NewMemory(), testLogger())
		repository.Load(context.Background())

		titles := repository.Titles()
		require.Len(t, titles, 6)
		assert.Equal(t, "solo-leveling", titles[0].ID)
	})

	t.Run("corrupt_entry", func(t *testing.T) {
		store := kvstore.NewMemory()
		require.NoError(t, store.Set(context.Background(), constants.StoreKeyCatalog, []byte("{not json")))

		repository := catalog.NewRepository(store, testLogger())
		repository.Load(context.Background())

		require.Len(t, repository.Titles(), 6)
	})
}

/*
TestRepository_RoundTrip verifies that persisting and reloading reproduces
an identical collection: same ids, same chapter and page ordering.
*/
func TestRepository_RoundTrip(t *testing.T) {
	store := kvstore.NewMemory()
	repository := loadedRepository(t, store, fixtureTitles())

	// Mutate so the repository rewrites the store itself.
	_, err := repository.AddChapter(context.Background(), "beta", catalog.ChapterInput{
		Title: "Chapter 2",
		Pages: "https://img/a.png, https://img/b.png",
	})
	require.NoError(t, err)

	reloaded := catalog.NewRepository(store, testLogger())
	reloaded.Load(context.Background())

	// Compare serialized forms: in-memory timestamps carry monotonic clock
	// readings that never survive (and never should survive) a reload.
	expected, err := json.Marshal(repository.Titles())
	require.NoError(t, err)
	actual, err := json.Marshal(reloaded.Titles())
	require.NoError(t, err)
	assert.JSONEq(t, string(expected), string(actual))
}

// # Title Mutations

/*
TestRepository_UpsertTitle_Create verifies slug synthesis, genre splitting,
and the empty initial chapter list on the create path.
*/
func TestRepository_UpsertTitle_Create(t *testing.T) {
	repository := loadedRepository(t, kvstore.NewMemory(), nil)

	created, err := repository.UpsertTitle(context.Background(), catalog.TitleInput{
		TitleText:   "New Show",
		Author:      "X",
		Description: "0123456789",
		CoverURL:    "https://x/y.png",
		Genres:      "Action, Drama",
	})
	require.NoError(t, err)

	assert.Equal(t, "new-show", created.ID)
	assert.Equal(t, []string{"Action", "Drama"}, created.Genres)
	assert.Empty(t, created.Chapters)
}

/*
TestRepository_UpsertTitle_DuplicateID verifies that a synthesized slug
colliding with an existing title aborts with DUPLICATE_ID.
*/
func TestRepository_UpsertTitle_DuplicateID(t *testing.T) {
	repository := loadedRepository(t, kvstore.NewMemory(), fixtureTitles())

	_, err := repository.UpsertTitle(context.Background(), catalog.TitleInput{
		TitleText:   "Beta",
		Author:      "Someone Else",
		Description: "another take on beta",
		CoverURL:    "https://x/y.png",
		Genres:      "Drama",
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "DUPLICATE_ID", appError.Code)
}

/*
TestRepository_UpsertTitle_UpdatePreservesChapters verifies that the update
path replaces metadata but never touches the chapter list.
*/
func TestRepository_UpsertTitle_UpdatePreservesChapters(t *testing.T) {
	repository := loadedRepository(t, kvstore.NewMemory(), fixtureTitles())

	updated, err := repository.UpsertTitle(context.Background(), catalog.TitleInput{
		ID:          "beta",
		TitleText:   "Beta Remastered",
		Author:      "B2",
		Description: "a longer description",
		CoverURL:    "https://img/beta2.png",
		Genres:      "Drama, Romance",
	})
	require.NoError(t, err)

	assert.Equal(t, "beta", updated.ID)
	assert.Equal(t, "Beta Remastered", updated.TitleText)
	assert.Equal(t, []string{"Drama", "Romance"}, updated.Genres)
	require.Len(t, updated.Chapters, 1)
	assert.Equal(t, 1, updated.Chapters[0].ID)
}

/*
TestRepository_DeleteTitle verifies removal and that deleting an absent id
is a silent no-op.
*/
func TestRepository_DeleteTitle(t *testing.T) {
	repository := loadedRepository(t, kvstore.NewMemory(), fixtureTitles())

	require.NoError(t, repository.DeleteTitle(context.Background(), "alpha"))
	_, err := repository.FindTitle("alpha")
	require.Error(t, err)

	// Idempotent: second delete of the same id still succeeds.
	require.NoError(t, repository.DeleteTitle(context.Background(), "alpha"))
	assert.Len(t, repository.Titles(), 1)
}

// # Chapter Mutations

/*
TestRepository_AddChapter_IDAssignment verifies the max+1 id rule,
including id stability across deletions.
*/
func TestRepository_AddChapter_IDAssignment(t *testing.T) {
	repository := loadedRepository(t, kvstore.NewMemory(), fixtureTitles())

	// First chapter of a chapterless title starts at 1.
	first, err := repository.AddChapter(context.Background(), "alpha", catalog.ChapterInput{
		Title: "Chapter 1",
		Pages: "https://img/1.png",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	// Beta already has chapter 1, so the next id is 2.
	second, err := repository.AddChapter(context.Background(), "beta", catalog.ChapterInput{
		Title: "Chapter 2",
		Pages: "https://img/2.png",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	// Deleting chapter 1 must not cause id reuse: next id is still 3.
	require.NoError(t, repository.DeleteChapter(context.Background(), "beta", 1))
	third, err := repository.AddChapter(context.Background(), "beta", catalog.ChapterInput{
		Title: "Chapter 3",
		Pages: "https://img/3.png",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID)
}

/*
TestRepository_AddChapter_Pages verifies the comma-split page input is
trimmed and numbered from 1 in input order.
*/
func TestRepository_AddChapter_Pages(t *testing.T) {
	repository := loadedRepository(t, kvstore.NewMemory(), fixtureTitles())

	chapter, err := repository.AddChapter(context.Background(), "alpha", catalog.ChapterInput{
		Title: "Chapter 1",
		Pages: " https://img/a.png , https://img/b.png,https://img/c.png ",
	})
	require.NoError(t, err)

	require.Len(t, chapter.Pages, 3)
	assert.Equal(t, catalog.Page{ID: 1, ImageURL: "https://img/a.png"}, chapter.Pages[0])
	assert.Equal(t, catalog.Page{ID: 2, ImageURL: "https://img/b.png"}, chapter.Pages[1])
	assert.Equal(t, catalog.Page{ID: 3, ImageURL: "https://img/c.png"}, chapter.Pages[2])
	assert.False(t, chapter.PublishedAt.IsZero())
}

/*
TestRepository_AddChapter_UnknownTitle verifies the NOT_FOUND error.
*/
func TestRepository_AddChapter_UnknownTitle(t *testing.T) {
	repository := loadedRepository(t, kvstore.NewMemory(), fixtureTitles())

	_, err := repository.AddChapter(context.Background(), "ghost", catalog.ChapterInput{
		Title: "Chapter 1",
		Pages: "https://img/1.png",
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}

/*
TestRepository_DeleteChapter verifies the missing-title error and the
missing-chapter no-op.
*/
func TestRepository_DeleteChapter(t *testing.T) {
	repository := loadedRepository(t, kvstore.NewMemory(), fixtureTitles())

	require.NoError(t, repository.DeleteChapter(context.Background(), "beta", 1))

	// Absent chapter id inside an existing title: no-op.
	require.NoError(t, repository.DeleteChapter(context.Background(), "beta", 99))

	// Absent title: error.
	err := repository.DeleteChapter(context.Background(), "ghost", 1)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestRepository_ChapterIDsArePerTitle confirms chapter ids carry no global
meaning: two titles may both hold a chapter 1 without interference.
*/
func TestRepository_ChapterIDsArePerTitle(t *testing.T) {
	repository := loadedRepository(t, kvstore.NewMemory(), fixtureTitles())

	chapter, err := repository.AddChapter(context.Background(), "alpha", catalog.ChapterInput{
		Title: "Chapter 1",
		Pages: "https://img/1.png",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, chapter.ID)

	beta, err := repository.FindTitle("beta")
	require.NoError(t, err)
	require.Len(t, beta.Chapters, 1)
	assert.Equal(t, 1, beta.Chapters[0].ID)
}

// # Degraded Persistence

/*
TestRepository_DegradedMode verifies that a failing store write keeps the
in-memory state authoritative instead of failing the mutation.
*/
func TestRepository_DegradedMode(t *testing.T) {
	repository := catalog.NewRepository(failingStore{}, testLogger())
	repository.Load(context.Background())
	require.Len(t, repository.Titles(), 6)
	assert.False(t, repository.Degraded())

	created, err := repository.UpsertTitle(context.Background(), catalog.TitleInput{
		TitleText:   "New Show",
		Author:      "X",
		Description: "0123456789",
		CoverURL:    "https://x/y.png",
		Genres:      "Action",
	})
	require.NoError(t, err)
	assert.True(t, repository.Degraded())

	// The mutation still took effect in memory.
	found, err := repository.FindTitle(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Show", found.TitleText)
}
