// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/manhwaverse/internal/catalog"
	"github.com/taibuivan/manhwaverse/internal/platform/apperr"
)

// navigatorFixture stores chapters deliberately out of numeric order, as
// happens after a delete-then-republish sequence.
func navigatorFixture() catalog.Title {
	return catalog.Title{
		ID:        "fixture",
		TitleText: "Fixture",
		Chapters: []catalog.Chapter{
			{ID: 3, Title: "Ch 3"},
			{ID: 1, Title: "Ch 1"},
			{ID: 4, Title: "Ch 4"},
		},
	}
}

/*
TestResolveChapter verifies id-ascending ordering and the previous/next
boundary contract: neighbours bracket the chapter numerically, and both
are nil exactly at the sequence boundaries.
*/
func TestResolveChapter(t *testing.T) {
	title := navigatorFixture()

	t.Run("first_chapter", func(t *testing.T) {
		position, err := catalog.ResolveChapter(title, 1)
		require.NoError(t, err)

		assert.Nil(t, position.Previous)
		require.NotNil(t, position.Next)
		assert.Equal(t, 3, position.Next.ID)
	})

	t.Run("middle_chapter", func(t *testing.T) {
		position, err := catalog.ResolveChapter(title, 3)
		require.NoError(t, err)

		require.NotNil(t, position.Previous)
		require.NotNil(t, position.Next)
		assert.Equal(t, 1, position.Previous.ID)
		assert.Equal(t, 4, position.Next.ID)
		assert.Less(t, position.Previous.ID, position.Chapter.ID)
		assert.Greater(t, position.Next.ID, position.Chapter.ID)
	})

	t.Run("last_chapter", func(t *testing.T) {
		position, err := catalog.ResolveChapter(title, 4)
		require.NoError(t, err)

		require.NotNil(t, position.Previous)
		assert.Equal(t, 3, position.Previous.ID)
		assert.Nil(t, position.Next)
	})

	t.Run("unknown_chapter", func(t *testing.T) {
		_, err := catalog.ResolveChapter(title, 2)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("single_chapter_title", func(t *testing.T) {
		single := catalog.Title{Chapters: []catalog.Chapter{{ID: 1, Title: "Only"}}}

		position, err := catalog.ResolveChapter(single, 1)
		require.NoError(t, err)
		assert.Nil(t, position.Previous)
		assert.Nil(t, position.Next)
	})
}
