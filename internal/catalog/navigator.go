// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"sort"

	"github.com/taibuivan/manhwaverse/internal/platform/apperr"
)

// # Reader Navigation

// ChapterRef is a lightweight pointer to a neighbouring chapter, enough
// for the reader's previous/next buttons without shipping the page list.
type ChapterRef struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// ChapterPosition is a chapter resolved inside its title's ordered
// sequence, with its neighbours for reader navigation. Previous and Next
// are nil at the respective sequence boundary; there is no wraparound.
type ChapterPosition struct {
	Chapter  Chapter
	Previous *ChapterRef
	Next     *ChapterRef
}

// ResolveChapter locates chapterID inside the title's chapter sequence
// ordered ascending by chapter id.
//
// The sort is explicit because chapter ids can be created out of numeric
// order: deleting a chapter and publishing a new one appends the new id at
// the end of the stored slice while its numeric position may differ.
func ResolveChapter(title Title, chapterID int) (ChapterPosition, error) {
	ordered := make([]Chapter, len(title.Chapters))
	copy(ordered, title.Chapters)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for i, chapter := range ordered {
		if chapter.ID != chapterID {
			continue
		}

		position := ChapterPosition{Chapter: chapter}
		if i > 0 {
			position.Previous = &ChapterRef{ID: ordered[i-1].ID, Title: ordered[i-1].Title}
		}
		if i < len(ordered)-1 {
			position.Next = &ChapterRef{ID: ordered[i+1].ID, Title: ordered[i+1].Title}
		}
		return position, nil
	}

	return ChapterPosition{}, apperr.NotFound("Chapter")
}
