// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "time"

// # Seed Dataset

// Placeholder image services used until real covers and scans are uploaded.
const (
	seedCoverURL = "https://placehold.co/300x450.png"
	seedPageURL  = "https://placehold.co/800x1200.png"
)

// SeedTitles returns the built-in default catalog, used only when the store
// has no prior "catalog" entry.
//
// Publication timestamps are staggered backwards from now so the
// recently-updated and new-chapter views render a sensible order on a
// fresh installation.
func SeedTitles(now time.Time) []Title {
	daysAgo := func(days int) time.Time {
		return now.AddDate(0, 0, -days)
	}

	return []Title{
		{
			ID:                "solo-leveling",
			TitleText:         "Solo Leveling",
			Author:            "Chugong",
			Description:       "In a world where hunters, humans with supernatural abilities, must battle deadly monsters to protect humanity, a notoriously weak hunter finds himself in a struggle for survival.",
			CoverURL:          seedCoverURL,
			Genres:            []string{"Action", "Fantasy", "Adventure"},
			IsTrendingDefault: true,
			Chapters: []Chapter{
				seedChapter(1, "Chapter 1", 15, daysAgo(14)),
				seedChapter(2, "Chapter 2", 18, daysAgo(7)),
				seedChapter(3, "Chapter 3", 16, daysAgo(1)),
			},
		},
		{
			ID:                "tower-of-god",
			TitleText:         "Tower of God",
			Author:            "SIU",
			Description:       "A boy named Bam, who has spent his life trapped beneath a mysterious tower, chases after his only friend, Rachel, as she enters it.",
			CoverURL:          seedCoverURL,
			Genres:            []string{"Action", "Fantasy", "Mystery"},
			IsTrendingDefault: true,
			Chapters: []Chapter{
				seedChapter(1, "S1 - Chapter 1", 20, daysAgo(10)),
				seedChapter(2, "S1 - Chapter 2", 22, daysAgo(3)),
			},
		},
		{
			ID:          "the-beginning-after-the-end",
			TitleText:   "The Beginning After The End",
			Author:      "TurtleMe",
			Description: "King Grey has unrivaled strength, wealth, and prestige in a world governed by martial ability. However, solitude lingers closely behind those with great power. Beneath the glamorous exterior of a powerful king lurks the shell of man, devoid of purpose and will.",
			CoverURL:    seedCoverURL,
			Genres:      []string{"Action", "Fantasy", "Isekai"},
			Chapters: []Chapter{
				seedChapter(1, "Chapter 1", 25, daysAgo(5)),
			},
		},
		{
			ID:                "omniscient-readers-viewpoint",
			TitleText:         "Omniscient Reader's Viewpoint",
			Author:            "Sing-Shong",
			Description:       "Kim Dokja does not consider himself the protagonist of his own life. His sole hobby is reading the web novel \"Three Ways to Survive the Apocalypse,\" and he is its only reader to have followed it to its end. When the real world is suddenly plunged into the apocalyptic landscape of the novel, Dokja is uniquely prepared.",
			CoverURL:          seedCoverURL,
			Genres:            []string{"Action", "Fantasy", "Apocalyptic"},
			IsTrendingDefault: true,
			Chapters: []Chapter{
				seedChapter(1, "Chapter 1", 30, daysAgo(9)),
				seedChapter(2, "Chapter 2", 28, daysAgo(2)),
			},
		},
		{
			ID:          "sweet-home",
			TitleText:   "Sweet Home",
			Author:      "Kim Carnby",
			Description: "As a reclusive high school student, Cha Hyun-soo is forced to leave his home, only to face a reality where monsters are trying to wipe out humanity.",
			CoverURL:    seedCoverURL,
			Genres:      []string{"Horror", "Thriller", "Apocalyptic"},
			Chapters: []Chapter{
				seedChapter(1, "Chapter 1", 15, daysAgo(12)),
			},
		},
		{
			ID:          "noblesse",
			TitleText:   "Noblesse",
			Author:      "Son Jeho",
			Description: "He awakens from 820 years of slumber and has no knowledge of the modern world. In his quest to familiarise himself with this new era, he enrolls in a high school and befriends a group of students.",
			CoverURL:    seedCoverURL,
			Genres:      []string{"Action", "Supernatural", "Comedy"},
			Chapters: []Chapter{
				seedChapter(1, "Chapter 1", 12, daysAgo(20)),
			},
		},
	}
}

// DefaultTrendingIDs collects the ids of titles flagged trending, in
// collection order. It seeds the trending set before any curated
// selection has been persisted.
func DefaultTrendingIDs(titles []Title) []string {
	var ids []string
	for _, title := range titles {
		if title.IsTrendingDefault {
			ids = append(ids, title.ID)
		}
	}
	return ids
}

// seedChapter builds a chapter of pageCount placeholder pages.
func seedChapter(id int, title string, pageCount int, publishedAt time.Time) Chapter {
	pages := make([]Page, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		pages = append(pages, Page{ID: i, ImageURL: seedPageURL})
	}

	return Chapter{
		ID:          id,
		Title:       title,
		PublishedAt: publishedAt,
		Pages:       pages,
	}
}
