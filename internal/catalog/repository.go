// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/manhwaverse/internal/platform/apperr"
	"github.com/taibuivan/manhwaverse/internal/platform/constants"
	"github.com/taibuivan/manhwaverse/internal/platform/kvstore"
	"github.com/taibuivan/manhwaverse/pkg/query"
	"github.com/taibuivan/manhwaverse/pkg/slug"
)

// # Repository Layer

// Repository owns the in-memory title collection and its persistence.
//
// # Persistence Model
//
// The whole collection is serialized as one JSON array under the "catalog"
// store key; every successful mutation rewrites it completely. There is no
// delta persistence and no cross-key transaction — the repository owns its
// key exclusively and never contends with the trending or bookmark sets.
//
// # Degraded Mode
//
// When a store write fails, the failure is logged and the in-memory state
// remains authoritative for the rest of the process lifetime. Mutations keep
// succeeding; they just stop surviving a restart. Readiness probes surface
// the condition via [Repository.Degraded].
type Repository struct {
	mu     sync.RWMutex
	store  kvstore.Store
	logger *slog.Logger

	// now is injectable for deterministic publication timestamps in tests.
	now func() time.Time

	titles   []Title
	degraded bool
}

// NewRepository constructs a [Repository] over the given store.
// Call [Repository.Load] before serving reads.
func NewRepository(store kvstore.Store, logger *slog.Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// # Loading

// Load reads the persisted collection, falling back to the seed dataset.
//
// Load never fails: a missing key, an unreachable store, or an unparseable
// payload all resolve to "start from seed". Corruption is logged so the
// operator can recover the raw entry before the next write overwrites it.
func (repository *Repository) Load(ctx context.Context) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	raw, err := repository.store.Get(ctx, constants.StoreKeyCatalog)
	if err != nil {
		if err != kvstore.ErrKeyNotFound {
			repository.logger.Warn("catalog_load_failed_using_seed", slog.String("error", err.Error()))
		}
		repository.titles = SeedTitles(repository.now())
		return
	}

	var titles []Title
	if err := json.Unmarshal(raw, &titles); err != nil {
		repository.logger.Warn("catalog_corrupt_using_seed", slog.String("error", err.Error()))
		repository.titles = SeedTitles(repository.now())
		return
	}

	repository.titles = titles
	repository.logger.Info("catalog_loaded", slog.Int("titles", len(titles)))
}

// # Reads

// Titles returns a snapshot of the collection in insertion order.
//
// The returned slice is a copy; nested chapter/page slices are shared and
// must be treated as read-only by callers (the view functions are pure).
func (repository *Repository) Titles() []Title {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	snapshot := make([]Title, len(repository.titles))
	copy(snapshot, repository.titles)
	return snapshot
}

// FindTitle resolves a title by id.
func (repository *Repository) FindTitle(id string) (Title, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, title := range repository.titles {
		if title.ID == id {
			return title, nil
		}
	}
	return Title{}, apperr.NotFound("Title")
}

// Degraded reports whether a store write has failed this session.
func (repository *Repository) Degraded() bool {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return repository.degraded
}

// # Mutations

/*
UpsertTitle creates a new title or replaces an existing title's metadata.

Description: With a matching input id, the mutable fields (title text,
author, description, cover, genres) are replaced while the chapter list is
preserved untouched. With no id, a slug is synthesized from the title text;
a collision with an existing id aborts with DUPLICATE_ID and a new title is
otherwise appended with an empty chapter list.

Parameters:
  - ctx: context.Context
  - input: TitleInput (validated upstream by the service layer)

Returns:
  - Title: The affected title after the mutation
  - error: apperr.DuplicateID on slug collision
*/
func (repository *Repository) UpsertTitle(ctx context.Context, input TitleInput) (Title, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	genres := query.StringSlice(input.Genres)

	// Update path: replace metadata, keep chapters.
	if input.ID != "" {
		for i, existing := range repository.titles {
			if existing.ID != input.ID {
				continue
			}

			existing.TitleText = input.TitleText
			existing.Author = input.Author
			existing.Description = input.Description
			existing.CoverURL = input.CoverURL
			existing.Genres = genres
			repository.titles[i] = existing

			repository.persist(ctx)
			repository.logger.Info("title_updated", slog.String("title_id", existing.ID))
			return existing, nil
		}
	}

	// Create path: synthesize the id from the title text.
	id := input.ID
	if id == "" {
		id = slug.From(input.TitleText)
	}
	for _, existing := range repository.titles {
		if existing.ID == id {
			return Title{}, apperr.DuplicateID(id)
		}
	}

	created := Title{
		ID:          id,
		TitleText:   input.TitleText,
		Author:      input.Author,
		Description: input.Description,
		CoverURL:    input.CoverURL,
		Genres:      genres,
		Chapters:    []Chapter{},
	}
	repository.titles = append(repository.titles, created)

	repository.persist(ctx)
	repository.logger.Info("title_created", slog.String("title_id", created.ID))
	return created, nil
}

/*
DeleteTitle removes a title from the collection.

Description: Deleting an absent id is a no-op, not an error (idempotent
delete). Trending and bookmark membership is NOT cascade-cleaned; stale ids
are tolerated and filtered out at read time by the view functions.

Parameters:
  - ctx: context.Context
  - id: string (title slug)

Returns:
  - error: Always nil today; kept for interface symmetry with other mutations
*/
func (repository *Repository) DeleteTitle(ctx context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for i, title := range repository.titles {
		if title.ID == id {
			repository.titles = append(repository.titles[:i], repository.titles[i+1:]...)
			repository.persist(ctx)
			repository.logger.Warn("title_deleted", slog.String("title_id", id))
			return nil
		}
	}

	// Absent id: idempotent no-op.
	return nil
}

/*
AddChapter publishes a new chapter under an existing title.

Description: The chapter id is assigned as max(existing ids) + 1, or 1 for
a title with no chapters. Deleted ids are never reused downward — ids are
stable and never renumbered. Page URLs come as comma-separated free text
and are trimmed and numbered 1..n in input order. PublishedAt is set to the
current instant and is immutable thereafter.

Parameters:
  - ctx: context.Context
  - titleID: string
  - input: ChapterInput (validated upstream by the service layer)

Returns:
  - Chapter: The newly published chapter
  - error: apperr.NotFound when the title does not resolve
*/
func (repository *Repository) AddChapter(ctx context.Context, titleID string, input ChapterInput) (Chapter, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for i, title := range repository.titles {
		if title.ID != titleID {
			continue
		}

		nextID := 1
		for _, chapter := range title.Chapters {
			if chapter.ID >= nextID {
				nextID = chapter.ID + 1
			}
		}

		urls := query.StringSlice(input.Pages)
		pages := make([]Page, 0, len(urls))
		for position, url := range urls {
			pages = append(pages, Page{ID: position + 1, ImageURL: url})
		}

		chapter := Chapter{
			ID:          nextID,
			Title:       input.Title,
			PublishedAt: repository.now(),
			Pages:       pages,
		}
		repository.titles[i].Chapters = append(repository.titles[i].Chapters, chapter)

		repository.persist(ctx)
		repository.logger.Info("chapter_published",
			slog.String("title_id", titleID),
			slog.Int("chapter_id", chapter.ID),
			slog.Int("pages", len(pages)),
		)
		return chapter, nil
	}

	return Chapter{}, apperr.NotFound("Title")
}

/*
DeleteChapter removes a chapter from a title.

Description: A missing title is an error; a missing chapter id within an
existing title is a no-op. Remaining chapter ids keep their values — no
renumbering, so a re-added chapter continues the sequence above the
historical maximum.

Parameters:
  - ctx: context.Context
  - titleID: string
  - chapterID: int

Returns:
  - error: apperr.NotFound when the title does not resolve
*/
func (repository *Repository) DeleteChapter(ctx context.Context, titleID string, chapterID int) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for i, title := range repository.titles {
		if title.ID != titleID {
			continue
		}

		for j, chapter := range title.Chapters {
			if chapter.ID == chapterID {
				repository.titles[i].Chapters = append(title.Chapters[:j], title.Chapters[j+1:]...)
				repository.persist(ctx)
				repository.logger.Warn("chapter_deleted",
					slog.String("title_id", titleID),
					slog.Int("chapter_id", chapterID),
				)
				return nil
			}
		}

		// Absent chapter id: idempotent no-op.
		return nil
	}

	return apperr.NotFound("Title")
}

// # Persistence

// persist rewrites the whole serialized collection under the "catalog" key.
//
// Callers must hold the write lock. A write failure flips the repository
// into degraded mode: the error is logged once per failure and the
// in-memory state stays authoritative, so the mutation itself still
// succeeds from the caller's perspective.
func (repository *Repository) persist(ctx context.Context) {
	raw, err := json.Marshal(repository.titles)
	if err != nil {
		// Marshalling plain structs cannot realistically fail; treat it
		// like a storage fault rather than panicking mid-mutation.
		repository.logger.Error("catalog_encode_failed", slog.String("error", err.Error()))
		repository.degraded = true
		return
	}

	if err := repository.store.Set(ctx, constants.StoreKeyCatalog, raw); err != nil {
		repository.logger.Error("catalog_persist_failed_degraded", slog.String("error", err.Error()))
		repository.degraded = true
		return
	}

	repository.degraded = false
}
