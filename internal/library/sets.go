// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package library owns the two id-set aggregates layered over the catalog:
the curated trending selection and the viewer's bookmarks.

Both are thin, symmetric wrappers with the same persistence contract over
different store keys. They hold title ids as references, never ownership:
a title may be deleted while its id lingers in either set, and every
consumer filters such dangling ids out at read time instead of erroring.

Core Responsibility:

  - TrendingSet: Overrides the titles' own seed trending flags once saved.
  - BookmarkSet: The viewer's saved-for-later selection, toggle-driven.
  - Persistence: Each set rewrites its whole id list on every mutation.
*/
package library

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/taibuivan/manhwaverse/internal/platform/apperr"
	"github.com/taibuivan/manhwaverse/internal/platform/constants"
	"github.com/taibuivan/manhwaverse/internal/platform/kvstore"
)

// # Shared Set Mechanics

// idSet is the common core of both aggregates: an ordered id list with
// whole-value persistence under one store key.
type idSet struct {
	mu     sync.RWMutex
	store  kvstore.Store
	logger *slog.Logger
	key    string
	ids    []string
}

// load reads the persisted id list, falling back to fallback when the key
// is absent or the entry is unreadable. Like the catalog, loading never
// fails.
func (set *idSet) load(ctx context.Context, fallback []string) {
	set.mu.Lock()
	defer set.mu.Unlock()

	raw, err := set.store.Get(ctx, set.key)
	if err != nil {
		if err != kvstore.ErrKeyNotFound {
			set.logger.Warn("id_set_load_failed_using_fallback",
				slog.String("key", set.key),
				slog.String("error", err.Error()),
			)
		}
		set.ids = append([]string(nil), fallback...)
		return
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		set.logger.Warn("id_set_corrupt_using_fallback",
			slog.String("key", set.key),
			slog.String("error", err.Error()),
		)
		set.ids = append([]string(nil), fallback...)
		return
	}

	set.ids = ids
}

// snapshot returns a copy of the current membership in stored order.
func (set *idSet) snapshot() []string {
	set.mu.RLock()
	defer set.mu.RUnlock()
	return append([]string(nil), set.ids...)
}

// contains is a pure membership check.
func (set *idSet) contains(id string) bool {
	set.mu.RLock()
	defer set.mu.RUnlock()

	for _, member := range set.ids {
		if member == id {
			return true
		}
	}
	return false
}

// persist rewrites the id list under the set's key. Callers hold the
// write lock. A failed write is logged and the in-memory membership stays
// authoritative, matching the catalog's degraded mode.
func (set *idSet) persist(ctx context.Context) {
	raw, err := json.Marshal(set.ids)
	if err != nil {
		set.logger.Error("id_set_encode_failed", slog.String("key", set.key), slog.String("error", err.Error()))
		return
	}

	if err := set.store.Set(ctx, set.key, raw); err != nil {
		set.logger.Error("id_set_persist_failed_degraded",
			slog.String("key", set.key),
			slog.String("error", err.Error()),
		)
	}
}

// # Trending Selection

// TrendingSet is the curated set of trending title ids.
//
// Until the first ReplaceAll is persisted, membership comes from the seed
// titles' own trending flags; once saved, the curated selection fully
// overrides those flags forever.
type TrendingSet struct {
	idSet
}

// NewTrendingSet constructs a [TrendingSet] over the "trendingIds" key.
func NewTrendingSet(store kvstore.Store, logger *slog.Logger) *TrendingSet {
	return &TrendingSet{idSet: idSet{store: store, logger: logger, key: constants.StoreKeyTrending}}
}

// Load initializes membership from the store, falling back to defaultIDs
// (the ids of titles seeded with a trending flag) when no curated
// selection has ever been saved.
func (set *TrendingSet) Load(ctx context.Context, defaultIDs []string) {
	set.load(ctx, defaultIDs)
}

// IDs returns the current selection in stored order. It implements the
// catalog's TrendingProvider.
func (set *TrendingSet) IDs() []string { return set.snapshot() }

// Contains reports whether id is in the selection.
func (set *TrendingSet) Contains(id string) bool { return set.contains(id) }

/*
ReplaceAll overwrites the whole curated selection.

Description: An empty selection is rejected — the homepage carousel must
never be curated into nonexistence. Ids are not checked against the
catalog; selecting a title and deleting it later leaves a dangling id
that read paths filter out.

Parameters:
  - ctx: context.Context
  - ids: []string (The complete new selection)

Returns:
  - error: apperr.ValidationError when ids is empty
*/
func (set *TrendingSet) ReplaceAll(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return apperr.ValidationError("At least one trending title is required",
			apperr.FieldError{Field: "ids", Message: "Select at least one title"},
		)
	}

	set.mu.Lock()
	defer set.mu.Unlock()

	set.ids = append([]string(nil), ids...)
	set.persist(ctx)
	set.logger.Info("trending_selection_replaced", slog.Int("count", len(ids)))
	return nil
}

// # Bookmarks

// BookmarkSet is the viewer's saved-for-later set of title ids.
type BookmarkSet struct {
	idSet
}

// NewBookmarkSet constructs a [BookmarkSet] over the "bookmarkIds" key.
func NewBookmarkSet(store kvstore.Store, logger *slog.Logger) *BookmarkSet {
	return &BookmarkSet{idSet: idSet{store: store, logger: logger, key: constants.StoreKeyBookmarks}}
}

// Load initializes membership from the store; the fallback is empty.
func (set *BookmarkSet) Load(ctx context.Context) {
	set.load(ctx, nil)
}

// IDs returns the bookmarked ids in stored order.
func (set *BookmarkSet) IDs() []string { return set.snapshot() }

// Contains reports whether id is bookmarked.
func (set *BookmarkSet) Contains(id string) bool { return set.contains(id) }

/*
Toggle flips the bookmark state of id.

Description: Adds the id when absent, removes it when present, and
persists either way. Applied twice in succession it restores the original
membership. The id is not checked against the catalog.

Parameters:
  - ctx: context.Context
  - id: string (title slug)

Returns:
  - bool: The NEW membership state (true = now bookmarked)
*/
func (set *BookmarkSet) Toggle(ctx context.Context, id string) bool {
	set.mu.Lock()
	defer set.mu.Unlock()

	for i, member := range set.ids {
		if member == id {
			set.ids = append(set.ids[:i], set.ids[i+1:]...)
			set.persist(ctx)
			set.logger.Info("bookmark_removed", slog.String("title_id", id))
			return false
		}
	}

	set.ids = append(set.ids, id)
	set.persist(ctx)
	set.logger.Info("bookmark_added", slog.String("title_id", id))
	return true
}
