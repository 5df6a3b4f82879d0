// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kvstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/manhwaverse/internal/platform/kvstore"
)

/*
TestMemory_RoundTrip verifies basic set/get/remove behavior of the map backend.
*/
func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()

	// 1. Missing key
	_, err := store.Get(ctx, "catalog")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)

	// 2. Write and read back
	require.NoError(t, store.Set(ctx, "catalog", []byte(`["a"]`)))
	value, err := store.Get(ctx, "catalog")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["a"]`), value)

	// 3. Overwrite
	require.NoError(t, store.Set(ctx, "catalog", []byte(`["a","b"]`)))
	value, err = store.Get(ctx, "catalog")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["a","b"]`), value)

	// 4. Remove is idempotent
	require.NoError(t, store.Remove(ctx, "catalog"))
	require.NoError(t, store.Remove(ctx, "catalog"))
	_, err = store.Get(ctx, "catalog")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

/*
TestMemory_CopySemantics ensures stored values are isolated from caller slices.
*/
func TestMemory_CopySemantics(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()

	payload := []byte("original")
	require.NoError(t, store.Set(ctx, "k", payload))

	// Mutating the caller's slice must not affect the stored copy.
	payload[0] = 'X'

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), value)

	// Mutating the returned slice must not affect a later read.
	value[0] = 'Y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}
