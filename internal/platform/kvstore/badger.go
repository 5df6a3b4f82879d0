// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kvstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Badger is the embedded on-disk [Store] backend.
//
// It is the default driver: a self-hosted reading app should work out of the
// box without a database server.
type Badger struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a badger database at path.
func OpenBadger(path string, logger *slog.Logger) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil      // Disable badger's internal logging; slog covers us.
	opts.SyncWrites = true // Every mutation must survive an immediate crash.

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("kvstore: failed to open badger db at %s: %w", path, err)
	}

	logger.Info("badger store opened", slog.String("path", path))

	return &Badger{db: db}, nil
}

// Get implements [Store].
func (store *Badger) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte

	err := store.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: badger get %q: %w", key, err)
	}

	return value, nil
}

// Set implements [Store].
func (store *Badger) Set(_ context.Context, key string, value []byte) error {
	err := store.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("kvstore: badger set %q: %w", key, err)
	}
	return nil
}

// Remove implements [Store].
func (store *Badger) Remove(_ context.Context, key string) error {
	err := store.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("kvstore: badger remove %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying database files.
func (store *Badger) Close() error {
	return store.db.Close()
}
