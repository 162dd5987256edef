// Package boltstore provides an embedded BoltDB backend for every persistence port.
//
// Records are JSON documents in one bucket per collection, plus index buckets
// for the lookups that need them (display names, request keys). Repository
// methods join the write transaction carried by the context when a unit of
// work is active and open their own transaction otherwise.
package boltstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
)

var (
	bucketAccounts       = []byte("accounts")
	bucketAccountNames   = []byte("account_names")
	bucketOrders         = []byte("orders")
	bucketTopUps         = []byte("topups")
	bucketNotifications  = []byte("notifications")
	bucketIntents        = []byte("purchase_intents")
	bucketIntentRequests = []byte("purchase_intent_requests")
	bucketImages         = []byte("image_settings")
)

var allBuckets = [][]byte{
	bucketAccounts,
	bucketAccountNames,
	bucketOrders,
	bucketTopUps,
	bucketNotifications,
	bucketIntents,
	bucketIntentRequests,
	bucketImages,
}

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "bolt_tx"

// Store wraps a BoltDB database shared by all repositories
type Store struct {
	db           *bolt.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// Open opens (or creates) the database file and ensures every bucket exists
func Open(path string, timeProvider coreport.TimeProvider, logger coreport.Logger) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %s", errs.ErrDatabaseConnection, path, err.Error())
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create buckets: %s", errs.ErrDatabaseConnection, err.Error())
	}

	logger.Info("Bolt store opened", map[string]any{
		"path": path,
	})

	return &Store{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}, nil
}

// Close releases the database file lock
func (s *Store) Close() error {
	return s.db.Close()
}

// txFromContext returns the write transaction of an active unit of work
func txFromContext(ctx context.Context) (*bolt.Tx, bool) {
	tx, ok := ctx.Value(txKey).(*bolt.Tx)
	return tx, ok && tx != nil
}

// update runs fn in the context's transaction, or in a new read-write transaction
func (s *Store) update(ctx context.Context, op string, fn func(tx *bolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tx, ok := txFromContext(ctx); ok {
		return s.translate(op, fn(tx))
	}
	return s.translate(op, s.db.Update(fn))
}

// view runs fn in the context's transaction, or in a new read-only transaction
func (s *Store) view(ctx context.Context, op string, fn func(tx *bolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tx, ok := txFromContext(ctx); ok {
		return s.translate(op, fn(tx))
	}
	return s.translate(op, s.db.View(fn))
}

// translate maps bolt and encoding failures onto domain errors and passes domain errors through
func (s *Store) translate(op string, err error) error {
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, bolt.ErrDatabaseNotOpen),
		errors.Is(err, bolt.ErrTxClosed),
		errors.Is(err, bolt.ErrTimeout),
		errors.Is(err, bolt.ErrDatabaseReadOnly),
		errors.Is(err, bolt.ErrTxNotWritable):
		s.logger.Error("Bolt storage error", map[string]any{
			"operation": op,
			"error":     err.Error(),
		})
		return fmt.Errorf("%w: %s: %s", errs.ErrDatabaseConnection, op, err.Error())
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		s.logger.Error("Corrupt record in bolt store", map[string]any{
			"operation": op,
			"error":     err.Error(),
		})
		return fmt.Errorf("%w: %s: %s", errs.ErrInternalServer, op, err.Error())
	default:
		return err
	}
}

// getJSON decodes the value at key into out, reporting whether the key exists
func getJSON(b *bolt.Bucket, key string, out any) (bool, error) {
	raw := b.Get([]byte(key))
	if raw == nil {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

// putJSON encodes value and stores it at key
func putJSON(b *bolt.Bucket, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return b.Put([]byte(key), raw)
}

// forEachJSON decodes every value of the bucket into a fresh T
func forEachJSON[T any](b *bolt.Bucket, fn func(*T) error) error {
	return b.ForEach(func(_, v []byte) error {
		item := new(T)
		if err := json.Unmarshal(v, item); err != nil {
			return err
		}
		return fn(item)
	})
}
