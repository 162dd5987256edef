package boltstore

import (
	"context"

	bolt "github.com/boltdb/bolt"
)

// SettingsRepository implements SettingsRepository on bolt
type SettingsRepository struct {
	store *Store
}

// NewSettingsRepository creates a new SettingsRepository instance
func NewSettingsRepository(store *Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// ImageURLs returns the whole key -> URL map
func (r *SettingsRepository) ImageURLs(ctx context.Context) (map[string]string, error) {
	images := map[string]string{}
	err := r.store.view(ctx, "list image settings", func(tx *bolt.Tx) error {
		return tx.Bucket(bucketImages).ForEach(func(k, v []byte) error {
			images[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

// SetImageURL creates or replaces one entry
func (r *SettingsRepository) SetImageURL(ctx context.Context, key, url string) error {
	return r.store.update(ctx, "set image setting", func(tx *bolt.Tx) error {
		return tx.Bucket(bucketImages).Put([]byte(key), []byte(url))
	})
}

// DeleteImageURL removes one entry; bolt treats a missing key as a no-op
func (r *SettingsRepository) DeleteImageURL(ctx context.Context, key string) error {
	return r.store.update(ctx, "delete image setting", func(tx *bolt.Tx) error {
		return tx.Bucket(bucketImages).Delete([]byte(key))
	})
}
