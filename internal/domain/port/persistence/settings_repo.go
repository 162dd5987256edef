package persistence

import (
	"context"
)

// SettingsRepository holds the image URL lookup table used by catalog rendering
type SettingsRepository interface {
	// ImageURLs returns the whole key -> URL map
	ImageURLs(ctx context.Context) (map[string]string, error)

	// SetImageURL creates or replaces one entry
	SetImageURL(ctx context.Context, key, url string) error

	// DeleteImageURL removes one entry; removing a missing key is not an error
	DeleteImageURL(ctx context.Context, key string) error
}
