package telegram

import (
	"context"

	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
)

// LogBroadcaster writes summaries to the log; used when Telegram is disabled
type LogBroadcaster struct {
	logger coreport.Logger
}

// NewLogBroadcaster creates a LogBroadcaster
func NewLogBroadcaster(logger coreport.Logger) *LogBroadcaster {
	return &LogBroadcaster{logger: logger.With(map[string]any{"component": "broadcast"})}
}

// Send logs the text
func (b *LogBroadcaster) Send(_ context.Context, text string) error {
	b.logger.Info("Broadcast", map[string]any{"text": text})
	return nil
}

// SendWithImage logs the text and image link
func (b *LogBroadcaster) SendWithImage(_ context.Context, text string, imageURL string) error {
	b.logger.Info("Broadcast", map[string]any{"text": text, "image_url": imageURL})
	return nil
}
