package messaging

import (
	"context"
)

// Broadcaster posts human-readable summaries to the staff channel.
// Callers treat it as fire-and-forget: errors are logged, never propagated.
type Broadcaster interface {
	// Send posts a text message
	Send(ctx context.Context, text string) error

	// SendWithImage posts a message with an attached image
	SendWithImage(ctx context.Context, text string, imageURL string) error
}
