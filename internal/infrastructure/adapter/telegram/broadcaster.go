package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
)

// Telegram limits
const (
	maxMessageLength = 4096
	maxCaptionLength = 1024
)

// sender is the part of *tgbotapi.BotAPI the broadcaster uses
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Broadcaster posts summaries to the staff chat through a Telegram bot
type Broadcaster struct {
	bot    sender
	chatID int64
	logger coreport.Logger
}

// NewBroadcaster logs the bot in and returns a broadcaster for chatID
func NewBroadcaster(token string, chatID int64, timeout time.Duration, logger coreport.Logger) (*Broadcaster, error) {
	client := &http.Client{Timeout: timeout}
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("telegram login: %w", err)
	}

	logger.Info("Telegram broadcaster ready", map[string]any{
		"bot":     bot.Self.UserName,
		"chat_id": chatID,
	})
	return newBroadcaster(bot, chatID, logger), nil
}

func newBroadcaster(bot sender, chatID int64, logger coreport.Logger) *Broadcaster {
	return &Broadcaster{
		bot:    bot,
		chatID: chatID,
		logger: logger.With(map[string]any{"component": "telegram"}),
	}
}

// Send posts a text message
func (b *Broadcaster) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(b.chatID, truncate(text, maxMessageLength))
	msg.DisableWebPagePreview = true
	if _, err := b.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

// SendWithImage posts a photo captioned with text. Telegram fetches the image
// itself; if it cannot, the text is sent alone with the link appended.
func (b *Broadcaster) SendWithImage(ctx context.Context, text string, imageURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if imageURL == "" {
		return b.Send(ctx, text)
	}

	photo := tgbotapi.NewPhoto(b.chatID, tgbotapi.FileURL(imageURL))
	photo.Caption = truncate(text, maxCaptionLength)
	if _, err := b.bot.Send(photo); err != nil {
		b.logger.Warn("Photo upload failed, falling back to text", map[string]any{
			"image_url": imageURL,
			"error":     err.Error(),
		})
		return b.Send(ctx, text+"\n"+imageURL)
	}
	return nil
}

// truncate cuts s to at most limit runes, marking the cut
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
