package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atgamehub/storefront/internal/infrastructure/adapter/logger"
)

type recordingSender struct {
	sent     []tgbotapi.Chattable
	failWith func(tgbotapi.Chattable) error
}

func (s *recordingSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.sent = append(s.sent, c)
	if s.failWith != nil {
		if err := s.failWith(c); err != nil {
			return tgbotapi.Message{}, err
		}
	}
	return tgbotapi.Message{MessageID: len(s.sent)}, nil
}

func TestBroadcasterSend(t *testing.T) {
	bot := &recordingSender{}
	b := newBroadcaster(bot, -100123, logger.NewNoopLogger())

	require.NoError(t, b.Send(context.Background(), "New order ABC12345"))
	require.Len(t, bot.sent, 1)

	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(-100123), msg.ChatID)
	assert.Equal(t, "New order ABC12345", msg.Text)
}

func TestBroadcasterSendWithImage(t *testing.T) {
	bot := &recordingSender{}
	b := newBroadcaster(bot, 42, logger.NewNoopLogger())

	require.NoError(t, b.SendWithImage(context.Background(), "Top-up request", "https://img.example/receipt.png"))
	require.Len(t, bot.sent, 1)

	photo, ok := bot.sent[0].(tgbotapi.PhotoConfig)
	require.True(t, ok)
	assert.Equal(t, "Top-up request", photo.Caption)
	assert.Equal(t, tgbotapi.FileURL("https://img.example/receipt.png"), photo.File)
}

func TestBroadcasterFallsBackToText(t *testing.T) {
	bot := &recordingSender{failWith: func(c tgbotapi.Chattable) error {
		if _, isPhoto := c.(tgbotapi.PhotoConfig); isPhoto {
			return errors.New("Bad Request: wrong file identifier")
		}
		return nil
	}}
	b := newBroadcaster(bot, 42, logger.NewNoopLogger())

	require.NoError(t, b.SendWithImage(context.Background(), "Top-up request", "https://img.example/x.png"))
	require.Len(t, bot.sent, 2)

	msg := bot.sent[1].(tgbotapi.MessageConfig)
	assert.Equal(t, "Top-up request\nhttps://img.example/x.png", msg.Text)
}

func TestBroadcasterErrors(t *testing.T) {
	bot := &recordingSender{failWith: func(tgbotapi.Chattable) error { return errors.New("Forbidden") }}
	b := newBroadcaster(bot, 42, logger.NewNoopLogger())
	assert.Error(t, b.Send(context.Background(), "x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, b.Send(ctx, "x"), context.Canceled)
	assert.Len(t, bot.sent, 1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))

	long := strings.Repeat("က", maxCaptionLength+10)
	cut := truncate(long, maxCaptionLength)
	assert.Equal(t, maxCaptionLength, utf8.RuneCountInString(cut))
	assert.True(t, strings.HasSuffix(cut, "…"))
}
