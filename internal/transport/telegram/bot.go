// Package telegram is the chat front end: a long-poll bot client, the
// update dispatcher and the renderer for coordinator notices.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/oggyb/matchbot/internal/config"
	"github.com/oggyb/matchbot/internal/coordinator"
)

// UpdateHandler processes one update from the long-poll loop.
type UpdateHandler func(context.Context, tgbotapi.Update)

// Sender sends one chattable to the chat API.
type Sender interface {
	Send(c tgbotapi.Chattable) error
}

// Bot wraps the Telegram API. With an empty token it runs in dry mode:
// nothing is sent and Listen just waits for shutdown.
type Bot struct {
	api         *tgbotapi.BotAPI
	log         *slog.Logger
	pollTimeout int
	dryRun      bool
}

// NewBot connects to the Telegram API with the configured token.
func NewBot(cfg *config.Config, log *slog.Logger) (*Bot, error) {
	if log == nil {
		log = slog.Default()
	}
	b := &Bot{log: log, pollTimeout: cfg.Bot.PollTimeout}

	token := strings.TrimSpace(cfg.Bot.Token)
	if token == "" {
		b.dryRun = true
		return b, nil
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	b.api = api
	log.Info("telegram bot authorized", "username", api.Self.UserName)
	return b, nil
}

// DryRun reports whether the bot runs without a token.
func (b *Bot) DryRun() bool { return b.dryRun }

// Send delivers c. Callback answers go through Request since the API
// replies with a bool rather than a message, and media groups reply with a
// list of messages.
func (b *Bot) Send(c tgbotapi.Chattable) error {
	if b.dryRun {
		b.log.Debug("dry mode, not sending", "type", fmt.Sprintf("%T", c))
		return nil
	}
	switch v := c.(type) {
	case tgbotapi.CallbackConfig:
		_, err := b.api.Request(v)
		return err
	case tgbotapi.MediaGroupConfig:
		_, err := b.api.SendMediaGroup(v)
		return err
	}
	_, err := b.api.Send(c)
	return err
}

// ErrDryRun is returned when a paid message cannot be delivered because the
// bot runs without a token.
var ErrDryRun = errors.New("telegram: dry mode, message not delivered")

// Deliver implements coordinator.Transport. In dry mode user messages fail so
// that the sender is never charged; other notices are dropped silently.
func (b *Bot) Deliver(_ context.Context, out coordinator.Outbound) error {
	if out.To == 0 {
		return errors.New("telegram: recipient is required")
	}
	if b.dryRun && out.Kind == coordinator.KindMessage {
		return ErrDryRun
	}
	return b.Send(RenderOutbound(out))
}

// Listen long-polls updates and hands each one to handler until ctx is done.
func (b *Bot) Listen(ctx context.Context, handler UpdateHandler) error {
	if handler == nil {
		return errors.New("telegram update handler is required")
	}
	if b.dryRun {
		b.log.Warn("BOT_TOKEN is empty, running in dry mode")
		<-ctx.Done()
		return nil
	}

	timeout := b.pollTimeout
	if timeout <= 0 {
		timeout = 30
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = timeout
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			handler(ctx, update)
		}
	}
}
