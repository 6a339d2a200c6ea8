package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"esimbot/internal/booking"
	"esimbot/internal/config"
	"esimbot/internal/logger"
)

// Bot is the delivery adapter: it maps Telegram updates to typed
// booking events and renders the flow's actions back to the chat.
type Bot struct {
	tb   *tele.Bot
	flow *booking.Flow
	loc  *time.Location
	log  *slog.Logger
}

// New builds the bot from config and wires every handler.
func New(cfg *config.Config, flow *booking.Flow) (*Bot, error) {
	loc, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		return nil, fmt.Errorf("telegram: load timezone: %w", err)
	}

	log := logger.Component("tg")
	tb, err := tele.NewBot(tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: buildPoller(cfg),
		Client: BuildHTTPClient(),
		OnError: func(err error, c tele.Context) {
			attrs := []any{
				slog.String("event", "tg.error"),
				slog.String("err", err.Error()),
			}
			if c != nil && c.Sender() != nil {
				attrs = append(attrs, slog.Int64("user_id", c.Sender().ID))
			}
			log.Error("handler error", attrs...)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("telegram: bot initialization failed: %w", err)
	}

	b := &Bot{tb: tb, flow: flow, loc: loc, log: log}

	tb.Use(Recover(log))
	tb.Use(UpdateLogger(log))
	if cfg.RateLimit.IntervalMS > 0 {
		tb.Use(RateLimit(cfg.RateLimit, log))
	}

	b.register()
	return b, nil
}

// buildPoller selects webhook or long polling per config.
func buildPoller(cfg *config.Config) tele.Poller {
	if strings.EqualFold(cfg.Telegram.RunMode, config.RunModeWebhook) {
		return &tele.Webhook{
			Listen:   fmt.Sprintf("%s:%d", cfg.Webhook.Listen, cfg.Webhook.Port),
			Endpoint: &tele.WebhookEndpoint{PublicURL: cfg.Webhook.URL},
		}
	}
	timeoutSec := cfg.Telegram.LongPollTimeoutSeconds
	if timeoutSec <= 0 {
		timeoutSec = 10
	}
	return &tele.LongPoller{Timeout: time.Duration(timeoutSec) * time.Second}
}

// Run starts the bot until the context is done.
func (b *Bot) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	b.log.Info("bot starting", slog.String("event", "tg.start"))

	done := make(chan struct{})
	go func() {
		b.tb.Start()
		close(done)
	}()

	select {
	case <-ctx.Done():
		b.tb.Stop()
		<-done
		b.log.Info("bot stopped", slog.String("event", "tg.stop"))
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil
		}
		return ctx.Err()
	case <-done:
		return nil
	}
}

// perform executes the flow's outbound actions against the transport.
func (b *Bot) perform(c tele.Context, actions []booking.Action) error {
	now := time.Now().In(b.loc)
	for _, action := range actions {
		var err error
		switch a := action.(type) {
		case booking.SendMessage:
			if kb := renderKeyboard(a.Keyboard, now); kb != nil {
				_, err = b.tb.Send(&tele.User{ID: a.UserID}, a.Text, kb)
			} else {
				_, err = b.tb.Send(&tele.User{ID: a.UserID}, a.Text)
			}
		case booking.EditMessage:
			if kb := renderKeyboard(a.Keyboard, now); kb != nil {
				err = c.Edit(a.Text, kb)
			} else {
				err = c.Edit(a.Text)
			}
		case booking.AnswerCallback:
			err = c.Respond(&tele.CallbackResponse{Text: a.Text})
		}
		if err != nil {
			return err
		}
	}
	return nil
}
