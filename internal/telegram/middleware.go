package telegram

import (
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	tele "gopkg.in/telebot.v4"

	"esimbot/internal/config"
)

// Recover catches panics in handlers and keeps the bot alive.
func Recover(log *slog.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					log.Error("panic recovered",
						slog.String("event", "tg.panic"),
						slog.Any("err", r),
						slog.String("stack", string(debug.Stack())),
					)
				}
			}()
			return next(c)
		}
	}
}

// UpdateLogger logs one receipt line per update.
func UpdateLogger(log *slog.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			attrs := []any{
				slog.String("event", "update.received"),
				slog.Int("update_id", c.Update().ID),
			}
			if user := c.Sender(); user != nil {
				attrs = append(attrs, slog.Int64("user_id", user.ID))
			}
			if cb := c.Callback(); cb != nil {
				attrs = append(attrs, slog.String("cb_key", cb.Unique))
			} else if text := c.Text(); text != "" {
				attrs = append(attrs, slog.String("payload", truncate(text, 256)))
			}

			err := next(c)

			attrs = append(attrs, slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			if err != nil {
				attrs = append(attrs, slog.String("status", "fail"), slog.String("err", err.Error()))
				log.Warn("update handled", attrs...)
				return err
			}
			attrs = append(attrs, slog.String("status", "ok"))
			log.Debug("update handled", attrs...)
			return nil
		}
	}
}

// RateLimit enforces a minimum interval between updates from the same
// user. Update kinds listed in Exclude bypass the limit.
func RateLimit(cfg config.RateLimitConfig, log *slog.Logger) tele.MiddlewareFunc {
	interval := time.Duration(cfg.IntervalMS) * time.Millisecond
	exclude := make(map[string]struct{}, len(cfg.ExcludeUpdates))
	for _, kind := range cfg.ExcludeUpdates {
		exclude[kind] = struct{}{}
	}

	var (
		mu       sync.Mutex
		lastSeen = make(map[int64]time.Time)
	)
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil || interval <= 0 {
				return next(c)
			}

			kind := "other"
			switch {
			case c.Callback() != nil:
				kind = config.UpdateCallback
			case c.Message() != nil:
				kind = config.UpdateMessage
			}
			if _, skip := exclude[kind]; skip {
				return next(c)
			}

			now := time.Now()
			mu.Lock()
			if last, ok := lastSeen[user.ID]; ok && now.Sub(last) < interval {
				mu.Unlock()
				log.Warn("rate limit",
					slog.String("event", "tg.rate_limit"),
					slog.Int64("user_id", user.ID),
				)
				return nil
			}
			lastSeen[user.ID] = now
			mu.Unlock()
			return next(c)
		}
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
