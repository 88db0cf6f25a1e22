package middleware

import (
	"runtime/debug"

	"log/slog"

	"github.com/anassar/mudeer/core/logger"

	tele "gopkg.in/telebot.v4"
)

// RecoverOptions configures the panic recovery middleware.
type RecoverOptions struct {
	// OnPanic, when set, runs after a panic has been logged. It receives the
	// original context so the bot can apologize to the user and reset any
	// per-user state before the update is dropped.
	OnPanic tele.HandlerFunc
}

// RecoverMiddleware catches panics in handlers and prevents the bot from crashing.
func RecoverMiddleware(opts RecoverOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.TG.Error("panic recovered",
						slog.String("event", "tg.panic"),
						slog.Any("err", r),
						slog.String("stack", string(debug.Stack())),
					)
					if opts.OnPanic != nil {
						_ = opts.OnPanic(c)
					}
				}
			}()
			return next(c)
		}
	}
}
