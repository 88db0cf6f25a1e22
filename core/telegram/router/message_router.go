package router

import (
	"strings"
	"time"

	tg "github.com/anassar/mudeer/core/telegram"
	"github.com/anassar/mudeer/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// Conversation defines the minimal interface for a per-user conversation manager.
type Conversation interface {
	OnText(c tele.Context) error
	OnDocument(c tele.Context) error
	OnPhoto(c tele.Context) error
}

// TextOptions controls fallback behaviour for text/document/photo updates.
type TextOptions struct {
	Recover         middleware.RecoverOptions
	UnknownText     tele.HandlerFunc
	UnknownDocument tele.HandlerFunc
	UnknownPhoto    tele.HandlerFunc
}

// TextRoutes builds handlers for text, document, and photo routing.
// Slash commands registered in the registry take precedence; everything
// else flows into the conversation manager.
func TextRoutes(conv Conversation, reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if reg != nil && strings.HasPrefix(text, "/") {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				name := normalizeHandlerName(key)
				return handleWithSummary(c, name, start, "", "", func() error {
					return cmd.Handler(c)
				})
			}
		}

		if conv != nil {
			return handleWithSummary(c, "conversation", start, "", "", func() error {
				return conv.OnText(c)
			})
		}

		if reg != nil {
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "fallback", start, "", "", func() error {
					return fb(c)
				})
			}
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, "", "", func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
		return nil
	}

	docHandler := func(c tele.Context) error {
		start := time.Now()
		if conv != nil {
			return handleWithSummary(c, "conversation_document", start, "", "", func() error {
				return conv.OnDocument(c)
			})
		}
		if reg != nil {
			if fb := reg.DocumentHandler(); fb != nil {
				return handleWithSummary(c, "document_fallback", start, "", "", func() error {
					return fb(c)
				})
			}
		}
		if opts.UnknownDocument != nil {
			return handleWithSummary(c, "unexpected_document", start, "", "", func() error {
				return opts.UnknownDocument(c)
			})
		}
		logHandlerSummary(c, "unexpected_document", start, "skip", "ok", nil)
		return nil
	}

	photoHandler := func(c tele.Context) error {
		start := time.Now()
		if conv != nil {
			return handleWithSummary(c, "conversation_photo", start, "", "", func() error {
				return conv.OnPhoto(c)
			})
		}
		if reg != nil {
			if fb := reg.PhotoHandler(); fb != nil {
				return handleWithSummary(c, "photo_fallback", start, "", "", func() error {
					return fb(c)
				})
			}
		}
		if opts.UnknownPhoto != nil {
			return handleWithSummary(c, "unexpected_photo", start, "", "", func() error {
				return opts.UnknownPhoto(c)
			})
		}
		logHandlerSummary(c, "unexpected_photo", start, "skip", "ok", nil)
		return nil
	}

	recoverMW := middleware.RecoverMiddleware(opts.Recover)

	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  recoverMW(middleware.LoggerMiddleware(handler)),
		},
		{
			Endpoint: tele.OnDocument,
			Handler:  recoverMW(middleware.LoggerMiddleware(docHandler)),
		},
		{
			Endpoint: tele.OnPhoto,
			Handler:  recoverMW(middleware.LoggerMiddleware(photoHandler)),
		},
	}
}
