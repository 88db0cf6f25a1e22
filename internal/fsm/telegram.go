package fsm

import (
	tghelpers "github.com/anassar/mudeer/core/telegram/helpers"
	"github.com/anassar/mudeer/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// Telegram adapts the dispatcher to telebot handlers and renders replies
// through the async send helpers.
type Telegram struct {
	d *Dispatcher
}

// NewTelegram wraps the dispatcher for the bot routes.
func NewTelegram(d *Dispatcher) *Telegram {
	return &Telegram{d: d}
}

// StartHandler serves /start.
func (t *Telegram) StartHandler(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	replies, err := t.d.Start(ctx, c.Sender().ID)
	if sendErr := t.send(c, replies); sendErr != nil {
		return sendErr
	}
	return err
}

// OnText serves every plain text message.
func (t *Telegram) OnText(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	replies, err := t.d.HandleText(ctx, c.Sender().ID, c.Text())
	if sendErr := t.send(c, replies); sendErr != nil {
		return sendErr
	}
	return err
}

// OnDocument stores inbound documents.
func (t *Telegram) OnDocument(c tele.Context) error {
	doc := c.Message().Document
	if doc == nil {
		return nil
	}
	ctx := tghelpers.BuildContext(c)
	replies, err := t.d.HandleDocument(ctx, c.Sender().ID, doc.FileID, doc.FileName)
	if sendErr := t.send(c, replies); sendErr != nil {
		return sendErr
	}
	return err
}

// OnPhoto stores inbound photos.
func (t *Telegram) OnPhoto(c tele.Context) error {
	photo := c.Message().Photo
	if photo == nil {
		return nil
	}
	ctx := tghelpers.BuildContext(c)
	replies, err := t.d.HandlePhoto(ctx, c.Sender().ID, photo.FileID)
	if sendErr := t.send(c, replies); sendErr != nil {
		return sendErr
	}
	return err
}

func (t *Telegram) send(c tele.Context, replies []Reply) error {
	for _, r := range replies {
		var err error
		switch {
		case r.DocumentRef != "":
			err = tghelpers.SendDocument(c, r.DocumentRef)
		case r.PhotoRef != "":
			err = tghelpers.SendPhoto(c, r.PhotoRef)
		case r.Menu != nil:
			err = tghelpers.SendKeyboard(c, r.Text, keyboard.ReplyButtons(r.Menu...))
		case r.RemoveKeyboard:
			err = tghelpers.SendKeyboard(c, r.Text, keyboard.RemoveKeyboard())
		default:
			err = tghelpers.SendText(c, r.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// PanicHandler resets the user's session and reports a generic failure.
// Wired as the recover fallback for every route.
func (t *Telegram) PanicHandler(c tele.Context) error {
	return t.send(c, t.d.fail(c.Sender().ID))
}
