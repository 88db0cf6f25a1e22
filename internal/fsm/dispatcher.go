// Package fsm drives the per-user conversation. Each inbound text message is
// dispatched to the handler for the user's current state; handlers reply,
// mutate records through the services, and pick the next state.
package fsm

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/anassar/mudeer/core/telegram/state"
	"github.com/anassar/mudeer/internal/ai"
	"github.com/anassar/mudeer/internal/mailer"
	"github.com/anassar/mudeer/internal/service"
)

type handlerFunc func(ctx context.Context, userID int64, text string) ([]Reply, error)

// Deps lists everything the dispatcher needs.
type Deps struct {
	Sessions state.Manager
	Contacts *service.Contacts
	Folders  *service.Folders
	Files    *service.Library
	Images   *service.Library
	Report   *service.Report
	Mail     mailer.Sender
	AI       ai.Provider
}

// Dispatcher is the conversation state machine.
type Dispatcher struct {
	sessions state.Manager
	contacts *service.Contacts
	folders  *service.Folders
	files    *service.Library
	images   *service.Library
	report   *service.Report
	mail     mailer.Sender
	ai       ai.Provider
	now      func() time.Time

	handlers map[state.State]handlerFunc
}

// New builds the dispatcher with its per-state handler table.
func New(deps Deps) *Dispatcher {
	d := &Dispatcher{
		sessions: deps.Sessions,
		contacts: deps.Contacts,
		folders:  deps.Folders,
		files:    deps.Files,
		images:   deps.Images,
		report:   deps.Report,
		mail:     deps.Mail,
		ai:       deps.AI,
		now:      time.Now,
	}
	d.handlers = map[state.State]handlerFunc{
		StateMain:          d.handleMain,
		StatePhone:         d.handlePhoneMenu,
		StateAddName:       d.handleAddName,
		StateAddPhone:      d.handleAddPhone,
		StateEditPhoneID:   d.handleEditPhoneID,
		StateEditPhoneNew:  d.handleEditPhoneNew,
		StateDelPhone:      d.handleDelPhone,
		StateFileMenu:      d.handleFileMenu,
		StateImageMenu:     d.handleImageMenu,
		StateCreateFolder:  d.handleCreateFolder,
		StateDeleteFolder:  d.handleDeleteFolder,
		StateDelFile:       d.handleDelFile,
		StateMoveFile:      d.handleMoveFile,
		StateDownloadFile:  d.handleDownloadFile,
		StateDelImage:      d.handleDelImage,
		StateMoveImage:     d.handleMoveImage,
		StateDownloadImage: d.handleDownloadImage,
		StateDBManage:      d.handleDBManage,
		StateAI:            d.handleAI,
	}
	return d
}

// Start resets the user's session, guarantees the default folder, and greets
// with the main menu. Bound to /start.
func (d *Dispatcher) Start(ctx context.Context, userID int64) ([]Reply, error) {
	replies, err := d.start(ctx, userID)
	if err != nil {
		return d.fail(userID), err
	}
	return replies, nil
}

// HandleText runs one (state, message) transition. The back button wins over
// every non-main state. Unexpected errors reset the session to main and are
// returned for logging after a generic failure reply.
func (d *Dispatcher) HandleText(ctx context.Context, userID int64, text string) ([]Reply, error) {
	st := d.sessions.GetState(userID)

	var (
		replies []Reply
		err     error
	)
	if text == btnBack && st != StateMain {
		replies, err = d.start(ctx, userID)
	} else {
		handler, ok := d.handlers[st]
		if !ok {
			handler = d.handleMain
		}
		replies, err = handler(ctx, userID, text)
	}
	if err != nil {
		return d.fail(userID), err
	}
	return replies, nil
}

// HandleDocument stores an inbound document in the default folder regardless
// of conversation state.
func (d *Dispatcher) HandleDocument(ctx context.Context, userID int64, fileRef, name string) ([]Reply, error) {
	if err := d.files.SaveInbound(ctx, userID, fileRef, name); err != nil {
		return d.fail(userID), err
	}
	return []Reply{textReply(msgFileSaved)}, nil
}

// HandlePhoto stores an inbound photo under a generated timestamp name.
func (d *Dispatcher) HandlePhoto(ctx context.Context, userID int64, fileRef string) ([]Reply, error) {
	name := "IMG_" + d.now().Format("20060102_150405")
	if err := d.images.SaveInbound(ctx, userID, fileRef, name); err != nil {
		return d.fail(userID), err
	}
	return []Reply{textReply(msgImageSaved)}, nil
}

func (d *Dispatcher) start(ctx context.Context, userID int64) ([]Reply, error) {
	d.sessions.Reset(userID)
	if _, err := d.folders.EnsureDefault(ctx, userID); err != nil {
		return nil, err
	}
	return []Reply{menuReply(msgWelcome, mainMenu)}, nil
}

func (d *Dispatcher) fail(userID int64) []Reply {
	d.sessions.Reset(userID)
	return []Reply{menuReply(msgFailure, mainMenu)}
}

func (d *Dispatcher) handleMain(_ context.Context, userID int64, text string) ([]Reply, error) {
	switch text {
	case btnPhones:
		d.sessions.SetState(userID, StatePhone)
		return []Reply{menuReply(msgPhoneMenu, phoneMenu)}, nil
	case btnFiles:
		d.sessions.SetState(userID, StateFileMenu)
		return []Reply{menuReply(msgFileMenu, fileMenu)}, nil
	case btnImages:
		d.sessions.SetState(userID, StateImageMenu)
		return []Reply{menuReply(msgImageMenu, imageMenu)}, nil
	case btnDBManage:
		d.sessions.SetState(userID, StateDBManage)
		return []Reply{menuReply(msgDBMenu, dbMenu)}, nil
	case btnAI:
		d.sessions.SetState(userID, StateAI)
		return []Reply{{Text: msgAskQuestion, RemoveKeyboard: true}}, nil
	}
	return nil, nil
}

func (d *Dispatcher) handleDBManage(ctx context.Context, userID int64, text string) ([]Reply, error) {
	if text != btnEmailReport {
		return nil, nil
	}
	report, err := d.report.Generate(ctx, userID)
	if err != nil {
		return nil, err
	}
	replies := []Reply{textReply(report)}
	if err := d.mail.Send(ctx, reportSubject, report); err != nil {
		replies = append(replies, textReply(msgReportMailFailed))
	} else {
		replies = append(replies, textReply(msgReportMailed))
	}
	return replies, nil
}

func (d *Dispatcher) handleAI(ctx context.Context, userID int64, text string) ([]Reply, error) {
	answer, err := d.ai.Complete(ctx, text)
	if err != nil {
		// Completion failures are reported inline; the user stays in the
		// question state and may retry.
		return []Reply{textReply(msgFailure)}, nil
	}
	return []Reply{textReply(answer)}, nil
}

// parseID reads a record id typed by the user.
func parseID(text string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// splitMove parses "<id> <folder name>"; the folder name keeps its internal
// spaces.
func splitMove(text string) (int64, string, bool) {
	trimmed := strings.TrimSpace(text)
	cut := strings.IndexFunc(trimmed, unicode.IsSpace)
	if cut < 0 {
		return 0, "", false
	}
	id, err := strconv.ParseInt(trimmed[:cut], 10, 64)
	name := strings.TrimSpace(trimmed[cut:])
	if err != nil || id <= 0 || name == "" {
		return 0, "", false
	}
	return id, name, true
}
