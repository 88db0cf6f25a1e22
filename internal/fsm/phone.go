package fsm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anassar/mudeer/internal/storage"
)

func (d *Dispatcher) handlePhoneMenu(ctx context.Context, userID int64, text string) ([]Reply, error) {
	switch text {
	case btnAddPhone:
		d.sessions.SetState(userID, StateAddName)
		return []Reply{textReply(msgAskContactName)}, nil

	case btnListPhones:
		contacts, err := d.contacts.List(ctx, userID)
		if err != nil {
			return nil, err
		}
		if len(contacts) == 0 {
			return []Reply{textReply(msgNoContacts)}, nil
		}
		lines := make([]string, 0, len(contacts))
		for _, c := range contacts {
			lines = append(lines, fmt.Sprintf("ID:%d | %s : %s", c.ID, c.Name, c.Phone))
		}
		return []Reply{textReply(strings.Join(lines, "\n"))}, nil

	case btnEditPhone:
		d.sessions.SetState(userID, StateEditPhoneID)
		return []Reply{textReply(msgAskContactID)}, nil

	case btnDelPhone:
		d.sessions.SetState(userID, StateDelPhone)
		return []Reply{textReply(msgAskDeleteID)}, nil
	}
	return nil, nil
}

func (d *Dispatcher) handleAddName(_ context.Context, userID int64, text string) ([]Reply, error) {
	d.sessions.SetScratch(userID, text)
	d.sessions.SetState(userID, StateAddPhone)
	return []Reply{textReply(msgAskContactPhone)}, nil
}

func (d *Dispatcher) handleAddPhone(ctx context.Context, userID int64, text string) ([]Reply, error) {
	name, ok := d.sessions.Scratch(userID)
	if !ok {
		// The name step was lost (session reset mid-flow); never store a
		// contact with an empty name.
		d.sessions.SetState(userID, StatePhone)
		return []Reply{textReply(msgFailure)}, nil
	}
	if _, err := d.contacts.Add(ctx, userID, name, text); err != nil {
		return nil, err
	}
	d.sessions.ClearScratch(userID)
	d.sessions.SetState(userID, StatePhone)
	return []Reply{textReply(msgContactSaved)}, nil
}

func (d *Dispatcher) handleEditPhoneID(_ context.Context, userID int64, text string) ([]Reply, error) {
	if _, ok := parseID(text); !ok {
		d.sessions.SetState(userID, StatePhone)
		return []Reply{textReply(msgInvalidID)}, nil
	}
	d.sessions.SetScratch(userID, strings.TrimSpace(text))
	d.sessions.SetState(userID, StateEditPhoneNew)
	return []Reply{textReply(msgAskNewPhone)}, nil
}

func (d *Dispatcher) handleEditPhoneNew(ctx context.Context, userID int64, text string) ([]Reply, error) {
	scratch, _ := d.sessions.Scratch(userID)
	id, ok := parseID(scratch)
	d.sessions.ClearScratch(userID)
	d.sessions.SetState(userID, StatePhone)
	if !ok {
		return []Reply{textReply(msgInvalidID)}, nil
	}
	if err := d.contacts.UpdatePhone(ctx, id, userID, text); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []Reply{textReply(msgNotFound)}, nil
		}
		return nil, err
	}
	return []Reply{textReply(msgContactUpdated)}, nil
}

func (d *Dispatcher) handleDelPhone(ctx context.Context, userID int64, text string) ([]Reply, error) {
	d.sessions.SetState(userID, StatePhone)
	id, ok := parseID(text)
	if !ok {
		return []Reply{textReply(msgInvalidID)}, nil
	}
	if err := d.contacts.Remove(ctx, id, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []Reply{textReply(msgNotFound)}, nil
		}
		return nil, err
	}
	return []Reply{textReply(msgContactDeleted)}, nil
}
