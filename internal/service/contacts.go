// Package service implements the business rules between the conversation
// dispatcher and raw storage. Not-found conditions surface as
// storage.ErrNotFound; folder rules get their own sentinels.
package service

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/anassar/mudeer/core/logger"
	"github.com/anassar/mudeer/internal/storage"
)

// Contacts manages saved name/phone pairs.
type Contacts struct {
	store storage.ContactStore
}

// NewContacts builds the contact service.
func NewContacts(store storage.ContactStore) *Contacts {
	return &Contacts{store: store}
}

// Add saves a new contact for the owner.
func (s *Contacts) Add(ctx context.Context, ownerID int64, name, phone string) (int64, error) {
	id, err := s.store.Add(ctx, storage.Contact{OwnerID: ownerID, Name: name, Phone: phone})
	if err != nil {
		return 0, fmt.Errorf("add contact: %w", err)
	}
	logger.SVCContacts.Debug("contact added",
		slog.String("event", "contact.add"),
		slog.Int64("user_id", ownerID),
		slog.Int64("contact_id", id),
	)
	return id, nil
}

// List returns the owner's contacts ordered by id.
func (s *Contacts) List(ctx context.Context, ownerID int64) ([]storage.Contact, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

// UpdatePhone replaces the phone of the owner's contact.
// Returns storage.ErrNotFound when the id does not belong to the owner.
func (s *Contacts) UpdatePhone(ctx context.Context, id, ownerID int64, phone string) error {
	if err := s.store.UpdatePhone(ctx, id, ownerID, phone); err != nil {
		return err
	}
	logger.SVCContacts.Debug("contact updated",
		slog.String("event", "contact.update"),
		slog.Int64("user_id", ownerID),
		slog.Int64("contact_id", id),
	)
	return nil
}

// Remove deletes the owner's contact.
// Returns storage.ErrNotFound when the id does not belong to the owner.
func (s *Contacts) Remove(ctx context.Context, id, ownerID int64) error {
	if err := s.store.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	logger.SVCContacts.Debug("contact removed",
		slog.String("event", "contact.remove"),
		slog.Int64("user_id", ownerID),
		slog.Int64("contact_id", id),
	)
	return nil
}
