package service

import (
	"context"
	"errors"
	"fmt"

	"log/slog"

	"github.com/anassar/mudeer/core/logger"
	"github.com/anassar/mudeer/internal/storage"
)

// Folders manages per-owner folders and enforces the default-folder rules.
type Folders struct {
	store storage.FolderStore
}

// NewFolders builds the folder service.
func NewFolders(store storage.FolderStore) *Folders {
	return &Folders{store: store}
}

// EnsureDefault guarantees the owner's default folder exists and returns its id.
func (s *Folders) EnsureDefault(ctx context.Context, ownerID int64) (int64, error) {
	return s.store.EnsureDefault(ctx, ownerID)
}

// Create adds a new folder. A name the owner already uses yields ErrFolderExists.
func (s *Folders) Create(ctx context.Context, ownerID int64, name string) error {
	id, err := s.store.Create(ctx, ownerID, name)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return ErrFolderExists
		}
		return fmt.Errorf("create folder: %w", err)
	}
	logger.SVCFolders.Debug("folder created",
		slog.String("event", "folder.create"),
		slog.Int64("user_id", ownerID),
		slog.Int64("folder_id", id),
	)
	return nil
}

// Remove deletes the named folder. The default folder is protected, missing
// folders yield storage.ErrNotFound, and occupied folders yield
// ErrFolderNotEmpty.
func (s *Folders) Remove(ctx context.Context, ownerID int64, name string) error {
	if name == storage.DefaultFolderName {
		return ErrDefaultFolder
	}
	folder, err := s.store.FindByName(ctx, ownerID, name)
	if err != nil {
		return err
	}
	empty, err := s.store.IsEmpty(ctx, folder.ID)
	if err != nil {
		return fmt.Errorf("check folder: %w", err)
	}
	if !empty {
		return ErrFolderNotEmpty
	}
	if err := s.store.Delete(ctx, folder.ID, ownerID); err != nil {
		return err
	}
	logger.SVCFolders.Debug("folder removed",
		slog.String("event", "folder.remove"),
		slog.Int64("user_id", ownerID),
		slog.Int64("folder_id", folder.ID),
	)
	return nil
}

// List returns the owner's folder names.
func (s *Folders) List(ctx context.Context, ownerID int64) ([]string, error) {
	return s.store.ListNames(ctx, ownerID)
}
