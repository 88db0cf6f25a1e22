package service

import (
	"context"
	"errors"
	"fmt"

	"log/slog"

	"github.com/anassar/mudeer/internal/storage"
)

// Library manages one media family (files or images). Both families share the
// storage contract, so the bot runs two Library instances over different tables.
type Library struct {
	media   storage.MediaStore
	folders storage.FolderStore
	log     *slog.Logger
}

// NewLibrary builds a media service over the given stores.
// The logger distinguishes the files and images instances.
func NewLibrary(media storage.MediaStore, folders storage.FolderStore, log *slog.Logger) *Library {
	return &Library{media: media, folders: folders, log: log}
}

// SaveInbound stores an inbound media reference in the owner's default folder.
func (s *Library) SaveInbound(ctx context.Context, ownerID int64, fileRef, name string) error {
	folderID, err := s.folders.EnsureDefault(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("ensure default folder: %w", err)
	}
	id, err := s.media.Save(ctx, storage.MediaItem{
		OwnerID:  ownerID,
		FileRef:  fileRef,
		Name:     name,
		FolderID: folderID,
	})
	if err != nil {
		return fmt.Errorf("save media: %w", err)
	}
	s.log.Debug("media saved",
		slog.String("event", "media.save"),
		slog.Int64("user_id", ownerID),
		slog.Int64("media_id", id),
	)
	return nil
}

// List returns the owner's media entries with their folder names.
func (s *Library) List(ctx context.Context, ownerID int64) ([]storage.MediaEntry, error) {
	return s.media.ListWithFolders(ctx, ownerID)
}

// Move relocates the owner's media item into the named folder. A missing
// folder yields ErrFolderNotFound, a missing item storage.ErrNotFound; the
// record is only touched once the folder has been resolved.
func (s *Library) Move(ctx context.Context, ownerID, id int64, folderName string) error {
	folder, err := s.folders.FindByName(ctx, ownerID, folderName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrFolderNotFound
		}
		return err
	}
	if err := s.media.Move(ctx, id, ownerID, folder.ID); err != nil {
		return err
	}
	s.log.Debug("media moved",
		slog.String("event", "media.move"),
		slog.Int64("user_id", ownerID),
		slog.Int64("media_id", id),
		slog.Int64("folder_id", folder.ID),
	)
	return nil
}

// Remove deletes the owner's media item.
func (s *Library) Remove(ctx context.Context, id, ownerID int64) error {
	if err := s.media.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	s.log.Debug("media removed",
		slog.String("event", "media.remove"),
		slog.Int64("user_id", ownerID),
		slog.Int64("media_id", id),
	)
	return nil
}

// FileRef returns the stored Telegram reference for sending it back.
func (s *Library) FileRef(ctx context.Context, id, ownerID int64) (string, error) {
	return s.media.FileRef(ctx, id, ownerID)
}
