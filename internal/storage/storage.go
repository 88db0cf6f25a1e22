// Package storage provides owner-scoped persistence for contacts, folders,
// and media references. Every query is scoped by the owning Telegram user ID
// so records never leak across users, even when row ids collide.
package storage

import (
	"context"
	"errors"
	"time"
)

// DefaultFolderName is the per-user folder that always exists and receives
// inbound media. It is never deletable.
const DefaultFolderName = "افتراضي"

var (
	// ErrNotFound indicates the requested record does not exist for that owner.
	ErrNotFound = errors.New("storage: not found")
	// ErrDuplicate indicates a uniqueness constraint was violated.
	ErrDuplicate = errors.New("storage: duplicate")
)

// Contact is a saved name/phone pair.
type Contact struct {
	ID        int64     `db:"id"`
	OwnerID   int64     `db:"user_id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}

// Folder groups media items per owner. Names are unique per owner.
type Folder struct {
	ID      int64  `db:"id"`
	OwnerID int64  `db:"user_id"`
	Name    string `db:"name"`
}

// MediaItem is a stored reference to a Telegram file or photo. The payload
// stays on Telegram servers; only FileRef is kept.
type MediaItem struct {
	ID       int64  `db:"id"`
	OwnerID  int64  `db:"user_id"`
	FileRef  string `db:"tg_file_id"`
	Name     string `db:"name"`
	FolderID int64  `db:"folder_id"`
}

// MediaEntry is a media item joined with its folder name for listings.
type MediaEntry struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	FolderName string `db:"folder_name"`
}

// ContactStore persists contacts.
type ContactStore interface {
	Add(ctx context.Context, contact Contact) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Contact, error)
	UpdatePhone(ctx context.Context, id, ownerID int64, phone string) error
	Delete(ctx context.Context, id, ownerID int64) error
	Count(ctx context.Context, ownerID int64) (int64, error)
}

// FolderStore persists folders.
type FolderStore interface {
	// EnsureDefault creates the default folder for the owner if missing and
	// returns its id. Safe to call on every interaction.
	EnsureDefault(ctx context.Context, ownerID int64) (int64, error)
	Create(ctx context.Context, ownerID int64, name string) (int64, error)
	FindByName(ctx context.Context, ownerID int64, name string) (Folder, error)
	ListNames(ctx context.Context, ownerID int64) ([]string, error)
	Delete(ctx context.Context, id, ownerID int64) error
	// IsEmpty reports whether no files and no images reference the folder.
	IsEmpty(ctx context.Context, folderID int64) (bool, error)
}

// MediaStore persists media references. Files and images share the contract
// and differ only in the backing table.
type MediaStore interface {
	Save(ctx context.Context, item MediaItem) (int64, error)
	ListWithFolders(ctx context.Context, ownerID int64) ([]MediaEntry, error)
	Move(ctx context.Context, id, ownerID, folderID int64) error
	Delete(ctx context.Context, id, ownerID int64) error
	FileRef(ctx context.Context, id, ownerID int64) (string, error)
	Count(ctx context.Context, ownerID int64) (int64, error)
}

// Store bundles the entity stores behind one handle.
type Store interface {
	Contacts() ContactStore
	Folders() FolderStore
	Files() MediaStore
	Images() MediaStore
}
