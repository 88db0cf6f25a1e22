package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anassar/mudeer/internal/storage"
	"github.com/anassar/mudeer/internal/storage/memstore"
)

const owner = int64(10)

func newFixture() (*memstore.Store, *Contacts, *Folders, *Library, *Report) {
	store := memstore.New()
	contacts := NewContacts(store.Contacts())
	folders := NewFolders(store.Folders())
	files := NewLibrary(store.Files(), store.Folders(), slog.Default())
	report := NewReport(store.Contacts(), store.Files(), store.Images())
	return store, contacts, folders, files, report
}

func TestFolderCreateRejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	_, _, folders, _, _ := newFixture()

	require.NoError(t, folders.Create(ctx, owner, "work"))
	assert.ErrorIs(t, folders.Create(ctx, owner, "work"), ErrFolderExists)
}

func TestFolderRemoveRules(t *testing.T) {
	ctx := context.Background()
	store, _, folders, files, _ := newFixture()

	_, err := folders.EnsureDefault(ctx, owner)
	require.NoError(t, err)

	// The default folder is never deletable, even while empty.
	assert.ErrorIs(t, folders.Remove(ctx, owner, storage.DefaultFolderName), ErrDefaultFolder)

	// Unknown names surface as not found.
	assert.ErrorIs(t, folders.Remove(ctx, owner, "ghost"), storage.ErrNotFound)

	// Occupied folders are protected.
	require.NoError(t, folders.Create(ctx, owner, "docs"))
	docs, err := store.Folders().FindByName(ctx, owner, "docs")
	require.NoError(t, err)
	_, err = store.Files().Save(ctx, storage.MediaItem{OwnerID: owner, FileRef: "ref-1", Name: "a.txt", FolderID: docs.ID})
	require.NoError(t, err)
	assert.ErrorIs(t, folders.Remove(ctx, owner, "docs"), ErrFolderNotEmpty)

	// Emptied folders delete fine.
	list, err := files.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NoError(t, files.Remove(ctx, list[0].ID, owner))
	assert.NoError(t, folders.Remove(ctx, owner, "docs"))
}

func TestLibraryMoveMissingFolderLeavesRecord(t *testing.T) {
	ctx := context.Background()
	store, _, folders, files, _ := newFixture()

	_, err := folders.EnsureDefault(ctx, owner)
	require.NoError(t, err)
	require.NoError(t, files.SaveInbound(ctx, owner, "ref-1", "report.pdf"))

	list, err := files.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)

	err = files.Move(ctx, owner, list[0].ID, "ghost")
	assert.ErrorIs(t, err, ErrFolderNotFound)

	// The record still points at the default folder.
	entries, err := store.Files().ListWithFolders(ctx, owner)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, storage.DefaultFolderName, entries[0].FolderName)
}

func TestContactsZeroRowOperations(t *testing.T) {
	ctx := context.Background()
	_, contacts, _, _, _ := newFixture()

	assert.ErrorIs(t, contacts.UpdatePhone(ctx, 42, owner, "555-0100"), storage.ErrNotFound)
	assert.ErrorIs(t, contacts.Remove(ctx, 42, owner), storage.ErrNotFound)
}

func TestReportCountsAndTimestamp(t *testing.T) {
	ctx := context.Background()
	store, contacts, folders, files, report := newFixture()

	_, err := contacts.Add(ctx, owner, "Sara", "555-0100")
	require.NoError(t, err)
	defaultID, err := folders.EnsureDefault(ctx, owner)
	require.NoError(t, err)
	require.NoError(t, files.SaveInbound(ctx, owner, "ref-1", "a.txt"))
	_, err = store.Images().Save(ctx, storage.MediaItem{OwnerID: owner, FileRef: "ref-2", Name: "IMG_1", FolderID: defaultID})
	require.NoError(t, err)

	report.now = func() time.Time { return time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC) }

	text, err := report.Generate(ctx, owner)
	require.NoError(t, err)
	assert.True(t, strings.Contains(text, "📞 عدد الأرقام : 1"))
	assert.True(t, strings.Contains(text, "📁 عدد الملفات : 1"))
	assert.True(t, strings.Contains(text, "🖼️ عدد الصور   : 1"))
	assert.True(t, strings.Contains(text, "2025-03-01 09:30"))

	// Counts are owner scoped.
	other, err := report.Generate(ctx, 99)
	require.NoError(t, err)
	assert.True(t, strings.Contains(other, "📞 عدد الأرقام : 0"))
}
