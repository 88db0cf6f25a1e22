package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anassar/mudeer/internal/storage"
)

func TestEnsureDefaultIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := New()

	first, err := s.Folders().EnsureDefault(ctx, 10)
	require.NoError(t, err)
	second, err := s.Folders().EnsureDefault(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	names, err := s.Folders().ListNames(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{storage.DefaultFolderName}, names)
}

func TestDuplicateFolderNamePerOwner(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Folders().Create(ctx, 10, "work")
	require.NoError(t, err)

	_, err = s.Folders().Create(ctx, 10, "work")
	assert.ErrorIs(t, err, storage.ErrDuplicate)

	// Same name is fine for a different owner.
	_, err = s.Folders().Create(ctx, 20, "work")
	assert.NoError(t, err)
}

func TestOwnerScopingNeverCrosses(t *testing.T) {
	ctx := context.Background()
	s := New()

	id, err := s.Contacts().Add(ctx, storage.Contact{OwnerID: 10, Name: "Sara", Phone: "555-0100"})
	require.NoError(t, err)

	// Another owner cannot update or delete by the same id.
	assert.ErrorIs(t, s.Contacts().UpdatePhone(ctx, id, 20, "555-0199"), storage.ErrNotFound)
	assert.ErrorIs(t, s.Contacts().Delete(ctx, id, 20), storage.ErrNotFound)

	list, err := s.Contacts().ListByOwner(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "555-0100", list[0].Phone)

	list, err = s.Contacts().ListByOwner(ctx, 20)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestContactRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	id, err := s.Contacts().Add(ctx, storage.Contact{OwnerID: 10, Name: "Sara", Phone: "555-0100"})
	require.NoError(t, err)

	require.NoError(t, s.Contacts().UpdatePhone(ctx, id, 10, "555-0101"))

	list, err := s.Contacts().ListByOwner(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sara", list[0].Name)
	assert.Equal(t, "555-0101", list[0].Phone)

	require.NoError(t, s.Contacts().Delete(ctx, id, 10))
	n, err := s.Contacts().Count(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFolderEmptinessAcrossMediaKinds(t *testing.T) {
	ctx := context.Background()
	s := New()

	folderID, err := s.Folders().Create(ctx, 10, "docs")
	require.NoError(t, err)

	empty, err := s.Folders().IsEmpty(ctx, folderID)
	require.NoError(t, err)
	assert.True(t, empty)

	imgID, err := s.Images().Save(ctx, storage.MediaItem{OwnerID: 10, FileRef: "ref-1", Name: "IMG_1", FolderID: folderID})
	require.NoError(t, err)

	// An image alone keeps the folder occupied.
	empty, err = s.Folders().IsEmpty(ctx, folderID)
	require.NoError(t, err)
	assert.False(t, empty)

	require.NoError(t, s.Images().Delete(ctx, imgID, 10))
	empty, err = s.Folders().IsEmpty(ctx, folderID)
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestMediaMoveAndListing(t *testing.T) {
	ctx := context.Background()
	s := New()

	defaultID, err := s.Folders().EnsureDefault(ctx, 10)
	require.NoError(t, err)
	docsID, err := s.Folders().Create(ctx, 10, "docs")
	require.NoError(t, err)

	fileID, err := s.Files().Save(ctx, storage.MediaItem{OwnerID: 10, FileRef: "ref-1", Name: "report.pdf", FolderID: defaultID})
	require.NoError(t, err)

	require.NoError(t, s.Files().Move(ctx, fileID, 10, docsID))

	list, err := s.Files().ListWithFolders(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "report.pdf", list[0].Name)
	assert.Equal(t, "docs", list[0].FolderName)

	// Moving an unknown id reports not found.
	assert.ErrorIs(t, s.Files().Move(ctx, 9999, 10, docsID), storage.ErrNotFound)

	ref, err := s.Files().FileRef(ctx, fileID, 10)
	require.NoError(t, err)
	assert.Equal(t, "ref-1", ref)
}
