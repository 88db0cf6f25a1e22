package fsm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anassar/mudeer/core/telegram/state"
	"github.com/anassar/mudeer/internal/service"
	"github.com/anassar/mudeer/internal/storage"
)

func (d *Dispatcher) handleFileMenu(ctx context.Context, userID int64, text string) ([]Reply, error) {
	switch text {
	case btnListFiles:
		return d.listMedia(ctx, userID, d.files, msgNoFiles)

	case btnCreateFolder:
		d.sessions.SetScratch(userID, scratchFile)
		d.sessions.SetState(userID, StateCreateFolder)
		return []Reply{textReply(msgAskFolderName)}, nil

	case btnMoveFile:
		d.sessions.SetState(userID, StateMoveFile)
		return []Reply{textReply(msgAskMoveFile)}, nil

	case btnDelFile:
		d.sessions.SetState(userID, StateDelFile)
		return []Reply{textReply(msgAskFileID)}, nil

	case btnDownloadFiles:
		d.sessions.SetState(userID, StateDownloadFile)
		return []Reply{textReply(msgAskFileID)}, nil

	case btnDeleteFolder:
		d.sessions.SetScratch(userID, scratchFile)
		d.sessions.SetState(userID, StateDeleteFolder)
		return []Reply{textReply(msgAskFolderToDelete)}, nil

	case btnListFolders:
		return d.listFolders(ctx, userID)
	}
	return nil, nil
}

func (d *Dispatcher) handleImageMenu(ctx context.Context, userID int64, text string) ([]Reply, error) {
	switch text {
	case btnListImages:
		return d.listMedia(ctx, userID, d.images, msgNoImages)

	case btnCreateImgFolder:
		d.sessions.SetScratch(userID, scratchImage)
		d.sessions.SetState(userID, StateCreateFolder)
		return []Reply{textReply(msgAskImgFolderName)}, nil

	case btnMoveImage:
		d.sessions.SetState(userID, StateMoveImage)
		return []Reply{textReply(msgAskMoveImage)}, nil

	case btnDelImage:
		d.sessions.SetState(userID, StateDelImage)
		return []Reply{textReply(msgAskImageID)}, nil

	case btnDownloadImages:
		d.sessions.SetState(userID, StateDownloadImage)
		return []Reply{textReply(msgAskImageID)}, nil

	case btnDeleteFolder:
		d.sessions.SetScratch(userID, scratchImage)
		d.sessions.SetState(userID, StateDeleteFolder)
		return []Reply{textReply(msgAskFolderToDelete)}, nil

	case btnListImageFolders:
		return d.listFolders(ctx, userID)
	}
	return nil, nil
}

func (d *Dispatcher) listMedia(ctx context.Context, userID int64, lib *service.Library, emptyMsg string) ([]Reply, error) {
	entries, err := lib.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []Reply{textReply(emptyMsg)}, nil
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("ID:%d %s (%s)", e.ID, e.Name, e.FolderName))
	}
	return []Reply{textReply(strings.Join(lines, "\n"))}, nil
}

func (d *Dispatcher) listFolders(ctx context.Context, userID int64) ([]Reply, error) {
	names, err := d.folders.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return []Reply{textReply(msgNoFolders)}, nil
	}
	return []Reply{textReply(strings.Join(names, "\n"))}, nil
}

// menuAfterFolderOp restores the menu state the folder flow came from.
func (d *Dispatcher) menuAfterFolderOp(userID int64) {
	scratch, _ := d.sessions.Scratch(userID)
	d.sessions.ClearScratch(userID)
	if scratch == scratchImage {
		d.sessions.SetState(userID, StateImageMenu)
		return
	}
	d.sessions.SetState(userID, StateFileMenu)
}

func (d *Dispatcher) handleCreateFolder(ctx context.Context, userID int64, text string) ([]Reply, error) {
	var reply Reply
	err := d.folders.Create(ctx, userID, text)
	switch {
	case errors.Is(err, service.ErrFolderExists):
		reply = textReply(msgFolderExists)
	case err != nil:
		return nil, err
	default:
		reply = textReply(msgFolderCreated)
	}
	d.menuAfterFolderOp(userID)
	return []Reply{reply}, nil
}

func (d *Dispatcher) handleDeleteFolder(ctx context.Context, userID int64, text string) ([]Reply, error) {
	var reply Reply
	err := d.folders.Remove(ctx, userID, text)
	switch {
	case errors.Is(err, service.ErrDefaultFolder):
		reply = textReply(msgDefaultFolderGuard)
	case errors.Is(err, storage.ErrNotFound):
		reply = textReply(msgFolderMissing)
	case errors.Is(err, service.ErrFolderNotEmpty):
		reply = textReply(msgFolderNotEmpty)
	case err != nil:
		return nil, err
	default:
		reply = textReply(msgFolderDeleted)
	}
	d.menuAfterFolderOp(userID)
	return []Reply{reply}, nil
}

func (d *Dispatcher) handleMoveFile(ctx context.Context, userID int64, text string) ([]Reply, error) {
	return d.moveMedia(ctx, userID, text, d.files, StateFileMenu)
}

func (d *Dispatcher) handleMoveImage(ctx context.Context, userID int64, text string) ([]Reply, error) {
	return d.moveMedia(ctx, userID, text, d.images, StateImageMenu)
}

func (d *Dispatcher) handleDelFile(ctx context.Context, userID int64, text string) ([]Reply, error) {
	return d.deleteMedia(ctx, userID, text, d.files, msgFileDeleted, StateFileMenu)
}

func (d *Dispatcher) handleDelImage(ctx context.Context, userID int64, text string) ([]Reply, error) {
	return d.deleteMedia(ctx, userID, text, d.images, msgImageDeleted, StateImageMenu)
}

func (d *Dispatcher) handleDownloadFile(ctx context.Context, userID int64, text string) ([]Reply, error) {
	d.sessions.SetState(userID, StateFileMenu)
	id, ok := parseID(text)
	if !ok {
		return []Reply{textReply(msgInvalidID)}, nil
	}
	ref, err := d.files.FileRef(ctx, id, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []Reply{textReply(msgNotFound)}, nil
		}
		return nil, err
	}
	return []Reply{{DocumentRef: ref}}, nil
}

func (d *Dispatcher) handleDownloadImage(ctx context.Context, userID int64, text string) ([]Reply, error) {
	d.sessions.SetState(userID, StateImageMenu)
	id, ok := parseID(text)
	if !ok {
		return []Reply{textReply(msgInvalidID)}, nil
	}
	ref, err := d.images.FileRef(ctx, id, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []Reply{textReply(msgNotFound)}, nil
		}
		return nil, err
	}
	return []Reply{{PhotoRef: ref}}, nil
}

func (d *Dispatcher) moveMedia(ctx context.Context, userID int64, text string, lib *service.Library, next state.State) ([]Reply, error) {
	d.sessions.SetState(userID, next)
	id, folderName, ok := splitMove(text)
	if !ok {
		return []Reply{textReply(msgMoveUsage)}, nil
	}
	err := lib.Move(ctx, userID, id, folderName)
	switch {
	case errors.Is(err, service.ErrFolderNotFound):
		return []Reply{textReply(msgFolderMissing)}, nil
	case errors.Is(err, storage.ErrNotFound):
		return []Reply{textReply(msgNotFound)}, nil
	case err != nil:
		return nil, err
	}
	return []Reply{textReply(msgMoved)}, nil
}

func (d *Dispatcher) deleteMedia(ctx context.Context, userID int64, text string, lib *service.Library, okMsg string, next state.State) ([]Reply, error) {
	d.sessions.SetState(userID, next)
	id, ok := parseID(text)
	if !ok {
		return []Reply{textReply(msgInvalidID)}, nil
	}
	if err := lib.Remove(ctx, id, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []Reply{textReply(msgNotFound)}, nil
		}
		return nil, err
	}
	return []Reply{textReply(okMsg)}, nil
}
