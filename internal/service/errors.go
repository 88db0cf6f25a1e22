package service

import "errors"

var (
	// ErrFolderExists indicates the owner already has a folder with that name.
	ErrFolderExists = errors.New("service: folder already exists")
	// ErrDefaultFolder indicates an attempt to delete the default folder.
	ErrDefaultFolder = errors.New("service: default folder is protected")
	// ErrFolderNotEmpty indicates the folder still holds files or images.
	ErrFolderNotEmpty = errors.New("service: folder not empty")
	// ErrFolderNotFound indicates a move target folder does not exist for
	// that owner. The record under move stays untouched.
	ErrFolderNotFound = errors.New("service: folder not found")
)
