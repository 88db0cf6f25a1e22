// Package memstore is an in-memory implementation of storage.Store with the
// same semantics as the postgres store. It backs tests and local runs without
// a database.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/anassar/mudeer/internal/storage"
)

// Store keeps all records in maps guarded by one mutex.
type Store struct {
	mu     sync.Mutex
	nextID int64

	contacts map[int64]storage.Contact
	folders  map[int64]storage.Folder
	files    map[int64]storage.MediaItem
	images   map[int64]storage.MediaItem
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		contacts: make(map[int64]storage.Contact),
		folders:  make(map[int64]storage.Folder),
		files:    make(map[int64]storage.MediaItem),
		images:   make(map[int64]storage.MediaItem),
	}
}

func (s *Store) Contacts() storage.ContactStore { return (*contactStore)(s) }
func (s *Store) Folders() storage.FolderStore   { return (*folderStore)(s) }
func (s *Store) Files() storage.MediaStore      { return &mediaStore{s: s, items: func() map[int64]storage.MediaItem { return s.files }} }
func (s *Store) Images() storage.MediaStore     { return &mediaStore{s: s, items: func() map[int64]storage.MediaItem { return s.images }} }

func (s *Store) allocID() int64 {
	s.nextID++
	return s.nextID
}

type contactStore Store

func (c *contactStore) Add(_ context.Context, contact storage.Contact) (int64, error) {
	s := (*Store)(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	contact.ID = s.allocID()
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}
	s.contacts[contact.ID] = contact
	return contact.ID, nil
}

func (c *contactStore) ListByOwner(_ context.Context, ownerID int64) ([]storage.Contact, error) {
	s := (*Store)(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []storage.Contact
	for _, item := range s.contacts {
		if item.OwnerID == ownerID {
			list = append(list, item)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (c *contactStore) UpdatePhone(_ context.Context, id, ownerID int64, phone string) error {
	s := (*Store)(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.contacts[id]
	if !ok || item.OwnerID != ownerID {
		return storage.ErrNotFound
	}
	item.Phone = phone
	s.contacts[id] = item
	return nil
}

func (c *contactStore) Delete(_ context.Context, id, ownerID int64) error {
	s := (*Store)(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.contacts[id]
	if !ok || item.OwnerID != ownerID {
		return storage.ErrNotFound
	}
	delete(s.contacts, id)
	return nil
}

func (c *contactStore) Count(_ context.Context, ownerID int64) (int64, error) {
	s := (*Store)(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, item := range s.contacts {
		if item.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

type folderStore Store

func (f *folderStore) EnsureDefault(_ context.Context, ownerID int64) (int64, error) {
	s := (*Store)(f)
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.findFolderLocked(ownerID, storage.DefaultFolderName); ok {
		return id, nil
	}
	id := s.allocID()
	s.folders[id] = storage.Folder{ID: id, OwnerID: ownerID, Name: storage.DefaultFolderName}
	return id, nil
}

func (f *folderStore) Create(_ context.Context, ownerID int64, name string) (int64, error) {
	s := (*Store)(f)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.findFolderLocked(ownerID, name); ok {
		return 0, storage.ErrDuplicate
	}
	id := s.allocID()
	s.folders[id] = storage.Folder{ID: id, OwnerID: ownerID, Name: name}
	return id, nil
}

func (f *folderStore) FindByName(_ context.Context, ownerID int64, name string) (storage.Folder, error) {
	s := (*Store)(f)
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.findFolderLocked(ownerID, name); ok {
		return s.folders[id], nil
	}
	return storage.Folder{}, storage.ErrNotFound
}

func (f *folderStore) ListNames(_ context.Context, ownerID int64) ([]string, error) {
	s := (*Store)(f)
	s.mu.Lock()
	defer s.mu.Unlock()
	var folders []storage.Folder
	for _, folder := range s.folders {
		if folder.OwnerID == ownerID {
			folders = append(folders, folder)
		}
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].ID < folders[j].ID })
	names := make([]string, 0, len(folders))
	for _, folder := range folders {
		names = append(names, folder.Name)
	}
	return names, nil
}

func (f *folderStore) Delete(_ context.Context, id, ownerID int64) error {
	s := (*Store)(f)
	s.mu.Lock()
	defer s.mu.Unlock()
	folder, ok := s.folders[id]
	if !ok || folder.OwnerID != ownerID {
		return storage.ErrNotFound
	}
	delete(s.folders, id)
	return nil
}

func (f *folderStore) IsEmpty(_ context.Context, folderID int64) (bool, error) {
	s := (*Store)(f)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.files {
		if item.FolderID == folderID {
			return false, nil
		}
	}
	for _, item := range s.images {
		if item.FolderID == folderID {
			return false, nil
		}
	}
	return true, nil
}

func (s *Store) findFolderLocked(ownerID int64, name string) (int64, bool) {
	for id, folder := range s.folders {
		if folder.OwnerID == ownerID && folder.Name == name {
			return id, true
		}
	}
	return 0, false
}

type mediaStore struct {
	s     *Store
	items func() map[int64]storage.MediaItem
}

func (m *mediaStore) Save(_ context.Context, item storage.MediaItem) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	item.ID = m.s.allocID()
	m.items()[item.ID] = item
	return item.ID, nil
}

func (m *mediaStore) ListWithFolders(_ context.Context, ownerID int64) ([]storage.MediaEntry, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var items []storage.MediaItem
	for _, item := range m.items() {
		if item.OwnerID == ownerID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	var list []storage.MediaEntry
	for _, item := range items {
		folder, ok := m.s.folders[item.FolderID]
		if !ok {
			continue
		}
		list = append(list, storage.MediaEntry{ID: item.ID, Name: item.Name, FolderName: folder.Name})
	}
	return list, nil
}

func (m *mediaStore) Move(_ context.Context, id, ownerID, folderID int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	items := m.items()
	item, ok := items[id]
	if !ok || item.OwnerID != ownerID {
		return storage.ErrNotFound
	}
	item.FolderID = folderID
	items[id] = item
	return nil
}

func (m *mediaStore) Delete(_ context.Context, id, ownerID int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	items := m.items()
	item, ok := items[id]
	if !ok || item.OwnerID != ownerID {
		return storage.ErrNotFound
	}
	delete(items, id)
	return nil
}

func (m *mediaStore) FileRef(_ context.Context, id, ownerID int64) (string, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	item, ok := m.items()[id]
	if !ok || item.OwnerID != ownerID {
		return "", storage.ErrNotFound
	}
	return item.FileRef, nil
}

func (m *mediaStore) Count(_ context.Context, ownerID int64) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var n int64
	for _, item := range m.items() {
		if item.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}
