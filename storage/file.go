package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"

	serverErrors "go-catalog/errors"
	"go-catalog/objects"
)

// FileStore persists the whole item collection in one flat JSON file.
// Every read decodes the full file and every append rewrites it, so the
// store holds a RWMutex as the single serialization point between the
// read-modify-write of Append and concurrent readers. Two processes
// sharing the same file are still unserialized.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// List returns the collection in stored (insertion) order.
func (s *FileStore) List() ([]objects.Item, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.read(false)
}

func (s *FileStore) GetByID(id int) (objects.Item, error) {

	items, err := s.List()
	if err != nil {
		return objects.Item{}, err
	}

	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}

	return objects.Item{}, serverErrors.ItemNotFoundError.New(id)
}

// Append assigns the next free ID (max existing numeric ID + 1), appends
// the item and rewrites the whole file. A missing file counts as an empty
// collection, so the first append creates it.
func (s *FileStore) Append(item objects.Item) (objects.Item, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read(true)
	if err != nil {
		return objects.Item{}, err
	}

	nextID := 1
	for _, existing := range items {
		if existing.ID >= nextID {
			nextID = existing.ID + 1
		}
	}

	item.ID = nextID
	items = append(items, item)

	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return objects.Item{}, serverErrors.StorageUnavailableError.New(err)
	}

	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return objects.Item{}, serverErrors.StorageUnavailableError.New(err)
	}

	return item, nil
}

// ModTime reports the file's modification timestamp. The stats cache
// compares it against the timestamp observed at cache-fill time.
func (s *FileStore) ModTime() (time.Time, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}, serverErrors.StorageUnavailableError.New(err)
	}

	return info.ModTime(), nil
}

func (s *FileStore) read(missingOK bool) ([]objects.Item, error) {

	b, err := os.ReadFile(s.path)
	if err != nil {

		if missingOK && errors.Is(err, fs.ErrNotExist) {
			return []objects.Item{}, nil
		}

		return nil, serverErrors.StorageUnavailableError.New(err)
	}

	var items []objects.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, serverErrors.StorageUnavailableError.New(err)
	}

	return items, nil
}
