// Package watchlist keeps the user's saved-for-later list. Entries are
// unique by (media type, id); insertion order carries no meaning.
package watchlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"cineflix/internal/storage"
	"cineflix/models"
)

const storageKey = "my_list"

var ErrStoreRequired = errors.New("storage is required")

type Service struct {
	mu    sync.Mutex
	store storage.Store
	items []models.ContentItem
}

// NewService loads the persisted list. A corrupt blob is discarded and
// the list starts empty.
func NewService(store storage.Store) (*Service, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	svc := &Service{store: store}
	svc.load()
	return svc, nil
}

func (s *Service) load() {
	data, ok, err := s.store.Get(storageKey)
	if err != nil {
		log.Printf("[watchlist] failed to read persisted list: %v", err)
		return
	}
	if !ok {
		return
	}
	var items []models.ContentItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("[watchlist] discarding corrupt list record: %v", err)
		_ = s.store.Delete(storageKey)
		return
	}
	s.items = items
}

// Add saves an item. Adding an already-present (media type, id) pair is
// a no-op; de-duplication is enforced when the list is saved.
func (s *Service) Add(content models.ContentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, content)
	return s.persistLocked()
}

// Remove deletes the entry matching the full (media type, id) pair.
// Matching on id alone could remove a movie when the user meant the
// series sharing that id, so removal uses the same identity as Add.
func (s *Service) Remove(mediaType string, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0:0]
	removed := false
	for _, item := range s.items {
		if item.ID == id && item.MediaType == mediaType {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return false, nil
	}
	s.items = kept
	return true, s.persistLocked()
}

// Contains reports membership by the (media type, id) pair.
func (s *Service) Contains(mediaType string, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id && item.MediaType == mediaType {
			return true
		}
	}
	return false
}

// List returns a snapshot of the saved items.
func (s *Service) List() []models.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ContentItem, len(s.items))
	copy(out, s.items)
	return out
}

// Clear removes all entries and the persisted record.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	if err := s.store.Delete(storageKey); err != nil {
		return fmt.Errorf("clear watchlist: %w", err)
	}
	return nil
}

func (s *Service) persistLocked() error {
	seen := make(map[string]bool, len(s.items))
	unique := s.items[:0:0]
	for _, item := range s.items {
		key := item.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, item)
	}
	s.items = unique

	data, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("encode watchlist: %w", err)
	}
	if err := s.store.Set(storageKey, data); err != nil {
		return fmt.Errorf("persist watchlist: %w", err)
	}
	return nil
}
