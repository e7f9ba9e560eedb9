// Package settings persists the content-filter flag the catalog client
// folds into every request signature.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"cineflix/internal/storage"
)

const contentFilterKey = "content_filter"

var ErrStoreRequired = errors.New("storage is required")

type Service struct {
	mu                sync.RWMutex
	store             storage.Store
	includeRestricted bool
}

func NewService(store storage.Store) (*Service, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	svc := &Service{store: store}
	svc.load()
	return svc, nil
}

func (s *Service) load() {
	data, ok, err := s.store.Get(contentFilterKey)
	if err != nil {
		log.Printf("[settings] failed to read content filter: %v", err)
		return
	}
	if !ok {
		return
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		log.Printf("[settings] discarding corrupt content filter record: %v", err)
		_ = s.store.Delete(contentFilterKey)
		return
	}
	s.includeRestricted = v
}

// IncludeRestricted reports whether restricted content is surfaced.
// The catalog client calls this on every request.
func (s *Service) IncludeRestricted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.includeRestricted
}

func (s *Service) SetIncludeRestricted(v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, _ := json.Marshal(v)
	if err := s.store.Set(contentFilterKey, data); err != nil {
		return fmt.Errorf("persist content filter: %w", err)
	}
	s.includeRestricted = v
	return nil
}
