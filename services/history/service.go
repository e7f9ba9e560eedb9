// Package history keeps the capacity-bounded, recency-ordered viewing
// log that feeds the continue-watching shelf and the recommendation
// deriver.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"cineflix/internal/storage"
	"cineflix/models"
)

const (
	storageKey = "viewing_history"
	maxItems   = 50
)

const (
	newMovieProgress  = 0.15
	movieProgressStep = 0.2
	rewatchThreshold  = 0.9
)

var ErrStoreRequired = errors.New("storage is required")

// Service owns the viewing history. All mutations re-sort the list by
// recency, enforce the entry cap and synchronously persist the full
// list, so the stored blob always matches memory.
type Service struct {
	mu    sync.Mutex
	store storage.Store
	items []models.ViewingHistoryItem
	now   func() time.Time
}

// NewService loads existing history from the store. A corrupt blob is
// discarded and replaced with empty history; startup never fails on
// bad persisted state.
func NewService(store storage.Store) (*Service, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	svc := &Service{store: store, now: time.Now}
	svc.load()
	return svc, nil
}

func (s *Service) load() {
	data, ok, err := s.store.Get(storageKey)
	if err != nil {
		log.Printf("[history] failed to read persisted history: %v", err)
		return
	}
	if !ok {
		return
	}
	var items []models.ViewingHistoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("[history] discarding corrupt history record: %v", err)
		_ = s.store.Delete(storageKey)
		return
	}
	s.items = items
}

// Record upserts a watch event keyed by (id, media type).
//
// Movies accumulate progress in fixed steps; a movie already at or
// past the rewatch threshold starts over near zero. Playing any
// episode marks a series caught up and remembers which episode it was.
func (s *Service) Record(content models.ContentItem, season, episode int) (models.ViewingHistoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	idx := -1
	for i, item := range s.items {
		if item.Content.ID == content.ID && item.Content.MediaType == content.MediaType {
			idx = i
			break
		}
	}

	var entry models.ViewingHistoryItem
	if idx >= 0 {
		entry = s.items[idx]
		s.items = append(s.items[:idx], s.items[idx+1:]...)
		entry.LastWatched = now
		if content.MediaType == models.MediaTypeMovie {
			if entry.Progress >= rewatchThreshold {
				entry.Progress = newMovieProgress
			} else {
				entry.Progress = clampProgress(entry.Progress + movieProgressStep)
			}
		} else {
			entry.Progress = 1
			entry.LastSeason = season
			entry.LastEpisode = episode
		}
	} else {
		entry = models.ViewingHistoryItem{
			Content:     content,
			LastWatched: now,
			Progress:    newMovieProgress,
		}
		if content.MediaType != models.MediaTypeMovie {
			entry.Progress = 1
			entry.LastSeason = season
			entry.LastEpisode = episode
		}
	}
	s.items = append([]models.ViewingHistoryItem{entry}, s.items...)

	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].LastWatched.After(s.items[j].LastWatched)
	})
	if len(s.items) > maxItems {
		s.items = s.items[:maxItems]
	}

	if err := s.persistLocked(); err != nil {
		return entry, err
	}
	return entry, nil
}

// List returns the history ordered most recent first.
func (s *Service) List() []models.ViewingHistoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ViewingHistoryItem, len(s.items))
	copy(out, s.items)
	return out
}

// FindFor returns the history entry for a content id, if any. Lookup
// is by id alone: the UI uses this for resume badges where the media
// kind is already known from the item being rendered.
func (s *Service) FindFor(id int64) (models.ViewingHistoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.Content.ID == id {
			return item, true
		}
	}
	return models.ViewingHistoryItem{}, false
}

// Clear removes all entries and the persisted record.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	if err := s.store.Delete(storageKey); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *Service) persistLocked() error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.store.Set(storageKey, data); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}

func clampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
