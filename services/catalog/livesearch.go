package catalog

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"cineflix/models"
)

// DefaultSearchDebounce is the pause after the last keystroke before a
// search request is issued.
const DefaultSearchDebounce = 300 * time.Millisecond

// SearchFunc is the search operation a LiveSearch drives, typically
// Service.SearchMulti or Service.SearchTV.
type SearchFunc func(ctx context.Context, query string) ([]models.ContentItem, error)

// LiveSearch debounces rapid query updates and guarantees that only the
// newest query's results are ever delivered. Each new query cancels the
// prior in-flight request; a superseded response is dropped even if it
// arrives after a newer query started.
//
// deliver runs with the internal lock held so that the generation check
// and the delivery are one atomic step; it must not call back into the
// LiveSearch.
type LiveSearch struct {
	search  SearchFunc
	deliver func(query string, items []models.ContentItem)
	delay   time.Duration

	mu     sync.Mutex
	gen    uint64
	timer  *time.Timer
	cancel context.CancelFunc
}

func NewLiveSearch(search SearchFunc, delay time.Duration, deliver func(string, []models.ContentItem)) *LiveSearch {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}
	return &LiveSearch{search: search, deliver: deliver, delay: delay}
}

// Query registers a keystroke. Queries shorter than two characters
// clear the result set immediately without touching the network.
func (l *LiveSearch) Query(query string) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}

	trimmed := strings.TrimSpace(query)
	if len(trimmed) < 2 {
		l.deliver(query, nil)
		l.mu.Unlock()
		return
	}

	l.timer = time.AfterFunc(l.delay, func() {
		l.run(gen, trimmed)
	})
	l.mu.Unlock()
}

func (l *LiveSearch) run(gen uint64, query string) {
	ctx, cancel := context.WithCancel(context.Background())

	l.mu.Lock()
	if gen != l.gen {
		l.mu.Unlock()
		cancel()
		return
	}
	l.cancel = cancel
	l.mu.Unlock()

	items, err := l.search(ctx, query)
	cancel()

	// The generation re-check and the delivery happen under the same
	// lock Query takes, so a slow stale response can never be applied
	// after a newer query already delivered.
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return
	}
	l.cancel = nil
	if err != nil {
		if IsCancelled(err) {
			return
		}
		log.Printf("[search] query %q failed: %v", query, err)
		items = nil
	}
	l.deliver(query, items)
}

// Stop cancels any pending or in-flight search.
func (l *LiveSearch) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
