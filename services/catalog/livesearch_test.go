package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"cineflix/models"
)

func TestLiveSearchOnlyNewestQueryWins(t *testing.T) {
	firstStarted := make(chan struct{})
	release := make(chan struct{})

	search := func(ctx context.Context, query string) ([]models.ContentItem, error) {
		if query == "du" {
			close(firstStarted)
			// Simulate a slow response that arrives after the newer
			// query already resolved.
			select {
			case <-release:
			case <-time.After(2 * time.Second):
			}
			return []models.ContentItem{{ID: 1, Title: "stale"}}, nil
		}
		return []models.ContentItem{{ID: 2, Title: "dune"}}, nil
	}

	var mu sync.Mutex
	var delivered [][]models.ContentItem
	done := make(chan struct{}, 4)
	ls := NewLiveSearch(search, 5*time.Millisecond, func(query string, items []models.ContentItem) {
		mu.Lock()
		delivered = append(delivered, items)
		mu.Unlock()
		done <- struct{}{}
	})

	ls.Query("du")
	<-firstStarted
	ls.Query("dune")
	<-done

	// Let the stale response land; it must be discarded.
	close(release)
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(delivered) != 1 {
		t.Fatalf("expected exactly one delivery, got %d", len(delivered))
	}
	if len(delivered[0]) != 1 || delivered[0][0].ID != 2 {
		t.Fatalf("expected only the newest query's results, got %+v", delivered[0])
	}
}

func TestLiveSearchStaleDeliveryCannotTrailNewerClear(t *testing.T) {
	staleStarted := make(chan struct{})
	releaseStale := make(chan struct{})

	var mu sync.Mutex
	var order []string

	ls := NewLiveSearch(func(ctx context.Context, query string) ([]models.ContentItem, error) {
		return []models.ContentItem{{ID: 1, Title: query}}, nil
	}, time.Millisecond, func(query string, items []models.ContentItem) {
		if items != nil {
			// A slow consumer: the delivery is in flight but not yet
			// applied when the next keystroke arrives.
			close(staleStarted)
			<-releaseStale
		}
		mu.Lock()
		if items == nil {
			order = append(order, "clear:"+query)
		} else {
			order = append(order, "results:"+query)
		}
		mu.Unlock()
	})

	ls.Query("aa")
	<-staleStarted

	cleared := make(chan struct{})
	go func() {
		// Shrinks the query below the search threshold, which must
		// clear the results.
		ls.Query("a")
		close(cleared)
	}()

	select {
	case <-cleared:
		t.Fatal("newer clear delivered while an older delivery was still in flight")
	case <-time.After(30 * time.Millisecond):
	}

	close(releaseStale)
	<-cleared

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 2 || order[0] != "results:aa" || order[1] != "clear:a" {
		t.Fatalf("expected the in-flight delivery to finish before the newer clear, got %v", order)
	}
}

func TestLiveSearchShortQueryClearsImmediately(t *testing.T) {
	searchCalled := false
	ls := NewLiveSearch(func(ctx context.Context, query string) ([]models.ContentItem, error) {
		searchCalled = true
		return nil, nil
	}, time.Millisecond, func(query string, items []models.ContentItem) {
		if items != nil {
			t.Fatalf("expected cleared results for short query, got %+v", items)
		}
	})

	ls.Query("d")
	time.Sleep(20 * time.Millisecond)
	if searchCalled {
		t.Fatal("short query must not reach the network")
	}
}

func TestLiveSearchDebouncesBursts(t *testing.T) {
	var mu sync.Mutex
	var queries []string
	done := make(chan struct{}, 4)

	ls := NewLiveSearch(func(ctx context.Context, query string) ([]models.ContentItem, error) {
		mu.Lock()
		queries = append(queries, query)
		mu.Unlock()
		return nil, nil
	}, 30*time.Millisecond, func(string, []models.ContentItem) {
		done <- struct{}{}
	})

	ls.Query("du")
	ls.Query("dun")
	ls.Query("dune")
	<-done

	mu.Lock()
	defer mu.Unlock()
	if len(queries) != 1 || queries[0] != "dune" {
		t.Fatalf("expected a single debounced search for the last query, got %v", queries)
	}
}
