// Package recommend derives the personalized home shelves from the
// viewing history snapshot. The derivation itself is pure; only the
// catalog calls it delegates to touch the network, and only those are
// cached (by the catalog's request cache).
package recommend

import (
	"context"
	"sort"

	"cineflix/models"
)

// Catalog is the slice of the catalog service the deriver needs. Both
// operations are list fetches and soft-fail to empty results.
type Catalog interface {
	Discover(ctx context.Context, genreID int64) []models.ContentItem
	Recommendations(ctx context.Context, id int64, mediaType string) []models.ContentItem
}

// HomeRecommendations are the two personalized shelves on the home
// page. Either slice may be empty; empty is a valid outcome, not a
// failure.
type HomeRecommendations struct {
	ContinueWatching []models.ContentItem `json:"continueWatching"`
	Recommended      []models.ContentItem `json:"recommended"`
}

// DeriveHome recomputes the personalized shelves for the given history
// snapshot. Call it again whenever the history changes; it always
// issues a fresh catalog call rather than caching its own output.
func DeriveHome(ctx context.Context, catalog Catalog, history []models.ViewingHistoryItem) HomeRecommendations {
	if len(history) == 0 {
		// Empty shelves serialize as [], not null.
		return HomeRecommendations{
			ContinueWatching: []models.ContentItem{},
			Recommended:      []models.ContentItem{},
		}
	}
	return HomeRecommendations{
		ContinueWatching: continueWatching(history),
		Recommended:      recommendedFor(ctx, catalog, history),
	}
}

// continueWatching picks entries with partial progress, newest first,
// and annotates each entity with its resume fraction.
func continueWatching(history []models.ViewingHistoryItem) []models.ContentItem {
	partial := make([]models.ViewingHistoryItem, 0, len(history))
	for _, item := range history {
		if item.Progress > 0 && item.Progress < 1 {
			partial = append(partial, item)
		}
	}
	sort.SliceStable(partial, func(i, j int) bool {
		return partial[i].LastWatched.After(partial[j].LastWatched)
	})

	out := make([]models.ContentItem, 0, len(partial))
	for _, item := range partial {
		content := item.Content
		content.Progress = item.Progress
		out = append(out, content)
	}
	return out
}

func recommendedFor(ctx context.Context, catalog Catalog, history []models.ViewingHistoryItem) []models.ContentItem {
	if genreID, ok := topGenre(history); ok {
		return catalog.Discover(ctx, genreID)
	}

	// No genre data anywhere in the history: fall back to the
	// catalog's suggestions for the most recently watched title.
	latest := history[0]
	for _, item := range history[1:] {
		if item.LastWatched.After(latest.LastWatched) {
			latest = item
		}
	}
	return catalog.Recommendations(ctx, latest.Content.ID, latest.Content.MediaType)
}

// topGenre returns the most frequent genre id across the history.
// Ties go to the genre encountered first in the scan.
func topGenre(history []models.ViewingHistoryItem) (int64, bool) {
	counts := make(map[int64]int)
	var order []int64
	for _, item := range history {
		for _, id := range item.Content.GenreIDs {
			if _, seen := counts[id]; !seen {
				order = append(order, id)
			}
			counts[id]++
		}
	}
	if len(order) == 0 {
		return 0, false
	}
	best := order[0]
	for _, id := range order[1:] {
		if counts[id] > counts[best] {
			best = id
		}
	}
	return best, true
}
