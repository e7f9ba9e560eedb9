package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"sort"
	"strconv"

	"github.com/sourcegraph/conc"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"cineflix/models"
)

// Service translates UI intents into catalog API calls, applies the
// request cache and normalizes payloads into ContentItems.
//
// Failure policy: list and category operations soft-fail to an empty
// result plus a logged warning; single-item detail operations return a
// typed error the caller must handle.
type Service struct {
	tmdb *tmdbClient
}

// NewService wires the catalog service. The cache instance is owned by
// the caller (the composition root) so tests get isolated caches.
// includeRestricted supplies the current content-filter flag; nil
// means the filter stays off.
func NewService(apiKey, language string, httpc *http.Client, cache *Cache, includeRestricted func() bool) *Service {
	return &Service{
		tmdb: newTMDBClient(apiKey, language, httpc, cache, includeRestricted),
	}
}

func (s *Service) list(ctx context.Context, endpoint string, params map[string]string) ([]tmdbItem, error) {
	payload, err := s.tmdb.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	var list tmdbList
	if err := json.Unmarshal(payload, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return list.Results, nil
}

// FetchCategory loads one titled shelf. Network or parse failures
// resolve to an empty shelf; the UI never sees an error here.
func (s *Service) FetchCategory(ctx context.Context, cfg models.CategoryConfig) models.Category {
	mediaType := cfg.MediaType
	if mediaType == "" {
		mediaType = models.MediaTypeMovie
	}

	items, err := s.list(ctx, cfg.Endpoint, cfg.Params)
	if err != nil {
		log.Printf("[catalog] category %q fetch failed: %v", cfg.Title, err)
		return models.Category{Title: cfg.Title, Items: []models.ContentItem{}}
	}
	if cfg.Limit > 0 && len(items) > cfg.Limit {
		items = items[:cfg.Limit]
	}
	return models.Category{Title: cfg.Title, Items: normalizeList(items, mediaType)}
}

// FetchHero returns up to five trending titles for the hero carousel.
// The first item is enriched with full details before display so the
// hero always has cast, videos and gallery data ready.
func (s *Service) FetchHero(ctx context.Context) []models.ContentItem {
	cat := s.FetchCategory(ctx, models.CategoryConfig{
		Title:     "Trending Now",
		Endpoint:  "trending/all/day",
		MediaType: models.MediaTypeAll,
	})
	items := cat.Items
	if len(items) > 5 {
		items = items[:5]
	}
	if len(items) > 0 {
		if detailed, err := s.Details(ctx, items[0].ID, items[0].MediaType); err == nil {
			items[0] = *detailed
		} else {
			log.Printf("[catalog] hero enrichment failed for %s/%d: %v", items[0].MediaType, items[0].ID, err)
		}
	}
	return items
}

// SeriesPage returns one page of popular series for the all-series
// browse view.
func (s *Service) SeriesPage(ctx context.Context, page int) []models.ContentItem {
	if page < 1 {
		page = 1
	}
	items, err := s.list(ctx, "discover/tv", map[string]string{
		"sort_by": "popularity.desc",
		"page":    strconv.Itoa(page),
	})
	if err != nil {
		log.Printf("[catalog] series page %d fetch failed: %v", page, err)
		return []models.ContentItem{}
	}
	return normalizeList(items, models.MediaTypeTV)
}

// GenreList merges the movie and TV genre catalogs, de-duplicated by
// id and ordered by collated name.
func (s *Service) GenreList(ctx context.Context) []models.Genre {
	var (
		movieGenres, tvGenres []models.Genre
		movieErr, tvErr       error
	)

	var wg conc.WaitGroup
	wg.Go(func() { movieGenres, movieErr = s.genres(ctx, "genre/movie/list") })
	wg.Go(func() { tvGenres, tvErr = s.genres(ctx, "genre/tv/list") })
	wg.Wait()

	if movieErr != nil {
		log.Printf("[catalog] movie genre list failed: %v", movieErr)
	}
	if tvErr != nil {
		log.Printf("[catalog] tv genre list failed: %v", tvErr)
	}

	seen := make(map[int64]string)
	for _, g := range movieGenres {
		seen[g.ID] = g.Name
	}
	for _, g := range tvGenres {
		if _, ok := seen[g.ID]; !ok {
			seen[g.ID] = g.Name
		}
	}

	merged := make([]models.Genre, 0, len(seen))
	for id, name := range seen {
		merged = append(merged, models.Genre{ID: id, Name: name})
	}
	coll := collate.New(language.English)
	sort.Slice(merged, func(i, j int) bool {
		if c := coll.CompareString(merged[i].Name, merged[j].Name); c != 0 {
			return c < 0
		}
		return merged[i].ID < merged[j].ID
	})
	return merged
}

func (s *Service) genres(ctx context.Context, endpoint string) ([]models.Genre, error) {
	payload, err := s.tmdb.get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var list tmdbGenreList
	if err := json.Unmarshal(payload, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return list.Genres, nil
}

// Details fetches the full record for one title, with credits, videos,
// seasons, external ids and the image gallery embedded. This is the
// hard-fail path: callers must handle the error (retry affordance).
func (s *Service) Details(ctx context.Context, id int64, mediaType string) (*models.ContentItem, error) {
	endpoint := fmt.Sprintf("%s/%d", mediaType, id)
	payload, err := s.tmdb.get(ctx, endpoint, map[string]string{
		"append_to_response":     "videos,credits,seasons,external_ids,images",
		"include_image_language": "en,null",
	})
	if err != nil {
		return nil, err
	}
	var item tmdbItem
	if err := json.Unmarshal(payload, &item); err != nil {
		return nil, fmt.Errorf("decode %s details: %w", endpoint, err)
	}
	normalized := normalizeItem(item, mediaType)
	return &normalized, nil
}

// SeasonDetails fetches one season with its episode list. Hard-fail.
func (s *Service) SeasonDetails(ctx context.Context, tvID int64, seasonNumber int) (*models.Season, error) {
	endpoint := fmt.Sprintf("tv/%d/season/%d", tvID, seasonNumber)
	payload, err := s.tmdb.get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var season models.Season
	if err := json.Unmarshal(payload, &season); err != nil {
		return nil, fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return &season, nil
}

// Discover returns a mixed movie+TV pool, optionally narrowed to one
// genre (genreID 0 means "any, by popularity"). The pool is shuffled
// uniformly so "surprise me" surfaces are not biased toward the API's
// first page ordering.
func (s *Service) Discover(ctx context.Context, genreID int64) []models.ContentItem {
	params := map[string]string{"sort_by": "popularity.desc"}
	if genreID > 0 {
		params = map[string]string{"with_genres": strconv.FormatInt(genreID, 10)}
	}

	var movies, series []models.ContentItem
	var wg conc.WaitGroup
	wg.Go(func() {
		items, err := s.list(ctx, "discover/movie", params)
		if err != nil {
			log.Printf("[catalog] discover movies failed: %v", err)
			return
		}
		movies = normalizeList(items, models.MediaTypeMovie)
	})
	wg.Go(func() {
		items, err := s.list(ctx, "discover/tv", params)
		if err != nil {
			log.Printf("[catalog] discover tv failed: %v", err)
			return
		}
		series = normalizeList(items, models.MediaTypeTV)
	})
	wg.Wait()

	combined := make([]models.ContentItem, 0, len(movies)+len(series))
	combined = append(combined, movies...)
	combined = append(combined, series...)
	rand.Shuffle(len(combined), func(i, j int) {
		combined[i], combined[j] = combined[j], combined[i]
	})
	return combined
}

// SearchMulti runs a mixed movie+TV search. A cancelled context
// surfaces as ErrCancelled so the caller can discard the stale
// response; any other failure soft-fails to an empty result.
func (s *Service) SearchMulti(ctx context.Context, query string) ([]models.ContentItem, error) {
	if query == "" {
		return nil, nil
	}
	items, err := s.list(ctx, "search/multi", map[string]string{"query": query})
	if err != nil {
		if IsCancelled(err) {
			return nil, ErrCancelled
		}
		log.Printf("[catalog] multi search %q failed: %v", query, err)
		return []models.ContentItem{}, nil
	}
	valid := items[:0:0]
	for _, item := range items {
		if item.MediaType != models.MediaTypeMovie && item.MediaType != models.MediaTypeTV {
			continue
		}
		valid = append(valid, item)
	}
	return normalizeList(valid, models.MediaTypeAll), nil
}

// SearchTV is SearchMulti restricted to series.
func (s *Service) SearchTV(ctx context.Context, query string) ([]models.ContentItem, error) {
	if query == "" {
		return nil, nil
	}
	items, err := s.list(ctx, "search/tv", map[string]string{"query": query})
	if err != nil {
		if IsCancelled(err) {
			return nil, ErrCancelled
		}
		log.Printf("[catalog] tv search %q failed: %v", query, err)
		return []models.ContentItem{}, nil
	}
	return normalizeList(items, models.MediaTypeTV), nil
}

// Recommendations returns the catalog's own suggestions for a title.
func (s *Service) Recommendations(ctx context.Context, id int64, mediaType string) []models.ContentItem {
	endpoint := fmt.Sprintf("%s/%d/recommendations", mediaType, id)
	items, err := s.list(ctx, endpoint, nil)
	if err != nil {
		log.Printf("[catalog] recommendations for %s/%d failed: %v", mediaType, id, err)
		return []models.ContentItem{}
	}
	return normalizeList(items, mediaType)
}

// SimilarByGenre finds up to ten titles sharing the item's first listed
// genre, excluding the item itself.
func (s *Service) SimilarByGenre(ctx context.Context, excludeID int64, mediaType string, genres []models.Genre) []models.ContentItem {
	if len(genres) == 0 {
		return []models.ContentItem{}
	}
	endpoint := "discover/movie"
	if mediaType == models.MediaTypeTV {
		endpoint = "discover/tv"
	}
	items, err := s.list(ctx, endpoint, map[string]string{
		"with_genres": strconv.FormatInt(genres[0].ID, 10),
		"sort_by":     "popularity.desc",
	})
	if err != nil {
		log.Printf("[catalog] similar-by-genre for %s/%d failed: %v", mediaType, excludeID, err)
		return []models.ContentItem{}
	}
	similar := normalizeList(items, mediaType)
	out := make([]models.ContentItem, 0, 10)
	for _, item := range similar {
		if item.ID == excludeID {
			continue
		}
		out = append(out, item)
		if len(out) == 10 {
			break
		}
	}
	return out
}
