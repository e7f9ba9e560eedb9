package catalog

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"cineflix/models"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

const listPayload = `{"results":[
	{"id":1,"title":"First","poster_path":"/p1.jpg","backdrop_path":"/b1.jpg","vote_average":7.1,"release_date":"2024-01-01","genre_ids":[28]},
	{"id":2,"title":"No Backdrop","poster_path":"/p2.jpg","vote_average":6.0,"release_date":"2024-02-01"},
	{"id":3,"title":"Third","poster_path":"/p3.jpg","backdrop_path":"/b3.jpg","vote_average":8.2,"release_date":"2024-03-01"}
]}`

func newTestService(rt roundTripFunc, cache *Cache) *Service {
	httpc := &http.Client{Transport: rt}
	return NewService("test-key", "en-US", httpc, cache, nil)
}

func TestFetchCategoryCachesWithinTTL(t *testing.T) {
	var calls int32
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		atomic.AddInt32(&calls, 1)
		return jsonResponse(listPayload), nil
	}, NewCache(10*time.Minute))

	cfg := models.CategoryConfig{Title: "Action Movies", Endpoint: "discover/movie", Params: map[string]string{"with_genres": "28"}, MediaType: models.MediaTypeMovie}

	first := svc.FetchCategory(context.Background(), cfg)
	second := svc.FetchCategory(context.Background(), cfg)

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected 1 network call for repeated fetch, got %d", got)
	}
	if len(first.Items) != len(second.Items) {
		t.Fatalf("expected identical results, got %d vs %d items", len(first.Items), len(second.Items))
	}
	for i := range first.Items {
		if first.Items[i].ID != second.Items[i].ID || first.Items[i].PosterPath != second.Items[i].PosterPath {
			t.Fatalf("cached result diverges at %d: %+v vs %+v", i, first.Items[i], second.Items[i])
		}
	}
}

func TestFetchCategoryRefetchesAfterTTL(t *testing.T) {
	var calls int32
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCache(10 * time.Minute)
	cache.now = func() time.Time { return now }

	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		atomic.AddInt32(&calls, 1)
		return jsonResponse(listPayload), nil
	}, cache)

	cfg := models.CategoryConfig{Title: "Trending", Endpoint: "trending/all/week", MediaType: models.MediaTypeAll}
	svc.FetchCategory(context.Background(), cfg)

	now = now.Add(10*time.Minute + time.Second)
	svc.FetchCategory(context.Background(), cfg)

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected refetch after TTL, got %d calls", got)
	}
}

func TestFetchCategoryDropsItemsWithoutArt(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(listPayload), nil
	}, nil)

	cat := svc.FetchCategory(context.Background(), models.CategoryConfig{Title: "T", Endpoint: "discover/movie", MediaType: models.MediaTypeMovie})
	if len(cat.Items) != 2 {
		t.Fatalf("expected item without backdrop to be dropped, got %d items", len(cat.Items))
	}
	for _, item := range cat.Items {
		if item.ID == 2 {
			t.Fatal("item without backdrop survived list normalization")
		}
		if item.PosterPath == "" || item.BackdropPath == "" {
			t.Fatalf("normalized item %d has empty artwork", item.ID)
		}
	}
}

func TestFetchCategorySoftFailsToEmpty(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusInternalServerError, Body: io.NopCloser(strings.NewReader("boom")), Header: make(http.Header)}, nil
	}, nil)

	cat := svc.FetchCategory(context.Background(), models.CategoryConfig{Title: "T", Endpoint: "movie/upcoming", MediaType: models.MediaTypeMovie})
	if cat.Items == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(cat.Items) != 0 {
		t.Fatalf("expected empty result on failure, got %d items", len(cat.Items))
	}
}

func TestDetailsSubstitutesPlaceholders(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		// Same item the list path would drop: no artwork at all.
		return jsonResponse(`{"id":2,"title":"No Art","overview":"...","vote_average":6.0,"release_date":"2024-02-01"}`), nil
	}, nil)

	item, err := svc.Details(context.Background(), 2, models.MediaTypeMovie)
	if err != nil {
		t.Fatalf("Details() error = %v", err)
	}
	if item.PosterPath != posterPlaceholderURL {
		t.Fatalf("expected poster placeholder, got %q", item.PosterPath)
	}
	if item.BackdropPath != backdropPlaceholderURL {
		t.Fatalf("expected backdrop placeholder, got %q", item.BackdropPath)
	}
}

func TestDetailsHardFails(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusNotFound, Body: io.NopCloser(strings.NewReader(`{}`)), Header: make(http.Header)}, nil
	}, nil)

	if _, err := svc.Details(context.Background(), 99, models.MediaTypeMovie); err == nil {
		t.Fatal("expected error from detail fetch")
	}
}

func TestDetailsPullsIMDBIDFromExternalIDs(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(`{"id":5,"name":"Show","poster_path":"/p.jpg","backdrop_path":"/b.jpg","first_air_date":"2020-05-05","external_ids":{"imdb_id":"tt0123456"}}`), nil
	}, nil)

	item, err := svc.Details(context.Background(), 5, models.MediaTypeTV)
	if err != nil {
		t.Fatalf("Details() error = %v", err)
	}
	if item.IMDBID != "tt0123456" {
		t.Fatalf("expected imdb id from external_ids, got %q", item.IMDBID)
	}
	if item.Title != "Show" {
		t.Fatalf("expected series name as title, got %q", item.Title)
	}
	if item.ReleaseDate != "2020-05-05" {
		t.Fatalf("expected first_air_date as release date, got %q", item.ReleaseDate)
	}
}

func TestSearchMultiFiltersPersonsAndMissingArt(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(`{"results":[
			{"id":1,"media_type":"person","name":"Someone"},
			{"id":2,"media_type":"movie","title":"Match","poster_path":"/p.jpg","backdrop_path":"/b.jpg"},
			{"id":3,"media_type":"tv","name":"No Art Show"}
		]}`), nil
	}, nil)

	items, err := svc.SearchMulti(context.Background(), "match")
	if err != nil {
		t.Fatalf("SearchMulti() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != 2 {
		t.Fatalf("expected single renderable movie result, got %+v", items)
	}
	if items[0].MediaType != models.MediaTypeMovie {
		t.Fatalf("expected media type from payload discriminator, got %q", items[0].MediaType)
	}
}

func TestSearchMultiSurfacesCancellation(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := svc.SearchMulti(ctx, "doomed")
	if !IsCancelled(err) {
		t.Fatalf("expected cancellation outcome, got %v", err)
	}
}

func TestSearchMultiSoftFailsOnServerError(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusBadGateway, Body: io.NopCloser(strings.NewReader("bad")), Header: make(http.Header)}, nil
	}, nil)

	items, err := svc.SearchMulti(context.Background(), "query")
	if err != nil {
		t.Fatalf("expected soft failure, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty results, got %d", len(items))
	}
}

func TestContentFilterFlagSplitsCacheEntries(t *testing.T) {
	var calls int32
	restricted := false
	httpc := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		atomic.AddInt32(&calls, 1)
		return jsonResponse(listPayload), nil
	})}
	svc := NewService("test-key", "en-US", httpc, NewCache(10*time.Minute), func() bool { return restricted })

	cfg := models.CategoryConfig{Title: "T", Endpoint: "discover/movie", MediaType: models.MediaTypeMovie}
	svc.FetchCategory(context.Background(), cfg)

	restricted = true
	svc.FetchCategory(context.Background(), cfg)

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected toggling the content filter to bypass the cached entry, got %d calls", got)
	}
}

func TestSimilarByGenreExcludesSourceItem(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(listPayload), nil
	}, nil)

	items := svc.SimilarByGenre(context.Background(), 1, models.MediaTypeMovie, []models.Genre{{ID: 28, Name: "Action"}})
	for _, item := range items {
		if item.ID == 1 {
			t.Fatal("similar-by-genre returned the excluded item")
		}
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 similar item, got %d", len(items))
	}
}
