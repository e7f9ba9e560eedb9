package rss

import (
	"context"
	"strings"
	"testing"
	"time"

	"cineflix/models"
)

type fakeFetcher struct {
	items []models.ContentItem
}

func (f *fakeFetcher) FetchCategory(_ context.Context, cfg models.CategoryConfig) models.Category {
	return models.Category{Title: cfg.Title, Items: f.items}
}

func TestGenerateFeed(t *testing.T) {
	feed := NewFeed(&fakeFetcher{items: []models.ContentItem{
		{
			ID:          603,
			Title:       "The Matrix",
			Overview:    "A hacker learns the truth.",
			MediaType:   models.MediaTypeMovie,
			ReleaseDate: "1999-03-31",
			VoteAverage: 8.2,
		},
		{
			ID:          1438,
			Title:       "The Wire",
			Overview:    "Baltimore through many eyes.",
			MediaType:   models.MediaTypeTV,
			ReleaseDate: "N/A",
			VoteAverage: 9.3,
		},
	}}, "https://cineflix.example.com/")
	feed.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}

	out, err := feed.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !strings.HasPrefix(out, "<?xml") {
		t.Fatalf("expected XML declaration, got %q", out[:min(40, len(out))])
	}
	for _, want := range []string{
		`<rss version="2.0"`,
		"<title>Cineflix Trending Feed</title>",
		"<link>https://cineflix.example.com</link>",
		`href="https://cineflix.example.com/rss.xml"`,
		"<title>The Matrix</title>",
		"https://cineflix.example.com?id=603&amp;type=movie",
		"(1999)",
		"Sun, 01 Jun 2025 12:00:00 +0000",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("feed missing %q\n%s", want, out)
		}
	}
	// A missing release date renders as N/A, not an empty year.
	if !strings.Contains(out, "(N/A)") {
		t.Fatal("expected N/A year for undated item")
	}
}

func TestGenerateFeedEmptyCatalog(t *testing.T) {
	feed := NewFeed(&fakeFetcher{}, "https://cineflix.example.com")
	out, err := feed.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if strings.Contains(out, "<item>") {
		t.Fatal("expected no items in the feed")
	}
	if !strings.Contains(out, "<channel>") {
		t.Fatal("expected a valid channel even with no items")
	}
}
