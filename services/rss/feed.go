// Package rss exports the trending shelf as an RSS 2.0 feed.
package rss

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"cineflix/models"
)

// CategoryFetcher is the slice of the catalog service the feed needs.
type CategoryFetcher interface {
	FetchCategory(ctx context.Context, cfg models.CategoryConfig) models.Category
}

type Feed struct {
	catalog CategoryFetcher
	siteURL string
	now     func() time.Time
}

func NewFeed(catalog CategoryFetcher, siteURL string) *Feed {
	return &Feed{
		catalog: catalog,
		siteURL: strings.TrimRight(siteURL, "/"),
		now:     time.Now,
	}
}

type rssDocument struct {
	XMLName   xml.Name   `xml:"rss"`
	Version   string     `xml:"version,attr"`
	AtomXMLNS string     `xml:"xmlns:atom,attr"`
	Channel   rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	AtomLink      atomLink  `xml:"atom:link"`
	Items         []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// Generate builds the feed XML from the daily trending shelf. The
// underlying category fetch soft-fails, so a catalog outage produces a
// valid feed with no items.
func (f *Feed) Generate(ctx context.Context) (string, error) {
	category := f.catalog.FetchCategory(ctx, models.CategoryConfig{
		Title:     "RSS Feed",
		Endpoint:  "trending/all/day",
		MediaType: models.MediaTypeAll,
		Limit:     20,
	})

	buildDate := f.now().UTC().Format(time.RFC1123Z)
	channel := rssChannel{
		Title:         "Cineflix Trending Feed",
		Link:          f.siteURL,
		Description:   "The latest trending movies and TV shows on Cineflix.",
		Language:      "en-us",
		LastBuildDate: buildDate,
		AtomLink: atomLink{
			Href: f.siteURL + "/rss.xml",
			Rel:  "self",
			Type: "application/rss+xml",
		},
	}

	for _, item := range category.Items {
		link := fmt.Sprintf("%s?id=%d&type=%s", f.siteURL, item.ID, item.MediaType)
		year := "N/A"
		if parts := strings.SplitN(item.ReleaseDate, "-", 2); parts[0] != "" && parts[0] != "N/A" {
			year = parts[0]
		}
		channel.Items = append(channel.Items, rssItem{
			Title:       item.Title,
			Link:        link,
			GUID:        link,
			Description: fmt.Sprintf("(%s) ★%.1f - %s", year, item.VoteAverage, item.Overview),
			PubDate:     buildDate,
		})
	}

	doc := rssDocument{
		Version:   "2.0",
		AtomXMLNS: "http://www.w3.org/2005/Atom",
		Channel:   channel,
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode rss feed: %w", err)
	}
	return xml.Header + string(out), nil
}
