// Package torrents looks up download descriptors for a title via the
// YTS catalog, reached through an ordered chain of CORS proxies. The
// whole lookup is best-effort: total failure yields an empty list.
package torrents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/mozillazg/go-unidecode"

	"cineflix/models"
)

const ytsListURL = "https://yts.mx/api/v2/list_movies.json"

// proxy is one hop in the fallback chain. Wrapped proxies envelope the
// upstream body in a JSON {"contents": "..."} field.
type proxy struct {
	name    string
	wrapped bool
	build   func(target string) string
}

func defaultProxies() []proxy {
	return []proxy{
		{
			name:    "allorigins",
			wrapped: true,
			build: func(target string) string {
				return "https://api.allorigins.win/get?url=" + url.QueryEscape(target)
			},
		},
		{
			name: "corsproxy",
			build: func(target string) string {
				return "https://corsproxy.io/?" + url.QueryEscape(target)
			},
		},
		{
			name: "thingproxy",
			build: func(target string) string {
				return "https://thingproxy.freeboard.io/fetch/" + target
			},
		},
	}
}

type Client struct {
	httpc   *http.Client
	proxies []proxy
}

func NewClient(httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{httpc: httpc, proxies: defaultProxies()}
}

type ytsResponse struct {
	Data struct {
		Movies []struct {
			Torrents []models.Torrent `json:"torrents"`
		} `json:"movies"`
	} `json:"data"`
}

type allOriginsEnvelope struct {
	Contents string `json:"contents"`
}

// MovieTorrents returns the torrents of the best YTS match for the
// query. Proxies are tried in order, each with one retry; when every
// proxy fails the result is an empty list, never an error.
func (c *Client) MovieTorrents(ctx context.Context, query string) []models.Torrent {
	query = strings.TrimSpace(unidecode.Unidecode(query))
	if query == "" {
		return nil
	}
	target := ytsListURL + "?query_term=" + url.QueryEscape(query)

	for _, p := range c.proxies {
		var torrents []models.Torrent
		err := retry.Do(
			func() error {
				var err error
				torrents, err = c.fetchVia(ctx, p, target)
				return err
			},
			retry.Context(ctx),
			retry.Attempts(2),
			retry.Delay(200*time.Millisecond),
			retry.LastErrorOnly(true),
		)
		if err != nil {
			log.Printf("[torrents] proxy %s failed for %q: %v", p.name, query, err)
			continue
		}
		return torrents
	}
	return nil
}

func (c *Client) fetchVia(ctx context.Context, p proxy, target string) ([]models.Torrent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.build(target), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("proxy %s status %s", p.name, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if p.wrapped {
		var envelope allOriginsEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("decode %s envelope: %w", p.name, err)
		}
		body = []byte(envelope.Contents)
	}

	var data ytsResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode yts payload: %w", err)
	}
	if len(data.Data.Movies) == 0 {
		return nil, nil
	}
	return data.Data.Movies[0].Torrents, nil
}

// DownloadLink builds the external browse/search URL for manual
// downloads: the YTS browse page for movies, a bitsearch SxxEyy query
// for series.
func DownloadLink(content models.ContentItem, season, episode int) string {
	if content.MediaType == models.MediaTypeMovie {
		return fmt.Sprintf("https://yts.mx/browse-movies/%s/all/all/0/latest/0/all", url.PathEscape(content.Title))
	}
	if season < 1 {
		season = 1
	}
	if episode < 1 {
		episode = 1
	}
	query := fmt.Sprintf("%s S%02dE%02d", content.Title, season, episode)
	return "https://bitsearch.to/search?q=" + url.QueryEscape(query)
}
