// Package streaming builds the external embed-server URLs for a title.
// The servers are opaque collaborators; this package only knows their
// URL shapes.
package streaming

import (
	"fmt"

	"cineflix/models"
)

// Sources returns the ordered list of embed servers for a title.
// Season and episode default to 1 for series when unset and are
// ignored for movies.
func Sources(content models.ContentItem, season, episode int) []models.StreamingSource {
	if season < 1 {
		season = 1
	}
	if episode < 1 {
		episode = 1
	}
	tv := content.MediaType == models.MediaTypeTV

	vidSrc := fmt.Sprintf("https://vidsrc.cc/v2/embed/movie/%d", content.ID)
	vidLink := fmt.Sprintf("https://vidlink.pro/movie/%d", content.ID)
	superEmbed := fmt.Sprintf("https://multiembed.mov/?video_id=%d&tmdb=1", content.ID)
	moviesAPI := fmt.Sprintf("https://moviesapi.club/movie/%d", content.ID)
	if tv {
		vidSrc = fmt.Sprintf("https://vidsrc.cc/v2/embed/tv/%d/%d/%d", content.ID, season, episode)
		vidLink = fmt.Sprintf("https://vidlink.pro/tv/%d/%d/%d", content.ID, season, episode)
		superEmbed = fmt.Sprintf("https://multiembed.mov/?video_id=%d&tmdb=1&s=%d&e=%d", content.ID, season, episode)
		moviesAPI = fmt.Sprintf("https://moviesapi.club/tv/%d-%d-%d", content.ID, season, episode)
	}

	return []models.StreamingSource{
		{Name: "Server 1: VidSrc.cc (Fast)", URL: vidSrc},
		{Name: "Server 2: VidLink (Multi-Lang)", URL: vidLink},
		{Name: "Server 3: SuperEmbed", URL: superEmbed},
		{Name: "Server 4: MoviesAPI", URL: moviesAPI},
	}
}
