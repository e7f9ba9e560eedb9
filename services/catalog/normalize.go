package catalog

import (
	"fmt"

	"cineflix/models"
)

// Placeholder art keeps the renderable-image invariant: after
// normalization no ContentItem ever carries an empty poster or
// backdrop, so the UI never special-cases missing images.
const (
	posterPlaceholderURL   = "https://via.placeholder.com/500x750.png?text=No+Image"
	backdropPlaceholderURL = "https://via.placeholder.com/1280x720.png?text=No+Image"
)

// tmdbItem covers the union of the movie and TV payload shapes. Movies
// carry title/release_date, series carry name/first_air_date; mixed
// endpoints add their own media_type discriminator.
type tmdbItem struct {
	ID           int64          `json:"id"`
	IMDBID       string         `json:"imdb_id"`
	Title        string         `json:"title"`
	Name         string         `json:"name"`
	Overview     string         `json:"overview"`
	PosterPath   string         `json:"poster_path"`
	BackdropPath string         `json:"backdrop_path"`
	VoteAverage  float64        `json:"vote_average"`
	ReleaseDate  string         `json:"release_date"`
	FirstAirDate string         `json:"first_air_date"`
	MediaType    string         `json:"media_type"`
	Genres       []models.Genre `json:"genres"`
	GenreIDs     []int64        `json:"genre_ids"`

	Credits     *models.Credits      `json:"credits"`
	Videos      *models.VideoList    `json:"videos"`
	Images      *models.ImageGallery `json:"images"`
	ExternalIDs *tmdbExternalIDs     `json:"external_ids"`

	NumberOfSeasons int             `json:"number_of_seasons"`
	Seasons         []models.Season `json:"seasons"`
}

type tmdbExternalIDs struct {
	IMDBID string `json:"imdb_id"`
}

type tmdbList struct {
	Results []tmdbItem `json:"results"`
}

type tmdbGenreList struct {
	Genres []models.Genre `json:"genres"`
}

func tmdbImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s%s", tmdbImageBaseURL, size, path)
}

// normalizeItem maps one raw payload onto the unified ContentItem.
// Missing artwork gets a placeholder; this path is used for detail
// fetches, which must always produce a renderable entity.
func normalizeItem(item tmdbItem, mediaType string) models.ContentItem {
	title := item.Title
	if title == "" {
		title = item.Name
	}
	release := item.ReleaseDate
	if release == "" {
		release = item.FirstAirDate
	}
	if release == "" {
		release = "N/A"
	}

	imdbID := item.IMDBID
	if imdbID == "" && item.ExternalIDs != nil {
		imdbID = item.ExternalIDs.IMDBID
	}

	poster := tmdbImageURL(item.PosterPath, tmdbPosterSize)
	if poster == "" {
		poster = posterPlaceholderURL
	}
	backdrop := tmdbImageURL(item.BackdropPath, tmdbBackdropSize)
	if backdrop == "" {
		backdrop = backdropPlaceholderURL
	}

	genres := item.Genres
	if genres == nil {
		genres = []models.Genre{}
	}

	return models.ContentItem{
		ID:              item.ID,
		IMDBID:          imdbID,
		Title:           title,
		Overview:        item.Overview,
		PosterPath:      poster,
		BackdropPath:    backdrop,
		VoteAverage:     item.VoteAverage,
		ReleaseDate:     release,
		MediaType:       mediaType,
		Genres:          genres,
		GenreIDs:        item.GenreIDs,
		Credits:         item.Credits,
		Videos:          item.Videos,
		Images:          item.Images,
		NumberOfSeasons: item.NumberOfSeasons,
		Seasons:         item.Seasons,
	}
}

// normalizeList drops items missing poster or backdrop art before
// normalization; list results without both are not renderable. With
// mediaType "all" the payload discriminator decides each item's kind.
func normalizeList(items []tmdbItem, mediaType string) []models.ContentItem {
	out := make([]models.ContentItem, 0, len(items))
	for _, item := range items {
		if item.PosterPath == "" || item.BackdropPath == "" {
			continue
		}
		kind := mediaType
		if kind == models.MediaTypeAll {
			kind = item.MediaType
		}
		out = append(out, normalizeItem(item, kind))
	}
	return out
}
