package models

import "fmt"

// Media types as used by the catalog API. Mixed endpoints (trending,
// multi search) carry the discriminator in the payload itself.
const (
	MediaTypeMovie = "movie"
	MediaTypeTV    = "tv"
	MediaTypeAll   = "all"
)

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CastMember struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
}

type Video struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type Episode struct {
	ID            int64   `json:"id"`
	EpisodeNumber int     `json:"episode_number"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	StillPath     *string `json:"still_path"`
}

type Season struct {
	ID           int64     `json:"id"`
	SeasonNumber int       `json:"season_number"`
	Name         string    `json:"name"`
	EpisodeCount int       `json:"episode_count"`
	Episodes     []Episode `json:"episodes,omitempty"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
}

type VideoList struct {
	Results []Video `json:"results"`
}

type ImageGallery struct {
	Backdrops []GalleryImage `json:"backdrops"`
	Logos     []GalleryImage `json:"logos"`
	Posters   []GalleryImage `json:"posters"`
}

type GalleryImage struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
}

// ContentItem is the unified representation of a movie or TV series.
// PosterPath and BackdropPath are always absolute URLs after
// normalization; the catalog service substitutes placeholders when the
// source omits an image. Identity is the (ID, MediaType) pair; the
// same numeric id can exist in both the movie and the TV catalog.
type ContentItem struct {
	ID           int64   `json:"id"`
	IMDBID       string  `json:"imdb_id,omitempty"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
	MediaType    string  `json:"media_type"`
	Genres       []Genre `json:"genres"`
	GenreIDs     []int64 `json:"genre_ids,omitempty"`

	Credits *Credits      `json:"credits,omitempty"`
	Videos  *VideoList    `json:"videos,omitempty"`
	Images  *ImageGallery `json:"images,omitempty"`

	// TV specific.
	NumberOfSeasons int      `json:"number_of_seasons,omitempty"`
	Seasons         []Season `json:"seasons,omitempty"`

	// Set only when the item is surfaced in a continue-watching shelf.
	Progress float64 `json:"progress,omitempty"`
}

// Key returns the identity key for de-duplication maps.
func (c ContentItem) Key() string {
	return fmt.Sprintf("%s:%d", c.MediaType, c.ID)
}

// Category is a titled shelf of content as rendered on the home page.
type Category struct {
	Title string        `json:"title"`
	Items []ContentItem `json:"items"`
}

// CategoryConfig describes one catalog list request.
type CategoryConfig struct {
	Title     string
	Endpoint  string
	Params    map[string]string
	MediaType string
	Limit     int
}
