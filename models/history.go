package models

import "time"

// ViewingHistoryItem is one watch event snapshot. Progress is a
// fraction in [0,1]; for TV entries LastSeason/LastEpisode point at the
// most recently played episode.
type ViewingHistoryItem struct {
	Content     ContentItem `json:"content"`
	LastWatched time.Time   `json:"lastWatched"`
	Progress    float64     `json:"progress"`
	LastSeason  int         `json:"lastSeason,omitempty"`
	LastEpisode int         `json:"lastEpisode,omitempty"`
}
