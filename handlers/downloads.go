package handlers

import (
	"encoding/json"
	"net/http"

	"cineflix/models"
	"cineflix/services/streaming"
	"cineflix/services/torrents"
)

// DownloadsHandler exposes the torrent-metadata lookup and the
// external source/link builders.
type DownloadsHandler struct {
	Torrents *torrents.Client
}

func NewDownloadsHandler(client *torrents.Client) *DownloadsHandler {
	return &DownloadsHandler{Torrents: client}
}

func (h *DownloadsHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}
	results := h.Torrents.MovieTorrents(r.Context(), query)
	if results == nil {
		results = []models.Torrent{}
	}
	writeJSON(w, results)
}

type sourcesRequest struct {
	Content models.ContentItem `json:"content"`
	Season  int                `json:"season,omitempty"`
	Episode int                `json:"episode,omitempty"`
}

// Sources returns the embed-server list and the external download link
// for a title.
func (h *DownloadsHandler) Sources(w http.ResponseWriter, r *http.Request) {
	var body sourcesRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Content.ID == 0 || body.Content.MediaType == "" {
		http.Error(w, "content id and media_type are required", http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]any{
		"sources":      streaming.Sources(body.Content, body.Season, body.Episode),
		"downloadLink": torrents.DownloadLink(body.Content, body.Season, body.Episode),
	})
}
