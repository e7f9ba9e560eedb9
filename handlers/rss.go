package handlers

import (
	"net/http"

	"cineflix/services/rss"
)

type RSSHandler struct {
	Feed *rss.Feed
}

func NewRSSHandler(feed *rss.Feed) *RSSHandler {
	return &RSSHandler{Feed: feed}
}

func (h *RSSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	xml, err := h.Feed.Generate(r.Context())
	if err != nil {
		http.Error(w, "feed unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Write([]byte(xml))
}
