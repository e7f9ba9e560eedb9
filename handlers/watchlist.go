package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"cineflix/models"
	"cineflix/services/watchlist"
)

type watchlistService interface {
	List() []models.ContentItem
	Add(content models.ContentItem) error
	Remove(mediaType string, id int64) (bool, error)
	Contains(mediaType string, id int64) bool
	Clear() error
}

var _ watchlistService = (*watchlist.Service)(nil)

type WatchlistHandler struct {
	Service watchlistService
}

func NewWatchlistHandler(service watchlistService) *WatchlistHandler {
	return &WatchlistHandler{Service: service}
}

func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.List())
}

func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var body models.ContentItem
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.ID == 0 || body.MediaType == "" {
		http.Error(w, "id and media_type are required", http.StatusBadRequest)
		return
	}

	if err := h.Service.Add(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, body)
}

func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	mediaType, id, ok := watchlistVars(w, r)
	if !ok {
		return
	}
	removed, err := h.Service.Remove(mediaType, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !removed {
		http.Error(w, "not in watchlist", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *WatchlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
	mediaType, id, ok := watchlistVars(w, r)
	if !ok {
		return
	}
	writeJSON(w, map[string]bool{"inList": h.Service.Contains(mediaType, id)})
}

func (h *WatchlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Clear(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func watchlistVars(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	vars := mux.Vars(r)
	mediaType := vars["mediaType"]
	if mediaType != models.MediaTypeMovie && mediaType != models.MediaTypeTV {
		http.Error(w, "unknown media type", http.StatusBadRequest)
		return "", 0, false
	}
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return "", 0, false
	}
	return mediaType, id, true
}
