package handlers

import (
	"encoding/json"
	"net/http"

	"cineflix/models"
	"cineflix/services/history"
)

type historyService interface {
	Record(content models.ContentItem, season, episode int) (models.ViewingHistoryItem, error)
	List() []models.ViewingHistoryItem
	Clear() error
}

var _ historyService = (*history.Service)(nil)

type HistoryHandler struct {
	Service historyService
}

func NewHistoryHandler(service historyService) *HistoryHandler {
	return &HistoryHandler{Service: service}
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.List())
}

func (h *HistoryHandler) Record(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content models.ContentItem `json:"content"`
		Season  int                `json:"season,omitempty"`
		Episode int                `json:"episode,omitempty"`
	}
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

	entry, err := h.Service.Record(body.Content, body.Season, body.Episode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, entry)
}

func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Clear(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
