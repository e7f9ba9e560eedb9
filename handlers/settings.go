package handlers

import (
	"encoding/json"
	"net/http"

	"cineflix/services/settings"
)

type SettingsHandler struct {
	Service *settings.Service
}

func NewSettingsHandler(service *settings.Service) *SettingsHandler {
	return &SettingsHandler{Service: service}
}

func (h *SettingsHandler) GetContentFilter(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]bool{"includeRestricted": h.Service.IncludeRestricted()})
}

func (h *SettingsHandler) SetContentFilter(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IncludeRestricted bool `json:"includeRestricted"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Service.SetIncludeRestricted(body.IncludeRestricted); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]bool{"includeRestricted": body.IncludeRestricted})
}
