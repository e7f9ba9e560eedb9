package handlers

import (
	"net/http"

	"cineflix/services/recommend"
)

// PersonalizedHandler serves the continue-watching and recommended
// shelves derived from the current history snapshot. The derivation
// runs fresh on every request; only the underlying catalog calls are
// cached.
type PersonalizedHandler struct {
	History historyService
	Catalog recommend.Catalog
}

func NewPersonalizedHandler(history historyService, catalog recommend.Catalog) *PersonalizedHandler {
	return &PersonalizedHandler{History: history, Catalog: catalog}
}

func (h *PersonalizedHandler) Home(w http.ResponseWriter, r *http.Request) {
	result := recommend.DeriveHome(r.Context(), h.Catalog, h.History.List())
	writeJSON(w, result)
}
