package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"cineflix/models"
	"cineflix/services/catalog"
)

// catalogService is the surface of the catalog the HTTP layer consumes.
type catalogService interface {
	FetchCategory(ctx context.Context, cfg models.CategoryConfig) models.Category
	FetchHero(ctx context.Context) []models.ContentItem
	SeriesPage(ctx context.Context, page int) []models.ContentItem
	GenreList(ctx context.Context) []models.Genre
	Details(ctx context.Context, id int64, mediaType string) (*models.ContentItem, error)
	SeasonDetails(ctx context.Context, tvID int64, seasonNumber int) (*models.Season, error)
	Discover(ctx context.Context, genreID int64) []models.ContentItem
	SearchMulti(ctx context.Context, query string) ([]models.ContentItem, error)
}

var _ catalogService = (*catalog.Service)(nil)

type CatalogHandler struct {
	Service catalogService
}

func NewCatalogHandler(service catalogService) *CatalogHandler {
	return &CatalogHandler{Service: service}
}

// Home returns every curated shelf. Shelves that fail to load come
// back empty rather than failing the whole response.
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	configs := catalog.HomeCategoryConfigs()
	categories := make([]models.Category, 0, len(configs))
	for _, cfg := range configs {
		categories = append(categories, h.Service.FetchCategory(r.Context(), cfg))
	}
	writeJSON(w, categories)
}

func (h *CatalogHandler) Hero(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.FetchHero(r.Context()))
}

func (h *CatalogHandler) Series(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	writeJSON(w, h.Service.SeriesPage(r.Context(), page))
}

func (h *CatalogHandler) Genres(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.GenreList(r.Context()))
}

func (h *CatalogHandler) Details(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mediaType := vars["mediaType"]
	if mediaType != models.MediaTypeMovie && mediaType != models.MediaTypeTV {
		http.Error(w, "unknown media type", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := h.Service.Details(r.Context(), id, mediaType)
	if err != nil {
		switch {
		case catalog.IsCancelled(err):
			// Client went away; nothing to write.
		case errors.Is(err, catalog.ErrNotFound):
			http.Error(w, "title not found", http.StatusNotFound)
		default:
			http.Error(w, "catalog unavailable", http.StatusBadGateway)
		}
		return
	}
	writeJSON(w, item)
}

func (h *CatalogHandler) Season(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tvID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	seasonNumber, err := strconv.Atoi(vars["season"])
	if err != nil {
		http.Error(w, "invalid season", http.StatusBadRequest)
		return
	}

	season, err := h.Service.SeasonDetails(r.Context(), tvID, seasonNumber)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, "season not found", http.StatusNotFound)
			return
		}
		http.Error(w, "catalog unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, season)
}

func (h *CatalogHandler) Discover(w http.ResponseWriter, r *http.Request) {
	genreID, _ := strconv.ParseInt(r.URL.Query().Get("genre"), 10, 64)
	writeJSON(w, h.Service.Discover(r.Context(), genreID))
}

// Search runs a multi search bound to the request context, so a client
// abandoning the request (superseded keystroke) cancels the upstream
// call instead of wasting it.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	items, err := h.Service.SearchMulti(r.Context(), query)
	if err != nil {
		if catalog.IsCancelled(err) {
			return
		}
		http.Error(w, "search unavailable", http.StatusBadGateway)
		return
	}
	if items == nil {
		items = []models.ContentItem{}
	}
	writeJSON(w, items)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
