package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"cineflix/utils"
)

// Deps bundles everything the router needs.
type Deps struct {
	SiteURL      string
	Catalog      *CatalogHandler
	History      *HistoryHandler
	Watchlist    *WatchlistHandler
	Personalized *PersonalizedHandler
	Downloads    *DownloadsHandler
	Settings     *SettingsHandler
	Users        *UsersHandler
	RSS          *RSSHandler
}

// NewRouter builds the full route table.
func NewRouter(deps Deps) *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware(deps.SiteURL))

	// Preflight requests must match a route for the middleware to run.
	r.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/home", deps.Catalog.Home).Methods(http.MethodGet)
	api.HandleFunc("/hero", deps.Catalog.Hero).Methods(http.MethodGet)
	api.HandleFunc("/series", deps.Catalog.Series).Methods(http.MethodGet)
	api.HandleFunc("/genres", deps.Catalog.Genres).Methods(http.MethodGet)
	api.HandleFunc("/discover", deps.Catalog.Discover).Methods(http.MethodGet)
	api.HandleFunc("/search", deps.Catalog.Search).Methods(http.MethodGet)
	api.HandleFunc("/details/{mediaType}/{id:[0-9]+}", deps.Catalog.Details).Methods(http.MethodGet)
	api.HandleFunc("/details/tv/{id:[0-9]+}/season/{season:[0-9]+}", deps.Catalog.Season).Methods(http.MethodGet)

	api.HandleFunc("/history", deps.History.List).Methods(http.MethodGet)
	api.HandleFunc("/history", deps.History.Record).Methods(http.MethodPost)
	api.HandleFunc("/history", deps.History.Clear).Methods(http.MethodDelete)

	api.HandleFunc("/watchlist", deps.Watchlist.List).Methods(http.MethodGet)
	api.HandleFunc("/watchlist", deps.Watchlist.Add).Methods(http.MethodPost)
	api.HandleFunc("/watchlist", deps.Watchlist.Clear).Methods(http.MethodDelete)
	api.HandleFunc("/watchlist/{mediaType}/{id:[0-9]+}", deps.Watchlist.Contains).Methods(http.MethodGet)
	api.HandleFunc("/watchlist/{mediaType}/{id:[0-9]+}", deps.Watchlist.Remove).Methods(http.MethodDelete)

	api.HandleFunc("/home/personalized", deps.Personalized.Home).Methods(http.MethodGet)

	api.HandleFunc("/downloads", deps.Downloads.Search).Methods(http.MethodGet)
	api.HandleFunc("/sources", deps.Downloads.Sources).Methods(http.MethodPost)

	api.HandleFunc("/settings/content-filter", deps.Settings.GetContentFilter).Methods(http.MethodGet)
	api.HandleFunc("/settings/content-filter", deps.Settings.SetContentFilter).Methods(http.MethodPut)

	api.HandleFunc("/users", deps.Users.Ensure).Methods(http.MethodPost)
	api.HandleFunc("/users/{uid}", deps.Users.Get).Methods(http.MethodGet)

	r.HandleFunc("/rss.xml", deps.RSS.Serve).Methods(http.MethodGet)

	return r
}

func corsMiddleware(siteURL string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); utils.IsAllowedOrigin(origin, siteURL) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
