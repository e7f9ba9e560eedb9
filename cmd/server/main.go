package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"cineflix/config"
	"cineflix/handlers"
	"cineflix/internal/storage"
	"cineflix/services/catalog"
	"cineflix/services/history"
	"cineflix/services/rss"
	"cineflix/services/settings"
	"cineflix/services/torrents"
	"cineflix/services/users"
	"cineflix/services/watchlist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[server] config: %v", err)
	}

	if cfg.LogFile != "" {
		log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    20, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}))
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("[server] storage: %v", err)
	}
	defer closeStore()

	settingsSvc, err := settings.NewService(store)
	if err != nil {
		log.Fatalf("[server] settings: %v", err)
	}
	historySvc, err := history.NewService(store)
	if err != nil {
		log.Fatalf("[server] history: %v", err)
	}
	watchlistSvc, err := watchlist.NewService(store)
	if err != nil {
		log.Fatalf("[server] watchlist: %v", err)
	}
	usersSvc, err := users.NewService(store)
	if err != nil {
		log.Fatalf("[server] users: %v", err)
	}

	// The request cache is constructed here, not inside the catalog
	// service, so its lifetime and scope are explicit.
	cache := catalog.NewCache(cfg.CacheTTL)
	catalogSvc := catalog.NewService(cfg.TMDBAPIKey, cfg.Language, nil, cache, settingsSvc.IncludeRestricted)

	router := handlers.NewRouter(handlers.Deps{
		SiteURL:      cfg.SiteURL,
		Catalog:      handlers.NewCatalogHandler(catalogSvc),
		History:      handlers.NewHistoryHandler(historySvc),
		Watchlist:    handlers.NewWatchlistHandler(watchlistSvc),
		Personalized: handlers.NewPersonalizedHandler(historySvc, catalogSvc),
		Downloads:    handlers.NewDownloadsHandler(torrents.NewClient(nil)),
		Settings:     handlers.NewSettingsHandler(settingsSvc),
		Users:        handlers.NewUsersHandler(usersSvc),
		RSS:          handlers.NewRSSHandler(rss.NewFeed(catalogSvc, cfg.SiteURL)),
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("[server] listening on %s (storage=%s)", cfg.ListenAddr, cfg.StorageBackend)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("[server] %v", err)
	}
}

func openStore(cfg *config.Config) (storage.Store, func(), error) {
	if cfg.StorageBackend == config.BackendSQLite {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, nil, err
		}
		store, err := storage.NewSQLiteStore(filepath.Join(cfg.DataDir, "cineflix.db"))
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	}
	store, err := storage.NewFileStore(nil, cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}
