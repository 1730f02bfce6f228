package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"searchindex/internal/config"
	"searchindex/internal/dialect"
	"searchindex/internal/http"
	"searchindex/internal/indexer"
	"searchindex/internal/lock"
	"searchindex/internal/metrics"
	"searchindex/internal/query"
	"searchindex/internal/search"
	"searchindex/internal/service"
	"searchindex/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	d, err := dialect.New(cfg.DBDriver, dialect.Options{
		MinWordLength: cfg.MinWordLength,
		StopWords:     cfg.StopWords,
	})
	if err != nil {
		log.Fatalf("Failed to select dialect: %v", err)
	}

	// Initialize database
	db, err := storage.New(d, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db, d); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "dialect", d.Name(), "full_text", cfg.FullText && d.FullText() != nil)

	indexRepo := storage.NewIndexRepo(db, d)

	var locker lock.Locker = lock.NewMemoryLocker()
	if cfg.LockDir != "" {
		fileLocker, err := lock.NewFileLocker(cfg.LockDir)
		if err != nil {
			log.Fatalf("Failed to create lock directory: %v", err)
		}
		locker = fileLocker
	}

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	if len(cfg.Fields) > 0 {
		slog.Info("Field handles loaded", "file", cfg.FieldsFile, "handles", len(cfg.Fields))
	}

	defaults := query.Options{SubLeft: cfg.SubLeft, SubRight: cfg.SubRight}
	idx := indexer.NewIndexer(indexRepo, locker, d)
	searcher := search.NewService(indexRepo, d, cfg.Fields, cfg.FullText,
		search.WithDefaultOptions(defaults))
	indexService := service.NewIndexService(idx, searcher, defaults)

	// Create router with dependencies
	deps := &http.Deps{
		IndexService: indexService,
		Database:     indexRepo,
		Dialect:      d.Name(),
		Gatherer:     prometheus.DefaultGatherer,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
