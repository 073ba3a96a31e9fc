package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"filmoteka/database"
	"filmoteka/internal/config"
	"filmoteka/internal/http-api/handler"
	"filmoteka/internal/http-api/middleware"
	"filmoteka/internal/http-api/repository"
	"filmoteka/internal/http-api/service"
	"filmoteka/internal/omdb"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Redis is optional: without it the proxy simply skips caching.
	var cache *omdb.Cache
	if cfg.RedisURL != "" {
		cache, err = omdb.NewCache(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
		if err != nil {
			logger.Warn("redis unavailable, proxy caching disabled", "error", err)
		} else {
			defer cache.Close()
		}
	}

	omdbClient := omdb.NewClient(cfg.OMDBAPIURL, cfg.OMDBAPIKey, cfg.OMDBRequestsPerSec, cache)
	recommender := omdb.NewRecommender(omdbClient, cfg.RecommendWorkers, logger)

	movieHandler := handler.NewMovieHandler(service.NewMovieService(repository.NewMovieRepo(db)))
	listHandler := handler.NewListHandler(service.NewListService(repository.NewListRepo(db)))
	omdbHandler := handler.NewOMDBHandler(omdbClient, recommender)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Filmoteka API is running"})
	})

	api := r.Group("/api")
	movieHandler.RegisterRoutes(api.Group("/movies"))
	listHandler.RegisterRoutes(api.Group("/lists"))
	omdbHandler.RegisterRoutes(api.Group("/omdb"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting server", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
