package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/pageza/pantrychef/backend/config"
	"github.com/pageza/pantrychef/backend/internal/api"
	"github.com/pageza/pantrychef/backend/internal/database"
	"github.com/pageza/pantrychef/backend/internal/metrics"
	"github.com/pageza/pantrychef/backend/internal/provider"
	"github.com/pageza/pantrychef/backend/internal/repository"
	"github.com/pageza/pantrychef/backend/internal/server"
	"github.com/pageza/pantrychef/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Starting in %s mode", config.GetEnvironment())

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, getenv("MIGRATIONS_DIR", "migrations")); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	rdb, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewCollector(reg)

	client := provider.NewClient(
		&http.Client{Timeout: cfg.ProviderTimeout},
		cfg.ProviderBaseURL,
		cfg.ProviderAPIKey,
		recorder,
	)

	srv := server.New(cfg, server.Deps{
		DB:    db,
		Redis: rdb,
		Services: api.Services{
			Auth:   service.NewAuthService(repository.NewUserStore(db), repository.NewSessionStore(rdb), cfg.JWTSecret, cfg.SessionTTL),
			Search: service.NewSearchService(client, cfg.ResultLimit, recorder),
			Saved:  service.NewSavedRecipeService(repository.NewSavedRecipeStore(db), client, recorder),
		},
		Gatherer: reg,
	})

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
