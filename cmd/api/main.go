package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chat-nosql/internal/config"
	"github.com/go-chat-nosql/internal/infrastructure/dynamo"
	jwtinfra "github.com/go-chat-nosql/internal/infrastructure/jwt"
	"github.com/go-chat-nosql/internal/store"
	transporthttp "github.com/go-chat-nosql/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatalf("JWT provider: %v", err)
	}

	st := newStore(cfg)

	seed := make([]store.SeedChannel, len(cfg.DefaultChannels))
	for i, ch := range cfg.DefaultChannels {
		seed[i] = store.SeedChannel{Name: ch.Name, IsLocked: ch.IsLocked}
	}
	if err := store.EnsureChannels(context.Background(), st, seed); err != nil {
		log.Fatalf("seed channels: %v", err)
	}

	router := transporthttp.NewRouter(cfg, &transporthttp.Deps{
		Store:       st,
		JWTProvider: jwtProvider,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, storage=%s)", cfg.AppPort, cfg.AppEnv, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}

// newStore selects the Store backend. DynamoDB is the default; the in-memory
// store keeps everything in-process for local development.
func newStore(cfg *config.Config) store.Store {
	if cfg.StorageDriver == "memory" {
		return store.NewMemory()
	}
	client := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), client, cfg.DynamoTable)
	return dynamo.NewTable(client, cfg.DynamoTable)
}
