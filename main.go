package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"expanded-presets/api"
	"expanded-presets/preset"
)

func main() {
	// Optional .env; real environment variables take precedence.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	vanillaPath := os.Getenv("VANILLA_PRESETS_FILE")
	if vanillaPath == "" {
		vanillaPath = filepath.Join(dataDir, "presets.data")
	}

	store := preset.NewStore(dataDir, vanillaPath, nil)
	store.Load()

	router := api.RegisterRoutes(store)
	srv := &http.Server{Addr: fmt.Sprintf(":%s", port), Handler: router}

	go func() {
		log.Printf("expanded-presets listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}

	// Flush presets once the server has drained.
	if err := store.Save(); err != nil {
		log.Printf("failed to save presets on shutdown: %v", err)
	}
}
