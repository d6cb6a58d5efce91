package api

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"expanded-presets/preset"
)

// RegisterRoutes wires the preset store's operations onto a chi router.
func RegisterRoutes(store *preset.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handler{store: store}

	// Presets API
	r.Get("/api/presets", h.listPresets)
	r.Get("/api/presets/{name}", h.getPreset)
	r.Put("/api/presets/{name}", h.putPreset)
	r.Delete("/api/presets/{name}", h.deletePreset)

	// Imports
	r.Post("/api/import/vanilla", h.importVanilla)
	r.Post("/api/import/catalog", h.importCatalog)

	return r
}

// handler serializes access to the store: the store itself is
// single-threaded while the HTTP server is not.
type handler struct {
	mu    sync.Mutex
	store *preset.Store
}
