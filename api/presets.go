package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"expanded-presets/preset"
)

func (h *handler) listPresets(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	presets := h.store.Presets()
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]preset.Preset{"presets": presets})
}

func (h *handler) getPreset(w http.ResponseWriter, r *http.Request) {
	name := presetName(r)

	h.mu.Lock()
	p, ok := h.store.Find(name)
	h.mu.Unlock()

	if !ok {
		http.Error(w, "preset not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (h *handler) putPreset(w http.ResponseWriter, r *http.Request) {
	// Absent customization fields keep their defaults.
	p := preset.Preset{Customization: preset.DefaultCustomization()}
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p.Name = presetName(r)
	if p.Name == "" || p.LoadoutCode == "" {
		http.Error(w, "a preset name and loadout code are required", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.store.Upsert(p)
	if err := h.store.Save(); err != nil {
		http.Error(w, "failed to save presets", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (h *handler) deletePreset(w http.ResponseWriter, r *http.Request) {
	name := presetName(r)

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.store.Find(name); !ok {
		http.Error(w, "preset not found", http.StatusNotFound)
		return
	}
	h.store.Remove(name)
	if err := h.store.Save(); err != nil {
		http.Error(w, "failed to save presets", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) importVanilla(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Destructive: replaces every current record with the vanilla set.
	h.store.ImportVanilla()
	if err := h.store.Save(); err != nil {
		http.Error(w, "failed to save presets", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"imported": h.store.Len()})
}

func (h *handler) importCatalog(w http.ResponseWriter, r *http.Request) {
	overwrite := false
	switch r.URL.Query().Get("overwrite") {
	case "1", "true":
		overwrite = true
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	catalogPath := filepath.Join(h.store.StorageDir(), preset.CatalogFileName)
	imported := h.store.ImportFromFile(catalogPath, overwrite)
	if imported > 0 {
		if err := h.store.Save(); err != nil {
			http.Error(w, "failed to save presets", http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"imported": imported})
}

// presetName extracts the {name} route parameter. Names may contain spaces,
// so the escaped form is decoded before lookup.
func presetName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return name
}
