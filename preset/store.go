package preset

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
)

// File names inside the storage directory. The vanilla source lives at a
// host-provided path and is read-only.
const (
	StorageFileName = "expanded_presets.cfg"
	CatalogFileName = "bakkesplugins_cars.cfg"
)

// Logf is the diagnostic sink the store reports through. Diagnostics are
// plain text lines; no structured errors cross this boundary.
type Logf func(format string, args ...any)

// Store is an ordered collection of presets keyed by unique name.
// Order is insertion order; updates keep their position, so iteration is
// stable across save/load cycles.
//
// The store is single-threaded by design: it is owned and mutated by one
// caller at a time, and callers that share it (such as an HTTP layer) must
// serialize access themselves.
type Store struct {
	storagePath string
	vanillaPath string
	logf        Logf
	presets     []Preset
}

// NewStore creates an empty store persisting to dataDir/StorageFileName and
// importing vanilla records from vanillaPath. A nil logf falls back to
// log.Printf.
func NewStore(dataDir, vanillaPath string, logf Logf) *Store {
	if logf == nil {
		logf = log.Printf
	}
	return &Store{
		storagePath: filepath.Join(dataDir, StorageFileName),
		vanillaPath: vanillaPath,
		logf:        logf,
	}
}

// StorageDir returns the directory holding the storage file. Catalog imports
// look for CatalogFileName here.
func (s *Store) StorageDir() string {
	return filepath.Dir(s.storagePath)
}

// Load replaces the in-memory collection with the contents of the storage
// file. When the file is missing or unreadable it falls back to a vanilla
// import and persists the result immediately. Malformed lines are skipped,
// never fatal.
func (s *Store) Load() {
	s.presets = s.presets[:0]

	f, err := os.Open(s.storagePath)
	if err != nil {
		s.logf("presets: no stored presets found, importing from %s instead", filepath.Base(s.vanillaPath))
		s.ImportVanilla()
		s.Save()
		return
	}
	defer f.Close()

	scanner := lineScanner(f)
	for scanner.Scan() {
		if p, ok := parseStorageLine(scanner.Text()); ok {
			s.Upsert(p)
		}
	}
	if err := scanner.Err(); err != nil {
		s.logf("presets: error reading %s: %v", s.storagePath, err)
	}
}

// Save truncates and rewrites the storage file, one line per record in
// collection order, creating the storage directory if needed. On failure the
// error is logged and returned; in-memory state is untouched, so the caller
// may retry once the underlying condition is fixed.
func (s *Store) Save() error {
	dir := filepath.Dir(s.storagePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		s.logf("presets: failed to create storage directory %s: %v", dir, err)
		return err
	}

	var buf []byte
	for _, p := range s.presets {
		buf = append(buf, formatStorageLine(p)...)
		buf = append(buf, '\n')
	}
	if err := os.WriteFile(s.storagePath, buf, 0644); err != nil {
		s.logf("presets: failed to write storage file %s: %v", s.storagePath, err)
		return err
	}
	return nil
}

// ImportVanilla discards every current record and repopulates the store from
// the vanilla source file. This is a replace, not a merge: custom records not
// present in the source are gone afterwards. Callers that care must Save
// beforehand. A missing source leaves the store empty.
func (s *Store) ImportVanilla() {
	s.presets = s.presets[:0]

	f, err := os.Open(s.vanillaPath)
	if err != nil {
		s.logf("presets: could not find vanilla presets file %s to import presets", s.vanillaPath)
		return
	}
	defer f.Close()

	scanner := lineScanner(f)
	for scanner.Scan() {
		if p, ok := parseVanillaLine(scanner.Text()); ok {
			s.Upsert(p)
		}
	}
	if err := scanner.Err(); err != nil {
		s.logf("presets: error reading %s: %v", s.vanillaPath, err)
	}
	s.logf("presets: imported %d presets from %s", len(s.presets), filepath.Base(s.vanillaPath))
}

// ImportFromFile merges records from a storage-format file at path into the
// store. New names are always added; existing names are replaced only when
// overwrite is set, otherwise the line is skipped. Returns the number of
// records actually added or overwritten; a missing file logs and returns 0.
func (s *Store) ImportFromFile(path string, overwrite bool) int {
	f, err := os.Open(path)
	if err != nil {
		s.logf("presets: import file not found: %s", path)
		return 0
	}
	defer f.Close()

	imported := 0
	scanner := lineScanner(f)
	for scanner.Scan() {
		p, ok := parseStorageLine(scanner.Text())
		if !ok {
			continue
		}
		if s.apply(p, overwrite) {
			imported++
		}
	}
	if err := scanner.Err(); err != nil {
		s.logf("presets: error reading %s: %v", path, err)
	}
	return imported
}

// lineScanner reads records line by line. The default Scanner limit of
// 64 KiB would silently drop everything after a hand-edited line with a very
// long loadout code, so lines up to 1 MiB are allowed.
func lineScanner(f *os.File) *bufio.Scanner {
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}

// apply is the merge policy shared by Upsert and ImportFromFile: a record
// with a new name is appended, one with an existing name replaces it in
// place only when overwrite is set. Reports whether the record was applied.
func (s *Store) apply(p Preset, overwrite bool) bool {
	idx := s.FindIndex(p.Name)
	if idx == len(s.presets) {
		s.presets = append(s.presets, p)
		return true
	}
	if !overwrite {
		return false
	}
	s.presets[idx] = p
	return true
}

// Find returns the first record with the given name, exact case-sensitive
// match.
func (s *Store) Find(name string) (Preset, bool) {
	idx := s.FindIndex(name)
	if idx == len(s.presets) {
		return Preset{}, false
	}
	return s.presets[idx], true
}

// FindIndex returns the position of the first record with the given name, or
// Len() when absent.
func (s *Store) FindIndex(name string) int {
	for i, p := range s.presets {
		if p.Name == name {
			return i
		}
	}
	return len(s.presets)
}

// Upsert replaces the record sharing p's name in place, or appends p when no
// such record exists.
func (s *Store) Upsert(p Preset) {
	s.apply(p, true)
}

// Remove deletes the record with the given name. Removing an absent name is
// a no-op.
func (s *Store) Remove(name string) {
	idx := s.FindIndex(name)
	if idx == len(s.presets) {
		return
	}
	s.presets = append(s.presets[:idx], s.presets[idx+1:]...)
}

// Presets returns a snapshot of the collection in order.
func (s *Store) Presets() []Preset {
	out := make([]Preset, len(s.presets))
	copy(out, s.presets)
	return out
}

// Len returns the number of records, which doubles as the FindIndex sentinel
// for absent names.
func (s *Store) Len() int {
	return len(s.presets)
}
