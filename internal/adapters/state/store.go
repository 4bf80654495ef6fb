// Package state persists directory checkpoints, file digests and relocations between runs.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StateStore = (*Store)(nil)

type document struct {
	Checkpoints map[string]domain.Timestamp `json:"checkpoints,omitzero"`
	Digests     map[string]uint64           `json:"digests,omitzero"`
	Relocations map[string]string           `json:"relocations,omitzero"`
}

// Store implements ports.StateStore using a flat JSON file.
// All paths are stored in cleaned form.
type Store struct {
	path string
	mu   sync.RWMutex
	doc  document
}

// NewStore opens the store backed by the file at path. A missing or empty file is an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: filepath.Clean(path),
		doc: document{
			Checkpoints: make(map[string]domain.Timestamp),
			Digests:     make(map[string]uint64),
			Relocations: make(map[string]string),
		},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
	}
	for dir, ts := range doc.Checkpoints {
		s.doc.Checkpoints[filepath.Clean(dir)] = ts
	}
	for path, sum := range doc.Digests {
		s.doc.Digests[filepath.Clean(path)] = sum
	}
	for nominal, actual := range doc.Relocations {
		s.doc.Relocations[filepath.Clean(nominal)] = filepath.Clean(actual)
	}

	return nil
}

// save writes the document to disk. Callers hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Lookup returns the recorded alternate location of nominal.
func (s *Store) Lookup(nominal string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	actual, ok := s.doc.Relocations[filepath.Clean(nominal)]
	return actual, ok
}

// Checkpoints returns a copy of the stored directory checkpoints.
func (s *Store) Checkpoints() map[string]domain.Timestamp {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.doc.Checkpoints)
}

// Digests returns a copy of the stored file digests.
func (s *Store) Digests() map[string]uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.doc.Digests)
}

// Save replaces the stored checkpoints and digests and persists the store.
func (s *Store) Save(checkpoints map[string]domain.Timestamp, digests map[string]uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Checkpoints = make(map[string]domain.Timestamp, len(checkpoints))
	for dir, ts := range checkpoints {
		s.doc.Checkpoints[filepath.Clean(dir)] = ts
	}
	s.doc.Digests = make(map[string]uint64, len(digests))
	for path, sum := range digests {
		s.doc.Digests[filepath.Clean(path)] = sum
	}
	return s.save()
}

// Relocate records that the file tracked at nominal now lives at actual and persists the store.
// Earlier relocations pointing at nominal are moved to actual so that every lookup stays one hop.
// Relocating a file back to its nominal path forgets the relocation.
func (s *Store) Relocate(nominal, actual string) error {
	nominal = filepath.Clean(nominal)
	actual = filepath.Clean(actual)

	s.mu.Lock()
	defer s.mu.Unlock()

	for from, to := range s.doc.Relocations {
		if to == nominal {
			s.doc.Relocations[from] = actual
		}
	}
	s.doc.Relocations[nominal] = actual

	maps.DeleteFunc(s.doc.Relocations, func(from, to string) bool {
		return from == to
	})

	return s.save()
}

var _ ports.StateOpener = (*Opener)(nil)

// Opener opens file-backed stores.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the store at path.
func (Opener) Open(path string) (ports.StateStore, error) {
	return NewStore(path)
}
