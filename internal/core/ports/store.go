package ports

import "go.trai.ch/stale/internal/core/domain"

// AlternateFileCache maps a nominal file path to the path the file was moved to.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type AlternateFileCache interface {
	// Lookup returns the alternate path recorded for nominal.
	Lookup(nominal string) (string, bool)
}

// StateStore persists directory checkpoints, file digests and relocations between runs.
type StateStore interface {
	AlternateFileCache

	// Checkpoints returns the last recorded checkpoint per watched directory.
	Checkpoints() map[string]domain.Timestamp
	// Digests returns the last recorded content digest per tracked file.
	Digests() map[string]uint64
	// Save replaces the stored checkpoints and digests and writes them to disk.
	Save(checkpoints map[string]domain.Timestamp, digests map[string]uint64) error
	// Relocate records that the file at nominal now lives at actual.
	Relocate(nominal, actual string) error
}

// StateOpener opens the state store at a given path.
type StateOpener interface {
	Open(path string) (StateStore, error)
}
