package fs

import (
	iofs "io/fs"
	"os"

	"go.trai.ch/stale/internal/core/ports"
)

var _ ports.FileSystem = (*OSFS)(nil)

// OSFS reads file metadata from the host file system.
type OSFS struct{}

// NewOSFS creates a new OSFS.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for path, following symbolic links.
func (OSFS) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}
