package domain

import "path/filepath"

// ChangedFile describes a tracked file judged stale by a check.
type ChangedFile struct {
	// Dir is the watched directory the file was tracked under.
	Dir string
	// Name is the tracked key inside Dir.
	Name string
	// Path is where the file was actually found. It differs from Dir/Name when the file
	// was relocated and resolved through the alternate file cache.
	Path string
	// Package is the owner recorded in the watch list.
	Package PackageID
	// ModTime is the modification time that made the file stale.
	ModTime Timestamp
	// Checkpoint is the watch list checkpoint the file was compared against.
	Checkpoint Timestamp
}

// Nominal returns the path the file was tracked under.
func (c ChangedFile) Nominal() string {
	return filepath.Join(c.Dir, c.Name)
}

// Relocated reports whether the file was found at an alternate location.
func (c ChangedFile) Relocated() bool {
	return c.Path != c.Nominal()
}
