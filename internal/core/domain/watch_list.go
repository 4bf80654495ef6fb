package domain

import (
	"iter"
	"maps"
	"slices"
)

// WatchList records the files tracked in one directory and the checkpoint their
// staleness is judged against.
//
// A WatchList is not safe for concurrent use; its owner serializes access.
type WatchList struct {
	timestamp Timestamp
	files     map[string]PackageID
}

// NewWatchList creates an empty WatchList whose checkpoint is now.
func NewWatchList(now Timestamp) *WatchList {
	return &WatchList{
		timestamp: now,
		files:     make(map[string]PackageID),
	}
}

// Timestamp returns the checkpoint of the last completed scan.
func (wl *WatchList) Timestamp() Timestamp {
	return wl.timestamp
}

// RecordTimestamp moves the checkpoint to now. The checkpoint never moves backwards,
// so a now earlier than the current checkpoint is ignored.
func (wl *WatchList) RecordTimestamp(now Timestamp) {
	if now > wl.timestamp {
		wl.timestamp = now
	}
}

// Track records that path is owned by owner. Tracking an already tracked path
// reassigns it; the last owner wins.
func (wl *WatchList) Track(path string, owner PackageID) {
	wl.files[path] = owner
}

// Untrack stops tracking path.
func (wl *WatchList) Untrack(path string) {
	delete(wl.files, path)
}

// Contains reports whether path is tracked.
func (wl *WatchList) Contains(path string) bool {
	_, ok := wl.files[path]
	return ok
}

// Owner returns the package that owns path.
func (wl *WatchList) Owner(path string) (PackageID, bool) {
	owner, ok := wl.files[path]
	return owner, ok
}

// Len returns the number of tracked files.
func (wl *WatchList) Len() int {
	return len(wl.files)
}

// Files yields tracked paths and their owners in lexical path order.
func (wl *WatchList) Files() iter.Seq2[string, PackageID] {
	return func(yield func(string, PackageID) bool) {
		for _, path := range slices.Sorted(maps.Keys(wl.files)) {
			if !yield(path, wl.files[path]) {
				return
			}
		}
	}
}
