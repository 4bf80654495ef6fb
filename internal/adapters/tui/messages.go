package tui

import (
	"time"

	"go.trai.ch/stale/internal/core/domain"
)

// MsgWatchStart is sent once when the watch loop begins.
type MsgWatchStart struct {
	Dirs     []string
	Interval time.Duration
}

// MsgChanges carries one batch of changed files.
type MsgChanges struct {
	Changes []domain.ChangedFile
}
