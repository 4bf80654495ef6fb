package fs

import "io/fs"

// NewWalkerWithWalkDir creates a Walker that traverses directories with walk.
func NewWalkerWithWalkDir(walk func(root string, fn fs.WalkDirFunc) error) *Walker {
	return &Walker{walkDir: walk}
}
