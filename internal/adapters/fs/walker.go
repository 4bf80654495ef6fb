// Package fs provides file system adapters for locating, walking and hashing tracked files.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageScanner = (*Walker)(nil)

// Walker provides file walking functionality.
type Walker struct {
	walkDir func(root string, fn fs.WalkDirFunc) error
}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{walkDir: filepath.WalkDir}
}

// ListFiles returns the explicit files of spec followed by every file under the package
// root whose slash-separated relative path matches one of spec.Include.
// Explicit files are returned exactly as declared so that they can be normalized later.
func (w *Walker) ListFiles(spec domain.PackageSpec) ([]string, error) {
	for _, pattern := range slices.Concat(spec.Include, spec.Ignore) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, zerr.With(domain.ErrInvalidPattern, "pattern", pattern)
		}
	}

	files := slices.Clone(spec.Files)

	root := spec.Location.BaseDir
	if root == "" || len(spec.Include) == 0 {
		return files, nil
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "root", root)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrWalkFailed, "root", root)
	}

	for path, err := range w.WalkFiles(root, spec.Ignore) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "root", root)
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			continue
		}
		if matchAny(spec.Include, filepath.ToSlash(rel)) {
			files = append(files, path)
		}
	}
	return files, nil
}

// WalkFiles yields all files in the root directory, skipping .git, .jj and ignored entries.
// Yielded paths start with root. A failure to read part of the tree ends the walk with a
// final pair carrying the error.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := w.walkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if path != root {
				if skip, action := w.shouldSkip(d, ignores); skip {
					return action
				}
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// shouldSkip reports whether d is excluded from the walk. For directories the returned
// action prunes the whole subtree.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return true, filepath.SkipDir
	}

	if !matchAny(ignores, name) {
		return false, nil
	}
	if d.IsDir() {
		return true, filepath.SkipDir
	}
	return true, nil
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
