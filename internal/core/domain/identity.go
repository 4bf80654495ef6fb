package domain

import (
	"path/filepath"
	"strings"
)

// Normalize returns the canonical form of filename for the package at loc, a stable
// key that does not depend on how the absolute prefix was spelled when the file was loaded.
//
// When loc.BaseDir is empty every name is returned unchanged.
//
// Absolute names are cut at the first occurrence of loc.BaseDir and made relative to it.
// This recovers from loaders that prepend a mount point or sandbox directory. The match is
// a plain substring search, so a base directory name that also appears earlier in the path
// cuts at the wrong place; callers must not rely on more than first-match semantics.
// Absolute names that do not contain loc.BaseDir are returned unchanged.
//
// Relative names, including those produced above, that start with the core-compiler
// segment have that segment removed. A location may override the segment with its Prefix.
func Normalize(filename string, loc PackageLocation) string {
	if loc.BaseDir == "" {
		return filename
	}

	if filepath.IsAbs(filename) {
		var ok bool
		if filename, ok = normalizeAbs(filename, loc.BaseDir); !ok {
			return filename
		}
	}

	prefix := loc.Prefix
	if prefix == "" {
		prefix = CoreCompilerPrefix
	}
	return stripPrefix(filename, prefix)
}

func normalizeAbs(filename, baseDir string) (string, bool) {
	i := strings.Index(filename, baseDir)
	if i < 0 {
		return filename, false
	}

	rel, err := filepath.Rel(baseDir, filename[i:])
	if err != nil {
		return filename, false
	}
	return rel, true
}

func stripPrefix(filename, prefix string) string {
	sep := string(filepath.Separator)
	prefix = strings.TrimSuffix(prefix, sep)

	rest, ok := strings.CutPrefix(filename, prefix)
	if !ok {
		return filename
	}
	if rest == "" {
		return "."
	}
	if !strings.HasPrefix(rest, sep) && !strings.HasPrefix(rest, "/") {
		// "compilerx/foo" does not start with the "compiler" segment.
		return filename
	}
	return strings.TrimLeft(rest, sep+"/")
}
