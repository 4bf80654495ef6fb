package fs

import (
	"errors"
	iofs "io/fs"
	"path/filepath"
	"syscall"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ExistenceResolver = (*Resolver)(nil)

// Resolver locates tracked files on disk. When the nominal path is not a regular file it
// consults the alternate file cache once; alternates are never chained.
type Resolver struct {
	fsys  ports.FileSystem
	cache ports.AlternateFileCache
}

// NewResolver creates a new Resolver. A nil cache disables relocation lookups.
func NewResolver(fsys ports.FileSystem, cache ports.AlternateFileCache) *Resolver {
	return &Resolver{fsys: fsys, cache: cache}
}

// Exists reports whether filename, or its alternate location, is a regular file.
func (r *Resolver) Exists(filename string) (bool, error) {
	_, ok, err := r.Resolve(filename)
	return ok, err
}

// Resolve returns the path filename currently lives at.
// Missing files are reported as false with a nil error; any other stat failure is returned.
func (r *Resolver) Resolve(filename string) (string, bool, error) {
	nominal := filepath.Clean(filename)

	ok, err := r.isRegular(nominal)
	if err != nil || ok {
		return nominal, ok, err
	}

	if r.cache == nil {
		return nominal, false, nil
	}
	alt, found := r.cache.Lookup(nominal)
	if !found {
		return nominal, false, nil
	}

	alt = filepath.Clean(alt)
	ok, err = r.isRegular(alt)
	if err != nil {
		return nominal, false, err
	}
	if !ok {
		return nominal, false, nil
	}
	return alt, true, nil
}

func (r *Resolver) isRegular(path string) (bool, error) {
	info, err := r.fsys.Stat(path)
	if err == nil {
		return info.Mode().IsRegular(), nil
	}
	// ENOTDIR: a parent component is a regular file, so the path cannot exist.
	if errors.Is(err, iofs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
}

var _ ports.ResolverFactory = (*ResolverFactory)(nil)

// ResolverFactory creates resolvers that share one file system.
type ResolverFactory struct {
	fsys ports.FileSystem
}

// NewResolverFactory creates a new ResolverFactory.
func NewResolverFactory(fsys ports.FileSystem) *ResolverFactory {
	return &ResolverFactory{fsys: fsys}
}

// NewResolver returns a Resolver backed by cache.
func (f *ResolverFactory) NewResolver(cache ports.AlternateFileCache) ports.ExistenceResolver {
	return NewResolver(f.fsys, cache)
}
