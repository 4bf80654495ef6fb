package ports

// ExistenceResolver answers whether a tracked file is still on disk, following a
// relocation recorded in the alternate file cache when the nominal path is gone.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ExistenceResolver interface {
	// Exists reports whether filename, or its alternate location, is a regular file.
	// A missing file is not an error.
	Exists(filename string) (bool, error)
	// Resolve returns the path the file currently lives at and whether it exists.
	Resolve(filename string) (string, bool, error)
}

// ResolverFactory builds resolvers bound to an alternate file cache.
type ResolverFactory interface {
	// NewResolver returns a resolver that falls back to cache. A nil cache disables the fallback.
	NewResolver(cache AlternateFileCache) ExistenceResolver
}
