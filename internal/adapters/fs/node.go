package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/core/ports"
)

const (
	// FileSystemNodeID is the graft node ID for the host file system.
	FileSystemNodeID graft.ID = "adapter.fs.filesystem"
	// ScannerNodeID is the graft node ID for the package scanner.
	ScannerNodeID graft.ID = "adapter.fs.scanner"
	// HasherNodeID is the graft node ID for the content hasher.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// ResolverFactoryNodeID is the graft node ID for the existence resolver factory.
	ResolverFactoryNodeID graft.ID = "adapter.fs.resolver_factory"
)

func init() {
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSystem, error) {
			return NewOSFS(), nil
		},
	})

	graft.Register(graft.Node[ports.PackageScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageScanner, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.ResolverFactory]{
		ID:        ResolverFactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FileSystemNodeID},
		Run: func(ctx context.Context) (ports.ResolverFactory, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolverFactory(fsys), nil
		},
	})
}
