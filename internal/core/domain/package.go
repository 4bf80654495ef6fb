package domain

import (
	"unique"

	"github.com/google/uuid"
)

// CoreCompilerPrefix is the synthetic leading path segment carried by files of the
// core-compiler pseudo-package. Its identifier embeds this segment even though no such
// directory exists below the package's base directory.
const CoreCompilerPrefix = "compiler"

// PackageID identifies one logical unit of loaded code.
// It is immutable and compared by value.
type PackageID struct {
	uuid uuid.UUID
	name unique.Handle[string]
}

// NewPackageID creates a PackageID from an explicit UUID and a display name.
func NewPackageID(id uuid.UUID, name string) PackageID {
	return PackageID{
		uuid: id,
		name: unique.Make(name),
	}
}

// PackageIDFromName derives a stable PackageID for packages that were declared without a UUID.
// The UUID is a SHA-1 namespace UUID of the name, so the same name always yields the same ID.
func PackageIDFromName(name string) PackageID {
	return NewPackageID(uuid.NewSHA1(uuid.NameSpaceURL, []byte("stale:package:"+name)), name)
}

// UUID returns the package UUID.
func (p PackageID) UUID() uuid.UUID {
	return p.uuid
}

// Name returns the package name.
func (p PackageID) Name() string {
	var zero unique.Handle[string]
	if p.name == zero {
		return ""
	}
	return p.name.Value()
}

// IsZero reports whether p is the zero PackageID.
func (p PackageID) IsZero() bool {
	return p == PackageID{}
}

// String returns "name [uuid]", the form used in reports and logs.
func (p PackageID) String() string {
	return p.Name() + " [" + p.uuid.String() + "]"
}

// PackageLocation associates a package with its root directory on disk.
type PackageLocation struct {
	// ID is the owning package.
	ID PackageID

	// BaseDir is the package root. It may be empty for packages without a well-defined root.
	BaseDir string

	// Descriptor is an optional human readable description used for display only.
	Descriptor string

	// Prefix is a synthetic leading path segment that loaders prepend to this package's
	// relative file names. Empty selects CoreCompilerPrefix.
	Prefix string
}

// NewCoreCompilerLocation returns the location of the core-compiler pseudo-package rooted at baseDir.
func NewCoreCompilerLocation(id PackageID, baseDir string) PackageLocation {
	return PackageLocation{
		ID:      id,
		BaseDir: baseDir,
		Prefix:  CoreCompilerPrefix,
	}
}

// DisplayName returns the descriptor if one is set, otherwise the package name.
func (l PackageLocation) DisplayName() string {
	if l.Descriptor != "" {
		return l.Descriptor
	}
	return l.ID.Name()
}
