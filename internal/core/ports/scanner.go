package ports

import "go.trai.ch/stale/internal/core/domain"

// PackageScanner expands a package spec into the file names to track.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type PackageScanner interface {
	// ListFiles returns the explicit files of spec plus every file under its root
	// matching an include pattern.
	ListFiles(spec domain.PackageSpec) ([]string, error)
}
