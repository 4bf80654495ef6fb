package ports

// Hasher defines the interface for computing file content digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash returns a digest of the file content at path.
	ComputeFileHash(path string) (uint64, error)
}
