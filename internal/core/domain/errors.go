package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidPolicy is returned when a staleness policy name is not recognized.
	ErrInvalidPolicy = zerr.New("invalid staleness policy, expected 'auto', 'default' or 'coarse'")

	// ErrInvalidInterval is returned when the polling interval is not a positive duration.
	ErrInvalidInterval = zerr.New("polling interval must be a positive duration")

	// ErrInvalidParallelism is returned when the configured parallelism is negative.
	ErrInvalidParallelism = zerr.New("parallelism must not be negative")

	// ErrMissingPackageName is returned when a package entry has no name.
	ErrMissingPackageName = zerr.New("missing package name")

	// ErrInvalidPackageUUID is returned when a package entry carries a malformed UUID.
	ErrInvalidPackageUUID = zerr.New("invalid package uuid")

	// ErrDuplicatePackage is returned when two package entries resolve to the same identifier.
	ErrDuplicatePackage = zerr.New("duplicate package")

	// ErrPackageNotFound is returned when a package name does not match any registered package.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrDirectoryNotWatched is returned when a check is requested for a directory without a watch list.
	ErrDirectoryNotWatched = zerr.New("directory is not watched")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreReadFailed is returned when the state file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read state file")

	// ErrStoreUnmarshalFailed is returned when the state file cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal state file")

	// ErrStoreMarshalFailed is returned when the state cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal state")

	// ErrStoreWriteFailed is returned when the state file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write state file")

	// ErrStoreCreateFailed is returned when the state directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create state directory")

	// ErrPathStatFailed is returned when stating a tracked file fails for a reason other than absence.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFileOpenFailed is returned when a file cannot be opened for hashing.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrWalkFailed is returned when walking a package root fails.
	ErrWalkFailed = zerr.New("failed to walk package root")

	// ErrInvalidPattern is returned when an include or ignore pattern is malformed.
	ErrInvalidPattern = zerr.New("invalid file pattern")

	// ErrFileNotTracked is returned when a path does not belong to any registered package.
	ErrFileNotTracked = zerr.New("file is not tracked")

	// ErrRelocationTargetMissing is returned when a relocation points at a path that is not a regular file.
	ErrRelocationTargetMissing = zerr.New("relocation target is not a regular file")

	// ErrStaleFilesFound is returned by check --exit-code when at least one file changed.
	ErrStaleFilesFound = zerr.New("stale files found")

	// ErrCheckFailed is returned when a directory check fails.
	ErrCheckFailed = zerr.New("staleness check failed")
)
