package domain

import "time"

const (
	// ConfigFileName is the default name of the configuration file.
	ConfigFileName = "stale.yaml"

	// DefaultStatePath is where checkpoints and relocations are persisted, relative to the config file.
	DefaultStatePath = ".stale/state.json"

	// DefaultInterval is the default polling interval of the watch loop.
	DefaultInterval = time.Second
)

// Config is the validated configuration of a staleness tracking session.
type Config struct {
	// Root is the directory containing the configuration file.
	Root string
	// Policy is the mtime comparison policy for the host file system.
	Policy Policy
	// Interval is the polling interval used by the watch loop.
	Interval time.Duration
	// Parallelism bounds how many directories are checked concurrently. Zero means one per CPU.
	Parallelism int
	// StatePath is the absolute path of the state file.
	StatePath string
	// Confirm enables content digest confirmation of mtime changes.
	Confirm bool
	// Packages lists the packages whose files are tracked.
	Packages []PackageSpec
}

// PackageSpec describes one package and how to find the files loaded from it.
type PackageSpec struct {
	Location PackageLocation
	// Include lists doublestar patterns, relative to the package root, of files to track.
	Include []string
	// Ignore lists file or directory names skipped while walking the root.
	Ignore []string
	// Files lists file names exactly as the loading process recorded them.
	Files []string
}

// Package returns the spec whose package name is name.
func (c *Config) Package(name string) (PackageSpec, bool) {
	for _, spec := range c.Packages {
		if spec.Location.ID.Name() == name {
			return spec, true
		}
	}
	return PackageSpec{}, false
}
