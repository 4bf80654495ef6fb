package config

// Stalefile represents the structure of the stale.yaml configuration file.
type Stalefile struct {
	Version     string       `yaml:"version"`
	Policy      string       `yaml:"policy"`
	Interval    string       `yaml:"interval"`
	Parallelism int          `yaml:"parallelism"`
	State       string       `yaml:"state"`
	Confirm     bool         `yaml:"confirm"`
	Packages    []PackageDTO `yaml:"packages"`
}

// PackageDTO represents a package entry in the configuration.
type PackageDTO struct {
	Name       string   `yaml:"name"`
	UUID       string   `yaml:"uuid"`
	Root       string   `yaml:"root"`
	Descriptor string   `yaml:"descriptor"`
	Prefix     string   `yaml:"prefix"`
	Include    []string `yaml:"include"`
	Ignore     []string `yaml:"ignore"`
	Files      []string `yaml:"files"`
}
