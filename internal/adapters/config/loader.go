// Package config loads the stale.yaml configuration file.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration format version this loader understands.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
	goos   string
}

// NewLoader creates a new Loader that detects the staleness policy for the host platform.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger, goos: runtime.GOOS}
}

// Load reads and validates the configuration file at path.
// Relative package roots and the state path are resolved against the file's directory.
func (l *Loader) Load(path string) (*domain.Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	data, err := os.ReadFile(absPath) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", absPath)
	}

	var file Stalefile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", absPath)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.logger.Warn("unsupported config version " + file.Version + ", reading it as version " + SupportedVersion)
	}

	return l.build(filepath.Dir(absPath), &file)
}

func (l *Loader) build(root string, file *Stalefile) (*domain.Config, error) {
	policy, err := domain.ParsePolicy(file.Policy, l.goos)
	if err != nil {
		return nil, err
	}

	interval := domain.DefaultInterval
	if file.Interval != "" {
		interval, err = time.ParseDuration(file.Interval)
		if err != nil || interval <= 0 {
			return nil, zerr.With(domain.ErrInvalidInterval, "interval", file.Interval)
		}
	}

	if file.Parallelism < 0 {
		return nil, zerr.With(domain.ErrInvalidParallelism, "parallelism", file.Parallelism)
	}

	statePath := file.State
	if statePath == "" {
		statePath = domain.DefaultStatePath
	}

	cfg := &domain.Config{
		Root:        root,
		Policy:      policy,
		Interval:    interval,
		Parallelism: file.Parallelism,
		StatePath:   resolve(root, statePath),
		Confirm:     file.Confirm,
		Packages:    make([]domain.PackageSpec, 0, len(file.Packages)),
	}

	seen := make(map[string]bool, len(file.Packages))
	for i := range file.Packages {
		spec, err := buildPackage(root, &file.Packages[i])
		if err != nil {
			return nil, err
		}

		id := spec.Location.ID
		if seen[id.Name()] || seen[id.UUID().String()] {
			return nil, zerr.With(domain.ErrDuplicatePackage, "package", id.String())
		}
		seen[id.Name()] = true
		seen[id.UUID().String()] = true

		cfg.Packages = append(cfg.Packages, spec)
	}

	return cfg, nil
}

func buildPackage(root string, dto *PackageDTO) (domain.PackageSpec, error) {
	if dto.Name == "" {
		return domain.PackageSpec{}, domain.ErrMissingPackageName
	}

	id := domain.PackageIDFromName(dto.Name)
	if dto.UUID != "" {
		parsed, err := uuid.Parse(dto.UUID)
		if err != nil {
			return domain.PackageSpec{}, zerr.With(zerr.With(domain.ErrInvalidPackageUUID, "package", dto.Name), "uuid", dto.UUID)
		}
		id = domain.NewPackageID(parsed, dto.Name)
	}

	baseDir := ""
	if dto.Root != "" {
		baseDir = resolve(root, dto.Root)
	}

	return domain.PackageSpec{
		Location: domain.PackageLocation{
			ID:         id,
			BaseDir:    baseDir,
			Descriptor: dto.Descriptor,
			Prefix:     dto.Prefix,
		},
		Include: dto.Include,
		Ignore:  dto.Ignore,
		Files:   dto.Files,
	}, nil
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
