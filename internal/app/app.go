// Package app implements the application layer for stale.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/stale/internal/engine/poller"
	"go.trai.ch/stale/internal/engine/tracker"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	opener       ports.StateOpener
	resolvers    ports.ResolverFactory
	scanner      ports.PackageScanner
	fsys         ports.FileSystem
	hasher       ports.Hasher
	clock        ports.Clock
	telemetry    ports.Telemetry
	logger       ports.Logger
	ticker       clockwork.Clock
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	opener ports.StateOpener,
	resolvers ports.ResolverFactory,
	scanner ports.PackageScanner,
	fsys ports.FileSystem,
	hasher ports.Hasher,
	clock ports.Clock,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		opener:       opener,
		resolvers:    resolvers,
		scanner:      scanner,
		fsys:         fsys,
		hasher:       hasher,
		clock:        clock,
		telemetry:    telemetry,
		logger:       log,
		ticker:       clockwork.NewRealClock(),
	}
}

// WithTicker sets the clock that drives the watch loop.
// Tests use it to step the loop with a fake clock.
func (a *App) WithTicker(c clockwork.Clock) *App {
	a.ticker = c
	return a
}

// Session is a loaded configuration together with its state store and a tracker
// holding every registered package file.
type Session struct {
	Config  *domain.Config
	Store   ports.StateStore
	Tracker *tracker.Tracker
}

// Save persists the tracker's directory checkpoints and file digests.
func (s *Session) Save() error {
	if err := s.Store.Save(s.Tracker.Checkpoints(), s.Tracker.Digests()); err != nil {
		return zerr.Wrap(err, "failed to save checkpoints")
	}
	return nil
}

// Open loads the configuration at configPath, opens its state store and registers the
// files of every configured package.
func (a *App) Open(configPath string) (*Session, error) {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	store, err := a.opener.Open(cfg.StatePath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open state")
	}

	tr := tracker.New(
		a.clock,
		a.fsys,
		a.resolvers.NewResolver(store),
		a.hasher,
		a.telemetry,
		tracker.Options{
			Policy:      cfg.Policy,
			Parallelism: cfg.Parallelism,
			Confirm:     cfg.Confirm,
			Checkpoints: store.Checkpoints(),
			Digests:     store.Digests(),
		},
	)

	for _, spec := range cfg.Packages {
		files, err := a.scanner.ListFiles(spec)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to list package files"), "package", spec.Location.ID.Name())
		}
		if err := tr.Register(spec.Location, files); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to register package files"), "package", spec.Location.ID.Name())
		}
	}

	a.logger.Info(fmt.Sprintf("tracking %d files in %d directories", tr.Len(), len(tr.Dirs())))

	return &Session{
		Config:  cfg,
		Store:   store,
		Tracker: tr,
	}, nil
}

// Check reports the files changed since the previous run and persists the new checkpoints.
// The first run for a directory only establishes its checkpoint.
// Nothing is persisted when a check fails, so the next run reports the same changes.
func (a *App) Check(ctx context.Context, configPath string) ([]domain.ChangedFile, error) {
	session, err := a.Open(configPath)
	if err != nil {
		return nil, err
	}

	changes, err := session.Tracker.CheckAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := session.Save(); err != nil {
		return nil, err
	}
	return changes, nil
}

// Watch polls every watched directory at the configured interval until ctx is done or the
// renderer terminates, passing each batch of changes to r. Checkpoints are persisted after
// every batch and when the loop ends.
func (a *App) Watch(ctx context.Context, configPath string, r ports.Renderer) error {
	session, err := a.Open(configPath)
	if err != nil {
		return err
	}

	p := poller.New(a.ticker, session.Tracker, session.Config.Interval)
	dirs := session.Tracker.Dirs()
	a.logger.Info(fmt.Sprintf("watching %d directories every %s", len(dirs), p.Interval()))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// The watch ends when the renderer does.
		defer cancel()
		if err := r.Start(ctx); err != nil {
			return zerr.Wrap(err, "failed to start renderer")
		}
		return r.Wait()
	})

	g.Go(func() error {
		defer func() {
			_ = r.Stop()
		}()

		r.OnWatchStart(dirs, p.Interval())
		return p.Run(ctx, func(changes []domain.ChangedFile) {
			r.OnChanges(changes)
			if err := session.Save(); err != nil {
				a.logger.Error(err)
			}
		})
	})

	return errors.Join(g.Wait(), session.Save())
}

// Relocate records that the file tracked at nominal now lives at actual.
func (a *App) Relocate(configPath, nominal, actual string) error {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	store, err := a.opener.Open(cfg.StatePath)
	if err != nil {
		return zerr.Wrap(err, "failed to open state")
	}

	nominal, err = filepath.Abs(nominal)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve nominal path")
	}
	actual, err = filepath.Abs(actual)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve actual path")
	}

	ok, err := a.resolvers.NewResolver(nil).Exists(actual)
	if err != nil {
		return err
	}
	if !ok {
		return zerr.With(domain.ErrRelocationTargetMissing, "path", actual)
	}

	if err := store.Relocate(nominal, actual); err != nil {
		return zerr.Wrap(err, "failed to record relocation")
	}

	a.logger.Info(fmt.Sprintf("relocated %s to %s", nominal, actual))
	return nil
}

// Normalize returns the canonical name of filename within the package called name.
func (a *App) Normalize(configPath, name, filename string) (string, error) {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return "", zerr.Wrap(err, "failed to load configuration")
	}

	spec, ok := cfg.Package(name)
	if !ok {
		return "", zerr.With(domain.ErrPackageNotFound, "package", name)
	}
	return domain.Normalize(filename, spec.Location), nil
}

// Owner returns the location of the package that owns the file at path.
func (a *App) Owner(configPath, path string) (domain.PackageLocation, error) {
	session, err := a.Open(configPath)
	if err != nil {
		return domain.PackageLocation{}, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.PackageLocation{}, zerr.Wrap(err, "failed to resolve path")
	}

	id, ok := session.Tracker.Owner(abs)
	if !ok {
		return domain.PackageLocation{}, zerr.With(domain.ErrFileNotTracked, "path", abs)
	}
	loc, _ := session.Tracker.Location(id)
	return loc, nil
}
