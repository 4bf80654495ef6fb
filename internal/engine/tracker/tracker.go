// Package tracker keeps the watch lists of every directory holding loaded files and
// decides which of those files have changed on disk.
package tracker

import (
	"cmp"
	"context"
	"errors"
	iofs "io/fs"
	"maps"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"sync"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options configures a Tracker.
type Options struct {
	// Policy decides whether a modification time is newer than a checkpoint.
	Policy domain.Policy
	// Parallelism bounds the number of directories checked at once. Zero means one per CPU.
	Parallelism int
	// Confirm suppresses changes whose content digest is unchanged.
	Confirm bool
	// Checkpoints restores directory checkpoints from a previous run.
	Checkpoints map[string]domain.Timestamp
	// Digests restores file content digests from a previous run, keyed by nominal path.
	Digests map[string]uint64
}

// entry guards the watch list of one directory.
// A restored entry resumes a checkpoint from a previous run, so the content on disk at
// registration may already differ from what that checkpoint saw.
type entry struct {
	dir      string
	restored bool
	mu       sync.Mutex
	list     *domain.WatchList
	digests  map[string]uint64
}

// Tracker owns one WatchList per directory and serializes access to each of them.
// Distinct directories are checked in parallel.
type Tracker struct {
	clock     ports.Clock
	fsys      ports.FileSystem
	resolver  ports.ExistenceResolver
	hasher    ports.Hasher
	telemetry ports.Telemetry
	opts      Options

	mu        sync.RWMutex
	dirs      map[string]*entry
	locations map[domain.PackageID]domain.PackageLocation
}

// New creates a new Tracker.
func New(
	clock ports.Clock,
	fsys ports.FileSystem,
	resolver ports.ExistenceResolver,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	opts Options,
) *Tracker {
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.NumCPU()
	}
	return &Tracker{
		clock:     clock,
		fsys:      fsys,
		resolver:  resolver,
		hasher:    hasher,
		telemetry: telemetry,
		opts:      opts,
		dirs:      make(map[string]*entry),
		locations: make(map[domain.PackageID]domain.PackageLocation),
	}
}

// Register records files loaded from the package at loc.
// Each name is normalized against loc, anchored at loc.BaseDir when relative and tracked
// in the watch list of its directory. Watch lists are created on first use with the
// restored checkpoint of their directory, or the current time.
func (t *Tracker) Register(loc domain.PackageLocation, files []string) error {
	t.mu.Lock()
	t.locations[loc.ID] = loc
	added := make(map[*entry][]string)
	for _, file := range files {
		dir, name := t.locate(file, loc)
		e := t.entryLocked(dir)
		added[e] = append(added[e], name)
	}
	t.mu.Unlock()

	for e, names := range added {
		if err := t.track(e, names, loc.ID); err != nil {
			return err
		}
	}
	return nil
}

// locate splits file into the watched directory and the key it is tracked under.
func (t *Tracker) locate(file string, loc domain.PackageLocation) (string, string) {
	path := domain.Normalize(file, loc)
	if !filepath.IsAbs(path) && loc.BaseDir != "" {
		path = filepath.Join(loc.BaseDir, path)
	}
	path = filepath.Clean(path)
	return filepath.Dir(path), filepath.Base(path)
}

// entryLocked returns the entry of dir, creating it if needed. Callers hold t.mu.
func (t *Tracker) entryLocked(dir string) *entry {
	if e, ok := t.dirs[dir]; ok {
		return e
	}

	ts, restored := t.opts.Checkpoints[dir]
	if !restored {
		ts = t.clock.Now()
	}
	e := &entry{
		dir:      dir,
		restored: restored,
		list:     domain.NewWatchList(ts),
		digests:  make(map[string]uint64),
	}
	t.dirs[dir] = e
	return e
}

func (t *Tracker) track(e *entry, names []string, owner domain.PackageID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, name := range names {
		e.list.Track(name, owner)
	}
	if !t.opts.Confirm {
		return nil
	}

	for _, name := range names {
		if _, seen := e.digests[name]; seen {
			continue
		}
		nominal := filepath.Join(e.dir, name)
		if sum, ok := t.opts.Digests[nominal]; ok {
			e.digests[name] = sum
			continue
		}
		if e.restored {
			// Content may have changed since the restored checkpoint.
			continue
		}
		sum, found, err := t.digest(nominal)
		if err != nil {
			return err
		}
		if found {
			e.digests[name] = sum
		}
	}
	return nil
}

func (t *Tracker) digest(nominal string) (uint64, bool, error) {
	path, ok, err := t.resolver.Resolve(nominal)
	if err != nil || !ok {
		return 0, false, err
	}
	return t.hash(path)
}

func (t *Tracker) hash(path string) (uint64, bool, error) {
	sum, err := t.hasher.ComputeFileHash(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return sum, true, nil
}

// Check reports the tracked files of dir that changed since its checkpoint and moves the
// checkpoint to the time the check started. Files that no longer exist are skipped.
// On error the checkpoint is left untouched so the next check sees the same changes.
func (t *Tracker) Check(ctx context.Context, dir string) ([]domain.ChangedFile, error) {
	dir = filepath.Clean(dir)

	t.mu.RLock()
	e, ok := t.dirs[dir]
	t.mu.RUnlock()
	if !ok {
		return nil, zerr.With(domain.ErrDirectoryNotWatched, "dir", dir)
	}

	ctx, vertex := t.telemetry.Record(ctx, "check "+dir)

	changes, err := t.check(ctx, e)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCheckFailed.Error()), "dir", dir)
		vertex.Complete(err)
		return nil, err
	}

	if len(changes) == 0 {
		vertex.Cached()
		return nil, nil
	}
	vertex.Log(domain.LogLevelInfo, strconv.Itoa(len(changes))+" changed")
	vertex.Complete(nil)
	return changes, nil
}

func (t *Tracker) check(ctx context.Context, e *entry) ([]domain.ChangedFile, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := t.clock.Now()
	checkpoint := e.list.Timestamp()
	digests := make(map[string]uint64)

	var changes []domain.ChangedFile
	for name, owner := range e.list.Files() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		change, ok, err := t.inspect(e.dir, name, checkpoint)
		if err != nil {
			return nil, err
		}
		if !ok {
			if err := t.baseline(e, name, digests); err != nil {
				return nil, err
			}
			continue
		}

		if t.opts.Confirm {
			sum, found, err := t.hash(change.Path)
			if err != nil {
				return nil, err
			}
			if found {
				if prev, seen := e.digests[name]; seen && prev == sum {
					continue
				}
				digests[name] = sum
			}
		}

		change.Package = owner
		changes = append(changes, change)
	}

	maps.Copy(e.digests, digests)
	e.list.RecordTimestamp(now)
	return changes, nil
}

// baseline records the digest of an unchanged file that has none yet, so that a later
// touch without an edit can be suppressed.
func (t *Tracker) baseline(e *entry, name string, digests map[string]uint64) error {
	if !t.opts.Confirm {
		return nil
	}
	if _, seen := e.digests[name]; seen {
		return nil
	}
	sum, found, err := t.digest(filepath.Join(e.dir, name))
	if err != nil {
		return err
	}
	if found {
		digests[name] = sum
	}
	return nil
}

// inspect stats one tracked file and reports it when its mtime is newer than checkpoint.
func (t *Tracker) inspect(dir, name string, checkpoint domain.Timestamp) (domain.ChangedFile, bool, error) {
	nominal := filepath.Join(dir, name)

	path, ok, err := t.resolver.Resolve(nominal)
	if err != nil || !ok {
		return domain.ChangedFile{}, false, err
	}

	info, err := t.fsys.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.ChangedFile{}, false, nil
		}
		return domain.ChangedFile{}, false, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}

	mtime := domain.TimestampOf(info.ModTime())
	if !t.opts.Policy.IsNewer(mtime, checkpoint) {
		return domain.ChangedFile{}, false, nil
	}

	return domain.ChangedFile{
		Dir:        dir,
		Name:       name,
		Path:       path,
		ModTime:    mtime,
		Checkpoint: checkpoint,
	}, true, nil
}

// CheckAll checks every watched directory, at most Options.Parallelism at a time.
// Changes are ordered by directory, then by name. When a check fails, the changes of
// the directories that completed are returned together with the error.
func (t *Tracker) CheckAll(ctx context.Context) ([]domain.ChangedFile, error) {
	dirs := t.Dirs()
	results := make([][]domain.ChangedFile, len(dirs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.opts.Parallelism)
	for i, dir := range dirs {
		g.Go(func() error {
			changes, err := t.Check(gctx, dir)
			results[i] = changes
			return err
		})
	}
	err := g.Wait()

	return slices.Concat(results...), err
}

// Owner returns the package that owns the file at path.
// A path that is not tracked as spelled is normalized against each registered location,
// innermost base directory first, so sandbox or mount-point spellings resolve too.
func (t *Tracker) Owner(path string) (domain.PackageID, bool) {
	path = filepath.Clean(path)
	if id, ok := t.owner(filepath.Dir(path), filepath.Base(path)); ok {
		return id, true
	}

	t.mu.RLock()
	locs := slices.SortedFunc(maps.Values(t.locations), func(a, b domain.PackageLocation) int {
		return cmp.Or(cmp.Compare(len(b.BaseDir), len(a.BaseDir)), cmp.Compare(a.BaseDir, b.BaseDir))
	})
	t.mu.RUnlock()

	for _, loc := range locs {
		if loc.BaseDir == "" {
			continue
		}
		if id, ok := t.owner(t.locate(path, loc)); ok {
			return id, true
		}
	}
	return domain.PackageID{}, false
}

func (t *Tracker) owner(dir, name string) (domain.PackageID, bool) {
	t.mu.RLock()
	e, ok := t.dirs[dir]
	t.mu.RUnlock()
	if !ok {
		return domain.PackageID{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.list.Owner(name)
}

// Location returns the registered location of the package id.
func (t *Tracker) Location(id domain.PackageID) (domain.PackageLocation, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	loc, ok := t.locations[id]
	return loc, ok
}

// Dirs returns the watched directories in lexical order.
func (t *Tracker) Dirs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return slices.Sorted(maps.Keys(t.dirs))
}

// Len returns the number of tracked files across all directories.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, e := range t.dirs {
		e.mu.Lock()
		n += e.list.Len()
		e.mu.Unlock()
	}
	return n
}

// Digests returns the content digest of every tracked file that has one, keyed by
// nominal path. It is empty unless Options.Confirm is set.
func (t *Tracker) Digests() map[string]uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	digests := make(map[string]uint64)
	for dir, e := range t.dirs {
		e.mu.Lock()
		for name, sum := range e.digests {
			digests[filepath.Join(dir, name)] = sum
		}
		e.mu.Unlock()
	}
	return digests
}

// Checkpoints returns the current checkpoint of every watched directory.
func (t *Tracker) Checkpoints() map[string]domain.Timestamp {
	t.mu.RLock()
	defer t.mu.RUnlock()

	checkpoints := make(map[string]domain.Timestamp, len(t.dirs))
	for dir, e := range t.dirs {
		e.mu.Lock()
		checkpoints[dir] = e.list.Timestamp()
		e.mu.Unlock()
	}
	return checkpoints
}
