package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/cmd/stale/commands"
	"go.trai.ch/stale/internal/adapters/clock"
	"go.trai.ch/stale/internal/adapters/fs"
	"go.trai.ch/stale/internal/adapters/logger"
	"go.trai.ch/stale/internal/adapters/telemetry"
	"go.trai.ch/stale/internal/app"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var epoch = time.Unix(1_700_000_000, 0)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Bytes() []byte {
	return []byte(b.String())
}

type harness struct {
	cli    *commands.CLI
	clock  clockwork.FakeClock
	out    *syncBuffer
	logs   *bytes.Buffer
	loader *mocks.MockConfigLoader
	opener *mocks.MockStateOpener
	store  *mocks.MockStateStore
	root   string
	cfg    *domain.Config
}

// newHarness builds a CLI over a package whose src/A.jl was modified after the stored checkpoint.
func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	file := filepath.Join(root, "pkg", "src", "A.jl")
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o750))
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	require.NoError(t, os.Chtimes(file, epoch.Add(time.Second), epoch.Add(time.Second)))

	h := &harness{
		out:    &syncBuffer{},
		logs:   &bytes.Buffer{},
		loader: mocks.NewMockConfigLoader(ctrl),
		opener: mocks.NewMockStateOpener(ctrl),
		store:  mocks.NewMockStateStore(ctrl),
		root:   root,
		cfg: &domain.Config{
			Root:      root,
			Interval:  time.Second,
			StatePath: filepath.Join(root, domain.DefaultStatePath),
			Packages: []domain.PackageSpec{{
				Location: domain.PackageLocation{ID: domain.PackageIDFromName("Example"), BaseDir: filepath.Join(root, "pkg")},
				Files:    []string{"src/A.jl"},
			}},
		},
	}

	log := logger.New()
	log.SetOutput(h.logs)

	fsys := fs.NewOSFS()
	fake := clockwork.NewFakeClockAt(epoch.Add(5 * time.Second))
	h.clock = fake
	a := app.New(
		h.loader,
		h.opener,
		fs.NewResolverFactory(fsys),
		fs.NewWalker(),
		fsys,
		fs.NewHasher(),
		clock.New(fake),
		telemetry.NewNoOp(),
		log,
	).WithTicker(fake)

	h.cli = commands.New(a, log)
	h.cli.SetOutput(h.out)
	return h
}

func (h *harness) expectOpen(checkpoint time.Time) {
	h.loader.EXPECT().Load("stale.yaml").Return(h.cfg, nil)
	h.opener.EXPECT().Open(h.cfg.StatePath).Return(h.store, nil)
	h.store.EXPECT().Checkpoints().Return(map[string]domain.Timestamp{
		filepath.Join(h.root, "pkg", "src"): domain.TimestampOf(checkpoint),
	})
	h.store.EXPECT().Digests().Return(nil)
}

func (h *harness) expectCheck(checkpoint time.Time) {
	h.expectOpen(checkpoint)
	h.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
}

func TestCheck_NoChanges(t *testing.T) {
	h := newHarness(t)
	h.expectCheck(epoch.Add(2 * time.Second))

	h.cli.SetArgs([]string{"check"})
	require.NoError(t, h.cli.Execute(context.Background()))

	assert.Equal(t, "✓ no stale files\n", h.out.String())
	assert.Contains(t, h.logs.String(), "tracking 1 files in 1 directories")
}

func TestCheck_Table(t *testing.T) {
	h := newHarness(t)
	h.expectCheck(epoch)

	h.cli.SetArgs([]string{"check"})
	require.NoError(t, h.cli.Execute(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "~ changed")
	assert.Contains(t, out, filepath.Join(h.root, "pkg", "src", "A.jl"))
	assert.Contains(t, out, "Example")
	assert.Contains(t, out, epoch.Add(time.Second).UTC().Format("2006-01-02 15:04:05.000"))
	assert.Contains(t, out, "1 stale")
}

func TestCheck_JSON(t *testing.T) {
	h := newHarness(t)
	h.expectCheck(epoch)

	h.cli.SetArgs([]string{"check", "--json"})
	require.NoError(t, h.cli.Execute(context.Background()))

	var docs []map[string]any
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "A.jl", docs[0]["name"])
	assert.Equal(t, "Example", docs[0]["package"])
	assert.Equal(t, domain.PackageIDFromName("Example").UUID().String(), docs[0]["uuid"])
	assert.Equal(t, false, docs[0]["relocated"])

	// Logs switch to JSON as well.
	assert.Contains(t, h.logs.String(), `"msg":"tracking 1 files in 1 directories"`)
}

func TestCheck_ExitCode(t *testing.T) {
	h := newHarness(t)
	h.expectCheck(epoch)

	h.cli.SetArgs([]string{"check", "--exit-code"})
	err := h.cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrStaleFilesFound)
}

func TestCheck_RejectsArgs(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"check", "extra"})
	require.Error(t, h.cli.Execute(context.Background()))
}

func TestConfigFlag(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load("custom.yaml").Return(h.cfg, nil)

	h.cli.SetArgs([]string{"--config", "custom.yaml", "normalize", "Example", "/sandbox" + h.root + "/pkg/src/A.jl"})
	require.NoError(t, h.cli.Execute(context.Background()))
	assert.Equal(t, "src/A.jl\n", h.out.String())
}

func TestRelocate(t *testing.T) {
	h := newHarness(t)
	actual := filepath.Join(h.root, "pkg", "src", "A.jl")
	nominal := filepath.Join(h.root, "old", "A.jl")

	h.loader.EXPECT().Load("stale.yaml").Return(h.cfg, nil)
	h.opener.EXPECT().Open(h.cfg.StatePath).Return(h.store, nil)
	h.store.EXPECT().Relocate(nominal, actual).Return(nil)

	h.cli.SetArgs([]string{"relocate", nominal, actual})
	require.NoError(t, h.cli.Execute(context.Background()))
	assert.Contains(t, h.logs.String(), "relocated "+nominal+" to "+actual)
}

func TestRelocate_ArgCount(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"relocate", "only-one"})
	require.Error(t, h.cli.Execute(context.Background()))
}

func TestOwner(t *testing.T) {
	h := newHarness(t)
	h.expectOpen(epoch)

	h.cli.SetArgs([]string{"owner", filepath.Join(h.root, "pkg", "src", "A.jl")})
	require.NoError(t, h.cli.Execute(context.Background()))
	assert.Equal(t, "Example\t"+domain.PackageIDFromName("Example").UUID().String()+"\n", h.out.String())
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"version"})
	require.NoError(t, h.cli.Execute(context.Background()))
	assert.Equal(t, "stale version dev\n", h.out.String())
}

func TestWatch_StopsOnCancel(t *testing.T) {
	h := newHarness(t)
	h.expectOpen(epoch)
	h.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h.cli.SetArgs([]string{"watch"})
	require.NoError(t, h.cli.Execute(ctx))
	assert.Contains(t, h.logs.String(), "watching 1 directories every 1s")
	assert.Empty(t, h.out.String())
}

func TestWatch_StreamsChanges(t *testing.T) {
	h := newHarness(t)
	h.expectOpen(epoch.Add(2 * time.Second))
	h.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	h.cli.SetArgs([]string{"watch"})
	go func() {
		done <- h.cli.Execute(ctx)
	}()

	h.clock.BlockUntil(1)
	file := filepath.Join(h.root, "pkg", "src", "A.jl")
	require.NoError(t, os.Chtimes(file, epoch.Add(5500*time.Millisecond), epoch.Add(5500*time.Millisecond)))
	h.clock.Advance(time.Second)

	assert.Eventually(t, func() bool {
		return strings.Contains(h.out.String(), "~ changed "+file+" (Example)")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_DashboardFlag(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"watch", "--help"})
	require.NoError(t, h.cli.Execute(context.Background()))
	assert.Contains(t, h.out.String(), "--tui")
}
