package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/stale/internal/core/domain"
)

func TestPackageID_Equality(t *testing.T) {
	id := uuid.MustParse("295af30f-e4ad-537b-8983-00126c2a3abe")

	a := domain.NewPackageID(id, "Revise")
	b := domain.NewPackageID(id, "Revise")
	c := domain.NewPackageID(uuid.New(), "Revise")

	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "Revise", a.Name())
	assert.Equal(t, id, a.UUID())
}

func TestPackageIDFromName_Stable(t *testing.T) {
	a := domain.PackageIDFromName("Example")
	b := domain.PackageIDFromName("Example")
	other := domain.PackageIDFromName("Other")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, other)
	assert.Equal(t, uuid.Version(5), a.UUID().Version())
}

func TestPackageID_Zero(t *testing.T) {
	var zero domain.PackageID

	assert.True(t, zero.IsZero())
	assert.Empty(t, zero.Name())
	assert.False(t, domain.PackageIDFromName("x").IsZero())
}

func TestPackageLocation_DisplayName(t *testing.T) {
	loc := domain.PackageLocation{ID: domain.PackageIDFromName("Example")}
	assert.Equal(t, "Example", loc.DisplayName())

	loc.Descriptor = "Example v1.2.0"
	assert.Equal(t, "Example v1.2.0", loc.DisplayName())
}

func TestNewCoreCompilerLocation(t *testing.T) {
	loc := domain.NewCoreCompilerLocation(domain.PackageIDFromName("Compiler"), "/julia/base/compiler")

	assert.Equal(t, domain.CoreCompilerPrefix, loc.Prefix)
	assert.Equal(t, "/julia/base/compiler", loc.BaseDir)
}

func TestTimestamp_RoundTrip(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 500_000_000, time.UTC)
	ts := domain.TimestampOf(at)

	assert.InDelta(t, float64(at.Unix())+0.5, ts.Seconds(), 1e-6)
	assert.WithinDuration(t, at, ts.Time(), time.Microsecond)
}
