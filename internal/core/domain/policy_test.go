package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/core/domain"
)

func TestPolicy_IsNewer(t *testing.T) {
	tests := []struct {
		name       string
		policy     domain.Policy
		mtime      domain.Timestamp
		checkpoint domain.Timestamp
		want       bool
	}{
		{"default later", domain.PolicyDefault, 100.5, 100.0, true},
		{"default equal counts as changed", domain.PolicyDefault, 100.0, 100.0, true},
		{"default earlier", domain.PolicyDefault, 99.9, 100.0, false},
		{"coarse sub-second before checkpoint", domain.PolicyCoarse, 10.9, 10.1, true},
		{"coarse truncated mtime in same second", domain.PolicyCoarse, 10.0, 10.7, true},
		{"coarse previous second", domain.PolicyCoarse, 9.0, 10.7, false},
		{"coarse rounds mtime up", domain.PolicyCoarse, 9.2, 10.7, true},
		{"coarse well before", domain.PolicyCoarse, 8.5, 10.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.IsNewer(tt.mtime, tt.checkpoint))
		})
	}
}

func TestPolicy_CoarseNeverMissesSubSecondChanges(t *testing.T) {
	// Any mtime within one second before the checkpoint is reported.
	for checkpoint := 10.0; checkpoint < 12.0; checkpoint += 0.05 {
		for delta := 0.0; delta < 1.0; delta += 0.05 {
			mtime := checkpoint - delta
			want := math.Ceil(mtime) >= math.Floor(checkpoint)
			got := domain.PolicyCoarse.IsNewer(domain.Timestamp(mtime), domain.Timestamp(checkpoint))
			assert.Equal(t, want, got, "mtime=%v checkpoint=%v", mtime, checkpoint)
			assert.True(t, got, "mtime=%v checkpoint=%v", mtime, checkpoint)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		goos  string
		want  domain.Policy
	}{
		{"empty on linux", "", "linux", domain.PolicyDefault},
		{"auto on darwin", "auto", "darwin", domain.PolicyCoarse},
		{"auto on linux", "auto", "linux", domain.PolicyDefault},
		{"explicit default on darwin", "default", "darwin", domain.PolicyDefault},
		{"explicit coarse", "Coarse", "linux", domain.PolicyCoarse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParsePolicy(tt.input, tt.goos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePolicy_Invalid(t *testing.T) {
	_, err := domain.ParsePolicy("fuzzy", "linux")
	require.ErrorContains(t, err, domain.ErrInvalidPolicy.Error())
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "default", domain.PolicyDefault.String())
	assert.Equal(t, "coarse", domain.PolicyCoarse.String())
}
