package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stale/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name:         "zerr chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name:         "metadata on a standard error",
			err:          zerr.With(errors.New("no such file"), "path", "/x"),
			wantMessages: []string{"", "no such file"},
		},
		{
			name:         "nil",
			err:          nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			var got []string
			for _, e := range entries {
				got = append(got, e.Message())
			}
			assert.Equal(t, tt.wantMessages, got)
		})
	}
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	err := zerr.With(zerr.With(zerr.New("invalid file pattern"), "pattern", "src/["), "package", "Pkg")

	entries := logger.CollectErrorEntries(err)

	assert.Len(t, entries, 1)
	assert.Equal(t, map[string]any{"pattern": "src/[", "package": "Pkg"}, entries[0].Meta())
}

func TestFormatErrorEntries(t *testing.T) {
	err := zerr.Wrap(zerr.With(zerr.New("inner\ndetail"), "k", 1), "outer")

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))

	want := "Error: outer\n" +
		"\n" +
		"  Caused by:\n" +
		"    → inner\n" +
		"      detail (k=1)"
	assert.Equal(t, want, got)
}

func TestFormatErrorEntries_LeadingMetadata(t *testing.T) {
	err := zerr.With(errors.New("no such file"), "path", "/x")

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))

	assert.Equal(t, "Error: (path=/x)\n\n  Caused by:\n    → no such file", got)
}
