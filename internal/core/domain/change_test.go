package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stale/internal/core/domain"
)

func TestChangedFile_Relocated(t *testing.T) {
	c := domain.ChangedFile{Dir: "/pkg/src", Name: "A.jl", Path: "/pkg/src/A.jl"}
	assert.Equal(t, "/pkg/src/A.jl", c.Nominal())
	assert.False(t, c.Relocated())

	c.Path = "/moved/A.jl"
	assert.True(t, c.Relocated())
}
