package telemetry

import (
	"context"
	"errors"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
)

var _ ports.Telemetry = (*Fanout)(nil)

// Fanout records every vertex on all of its recorders.
type Fanout struct {
	recorders []ports.Telemetry
}

// NewFanout creates a Fanout over recorders.
func NewFanout(recorders ...ports.Telemetry) *Fanout {
	return &Fanout{recorders: recorders}
}

// Record starts a vertex on every recorder. Each recorder sees the context returned by the previous one.
func (f *Fanout) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	vertices := make(fanoutVertex, 0, len(f.recorders))
	for _, r := range f.recorders {
		var v ports.Vertex
		ctx, v = r.Record(ctx, name)
		vertices = append(vertices, v)
	}
	return ctx, vertices
}

// Close closes every recorder and joins their errors.
func (f *Fanout) Close() error {
	var errs []error
	for _, r := range f.recorders {
		errs = append(errs, r.Close())
	}
	return errors.Join(errs...)
}

type fanoutVertex []ports.Vertex

func (vs fanoutVertex) Log(level domain.LogLevel, msg string) {
	for _, v := range vs {
		v.Log(level, msg)
	}
}

func (vs fanoutVertex) Complete(err error) {
	for _, v := range vs {
		v.Complete(err)
	}
}

func (vs fanoutVertex) Cached() {
	for _, v := range vs {
		v.Cached()
	}
}
