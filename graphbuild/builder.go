package graphbuild

import (
	"github.com/arkusai/memgraph/access"
	"github.com/arkusai/memgraph/coarsen"
	"github.com/arkusai/memgraph/graph"
	"github.com/arkusai/memgraph/window"
)

// Builder consumes an access.Stream in order, drives the chosen
// coarsen.Granularity and window.Strategy, and accumulates a graph.Graph.
// A Builder is single-use: construct one per analysis pass via New.
type Builder struct {
	cfg      Config
	strategy window.Strategy
	g        *graph.Graph

	accessCount   uint64
	uniqueAddrs   map[uint64]struct{}
	minTimestamp  uint64
	maxTimestamp  uint64
	sawAnyAccess  bool
	adaptiveStrat *window.Adaptive // non-nil only when cfg.WindowKind == AdaptiveWindow
}

// New validates opts and returns a ready-to-use Builder, or a
// ConfigurationError-class sentinel (spec.md §7) if validation fails.
func New(opts ...Option) (*Builder, error) {
	cfg, err := resolve(opts...)
	if err != nil {
		return nil, err
	}

	var strat window.Strategy
	var adaptive *window.Adaptive
	switch cfg.WindowKind {
	case FixedWindow:
		strat, err = window.NewFixed(cfg.WindowSize)
	case SlidingWindow:
		strat, err = window.NewSliding(cfg.WindowSize)
	case AdaptiveWindow:
		adaptive, err = window.NewAdaptive(cfg.WindowSize)
		strat = adaptive
	}
	if err != nil {
		return nil, err
	}

	return &Builder{
		cfg:           cfg,
		strategy:      strat,
		g:             graph.New(),
		uniqueAddrs:   make(map[uint64]struct{}),
		adaptiveStrat: adaptive,
	}, nil
}

// Build consumes s fully and returns the resulting graph. The trace
// metadata accumulated along the way is read afterwards through
// AccessCount, UniqueAddressCount and TimestampRange. Empty input yields
// an empty graph, never an error (spec.md §4.3's EmptyInput policy).
func (b *Builder) Build(s access.Stream) (*graph.Graph, error) {
	for {
		a, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		b.observe(a)
	}

	b.g.FilterMinWeight(b.cfg.MinEdgeWeight)

	return b.g, nil
}

func (b *Builder) observe(a access.MemoryAccess) {
	b.accessCount++
	b.uniqueAddrs[a.Address] = struct{}{}
	if !b.sawAnyAccess {
		b.minTimestamp, b.maxTimestamp = a.Timestamp, a.Timestamp
		b.sawAnyAccess = true
	} else {
		if a.Timestamp < b.minTimestamp {
			b.minTimestamp = a.Timestamp
		}
		if a.Timestamp > b.maxTimestamp {
			b.maxTimestamp = a.Timestamp
		}
	}

	// Non-monotonic timestamps are ignored: ordering follows stream
	// order, not timestamp values (spec.md §4.3).
	id, err := coarsen.Coarsen(a.Address, b.cfg.Granularity)
	if err != nil {
		// Granularity was already validated at construction; this branch
		// is unreachable in practice but guarded defensively.
		return
	}

	b.g.AddNode(id)
	for _, pair := range b.strategy.Observe(id) {
		_ = b.g.AddEdge(pair.A, pair.B, 1)
	}
}

// AccessCount returns the number of accesses observed so far.
func (b *Builder) AccessCount() uint64 { return b.accessCount }

// UniqueAddressCount returns the number of distinct raw addresses
// observed so far (before coarsening).
func (b *Builder) UniqueAddressCount() int { return len(b.uniqueAddrs) }

// TimestampRange returns the minimum and maximum timestamps observed.
// ok is false if no accesses have been observed.
func (b *Builder) TimestampRange() (min, max uint64, ok bool) {
	return b.minTimestamp, b.maxTimestamp, b.sawAnyAccess
}

// AdaptiveWindowSize reports the current adaptive window size, or 0 if
// the builder was not configured with AdaptiveWindow.
func (b *Builder) AdaptiveWindowSize() int {
	if b.adaptiveStrat == nil {
		return 0
	}

	return b.adaptiveStrat.Size()
}
