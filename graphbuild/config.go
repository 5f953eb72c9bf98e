// Package graphbuild drives an access.Stream through a coarsen.Granularity
// and a window.Strategy to accumulate a graph.Graph. It mirrors the
// teacher's builder package: an unexported config struct, a constructor
// applying defaults then functional Options in order, and WithX(...)
// constructors that validate at construction time rather than at call
// time (builder/config.go, builder/options.go).
package graphbuild

import (
	"errors"

	"github.com/arkusai/memgraph/coarsen"
)

// ErrWindowSize is returned when WindowSize is below 2.
var ErrWindowSize = errors.New("graphbuild: window size must be >= 2")

// ErrMinEdgeWeight is returned when MinEdgeWeight is below 1.
var ErrMinEdgeWeight = errors.New("graphbuild: min edge weight must be >= 1")

// ErrUnknownStrategy is returned when an unrecognized WindowKind is
// configured.
var ErrUnknownStrategy = errors.New("graphbuild: unknown window strategy")

// ErrUnknownGranularity re-exports coarsen.ErrUnknownGranularity for
// callers that only import graphbuild.
var ErrUnknownGranularity = coarsen.ErrUnknownGranularity

// WindowKind selects the window.Strategy constructor a Builder uses.
type WindowKind uint8

const (
	// FixedWindow selects window.Fixed.
	FixedWindow WindowKind = iota
	// SlidingWindow selects window.Sliding. This is the default
	// (spec.md §6).
	SlidingWindow
	// AdaptiveWindow selects window.Adaptive.
	AdaptiveWindow
)

func (k WindowKind) String() string {
	switch k {
	case FixedWindow:
		return "fixed"
	case SlidingWindow:
		return "sliding"
	case AdaptiveWindow:
		return "adaptive"
	default:
		return "invalid"
	}
}

// Config holds the fully-resolved, validated builder configuration
// (spec.md §6's configuration surface).
type Config struct {
	Granularity   coarsen.Granularity
	WindowKind    WindowKind
	WindowSize    int
	MinEdgeWeight int64
}

// defaultConfig matches spec.md §6's defaults.
func defaultConfig() Config {
	return Config{
		Granularity:   coarsen.CacheLine,
		WindowKind:    SlidingWindow,
		WindowSize:    100,
		MinEdgeWeight: 1,
	}
}

// Option customizes a Config before a Builder is constructed.
type Option func(*Config)

// WithGranularity sets the address-coarsening granularity.
func WithGranularity(g coarsen.Granularity) Option {
	return func(c *Config) { c.Granularity = g }
}

// WithWindowKind selects the window strategy.
func WithWindowKind(k WindowKind) Option {
	return func(c *Config) { c.WindowKind = k }
}

// WithWindowSize sets the window size (fixed group size, sliding span, or
// adaptive starting point).
func WithWindowSize(size int) Option {
	return func(c *Config) { c.WindowSize = size }
}

// WithMinEdgeWeight sets the post-hoc edge-weight filter threshold.
func WithMinEdgeWeight(min int64) Option {
	return func(c *Config) { c.MinEdgeWeight = min }
}

// resolve applies opts over the defaults and validates the result,
// returning a ConfigurationError-class sentinel on any invalid range
// (spec.md §7: "raised at builder ... construction; no partial state").
func resolve(opts ...Option) (Config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.Granularity.Valid() {
		return Config{}, ErrUnknownGranularity
	}
	if cfg.WindowKind != FixedWindow && cfg.WindowKind != SlidingWindow && cfg.WindowKind != AdaptiveWindow {
		return Config{}, ErrUnknownStrategy
	}
	if cfg.WindowSize < 2 {
		return Config{}, ErrWindowSize
	}
	if cfg.MinEdgeWeight < 1 {
		return Config{}, ErrMinEdgeWeight
	}

	return cfg, nil
}
