package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arkusai/memgraph/access"
	"github.com/arkusai/memgraph/classify"
	"github.com/arkusai/memgraph/graphbuild"
	"github.com/arkusai/memgraph/graphlet"
	"github.com/arkusai/memgraph/result"
	"github.com/arkusai/memgraph/signature"
)

// Analyze runs the full core pipeline — build, enumerate, signature,
// classify — over s and returns the resulting result.AnalysisResult.
//
// Analyze is the only library function in this module that logs (the
// cmd/memgraphctl harness also logs): graphbuild, graphlet, signature,
// and classify stay pure and log-free, per spec.md
// §5's synchronous-core mandate. Logging uses github.com/rs/zerolog,
// matching thebtf-engram's package-level log.Logger convention.
func Analyze(ctx context.Context, source string, s access.Stream, cfg Config) (result.AnalysisResult, error) {
	logger := log.With().Str("component", "pipeline").Str("source", source).Logger()

	granularity, err := granularityFromString(cfg.Granularity)
	if err != nil {
		return result.AnalysisResult{}, err
	}
	windowKind, err := windowKindFromString(cfg.WindowStrategy)
	if err != nil {
		return result.AnalysisResult{}, err
	}

	builder, err := graphbuild.New(
		graphbuild.WithGranularity(granularity),
		graphbuild.WithWindowKind(windowKind),
		graphbuild.WithWindowSize(cfg.WindowSize),
		graphbuild.WithMinEdgeWeight(cfg.MinEdgeWeight),
	)
	if err != nil {
		return result.AnalysisResult{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	g, err := builder.Build(s)
	if err != nil {
		return result.AnalysisResult{}, fmt.Errorf("pipeline: building graph: %w", err)
	}

	if windowKind == graphbuild.AdaptiveWindow {
		logger.Debug().Int("final_window_size", builder.AdaptiveWindowSize()).Msg("adaptive window settled")
	}
	logger.Info().
		Uint64("accesses", builder.AccessCount()).
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Msg("graph built")

	gOpts := graphletOptions(cfg)
	counts, sampled, err := graphlet.Enumerate(ctx, g, gOpts)
	if err != nil {
		logger.Error().Err(err).Msg("graphlet enumeration failed")

		return result.AnalysisResult{}, fmt.Errorf("pipeline: enumerating graphlets: %w", err)
	}
	logEnumeration(logger, g.NodeCount(), g.EdgeCount(), gOpts, sampled)

	var matches []classify.Match
	if counts.Total() > 0 {
		matches = classify.Classify(signature.From(counts), classifyOptions(cfg))
	}
	logClassification(logger, matches)

	minTS, maxTS, _ := builder.TimestampRange()

	return result.New(
		source,
		builder.AccessCount(),
		builder.UniqueAddressCount(),
		minTS, maxTS,
		g.NodeCount(), g.EdgeCount(), g.Density(), g.MeanDegree(),
		counts, sampled, matches,
	), nil
}

func logEnumeration(logger zerolog.Logger, nodes, edges int, opts graphlet.Options, sampled bool) {
	event := logger.Info()
	if sampled {
		event = event.Int("sample_size", opts.SampleSize)
	}
	event.
		Bool("sampled", sampled).
		Int("nodes", nodes).
		Int("edges", edges).
		Msg("graphlet enumeration complete")
}

func logClassification(logger zerolog.Logger, matches []classify.Match) {
	if len(matches) == 0 {
		logger.Info().Msg("no classification: empty signature")

		return
	}
	top := matches[0]
	logger.Info().
		Str("pattern", string(top.Name)).
		Float64("confidence", top.Similarity).
		Bool("low_confidence", top.LowConfidence).
		Msg("classification complete")
}
