// Package result defines AnalysisResult, the aggregate output of a full
// analysis pass (spec.md §3, §6). The core never performs I/O; producing
// a textual report from an AnalysisResult is the external reporter's
// concern. This package only supplies a stable JSON encoding of the
// schema described by spec.md §6, via github.com/goccy/go-json (used the
// same way thebtf-engram and vanderheijden86-beadwork use it as a
// drop-in faster replacement for encoding/json).
package result

import (
	"github.com/goccy/go-json"

	"github.com/arkusai/memgraph/classify"
	"github.com/arkusai/memgraph/graphlet"
	"github.com/arkusai/memgraph/signature"
)

// TraceMeta records metadata about the consumed trace (spec.md §3).
type TraceMeta struct {
	Source          string `json:"source"`
	TotalAccesses   uint64 `json:"total_accesses"`
	UniqueAddresses int    `json:"unique_addresses"`
	MinTimestamp    uint64 `json:"min_timestamp"`
	MaxTimestamp    uint64 `json:"max_timestamp"`
}

// GraphStats records structural statistics of the built graph.Graph
// (spec.md §3).
type GraphStats struct {
	NodeCount  int     `json:"node_count"`
	EdgeCount  int     `json:"edge_count"`
	Density    float64 `json:"density"`
	MeanDegree float64 `json:"mean_degree"`
}

// Classification is the JSON-stable rendering of a classify.Match.
type Classification struct {
	Pattern         classify.Name `json:"pattern"`
	Confidence      float64       `json:"confidence"`
	LowConfidence   bool          `json:"low_confidence"`
	Recommendations []string      `json:"recommendations"`
}

// AnalysisResult is the aggregate output of a single analysis pass
// (spec.md §3). It is immutable after construction and produced exactly
// once per pass.
type AnalysisResult struct {
	TraceMeta       TraceMeta           `json:"trace_meta"`
	GraphStats      GraphStats          `json:"graph_stats"`
	GraphletCounts  [9]float64          `json:"graphlet_counts"`
	Classifications []Classification    `json:"classifications"`
	Sampled         bool                `json:"sampled"`
	Empty           bool                `json:"empty"`
	signature       signature.Signature
}

// Signature exposes the underlying signature.Signature the
// classifications were computed from, for callers that want the raw
// ratios without recomputing them.
func (r AnalysisResult) Signature() signature.Signature { return r.signature }

// New assembles an AnalysisResult from its constituent parts.
func New(
	source string,
	totalAccesses uint64,
	uniqueAddresses int,
	minTS, maxTS uint64,
	nodeCount, edgeCount int,
	density, meanDegree float64,
	counts graphlet.Count,
	sampled bool,
	matches []classify.Match,
) AnalysisResult {
	sig := signature.From(counts)

	classifications := make([]Classification, 0, len(matches))
	for _, m := range matches {
		classifications = append(classifications, Classification{
			Pattern:         m.Name,
			Confidence:      m.Similarity,
			LowConfidence:   m.LowConfidence,
			Recommendations: m.Recommendations,
		})
	}

	return AnalysisResult{
		TraceMeta: TraceMeta{
			Source:          source,
			TotalAccesses:   totalAccesses,
			UniqueAddresses: uniqueAddresses,
			MinTimestamp:    minTS,
			MaxTimestamp:    maxTS,
		},
		GraphStats: GraphStats{
			NodeCount:  nodeCount,
			EdgeCount:  edgeCount,
			Density:    density,
			MeanDegree: meanDegree,
		},
		GraphletCounts:  counts.Normalized(),
		Classifications: classifications,
		Sampled:         sampled,
		Empty:           sig.IsEmpty(),
		signature:       sig,
	}
}

// MarshalJSON renders the stable output-contract schema of spec.md §6.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	type alias AnalysisResult // avoid infinite recursion through MarshalJSON

	return json.Marshal(alias(r))
}
