package classify

import (
	"sort"

	"github.com/arkusai/memgraph/graphlet"
	"github.com/arkusai/memgraph/signature"
)

// Options configures Classify (spec.md §6's classifier_threshold and
// top_k).
type Options struct {
	// Threshold is τ, the minimum cosine similarity a pattern must clear
	// to be retained.
	Threshold float64
	// TopK bounds the number of matches returned.
	TopK int
}

// DefaultOptions matches spec.md §6's defaults.
func DefaultOptions() Options {
	return Options{Threshold: 0.6, TopK: 3}
}

// Feature names one of the nine graphlet dimensions contributing to a
// match's similarity score, with its per-dimension contribution a*b.
type Feature struct {
	ID           graphlet.ID
	Contribution float64
}

// Match is the outcome of comparing a signature.Signature against one
// Pattern (spec.md §3's PatternMatch).
type Match struct {
	Name            Name
	Similarity      float64
	TopFeatures     []Feature
	Recommendations []string
	// LowConfidence is set when this Match is the UNKNOWN fallback
	// returned because no pattern cleared the threshold (spec.md §4.8).
	LowConfidence bool
}

// Classify ranks sig against every built-in Pattern by cosine similarity,
// retaining those at or above opts.Threshold, descending by similarity
// and breaking ties lexicographically by pattern name for determinism
// (spec.md §4.8).
//
// An all-zero (empty-graph) signature returns an empty slice, never an
// error — callers distinguish this from "no error because nothing to
// classify" via signature.Signature.IsEmpty (spec.md §4.8's
// distinguished empty-input marker).
func Classify(sig signature.Signature, opts Options) []Match {
	if sig.IsEmpty() {
		return nil
	}

	candidates := make([]Match, 0, len(Patterns))
	for _, p := range Patterns {
		sim := signature.CosineSimilarity(sig, p.Signature)
		candidates = append(candidates, Match{
			Name:            p.Name,
			Similarity:      sim,
			TopFeatures:     topFeatures(sig, p.Signature),
			Recommendations: p.Recommendations,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Similarity != candidates[j].Similarity {
			return candidates[i].Similarity > candidates[j].Similarity
		}

		return candidates[i].Name < candidates[j].Name
	})

	retained := candidates[:0:0]
	for _, c := range candidates {
		if c.Similarity >= opts.Threshold {
			retained = append(retained, c)
		}
	}

	if len(retained) == 0 {
		best := candidates[0]
		best.LowConfidence = true

		return []Match{best}
	}

	k := opts.TopK
	if k <= 0 || k > len(retained) {
		k = len(retained)
	}

	return retained[:k]
}

// topFeatures reports the three graphlet dimensions whose contribution
// a_i*b_i to the cosine numerator is largest (spec.md §4.8: "for the top
// match, report the three graphlet components whose contribution a_i*b_i
// is largest").
func topFeatures(a, b signature.Signature) []Feature {
	const reported = 3
	features := make([]Feature, len(a.Vec))
	for i := range a.Vec {
		features[i] = Feature{ID: graphlet.ID(i), Contribution: a.Vec[i] * b.Vec[i]}
	}
	sort.Slice(features, func(i, j int) bool {
		return features[i].Contribution > features[j].Contribution
	})
	if len(features) > reported {
		features = features[:reported]
	}

	return features
}
