// Package window groups temporally adjacent accesses into co-occurrence
// pairs. Three strategies are provided — Fixed, Sliding, Adaptive — per
// spec.md §4.2. All three emit a stream of unordered, distinct-endpoint
// node pairs; duplicate pairs within one window are coalesced, and a
// contiguous run of identical accesses never emits a pair on repeat
// arrivals.
//
// Implemented as a hand-rolled ring buffer plus a membership count map
// rather than container/ring or container/list, matching the teacher
// repo's preference for direct slice/map manipulation (spec.md §9,
// "Windowed FIFO").
package window

import (
	"errors"

	"github.com/arkusai/memgraph/coarsen"
)

// ErrWindowTooSmall is returned when a window size below 2 is requested.
var ErrWindowTooSmall = errors.New("window: size must be >= 2")

// Pair is an unordered co-occurrence between two distinct nodes.
type Pair struct {
	A coarsen.NodeID
	B coarsen.NodeID
}

// Strategy groups accesses into windows and emits co-occurrence pairs.
// Observe is called once per arriving (already coarsened) access, in
// stream order, and returns every new pair that access completes.
type Strategy interface {
	Observe(id coarsen.NodeID) []Pair
}

// ring is the shared FIFO-of-distinct-ids-with-membership-counts building
// block used by Sliding and Adaptive.
type ring struct {
	capacity int
	order    []coarsen.NodeID       // arrival order, oldest first
	counts   map[coarsen.NodeID]int // membership multiplicity
}

func newRing(capacity int) *ring {
	return &ring{capacity: capacity, counts: make(map[coarsen.NodeID]int)}
}

// pairsAgainst returns a pair for every distinct id currently held that
// differs from id — i.e. the co-occurrences id completes against the
// current window contents, before id itself is inserted.
func (r *ring) pairsAgainst(id coarsen.NodeID) []Pair {
	if len(r.counts) == 0 {
		return nil
	}
	pairs := make([]Pair, 0, len(r.counts))
	for member := range r.counts {
		if member == id {
			continue
		}
		pairs = append(pairs, Pair{A: id, B: member})
	}

	return pairs
}

// push inserts id, evicting the oldest member(s) until the ring fits
// within capacity.
func (r *ring) push(id coarsen.NodeID) {
	r.order = append(r.order, id)
	r.counts[id]++
	r.evictToCapacity()
}

func (r *ring) evictToCapacity() {
	for len(r.order) > r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		r.counts[oldest]--
		if r.counts[oldest] == 0 {
			delete(r.counts, oldest)
		}
	}
}

func (r *ring) setCapacity(c int) {
	r.capacity = c
	r.evictToCapacity()
}

// Fixed partitions the access stream into non-overlapping contiguous
// groups of Size accesses. Within each group, every unordered pair of
// distinct node ids contributes exactly one co-occurrence, emitted once
// the group closes (spec.md §4.2).
type Fixed struct {
	size    int
	buf     []coarsen.NodeID
	seen    map[coarsen.NodeID]struct{}
	distinc []coarsen.NodeID
}

// NewFixed constructs a Fixed window strategy of the given size.
func NewFixed(size int) (*Fixed, error) {
	if size < 2 {
		return nil, ErrWindowTooSmall
	}

	return &Fixed{
		size: size,
		buf:  make([]coarsen.NodeID, 0, size),
		seen: make(map[coarsen.NodeID]struct{}, size),
	}, nil
}

// Observe implements Strategy. It buffers ids until a group of Size
// accesses has arrived, then emits every distinct pair in that group.
func (f *Fixed) Observe(id coarsen.NodeID) []Pair {
	f.buf = append(f.buf, id)
	if _, ok := f.seen[id]; !ok {
		f.seen[id] = struct{}{}
		f.distinc = append(f.distinc, id)
	}
	if len(f.buf) < f.size {
		return nil
	}

	pairs := make([]Pair, 0, len(f.distinc)*(len(f.distinc)-1)/2)
	for i := 0; i < len(f.distinc); i++ {
		for j := i + 1; j < len(f.distinc); j++ {
			pairs = append(pairs, Pair{A: f.distinc[i], B: f.distinc[j]})
		}
	}

	f.buf = f.buf[:0]
	f.seen = make(map[coarsen.NodeID]struct{}, f.size)
	f.distinc = f.distinc[:0]

	return pairs
}

// Sliding pairs every arrival with each distinct node id among the
// preceding Size-1 positions (spec.md §4.2). Equivalent to a FIFO of the
// last Size distinct positions, pairing each arrival with every current
// member.
type Sliding struct {
	r *ring
}

// NewSliding constructs a Sliding window strategy of the given size.
func NewSliding(size int) (*Sliding, error) {
	if size < 2 {
		return nil, ErrWindowTooSmall
	}

	return &Sliding{r: newRing(size - 1)}, nil
}

// Observe implements Strategy.
func (s *Sliding) Observe(id coarsen.NodeID) []Pair {
	pairs := s.r.pairsAgainst(id)
	s.r.push(id)

	return pairs
}

// Adaptive behaves like Sliding but resizes its window between accesses
// based on a running locality estimate: the fraction of arrivals whose
// id was already present in the window before insertion. Locality above
// 0.75 shrinks the window by one (floor 2); below 0.25 grows it by one
// (ceiling 4×initial). Resizing never affects the access currently being
// processed — it is applied after pairs are computed and the id pushed
// (spec.md §4.2).
type Adaptive struct {
	r         *ring
	size      int // current logical W (capacity is size-1)
	maxSize   int
	arrivals  uint64
	localHits uint64
}

const (
	adaptiveShrinkAbove = 0.75
	adaptiveGrowBelow   = 0.25
	adaptiveMinSize     = 2
)

// NewAdaptive constructs an Adaptive window strategy starting at size
// and bounded to [2, 4*size].
func NewAdaptive(size int) (*Adaptive, error) {
	if size < 2 {
		return nil, ErrWindowTooSmall
	}

	return &Adaptive{
		r:       newRing(size - 1),
		size:    size,
		maxSize: size * 4,
	}, nil
}

// Observe implements Strategy.
func (a *Adaptive) Observe(id coarsen.NodeID) []Pair {
	_, alreadyPresent := a.r.counts[id]

	pairs := a.r.pairsAgainst(id)
	a.r.push(id)

	a.arrivals++
	if alreadyPresent {
		a.localHits++
	}
	a.resize()

	return pairs
}

func (a *Adaptive) resize() {
	locality := float64(a.localHits) / float64(a.arrivals)
	switch {
	case locality > adaptiveShrinkAbove && a.size > adaptiveMinSize:
		a.size--
	case locality < adaptiveGrowBelow && a.size < a.maxSize:
		a.size++
	default:
		return
	}
	a.r.setCapacity(a.size - 1)
}

// Size reports the current logical window size (for diagnostics/logging).
func (a *Adaptive) Size() int { return a.size }
