// Package coarsen maps a raw memory address to a NodeID at a chosen
// granularity. Coarsening is total, deterministic, and immutable once a
// graph build has started: see spec.md §4.1.
package coarsen

import "errors"

// ErrUnknownGranularity is returned when an unrecognized Granularity value
// is supplied to a builder or deserialized from configuration.
var ErrUnknownGranularity = errors.New("coarsen: unknown granularity")

// Granularity selects the address-coarsening resolution.
type Granularity uint8

const (
	// Byte coarsens to the address itself (no coarsening).
	Byte Granularity = iota
	// CacheLine coarsens to 64-byte aligned lines (addr >> 6). This is the
	// default granularity per spec.md §6.
	CacheLine
	// Page coarsens to 4 KiB aligned pages (addr >> 12).
	Page
)

// cacheLineShift and pageShift implement the fixed 64-byte / 4 KiB
// alignment spec.md §4.1 specifies.
const (
	cacheLineShift = 6
	pageShift      = 12
)

// String renders the granularity for logging and error messages.
func (g Granularity) String() string {
	switch g {
	case Byte:
		return "byte"
	case CacheLine:
		return "cacheline"
	case Page:
		return "page"
	default:
		return "invalid"
	}
}

// Valid reports whether g is one of the three defined granularities.
func (g Granularity) Valid() bool {
	return g == Byte || g == CacheLine || g == Page
}

// NodeID is the coarsened identifier used throughout the graph, enumerator,
// and signature packages.
type NodeID uint64

// Coarsen maps addr to a NodeID at the given granularity.
//
// An access that spans a coarsening boundary (its size crosses a cache
// line or page edge) is represented by the coarsened id of its start
// address; splitting into multiple nodes is never performed — this is an
// explicit spec choice (spec.md §4.1, §9). Coarsen takes only the start
// address, never the access size, so no access can map to two nodes.
//
// Complexity: O(1).
func Coarsen(addr uint64, g Granularity) (NodeID, error) {
	switch g {
	case Byte:
		return NodeID(addr), nil
	case CacheLine:
		return NodeID(addr >> cacheLineShift), nil
	case Page:
		return NodeID(addr >> pageShift), nil
	default:
		return 0, ErrUnknownGranularity
	}
}
