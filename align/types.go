// Package align implements the core alignment engine from spec §4.3: a
// segment-by-segment frontier search over partial alignments that
// jointly chooses, for every reference entity, which boundary
// alternative to use and which hypothesis entity (if any) to pair it
// with, under parent/left/non-crossing structural constraints, merging
// equivalent partial states to keep the search tractable.
//
// The shape is borrowed from dtw.DTW: an explicit options-free DP loop
// generalized from a single numeric matrix into a segment-indexed
// frontier search, with an explicit backtrack/reconstruction step at
// the end instead of DTW's single-matrix backtrace.
package align

import (
	"errors"

	"github.com/nescoring/nescore/entity"
)

// Sentinel errors for engine invariant violations (spec §7, "Engine
// invariant violation"): these indicate a bug in the engine or its
// inputs, never a normal scoring outcome.
var (
	// ErrUncomputedCost indicates the search reached a cost cell the
	// cost-model adapter never populated.
	ErrUncomputedCost = errors.New("align: accessed an uncomputed cost cell")

	// ErrNotOneSurvivor indicates segment processing ended with a
	// number of surviving states other than one.
	ErrNotOneSurvivor = errors.New("align: expected exactly one surviving state at termination")
)

// FrontierChoice is the (start-alt, end-alt) pair chosen for a
// reference entity (spec §3 "Boundary choice").
type FrontierChoice struct {
	SF, EF int
}

// PairInfo is one matched (reference, hypothesis) pair with its
// substitution cost and error-type labels (spec §3 "Pair").
type PairInfo struct {
	Ref, Hyp   entity.ID
	Cost       float64
	ErrorTypes []int
}

// UnmappedInfo is one entity left without a counterpart at the segment
// where it was resolved, with the miss cost charged against it.
type UnmappedInfo struct {
	Entity     entity.ID
	Cost       float64
	ErrorTypes []int
}

// SegmentDelta is the per-segment contribution to the final alignment:
// pairs newly formed while processing this segment, and entities left
// unmapped at this segment (spec §4.4).
type SegmentDelta struct {
	AddedPairs []PairInfo
	Unmapped   []UnmappedInfo
}
