// Package solver drives the depth-first search over placements
// described in spec.md §4.7: one combination at a time (pkg/combo), one
// piece at a time from its priority list, advancing nested
// (side, i, j, rotation) cursors and backtracking through
// board.UndoLastPiece on any rejected placement. Grounded on the
// teacher's pkg/generator/backtracking.go (AttemptLocalBacktrack): bounded
// retry with explicit undo and common.Verbose logging of every
// attempt/backtrack, though here backtracking is exhaustive rather than
// heuristic since this domain has no per-candidate scoring to prioritize.
//
// Implemented recursively rather than as an explicit cursor/stack state
// machine: spec.md §9 notes this is semantically equivalent provided the
// same deterministic (side, i, j, rotation) iteration order is
// preserved, which it is below.
package solver

import (
	"github.com/weftloop/conduit-solver/pkg/board"
	"github.com/weftloop/conduit-solver/pkg/catalogue"
	"github.com/weftloop/conduit-solver/pkg/checks"
	"github.com/weftloop/conduit-solver/pkg/combo"
	"github.com/weftloop/conduit-solver/pkg/common"
	"github.com/weftloop/conduit-solver/pkg/geom"
)

// Options plays the role the teacher's generator.GenerationConfig plays:
// a single plain struct of knobs threaded through the search.
type Options struct {
	// SlowChecksEnabled gates the A*-backed dead-end check (spec.md §4.5,
	// §6's "--fps 0" behaviour).
	SlowChecksEnabled bool
	// MaxAttempts bounds the number of add_piece attempts across the
	// whole search; 0 means unbounded.
	MaxAttempts int
	// Cancel, if non-nil, is polled before every attempt; returning true
	// aborts the search early with Result.Solved == false.
	Cancel func() bool
}

// DefaultOptions returns the options used for a normal, unattended solve:
// all checks enabled, no attempt cap, no cancellation.
func DefaultOptions() Options {
	return Options{SlowChecksEnabled: true}
}

// Placement is one entry of a solved board's placement sequence.
type Placement struct {
	PieceIdx, SideIdx int
	Base              geom.Position
	Rotation          int
}

// Result is the outcome of one Solve call.
type Result struct {
	Solved     bool
	Attempts   int
	Placements []Placement
}

// Solve runs the combination driver followed by the DFS for each
// combination in turn, stopping at the first solution (spec.md's
// Non-goals: first-solution semantics, not all solutions). b is mutated
// in place; on an unsolved result the board is restored to exactly the
// state it had on entry (every attempted placement is undone).
func Solve(b *board.Board, opts Options) Result {
	combos := combo.DetermineStartCombinations(b)
	attempts := 0

	for idx := range combos {
		if opts.Cancel != nil && opts.Cancel() {
			common.Verbose("solver: cancelled before combination %d/%d", idx, len(combos))
			return Result{Attempts: attempts}
		}
		priority, mask := combo.LoadCombinationData(b, combos, idx)
		common.Verbose("solver: trying combination %d/%d, priority=%v", idx+1, len(combos), priority)

		ok, aborted := placeFrom(b, priority, mask, 0, opts, &attempts)
		if ok {
			common.Verbose("solver: solved after %d attempts", attempts)
			return Result{Solved: true, Attempts: attempts, Placements: snapshotPlacements(b)}
		}
		if aborted {
			return Result{Attempts: attempts}
		}
	}

	common.Verbose("solver: no solution across %d combinations (%d attempts)", len(combos), attempts)
	return Result{Attempts: attempts}
}

// placeFrom attempts to place priority[depth:] in order, returning
// (true, false) on success, (false, true) if the search was aborted
// (cancelled or over budget), or (false, false) if this depth is
// exhausted with the board restored to its state on entry. A piece left
// with no allowed side by this attempt's mask is skipped rather than
// treated as a failure: spec.md §4.6 only bars a non-prefix point
// piece's point side, it doesn't require the piece be placed some other
// way. Every piece in the catalogue keeps at least one side outside
// that bar (see combo.LoadCombinationData), so this branch is a
// defensive fallback rather than a case the current catalogue reaches.
func placeFrom(b *board.Board, priority []int, mask combo.SideMask, depth int, opts Options, attempts *int) (solved, aborted bool) {
	if depth >= len(priority) {
		// spec.md §8's terminal condition ("piece_selected exceeds the
		// priority list") only holds if the board is actually complete:
		// a combination that leaves skipped pieces' squares uncovered
		// (see the no-allowed-side branch below) must keep backtracking,
		// not report a false solve.
		return b.IsFullySolved(), false
	}
	pieceIdx := priority[depth]
	piece := catalogue.Pieces[pieceIdx]

	anySideAllowed := false
	for sideIdx := range piece.Sides {
		if mask.Allows(pieceIdx, sideIdx) {
			anySideAllowed = true
			break
		}
	}
	if !anySideAllowed {
		// This combination's mask bars every side of this piece (a
		// non-prefix, single-sided point piece -- spec.md §4.6's "any
		// side except side 0" has nothing left to try). The piece simply
		// isn't used this attempt; move on rather than failing the whole
		// combination outright.
		return placeFrom(b, priority, mask, depth+1, opts, attempts)
	}

	for sideIdx, side := range piece.Sides {
		if !mask.Allows(pieceIdx, sideIdx) {
			continue
		}
		maxRotations := side.MaxRotations
		if maxRotations <= 0 {
			maxRotations = 4
		}
		for i := 0; i < geom.Width; i++ {
			for j := 0; j < geom.Height; j++ {
				base := geom.Position{I: i, J: j}
				if b.HasNormalCell(base) {
					continue // pre-filter: spec.md §4.7
				}
				for rotation := 0; rotation < maxRotations; rotation++ {
					if opts.Cancel != nil && opts.Cancel() {
						return false, true
					}
					*attempts++
					if opts.MaxAttempts > 0 && *attempts > opts.MaxAttempts {
						return false, true
					}

					if err := b.AddPiece(pieceIdx, sideIdx, base, rotation); err != nil {
						continue
					}
					if err := checks.RunAllChecks(b, opts.SlowChecksEnabled); err != nil {
						common.Verbose("solver: backtrack piece %d side %d base %+v rot %d: %v", pieceIdx, sideIdx, base, rotation, err)
						if uerr := b.UndoLastPiece(); uerr != nil {
							common.Error("solver: undo failed after a failed post-check: %v", uerr)
						}
						continue
					}

					solved, aborted := placeFrom(b, priority, mask, depth+1, opts, attempts)
					if solved {
						return true, false
					}
					// Unwind this placement whether the subtree was
					// exhausted or aborted: Solve's contract is that any
					// non-solved result leaves the board exactly as it
					// found it, cancellation and attempt caps included.
					if uerr := b.UndoLastPiece(); uerr != nil {
						common.Error("solver: undo failed while backtracking: %v", uerr)
					}
					if aborted {
						return false, true
					}
				}
			}
		}
	}
	return false, false
}

func snapshotPlacements(b *board.Board) []Placement {
	placements := make([]Placement, 0, len(b.AddedPieceIndices))
	for _, pieceIdx := range b.AddedPieceIndices {
		st := b.Pieces[pieceIdx]
		placements = append(placements, Placement{
			PieceIdx: pieceIdx,
			SideIdx:  st.Side,
			Base:     st.Base,
			Rotation: st.Rotation,
		})
	}
	return placements
}
