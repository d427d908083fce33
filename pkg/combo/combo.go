// Package combo enumerates the combinatorial driver from spec.md §4.6:
// before the depth-first search runs, the point-bearing pieces not
// already placed by level hints must be distributed among the level's
// open obligatory points. Grounded on the teacher's
// pkg/generator/backtracking.go combination-scoring loop, which walks
// the same lexicographic "next combination" index array over a
// candidate chain before scoring and trying each one.
package combo

import (
	"github.com/weftloop/conduit-solver/pkg/board"
	"github.com/weftloop/conduit-solver/pkg/catalogue"
)

// Combination is one size-k subset of point-bearing, not-yet-placed
// piece indices, in ascending catalogue order -- the ordered prefix of
// one DFS attempt's piece-priority list.
type Combination []int

// SideMask records, per piece index, which of its sides the DFS may try
// this attempt. Bit k set means side k is allowed.
type SideMask [catalogue.NumPieces]uint8

// Allows reports whether side sideIdx of piece pieceIdx may be tried
// under this mask.
func (m SideMask) Allows(pieceIdx, sideIdx int) bool {
	return m[pieceIdx]&(1<<uint(sideIdx)) != 0
}

func pointBearingUnplaced(b *board.Board) []int {
	var p []int
	for idx := 0; idx < catalogue.NumPieces; idx++ {
		if catalogue.Pieces[idx].HasPointOnFirstSide && !b.Pieces[idx].Placed {
			p = append(p, idx)
		}
	}
	return p
}

// DetermineStartCombinations enumerates all C(|P|, k) size-k subsets of
// the board's point-bearing unplaced pieces, lexicographically by
// ascending piece index, where k is the number of open obligatory
// points the level still has to wire (spec.md §4.6). Bounded: at most 8
// point-bearing pieces and up to 4 open points give C(8,4) = 70.
//
// spec.md's external shape also threads the level hints through this
// call, but k and P are both fully determined by board state alone
// (b.OpenPoints and b.Pieces[*].Placed already reflect the hints
// InitBoard applied), so the hints are not a parameter here.
func DetermineStartCombinations(b *board.Board) []Combination {
	p := pointBearingUnplaced(b)
	k := len(b.OpenPoints)
	if k > len(p) {
		// Cannot happen for any real level (spec.md §8), but an empty
		// result is the safe, well-defined answer rather than a panic.
		return nil
	}

	var combos []Combination
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		c := make(Combination, k)
		for i, v := range idx {
			c[i] = p[v]
		}
		combos = append(combos, c)

		// Standard lexicographic next-combination step: advance the
		// rightmost index that still has room, then cascade the rest.
		i := k - 1
		for i >= 0 && idx[i] == i+len(p)-k {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return combos
}

// LoadCombinationData builds the piece-priority list and per-piece side
// mask for combos[idx]: the combination's pieces lead the list (in
// combination order), restricted to side 0 only; every other piece
// already placed by level hints is left out of the priority list
// entirely (the DFS never attempts to re-place it); every other piece
// follows in default catalogue order, with point-bearing non-prefix
// pieces barred from side 0 (spec.md §4.6: "to avoid duplicating work").
// Every point-bearing piece in the catalogue carries a second,
// non-point side (see pkg/catalogue), so a non-prefix point piece
// always keeps at least one allowed side in its mask entry: its point
// side is unavailable for this attempt, but its alternate footprint
// remains usable to help tile the rest of the grid.
func LoadCombinationData(b *board.Board, combos []Combination, idx int) (priority []int, mask SideMask) {
	combo := combos[idx]
	inCombo := make(map[int]bool, len(combo))
	for _, pieceIdx := range combo {
		inCombo[pieceIdx] = true
	}

	priority = append(priority, combo...)
	for pieceIdx := 0; pieceIdx < catalogue.NumPieces; pieceIdx++ {
		if inCombo[pieceIdx] || b.Pieces[pieceIdx].Placed {
			continue
		}
		priority = append(priority, pieceIdx)
	}

	for _, pieceIdx := range combo {
		mask[pieceIdx] = 1 // side 0 only
	}
	for pieceIdx := 0; pieceIdx < catalogue.NumPieces; pieceIdx++ {
		if inCombo[pieceIdx] {
			continue
		}
		numSides := len(catalogue.Pieces[pieceIdx].Sides)
		for side := 0; side < numSides; side++ {
			if side == 0 && catalogue.Pieces[pieceIdx].HasPointOnFirstSide {
				continue
			}
			mask[pieceIdx] |= 1 << uint(side)
		}
	}

	return priority, mask
}
