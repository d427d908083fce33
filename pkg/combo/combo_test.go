package combo

import (
	"testing"

	"github.com/weftloop/conduit-solver/pkg/board"
	"github.com/weftloop/conduit-solver/pkg/catalogue"
	"github.com/weftloop/conduit-solver/pkg/geom"
)

func TestDetermineStartCombinationsCountsAndShape(t *testing.T) {
	b := board.New()
	b.SetOpenPoints([]geom.Position{{I: 0, J: 0}, {I: 7, J: 3}})

	combos := DetermineStartCombinations(b)
	// C(8,2) = 28: all 8 pieces carry a point and none is placed by hints.
	if len(combos) != 28 {
		t.Fatalf("expected 28 combinations, got %d", len(combos))
	}
	for _, c := range combos {
		if len(c) != 2 {
			t.Fatalf("expected size-2 combinations, got %v", c)
		}
		if c[0] >= c[1] {
			t.Fatalf("expected ascending piece indices within a combination, got %v", c)
		}
		for _, idx := range c {
			if !catalogue.Pieces[idx].HasPointOnFirstSide {
				t.Fatalf("combination %v includes a non-point-bearing piece %d", c, idx)
			}
		}
	}
	// Lexicographic order: the first combination is the two
	// lowest-indexed point-bearing pieces.
	if combos[0][0] != 0 || combos[0][1] != 1 {
		t.Fatalf("expected first combination [0,1], got %v", combos[0])
	}
}

func TestDetermineStartCombinationsEmptyHintsSingleEmptySubset(t *testing.T) {
	// spec.md §8: empty level hints => combinations are the single
	// subset of size 0.
	b := board.New()
	combos := DetermineStartCombinations(b)
	if len(combos) != 1 {
		t.Fatalf("expected exactly one combination, got %d", len(combos))
	}
	if len(combos[0]) != 0 {
		t.Fatalf("expected the single combination to be empty, got %v", combos[0])
	}
}

func TestDetermineStartCombinationsExcludesHintPlacedPieces(t *testing.T) {
	b := board.New()
	b.SetOpenPoints([]geom.Position{{I: 0, J: 0}})
	if err := b.AddPiece(catalogue.CornerA, 0, geom.Position{I: 0, J: 0}, 0); err != nil {
		t.Fatalf("AddPiece: %v", err)
	}

	combos := DetermineStartCombinations(b)
	for _, c := range combos {
		for _, idx := range c {
			if idx == catalogue.CornerA {
				t.Fatalf("combination %v must not include the already-placed CornerA", c)
			}
		}
	}
	// 7 remaining point-bearing pieces, choose 1.
	if len(combos) != 7 {
		t.Fatalf("expected 7 combinations, got %d", len(combos))
	}
}

func TestLoadCombinationDataPrefixRestrictedToSideZero(t *testing.T) {
	b := board.New()
	b.SetOpenPoints([]geom.Position{{I: 0, J: 0}})
	combos := DetermineStartCombinations(b)

	priority, mask := LoadCombinationData(b, combos, 0)
	if len(priority) != catalogue.NumPieces {
		t.Fatalf("expected all %d pieces in the priority list, got %d", catalogue.NumPieces, len(priority))
	}
	prefixPiece := combos[0][0]
	if priority[0] != prefixPiece {
		t.Fatalf("expected the combination's piece first in priority, got %v", priority)
	}
	if !mask.Allows(prefixPiece, 0) {
		t.Fatalf("expected side 0 allowed for the prefix piece")
	}
	for side := 1; side < len(catalogue.Pieces[prefixPiece].Sides); side++ {
		if mask.Allows(prefixPiece, side) {
			t.Fatalf("expected only side 0 allowed for the prefix piece, side %d was allowed", side)
		}
	}
}

func TestLoadCombinationDataNonPrefixPointPieceBarredFromSideZero(t *testing.T) {
	b := board.New()
	b.SetOpenPoints([]geom.Position{{I: 0, J: 0}})
	combos := DetermineStartCombinations(b)

	_, mask := LoadCombinationData(b, combos, 0)
	prefixPiece := combos[0][0]
	for idx := 0; idx < catalogue.NumPieces; idx++ {
		if idx == prefixPiece || !catalogue.Pieces[idx].HasPointOnFirstSide {
			continue
		}
		if mask.Allows(idx, 0) {
			t.Fatalf("non-prefix point-bearing piece %d must not be allowed on side 0", idx)
		}
	}
}

func TestLoadCombinationDataExcludesHintPlacedPieceFromPriority(t *testing.T) {
	b := board.New()
	b.SetOpenPoints([]geom.Position{{I: 0, J: 0}})
	if err := b.AddPiece(catalogue.SquarePiece, 0, geom.Position{I: 4, J: 0}, 0); err != nil {
		t.Fatalf("AddPiece: %v", err)
	}

	combos := DetermineStartCombinations(b)
	priority, _ := LoadCombinationData(b, combos, 0)
	for _, idx := range priority {
		if idx == catalogue.SquarePiece {
			t.Fatalf("priority list must not include the already-placed SquarePiece: %v", priority)
		}
	}
	if len(priority) != catalogue.NumPieces-1 {
		t.Fatalf("expected %d entries, got %d", catalogue.NumPieces-1, len(priority))
	}
}
