package checks

import (
	"testing"

	"github.com/weftloop/conduit-solver/pkg/board"
	"github.com/weftloop/conduit-solver/pkg/catalogue"
	"github.com/weftloop/conduit-solver/pkg/geom"
)

// buildIsolatedRing surrounds (4,2) with four distinct, non-overlapping
// piece placements, each contributing a normal cell on one of its four
// neighbours, leaving (4,2) itself untouched.
func buildIsolatedRing(t *testing.T) *board.Board {
	t.Helper()
	b := board.New()
	placements := []struct {
		piece, side, rotation int
		base                  geom.Position
	}{
		{catalogue.Line2_1, 0, 0, geom.Position{I: 5, J: 2}}, // right neighbour
		{catalogue.Line2_2, 0, 2, geom.Position{I: 3, J: 2}}, // left neighbour
		{catalogue.CornerA, 0, 0, geom.Position{I: 2, J: 1}}, // up neighbour (Bend lands on (4,1))
		{catalogue.Line3_2, 0, 2, geom.Position{I: 4, J: 3}}, // down neighbour (Point on (4,3), run leftward to (1,3))
	}
	for _, p := range placements {
		if err := b.AddPiece(p.piece, p.side, p.base, p.rotation); err != nil {
			t.Fatalf("placing piece %d: %v", p.piece, err)
		}
	}
	return b
}

func TestCheckIsolatedEmptyTileFiresWhenAllFourNeighboursFilled(t *testing.T) {
	// Mirrors spec.md §8 scenario 4: a cell whose every 4-neighbour is
	// already occupied can never be filled by any future piece.
	b := buildIsolatedRing(t)
	synthetic := catalogue.Side{Border: []geom.Position{{I: 0, J: 0}}}
	err := checkIsolatedEmptyTile(b, synthetic, geom.Position{I: 4, J: 2}, 0)
	if err != board.ErrIsolatedEmptyTile {
		t.Fatalf("expected ErrIsolatedEmptyTile, got %v", err)
	}
}

func TestCheckIsolatedEmptyTileOkWithOneOpenNeighbour(t *testing.T) {
	b := board.New()
	// Same ring, minus the down neighbour: (4,2) still has an escape route.
	placements := []struct {
		piece, side, rotation int
		base                  geom.Position
	}{
		{catalogue.Line2_1, 0, 0, geom.Position{I: 5, J: 2}},
		{catalogue.Line2_2, 0, 2, geom.Position{I: 3, J: 2}},
		{catalogue.CornerA, 0, 0, geom.Position{I: 2, J: 1}},
	}
	for _, p := range placements {
		if err := b.AddPiece(p.piece, p.side, p.base, p.rotation); err != nil {
			t.Fatalf("placing piece %d: %v", p.piece, err)
		}
	}
	synthetic := catalogue.Side{Border: []geom.Position{{I: 0, J: 0}}}
	if err := checkIsolatedEmptyTile(b, synthetic, geom.Position{I: 4, J: 2}, 0); err != nil {
		t.Fatalf("expected no error with an open neighbour, got %v", err)
	}
}

// TestWalkPathDetectsClosedLoop builds a minimal 4-cell ring of Bend cells
// (no piece in the fixed catalogue can close a real loop entirely on its
// own -- see DESIGN.md -- so the ring is assembled directly via
// board.PlaceCellForTest, exercising the same walkPath used by checkLoop
// in production) and confirms a walk starting at one of its cells returns
// to its own origin.
func TestWalkPathDetectsClosedLoop(t *testing.T) {
	b := board.New()
	ring := []struct {
		pos  geom.Position
		conn []geom.Direction
	}{
		{geom.Position{I: 1, J: 1}, []geom.Direction{geom.Right, geom.Down}},
		{geom.Position{I: 2, J: 1}, []geom.Direction{geom.Left, geom.Down}},
		{geom.Position{I: 2, J: 2}, []geom.Direction{geom.Up, geom.Left}},
		{geom.Position{I: 1, J: 2}, []geom.Direction{geom.Right, geom.Up}},
	}
	for _, c := range ring {
		b.PlaceCellForTest(c.pos, catalogue.Bend, c.conn)
	}

	terminus, returnedToOrigin, open := walkPath(b, geom.Position{I: 1, J: 1}, geom.Right)
	if !returnedToOrigin {
		t.Fatalf("expected the walk to close the loop, terminus=%+v open=%v", terminus, open)
	}
}

func TestCheckLoopFiresViaSyntheticClosingSide(t *testing.T) {
	b := board.New()
	ring := []struct {
		pos  geom.Position
		conn []geom.Direction
	}{
		{geom.Position{I: 1, J: 1}, []geom.Direction{geom.Right, geom.Down}},
		{geom.Position{I: 2, J: 1}, []geom.Direction{geom.Left, geom.Down}},
		{geom.Position{I: 2, J: 2}, []geom.Direction{geom.Up, geom.Left}},
		{geom.Position{I: 1, J: 2}, []geom.Direction{geom.Right, geom.Up}},
	}
	for _, c := range ring {
		b.PlaceCellForTest(c.pos, catalogue.Bend, c.conn)
	}

	synthetic := catalogue.Side{
		MissingConnections: []catalogue.CellTemplate{
			{Rel: geom.Position{I: 0, J: 0}, Type: catalogue.MissingConnection, Connections: []geom.Direction{geom.Right}},
		},
		MCClosesLoop: []bool{true},
	}
	err := checkLoop(b, synthetic, geom.Position{I: 1, J: 1}, 0)
	if err != board.ErrLoopPath {
		t.Fatalf("expected ErrLoopPath, got %v", err)
	}
}

func TestWalkPathStopsAtPointWithoutLooping(t *testing.T) {
	b := board.New()
	if err := b.AddPiece(catalogue.CornerA, 0, geom.Position{I: 0, J: 0}, 0); err != nil {
		t.Fatalf("AddPiece: %v", err)
	}
	// Walking from CornerA's own missing connection must reach its Point
	// and stop there, never looping: a single corner cannot close a loop
	// by itself (see DESIGN.md).
	terminus, returnedToOrigin, _ := walkPath(b, geom.Position{I: 2, J: 1}, geom.Up)
	if returnedToOrigin {
		t.Fatalf("a lone corner must never report a closed loop")
	}
	if terminus != (geom.Position{I: 0, J: 0}) {
		t.Fatalf("expected the walk to terminate at the piece's point, got %+v", terminus)
	}
}

func TestCheckDeadEndFiresWhenWallSeparatesOpenPoints(t *testing.T) {
	b := board.New()
	b.SetOpenPoints([]geom.Position{{I: 0, J: 0}, {I: 7, J: 3}})
	// A full column wall at I=4 severs the grid into two halves.
	for j := 0; j < geom.Height; j++ {
		b.PlaceCellForTest(geom.Position{I: 4, J: j}, catalogue.Line, []geom.Direction{geom.Up, geom.Down})
	}
	if err := checkDeadEnd(b); err != board.ErrDeadEnd {
		t.Fatalf("expected ErrDeadEnd, got %v", err)
	}
}

func TestCheckDeadEndOkWithFewerThanTwoEndpoints(t *testing.T) {
	b := board.New()
	b.SetOpenPoints([]geom.Position{{I: 0, J: 0}})
	if err := checkDeadEnd(b); err != nil {
		t.Fatalf("expected no error with a single endpoint, got %v", err)
	}
}
