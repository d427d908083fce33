package board

import (
	"github.com/weftloop/conduit-solver/pkg/catalogue"
	"github.com/weftloop/conduit-solver/pkg/geom"
)

// AddPiece validates and, on success, stamps (pieceIdx, sideIdx, base,
// rotation) onto the board: missing connections push first, then normal
// cells, mirroring Transform/ValidatePlacement's order. On any validation
// error the board is left exactly as it was (spec.md §4.3, invariant 3).
func (b *Board) AddPiece(pieceIdx, sideIdx int, base geom.Position, rotation int) error {
	if err := ValidatePlacement(b, pieceIdx, sideIdx, base, rotation); err != nil {
		return err
	}

	side := catalogue.Pieces[pieceIdx].Sides[sideIdx]
	cells, mcs, err := Transform(side, base, rotation)
	if err != nil {
		// Unreachable: ValidatePlacement already transformed successfully.
		return err
	}

	for _, mc := range mcs {
		b.Squares[mc.Pos.I][mc.Pos.J].push(&Cell{
			Type:        mc.Type,
			Pos:         mc.Pos,
			Connections: mc.Connections,
			PieceIdx:    pieceIdx,
			SideIdx:     sideIdx,
		})
	}
	for _, c := range cells {
		b.Squares[c.Pos.I][c.Pos.J].push(&Cell{
			Type:        c.Type,
			Pos:         c.Pos,
			Connections: c.Connections,
			PieceIdx:    pieceIdx,
			SideIdx:     sideIdx,
		})
	}

	b.Pieces[pieceIdx].Placed = true
	b.Pieces[pieceIdx].Side = sideIdx
	b.Pieces[pieceIdx].Base = base
	b.Pieces[pieceIdx].Rotation = rotation
	b.AddedPieceIndices = append(b.AddedPieceIndices, pieceIdx)

	switch pieceIdx {
	case catalogue.Line2_2:
		b.Line2_2Placed = true
	case catalogue.TPiece:
		b.TPiecePlaced = true
	}

	return nil
}

// UndoLastPiece is the exact inverse of the most recent AddPiece: it pops
// each of the last piece's cells from the top of its square's stack (in
// the reverse of the order AddPiece pushed them), then clears the
// piece's placed flag and placement fields. Precondition: at least one
// non-hint piece has been placed.
func (b *Board) UndoLastPiece() error {
	n := len(b.AddedPieceIndices)
	if n == 0 {
		return ErrNoPieceToUndo
	}
	pieceIdx := b.AddedPieceIndices[n-1]
	b.AddedPieceIndices = b.AddedPieceIndices[:n-1]

	ps := b.Pieces[pieceIdx]
	side := catalogue.Pieces[pieceIdx].Sides[ps.Side]

	for i := len(side.Cells) - 1; i >= 0; i-- {
		pos := geom.Translate(ps.Base, side.Cells[i].Rel, ps.Rotation)
		b.Squares[pos.I][pos.J].pop()
	}
	for i := len(side.MissingConnections) - 1; i >= 0; i-- {
		pos := geom.Translate(ps.Base, side.MissingConnections[i].Rel, ps.Rotation)
		b.Squares[pos.I][pos.J].pop()
	}

	b.Pieces[pieceIdx].Placed = false
	b.Pieces[pieceIdx].Side = 0
	b.Pieces[pieceIdx].Base = geom.Position{}
	b.Pieces[pieceIdx].Rotation = 0

	switch pieceIdx {
	case catalogue.Line2_2:
		b.Line2_2Placed = false
	case catalogue.TPiece:
		b.TPiecePlaced = false
	}

	return nil
}

// SetObligatory records a level-hint obligatory cell at pos, read-only
// thereafter. Used only by level.InitBoard during board construction.
func (b *Board) SetObligatory(pos geom.Position, cellType catalogue.CellType, connections []geom.Direction) {
	b.Obligatory[pos.I][pos.J] = &Cell{Type: cellType, Pos: pos, Connections: connections, PieceIdx: -1, SideIdx: -1}
}

// SetOpenPoints records the level's declared open-point positions. Used
// only by level.InitBoard during board construction.
func (b *Board) SetOpenPoints(points []geom.Position) {
	b.OpenPoints = points
}

// PlaceCellForTest pushes a cell directly onto pos's stack, bypassing the
// validator. Exists so other packages' tests (pkg/checks) can assemble
// fixture boards exercising the post-placement checks in isolation,
// without re-deriving a legitimate multi-piece placement sequence for
// every scenario. Not used by production code.
func (b *Board) PlaceCellForTest(pos geom.Position, cellType catalogue.CellType, connections []geom.Direction) {
	b.Squares[pos.I][pos.J].push(&Cell{Type: cellType, Pos: pos, Connections: connections, PieceIdx: -1, SideIdx: -1})
}
