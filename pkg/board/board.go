// Package board holds the incremental board state: an 8x4 matrix of
// per-square cell stacks, the read-only obligatory overlay from level
// hints, and the live per-piece placement/cursor state. It also hosts the
// placement transform, the pre-placement validator, and the add/undo
// mutators -- the full "can this go here, and how do I take it back"
// surface the solver and an interactive visualiser both drive.
package board

import (
	"github.com/weftloop/conduit-solver/pkg/catalogue"
	"github.com/weftloop/conduit-solver/pkg/geom"
)

// maxStackDepth is the hard invariant from spec.md §3: at most two cells
// ever coexist at one square (a normal cell plus a missing connection, or
// two missing connections forming a double MC).
const maxStackDepth = 2

// Cell is a concrete, placed cell instance: a catalogue.CellTemplate that
// has been rotated, translated, and (if normal) attributed to the piece
// and side that stamped it. Obligatory-overlay cells share this same
// shape but carry PieceIdx = -1 since no piece owns them.
type Cell struct {
	Type        catalogue.CellType
	Pos         geom.Position
	Connections []geom.Direction
	PieceIdx    int
	SideIdx     int
}

// Square is the stack of cells currently occupying one grid position,
// insertion-ordered. A bounded inline array (capacity 2) rather than a
// linked arena: the bound is a hard invariant, not a tunable capacity, so
// there is nothing a real arena would buy here (see DESIGN.md).
type Square struct {
	Cells [maxStackDepth]*Cell
	Len   int
}

// Top returns the most recently pushed cell, or nil if the square is empty.
func (s *Square) Top() *Cell {
	if s.Len == 0 {
		return nil
	}
	return s.Cells[s.Len-1]
}

// TopNormal returns the most recently pushed non-MissingConnection cell,
// or nil if none is present. Used by the post-placement checks to treat
// a square's "real" occupant distinctly from any MC placeholder sharing it.
func (s *Square) TopNormal() *Cell {
	for k := s.Len - 1; k >= 0; k-- {
		if s.Cells[k].Type != catalogue.MissingConnection {
			return s.Cells[k]
		}
	}
	return nil
}

func (s *Square) push(c *Cell) {
	s.Cells[s.Len] = c
	s.Len++
}

func (s *Square) pop() *Cell {
	s.Len--
	c := s.Cells[s.Len]
	s.Cells[s.Len] = nil
	return c
}

// Cursor is a piece's depth-first-search resume point: the next
// (side, i, j, rotation) to try. Cursors live on the piece, not on a
// recursion stack, so a re-entry to the same piece at the same search
// depth resumes where it left off (spec.md §4.7, §9).
type Cursor struct {
	Side, I, J, Rotation int
}

// PieceState is the live, mutable state for one catalogue piece: whether
// and where it is currently placed, and its DFS resume cursor. The
// catalogue entry itself never changes; this is what add/undo mutate.
type PieceState struct {
	Placed   bool
	Side     int
	Base     geom.Position
	Rotation int
	Cursor   Cursor
}

// Board is the full incremental board state for one solve.
type Board struct {
	Squares    [geom.Width][geom.Height]Square
	Obligatory [geom.Width][geom.Height]*Cell
	Pieces     [catalogue.NumPieces]PieceState

	// AddedPieceIndices is the placement stack in insertion order; undo
	// always pops its tail.
	AddedPieceIndices []int

	// Line2_2Placed and TPiecePlaced track the vanilla game's scarcity
	// rule for double missing connections: a line-shaped double MC may
	// only be *created* (a second MC stacked onto an existing one) while
	// Line2_2 hasn't been played yet, and a bend-shaped one only while
	// TPiece hasn't (original source: board.c's
	// has_line2_2_been_added/has_T_piece_been_added). A normal cell
	// landing on an already-existing double MC would be a third cell on
	// that square, so ValidatePlacement's normal-cell loop rejects it with
	// ErrTripleMissingConnectionTile whichever piece it belongs to.
	Line2_2Placed bool
	TPiecePlaced  bool

	// OpenPoints is the fixed list of obligatory point positions declared
	// "open" by the level hints. It never changes during a solve -- it is
	// not "points not yet filled by a piece", it is "points the level
	// declares must still be wired to another endpoint" (spec.md §3, §4.5).
	OpenPoints []geom.Position
}

// HasNormalCell reports whether pos currently holds any non-MissingConnection cell.
func (b *Board) HasNormalCell(pos geom.Position) bool {
	return b.Squares[pos.I][pos.J].TopNormal() != nil
}

// TopNormalCell returns the topmost non-MissingConnection cell at pos, or nil.
func (b *Board) TopNormalCell(pos geom.Position) *Cell {
	return b.Squares[pos.I][pos.J].TopNormal()
}

// IsFullySolved reports whether every grid square holds exactly one
// normal cell and none holds a lingering MissingConnection (spec.md §8:
// "a solved board has zero MissingConnection cells and every grid
// square holds exactly one normal cell"). A MissingConnection sharing a
// square with a normal cell is not lingering: the validator only lets the
// two coexist when the normal cell carries the demanded direction, and it
// never lets two normal cells share a square.
func (b *Board) IsFullySolved() bool {
	for i := 0; i < geom.Width; i++ {
		for j := 0; j < geom.Height; j++ {
			if b.Squares[i][j].TopNormal() == nil {
				return false
			}
		}
	}
	return true
}

// IsObligatoryPoint reports whether pos is one of the level's declared open points.
func (b *Board) IsObligatoryPoint(pos geom.Position) bool {
	for _, p := range b.OpenPoints {
		if p == pos {
			return true
		}
	}
	return false
}

// New returns an empty board with no obligatory overlay and no open points.
// level.InitBoard (pkg/level/level.go) is the usual entry point; New is
// exposed for unit tests that want to exercise the validator/mutator in
// isolation.
func New() *Board {
	b := &Board{}
	for i := range b.Pieces {
		b.Pieces[i] = PieceState{}
	}
	return b
}
