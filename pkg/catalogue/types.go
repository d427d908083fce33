// Package catalogue holds the compile-time description of the 10 pieces:
// their sides, the cells and missing-connection declarations each side
// stamps, border halos for locality checks, and rotation limits. This data
// is immutable after init and shared read-mostly by every solve; per-piece
// *live* state (placed flag, current placement, resume cursor) belongs to
// board.Board, never here.
package catalogue

import "github.com/weftloop/conduit-solver/pkg/geom"

// CellType is one of the five cell kinds a square can hold.
type CellType int

const (
	Point CellType = iota
	Line
	Bend
	Empty
	MissingConnection
)

func (t CellType) String() string {
	switch t {
	case Point:
		return "point"
	case Line:
		return "line"
	case Bend:
		return "bend"
	case Empty:
		return "empty"
	case MissingConnection:
		return "missing-connection"
	default:
		return "invalid"
	}
}

// CellTemplate is one stamped cell (or missing-connection declaration) in a
// side's own unrotated frame: a relative offset from the side's origin, a
// type, and an ordered list of connection directions (also unrotated).
// Point cells carry exactly one direction, Line/Bend exactly two, Empty
// none, and MissingConnection exactly one (the demanded incoming direction).
type CellTemplate struct {
	Rel         geom.Position
	Type        CellType
	Connections []geom.Direction
}

// Side is one rotatable, translatable footprint of a piece: the normal
// cells it stamps, the missing-connection declarations it stamps, a border
// halo (grid squares orthogonally adjacent to the footprint, used by the
// isolated-empty-tile check), and a rotation limit (less than 4 when the
// side is rotationally symmetric, to avoid exploring isomorphic rotations).
//
// MCClosesLoop is parallel to MissingConnections: true for the missing
// connections the loop check should treat as walk-start candidates (see
// DESIGN.md's note on the loop-check blind spot -- this is deliberately not
// every missing connection on the side).
type Side struct {
	Cells              []CellTemplate
	MissingConnections []CellTemplate
	MCClosesLoop       []bool
	Border             []geom.Position
	MaxRotations       int
}

// Piece is an ordered list of 1-3 sides plus the point flag used by the
// combination driver to identify point-bearing pieces.
type Piece struct {
	Name                string
	Sides               []Side
	HasPointOnFirstSide bool
}
