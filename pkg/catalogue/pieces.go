package catalogue

import "github.com/weftloop/conduit-solver/pkg/geom"

// Piece indices into Pieces, stable for the lifetime of the catalogue.
const (
	Line2_1 = iota
	Line2_2
	Line3_1
	Line3_2
	CornerA
	CornerB
	SquarePiece
	LPiece
	TPiece
	ZPiece
	NumPieces
)

// Pieces is the fixed 10-piece inventory. Built once at init from literal
// cell data; Border halos are filled in by computeBorders (see border.go)
// so they never have to be hand-authored or kept in sync by hand.
var Pieces [NumPieces]Piece

func init() {
	Pieces = [NumPieces]Piece{
		Line2_1: {
			Name:                "Line2_1",
			HasPointOnFirstSide: true,
			Sides: []Side{
				straightPointSide(1),
				{
					// Non-point alternate: a free 2-cell straight run with
					// both ends dangling, for when Line2_1 isn't in the
					// combination prefix. Two cells, matching side 0's
					// footprint size.
					Cells: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 0}, Type: Line, Connections: []geom.Direction{geom.Right, geom.Left}},
						{Rel: geom.Position{I: 1, J: 0}, Type: Line, Connections: []geom.Direction{geom.Right, geom.Left}},
					},
					MissingConnections: []CellTemplate{
						{Rel: geom.Position{I: -1, J: 0}, Type: MissingConnection, Connections: []geom.Direction{geom.Right}},
						{Rel: geom.Position{I: 2, J: 0}, Type: MissingConnection, Connections: []geom.Direction{geom.Left}},
					},
					MCClosesLoop: []bool{true, true},
					MaxRotations: 2,
				},
			},
		},
		Line2_2: {
			Name:                "Line2_2",
			HasPointOnFirstSide: true,
			Sides: []Side{
				straightPointSide(1),
				{
					// Non-point alternate: one connecting Line cell plus an
					// Empty companion cell, matching side 0's 2-cell
					// footprint. The Line cell's own connections run
					// perpendicular to the Empty cell's offset, so the two
					// never touch -- the Empty cell is pure padding.
					Cells: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 0}, Type: Line, Connections: []geom.Direction{geom.Down, geom.Up}},
						{Rel: geom.Position{I: 1, J: 0}, Type: Empty},
					},
					MissingConnections: []CellTemplate{
						{Rel: geom.Position{I: 0, J: -1}, Type: MissingConnection, Connections: []geom.Direction{geom.Down}},
						{Rel: geom.Position{I: 0, J: 1}, Type: MissingConnection, Connections: []geom.Direction{geom.Up}},
					},
					MCClosesLoop: []bool{true, true},
					MaxRotations: 4,
				},
			},
		},
		Line3_1: {
			Name:                "Line3_1",
			HasPointOnFirstSide: true,
			Sides: []Side{
				straightPointSide(3),
				{
					// Non-point alternate: a 3-cell straight run capped by
					// a bend, both ends dangling. Four cells, matching
					// side 0's footprint size.
					Cells: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 0}, Type: Line, Connections: []geom.Direction{geom.Right, geom.Left}},
						{Rel: geom.Position{I: 1, J: 0}, Type: Line, Connections: []geom.Direction{geom.Right, geom.Left}},
						{Rel: geom.Position{I: 2, J: 0}, Type: Line, Connections: []geom.Direction{geom.Right, geom.Left}},
						{Rel: geom.Position{I: 3, J: 0}, Type: Bend, Connections: []geom.Direction{geom.Left, geom.Up}},
					},
					MissingConnections: []CellTemplate{
						{Rel: geom.Position{I: -1, J: 0}, Type: MissingConnection, Connections: []geom.Direction{geom.Right}},
						{Rel: geom.Position{I: 3, J: -1}, Type: MissingConnection, Connections: []geom.Direction{geom.Down}},
					},
					MCClosesLoop: []bool{true, true},
					MaxRotations: 4,
				},
			},
		},
		Line3_2: {
			Name:                "Line3_2",
			HasPointOnFirstSide: true,
			Sides: []Side{
				straightPointSide(3),
				{
					// Non-point alternate: an Empty lead-in, a bend, then
					// a 2-cell straight run, both ends dangling. Four
					// cells, matching side 0's footprint size, and a
					// different shape from Line3_1's alternate so the two
					// pieces stay distinguishable.
					Cells: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 0}, Type: Empty},
						{Rel: geom.Position{I: 1, J: 0}, Type: Bend, Connections: []geom.Direction{geom.Right, geom.Down}},
						{Rel: geom.Position{I: 2, J: 0}, Type: Line, Connections: []geom.Direction{geom.Right, geom.Left}},
						{Rel: geom.Position{I: 3, J: 0}, Type: Line, Connections: []geom.Direction{geom.Right, geom.Left}},
					},
					MissingConnections: []CellTemplate{
						{Rel: geom.Position{I: 1, J: 1}, Type: MissingConnection, Connections: []geom.Direction{geom.Up}},
						{Rel: geom.Position{I: 4, J: 0}, Type: MissingConnection, Connections: []geom.Direction{geom.Left}},
					},
					MCClosesLoop: []bool{true, true},
					MaxRotations: 4,
				},
			},
		},
		CornerA: {
			Name:                "CornerA",
			HasPointOnFirstSide: true,
			Sides: []Side{
				{
					Cells: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 0}, Type: Point, Connections: []geom.Direction{geom.Right}},
						{Rel: geom.Position{I: 1, J: 0}, Type: Line, Connections: []geom.Direction{geom.Left, geom.Right}},
						{Rel: geom.Position{I: 2, J: 0}, Type: Bend, Connections: []geom.Direction{geom.Left, geom.Down}},
					},
					MissingConnections: []CellTemplate{
						{Rel: geom.Position{I: 2, J: 1}, Type: MissingConnection, Connections: []geom.Direction{geom.Up}},
					},
					MCClosesLoop: []bool{true},
					MaxRotations: 4,
				},
				{
					// Non-point alternate: a line-bend-bend chain, both
					// ends dangling. Three cells, matching side 0.
					Cells: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 0}, Type: Line, Connections: []geom.Direction{geom.Down, geom.Up}},
						{Rel: geom.Position{I: 0, J: 1}, Type: Bend, Connections: []geom.Direction{geom.Left, geom.Up}},
						{Rel: geom.Position{I: -1, J: 1}, Type: Bend, Connections: []geom.Direction{geom.Right, geom.Up}},
					},
					MissingConnections: []CellTemplate{
						{Rel: geom.Position{I: 0, J: -1}, Type: MissingConnection, Connections: []geom.Direction{geom.Down}},
						{Rel: geom.Position{I: -1, J: 0}, Type: MissingConnection, Connections: []geom.Direction{geom.Down}},
					},
					MCClosesLoop: []bool{true, true},
					MaxRotations: 4,
				},
			},
		},
		CornerB: {
			Name:                "CornerB",
			HasPointOnFirstSide: true,
			Sides: []Side{
				{
					Cells: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 0}, Type: Point, Connections: []geom.Direction{geom.Right}},
						{Rel: geom.Position{I: 1, J: 0}, Type: Line, Connections: []geom.Direction{geom.Left, geom.Right}},
						{Rel: geom.Position{I: 2, J: 0}, Type: Bend, Connections: []geom.Direction{geom.Left, geom.Up}},
					},
					MissingConnections: []CellTemplate{
						{Rel: geom.Position{I: 2, J: -1}, Type: MissingConnection, Connections: []geom.Direction{geom.Down}},
					},
					MCClosesLoop: []bool{true},
					MaxRotations: 4,
				},
				{
					// Non-point alternate: a line-bend-line chain, both
					// ends dangling. Three cells, matching side 0.
					Cells: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 0}, Type: Line, Connections: []geom.Direction{geom.Down, geom.Up}},
						{Rel: geom.Position{I: 0, J: 1}, Type: Bend, Connections: []geom.Direction{geom.Left, geom.Up}},
						{Rel: geom.Position{I: -1, J: 1}, Type: Line, Connections: []geom.Direction{geom.Right, geom.Left}},
					},
					MissingConnections: []CellTemplate{
						{Rel: geom.Position{I: 0, J: -1}, Type: MissingConnection, Connections: []geom.Direction{geom.Down}},
						{Rel: geom.Position{I: -2, J: 1}, Type: MissingConnection, Connections: []geom.Direction{geom.Right}},
					},
					MCClosesLoop: []bool{true, true},
					MaxRotations: 4,
				},
			},
		},
		SquarePiece: {
			Name:                "Square",
			HasPointOnFirstSide: false,
			Sides: []Side{
				{
					Cells: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 0}, Type: Empty},
						{Rel: geom.Position{I: 1, J: 0}, Type: Empty},
						{Rel: geom.Position{I: 0, J: 1}, Type: Empty},
						{Rel: geom.Position{I: 1, J: 1}, Type: Empty},
					},
					MaxRotations: 1,
				},
			},
		},
		LPiece: {
			Name:                "L",
			HasPointOnFirstSide: true,
			Sides: []Side{
				{
					Cells: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 0}, Type: Point, Connections: []geom.Direction{geom.Right}},
						{Rel: geom.Position{I: 1, J: 0}, Type: Line, Connections: []geom.Direction{geom.Left, geom.Right}},
						{Rel: geom.Position{I: 2, J: 0}, Type: Line, Connections: []geom.Direction{geom.Left, geom.Right}},
						{Rel: geom.Position{I: 3, J: 0}, Type: Bend, Connections: []geom.Direction{geom.Left, geom.Down}},
					},
					MissingConnections: []CellTemplate{
						{Rel: geom.Position{I: 3, J: 1}, Type: MissingConnection, Connections: []geom.Direction{geom.Up}},
					},
					MCClosesLoop: []bool{true},
					MaxRotations: 4,
				},
				{
					// Non-point alternate: a bend-line-bend-line zigzag,
					// both ends dangling. Four cells, matching side 0.
					Cells: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 0}, Type: Bend, Connections: []geom.Direction{geom.Down, geom.Left}},
						{Rel: geom.Position{I: 0, J: 1}, Type: Line, Connections: []geom.Direction{geom.Down, geom.Up}},
						{Rel: geom.Position{I: 0, J: 2}, Type: Bend, Connections: []geom.Direction{geom.Left, geom.Up}},
						{Rel: geom.Position{I: -1, J: 2}, Type: Line, Connections: []geom.Direction{geom.Right, geom.Left}},
					},
					MissingConnections: []CellTemplate{
						{Rel: geom.Position{I: -1, J: 0}, Type: MissingConnection, Connections: []geom.Direction{geom.Right}},
						{Rel: geom.Position{I: -2, J: 2}, Type: MissingConnection, Connections: []geom.Direction{geom.Right}},
					},
					MCClosesLoop: []bool{true, true},
					MaxRotations: 4,
				},
			},
		},
		TPiece: {
			Name:                "T",
			HasPointOnFirstSide: true,
			Sides: []Side{
				{
					Cells: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 0}, Type: Point, Connections: []geom.Direction{geom.Right}},
						{Rel: geom.Position{I: 1, J: 0}, Type: Line, Connections: []geom.Direction{geom.Left, geom.Right}},
						{Rel: geom.Position{I: 2, J: 0}, Type: Line, Connections: []geom.Direction{geom.Left, geom.Right}},
						{Rel: geom.Position{I: 3, J: 0}, Type: Bend, Connections: []geom.Direction{geom.Left, geom.Up}},
					},
					MissingConnections: []CellTemplate{
						{Rel: geom.Position{I: 3, J: -1}, Type: MissingConnection, Connections: []geom.Direction{geom.Down}},
					},
					MCClosesLoop: []bool{true},
					MaxRotations: 4,
				},
				{
					// Non-point alternate: a bend-bend-line chain plus an
					// Empty companion cell, both ends dangling. Four
					// cells, matching side 0's footprint size (previously
					// a lone 1-cell Bend, which could never tile the
					// other three squares it now covers).
					Cells: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 0}, Type: Bend, Connections: []geom.Direction{geom.Right, geom.Down}},
						{Rel: geom.Position{I: 1, J: 0}, Type: Bend, Connections: []geom.Direction{geom.Down, geom.Left}},
						{Rel: geom.Position{I: 0, J: 1}, Type: Line, Connections: []geom.Direction{geom.Down, geom.Up}},
						{Rel: geom.Position{I: -1, J: 0}, Type: Empty},
					},
					MissingConnections: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 2}, Type: MissingConnection, Connections: []geom.Direction{geom.Up}},
						{Rel: geom.Position{I: 1, J: 1}, Type: MissingConnection, Connections: []geom.Direction{geom.Up}},
					},
					MCClosesLoop: []bool{true, true},
					MaxRotations: 4,
				},
			},
		},
		ZPiece: {
			Name:                "Z",
			HasPointOnFirstSide: false,
			Sides: []Side{
				{
					Cells: []CellTemplate{
						{Rel: geom.Position{I: 0, J: 0}, Type: Bend, Connections: []geom.Direction{geom.Right, geom.Up}},
						{Rel: geom.Position{I: 1, J: 0}, Type: Bend, Connections: []geom.Direction{geom.Left, geom.Down}},
					},
					MissingConnections: []CellTemplate{
						{Rel: geom.Position{I: 0, J: -1}, Type: MissingConnection, Connections: []geom.Direction{geom.Down}},
						{Rel: geom.Position{I: 1, J: 1}, Type: MissingConnection, Connections: []geom.Direction{geom.Up}},
					},
					MCClosesLoop: []bool{true, true},
					MaxRotations: 2,
				},
			},
		},
	}

	computeBorders()
}

// straightPointSide builds the point-bearing footprint shared by the
// straight-line pieces: a Point cell followed by extraLineCells Line cells
// in a row, with a missing connection declared one square past the last
// cell demanding a connection back into the piece.
func straightPointSide(extraLineCells int) Side {
	cells := make([]CellTemplate, 0, extraLineCells+1)
	cells = append(cells, CellTemplate{Rel: geom.Position{I: 0, J: 0}, Type: Point, Connections: []geom.Direction{geom.Right}})
	for k := 1; k <= extraLineCells; k++ {
		cells = append(cells, CellTemplate{
			Rel:         geom.Position{I: k, J: 0},
			Type:        Line,
			Connections: []geom.Direction{geom.Left, geom.Right},
		})
	}
	mcPos := geom.Position{I: extraLineCells + 1, J: 0}
	return Side{
		Cells: cells,
		MissingConnections: []CellTemplate{
			{Rel: mcPos, Type: MissingConnection, Connections: []geom.Direction{geom.Left}},
		},
		MCClosesLoop: []bool{false},
		MaxRotations: 4,
	}
}
