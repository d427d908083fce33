package board

import (
	"github.com/weftloop/conduit-solver/pkg/catalogue"
	"github.com/weftloop/conduit-solver/pkg/geom"
)

// Placed is a catalogue.CellTemplate after rotation and translation: an
// absolute position and absolute (rotated) connection directions.
type Placed struct {
	Pos         geom.Position
	Type        catalogue.CellType
	Connections []geom.Direction
}

// Transform rotates and translates every normal and missing-connection
// cell of side onto absolute grid coordinates. Missing connections are
// transformed first (spec.md §4.1, §4.2: "usually fewer, more likely out
// of bounds"). It fails with ErrOutOfBounds the instant any transformed
// position leaves the 8x4 grid; the returned slices are nil in that case
// and no board state has been touched -- Transform never mutates a Board.
func Transform(side catalogue.Side, base geom.Position, rotation int) (cells, mcs []Placed, err error) {
	mcs = make([]Placed, 0, len(side.MissingConnections))
	for _, mc := range side.MissingConnections {
		pos := geom.Translate(base, mc.Rel, rotation)
		if !pos.InBounds() {
			return nil, nil, ErrOutOfBounds
		}
		mcs = append(mcs, Placed{Pos: pos, Type: mc.Type, Connections: rotateDirs(mc.Connections, rotation)})
	}

	cells = make([]Placed, 0, len(side.Cells))
	for _, c := range side.Cells {
		pos := geom.Translate(base, c.Rel, rotation)
		if !pos.InBounds() {
			return nil, nil, ErrOutOfBounds
		}
		cells = append(cells, Placed{Pos: pos, Type: c.Type, Connections: rotateDirs(c.Connections, rotation)})
	}
	return cells, mcs, nil
}

func rotateDirs(dirs []geom.Direction, rotation int) []geom.Direction {
	if len(dirs) == 0 {
		return nil
	}
	out := make([]geom.Direction, len(dirs))
	for i, d := range dirs {
		out[i] = d.RotateBy(rotation)
	}
	return out
}

func containsDir(dirs []geom.Direction, d geom.Direction) bool {
	for _, x := range dirs {
		if x == d {
			return true
		}
	}
	return false
}

func sameDirs(a, b []geom.Direction) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isLineDirectionPair reports whether two missing-connection demand
// directions form a straight line (they differ by exactly 2 mod 4). Per
// spec.md §9's documented open question, two MCs declaring the *same*
// direction fall through to the bend classification rather than a
// distinct error -- this is preserved source behaviour, not a bug.
func isLineDirectionPair(a, b geom.Direction) bool {
	diff := (int(a) - int(b) + 4) % 4
	return diff == 2
}
