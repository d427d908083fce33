package catalogue

import "github.com/weftloop/conduit-solver/pkg/geom"

// computeBorders fills in Side.Border for every side of every piece: every
// grid square orthogonally adjacent to a stamped cell or missing-connection
// declaration, excluding the footprint's own squares. Computed once at
// init so border halos can never drift out of sync with hand-edited cell
// data.
func computeBorders() {
	for pi := range Pieces {
		for si := range Pieces[pi].Sides {
			Pieces[pi].Sides[si].Border = borderOf(Pieces[pi].Sides[si])
		}
	}
}

func borderOf(s Side) []geom.Position {
	footprint := make(map[geom.Position]bool, len(s.Cells)+len(s.MissingConnections))
	for _, c := range s.Cells {
		footprint[c.Rel] = true
	}
	for _, mc := range s.MissingConnections {
		footprint[mc.Rel] = true
	}

	seen := make(map[geom.Position]bool)
	var border []geom.Position
	for rel := range footprint {
		for _, d := range geom.AllDirections {
			n := rel.Add(d.Delta())
			if footprint[n] || seen[n] {
				continue
			}
			seen[n] = true
			border = append(border, n)
		}
	}
	return border
}
