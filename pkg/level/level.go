// Package level holds the level-hints JSON model (spec.md §6) and the
// InitBoard entry point that turns a Hints value into a freshly built
// board.Board with the obligatory overlay populated and any pre-placed
// hint pieces already stamped down. Grounded on the teacher's
// pkg/model/level.go and pkg/model/model.go: plain JSON-tagged domain
// structs, no custom (Un)MarshalJSON, matching the teacher's convention
// of letting encoding/json drive struct fields directly.
package level

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/weftloop/conduit-solver/pkg/board"
	"github.com/weftloop/conduit-solver/pkg/catalogue"
	"github.com/weftloop/conduit-solver/pkg/geom"
)

// PieceAddInfo is one pre-placed piece declared by a level's hints: the
// exact (piece, side, base position, rotation) add_piece would take.
type PieceAddInfo struct {
	PieceIdx int           `json:"piece_idx"`
	SideIdx  int           `json:"side_idx"`
	BasePos  geom.Position `json:"base_pos"`
	Rotation int           `json:"rotation"`
}

// ObligatoryCell is one fixed tile a level demands the solved board carry
// at AbsolutePos: its type and, for non-Point types, its exact ordered
// connection directions (spec.md §4.2's pre-validator matches both).
type ObligatoryCell struct {
	TileType    catalogue.CellType `json:"tile_type"`
	AbsolutePos geom.Position      `json:"absolute_pos"`
	NbOfConns   int                `json:"nb_of_connections"`
	ConnDirs    []geom.Direction   `json:"connection_direction_array"`
}

// Hints is one level's complete puzzle declaration: pre-placed pieces,
// the obligatory-cell overlay, and which of those obligatory cells are
// still-open point endpoints the combination driver must wire up.
type Hints struct {
	PieceAddInfos    []PieceAddInfo   `json:"piece_add_infos"`
	ObligatoryCells  []ObligatoryCell `json:"obligatory_cells"`
	OpenPointIndices []int            `json:"open_point_indices"`
}

// InitBoard builds a fresh board with the obligatory overlay populated
// and every hint piece pre-placed, in PieceAddInfos order (spec.md §6:
// "builds a fresh board with obligatory overlay populated and hint
// pieces pre-placed"). An error from a hint piece's own AddPiece means
// the level's hints are internally inconsistent -- there is no partial
// board to salvage, so InitBoard reports the error and returns nil.
func InitBoard(hints Hints) (*board.Board, error) {
	b := board.New()

	for _, oc := range hints.ObligatoryCells {
		b.SetObligatory(oc.AbsolutePos, oc.TileType, oc.ConnDirs)
	}

	var open []geom.Position
	for _, idx := range hints.OpenPointIndices {
		if idx < 0 || idx >= len(hints.ObligatoryCells) {
			return nil, fmt.Errorf("level: open_point_indices entry %d out of range for %d obligatory cells", idx, len(hints.ObligatoryCells))
		}
		open = append(open, hints.ObligatoryCells[idx].AbsolutePos)
	}
	b.SetOpenPoints(open)

	for _, info := range hints.PieceAddInfos {
		if err := b.AddPiece(info.PieceIdx, info.SideIdx, info.BasePos, info.Rotation); err != nil {
			return nil, fmt.Errorf("level: hint piece %d (%s): %w", info.PieceIdx, catalogue.Pieces[info.PieceIdx].Name, err)
		}
	}

	return b, nil
}

//go:embed testdata/*.json
var fixtures embed.FS

// Load reads and parses one embedded fixture level by file name (e.g.
// "level_83.json"). This is the one genuinely blocking call in the
// solver's surface (spec.md §5's carve-out for context.Context: every
// other operation is in-memory and suspension-free), so it takes a
// context and returns promptly on cancellation rather than blocking the
// embedded-FS read to completion regardless of the caller's wishes.
func Load(ctx context.Context, name string) (Hints, error) {
	select {
	case <-ctx.Done():
		return Hints{}, ctx.Err()
	default:
	}

	data, err := fixtures.ReadFile("testdata/" + name)
	if err != nil {
		return Hints{}, fmt.Errorf("level: reading fixture %q: %w", name, err)
	}

	select {
	case <-ctx.Done():
		return Hints{}, ctx.Err()
	default:
	}

	var hints Hints
	if err := json.Unmarshal(data, &hints); err != nil {
		return Hints{}, fmt.Errorf("level: parsing fixture %q: %w", name, err)
	}
	return hints, nil
}
