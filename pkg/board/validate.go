package board

import (
	"github.com/weftloop/conduit-solver/pkg/catalogue"
	"github.com/weftloop/conduit-solver/pkg/geom"
)

// ValidatePlacement determines whether (pieceIdx, sideIdx, base, rotation)
// may be stamped onto the board, without mutating it. Checks run cheapest
// and most-likely-to-fail first (spec.md §4.2): missing connections
// before normal cells, bounds before content, superposition before the
// level-hint overlay.
func ValidatePlacement(b *Board, pieceIdx, sideIdx int, base geom.Position, rotation int) error {
	if b.Pieces[pieceIdx].Placed {
		return ErrPieceAlreadyPlaced
	}
	side := catalogue.Pieces[pieceIdx].Sides[sideIdx]

	cells, mcs, err := Transform(side, base, rotation)
	if err != nil {
		return err
	}

	for _, mc := range mcs {
		sq := &b.Squares[mc.Pos.I][mc.Pos.J]
		demanded := mc.Connections[0]
		switch sq.Len {
		case 0:
			// empty square: accepted for this cell.
		case 1:
			top := sq.Cells[0]
			if top.Type != catalogue.MissingConnection {
				if !containsDir(top.Connections, demanded) {
					return ErrTileNotMatchingMissingConnections
				}
				continue
			}
			other := top.Connections[0]
			if isLineDirectionPair(demanded, other) {
				if b.Line2_2Placed {
					return ErrInvalidDoubleMissingConnection
				}
			} else {
				if b.TPiecePlaced {
					return ErrInvalidDoubleMissingConnection
				}
			}
			_ = top
		default:
			return ErrTripleMissingConnectionTile
		}
	}

	for i, c := range cells {
		sq := &b.Squares[c.Pos.I][c.Pos.J]
		if sq.TopNormal() != nil {
			return ErrSuperposedTiles
		}
		if sq.Len >= maxStackDepth {
			// Already a double MC: a normal cell here would be a third cell.
			return ErrTripleMissingConnectionTile
		}
		for k := 0; k < sq.Len; k++ {
			mcCell := sq.Cells[k]
			if !containsDir(c.Connections, mcCell.Connections[0]) {
				return ErrTileNotMatchingMissingConnections
			}
		}
		if obl := b.Obligatory[c.Pos.I][c.Pos.J]; obl != nil {
			if obl.Type != side.Cells[i].Type {
				return ErrTileNotMatchingLevelHints
			}
			if obl.Type != catalogue.Point && !sameDirs(obl.Connections, c.Connections) {
				return ErrTileNotMatchingLevelHints
			}
		}
	}

	return nil
}
