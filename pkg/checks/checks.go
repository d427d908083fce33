// Package checks implements the three post-placement pruning checks run
// after every successful board.AddPiece: isolated empty tiles, dead ends
// (via pkg/astar), and closed loops. Together they turn brute-force
// placement search into a solver that closes real puzzles in
// milliseconds (spec.md §1, §4.5).
package checks

import (
	"github.com/weftloop/conduit-solver/pkg/astar"
	"github.com/weftloop/conduit-solver/pkg/board"
	"github.com/weftloop/conduit-solver/pkg/catalogue"
	"github.com/weftloop/conduit-solver/pkg/geom"
)

// maxWalkSteps bounds the connected-path walker: the grid has at most
// Width*Height squares, so no simple path can exceed that length.
const maxWalkSteps = geom.Width * geom.Height

// RunAllChecks runs the three post-placement checks against the most
// recently placed piece and returns the first failing one, or nil. It is
// a pure function of the current board state (spec.md §8): calling it
// repeatedly with no intervening mutation always returns the same
// result. slowChecksEnabled=false skips the A*-backed dead-end check,
// matching the CLI's --fps 0 behaviour (spec.md §6).
func RunAllChecks(b *board.Board, slowChecksEnabled bool) error {
	n := len(b.AddedPieceIndices)
	if n == 0 {
		return nil
	}
	lastIdx := b.AddedPieceIndices[n-1]
	ps := b.Pieces[lastIdx]
	side := catalogue.Pieces[lastIdx].Sides[ps.Side]

	if err := checkIsolatedEmptyTile(b, side, ps.Base, ps.Rotation); err != nil {
		return err
	}

	// Skipped on the very first placement: no endpoints exist yet to wire.
	if n > 1 && slowChecksEnabled {
		if err := checkDeadEnd(b); err != nil {
			return err
		}
	}

	if err := checkLoop(b, side, ps.Base, ps.Rotation); err != nil {
		return err
	}

	return nil
}

// checkIsolatedEmptyTile fails if any border cell of the just-placed
// side is in-grid, currently empty of a normal cell, and has no
// similarly empty 4-neighbour: such a cell can never be filled by any
// future piece.
func checkIsolatedEmptyTile(b *board.Board, side catalogue.Side, base geom.Position, rotation int) error {
	for _, rel := range side.Border {
		pos := geom.Translate(base, rel, rotation)
		if !pos.InBounds() {
			continue
		}
		if b.HasNormalCell(pos) {
			continue
		}
		hasEmptyNeighbour := false
		for _, d := range geom.AllDirections {
			npos := pos.Add(d.Delta())
			if !npos.InBounds() {
				continue
			}
			if !b.HasNormalCell(npos) {
				hasEmptyNeighbour = true
				break
			}
		}
		if !hasEmptyNeighbour {
			return board.ErrIsolatedEmptyTile
		}
	}
	return nil
}

// checkLoop walks forward from every missing connection of the
// just-placed side flagged as a loop candidate (precomputed per side,
// see catalogue.Side.MCClosesLoop and spec.md §9's documented blind
// spot: only these precomputed candidates are walked, not every MC).
// If the walk returns to its own starting square, the piece just closed
// a loop.
func checkLoop(b *board.Board, side catalogue.Side, base geom.Position, rotation int) error {
	for k, mc := range side.MissingConnections {
		if k >= len(side.MCClosesLoop) || !side.MCClosesLoop[k] {
			continue
		}
		pos := geom.Translate(base, mc.Rel, rotation)
		if !pos.InBounds() {
			continue
		}
		dir := mc.Connections[0].RotateBy(rotation)
		_, returnedToOrigin, _ := walkPath(b, pos, dir)
		if returnedToOrigin {
			return board.ErrLoopPath
		}
	}
	return nil
}

// checkDeadEnd collects every endpoint still to be wired -- the level's
// fixed open-point positions plus every currently-open (unpaired)
// missing-connection square -- and confirms each can still reach some
// other endpoint. An obligatory point already carrying a double missing
// connection fails immediately (no piece has a two-connection point).
func checkDeadEnd(b *board.Board) error {
	endpoints := collectEndpoints(b)
	if len(endpoints) < 2 {
		return nil
	}

	visited := make(map[geom.Position]bool, len(endpoints))
	for _, ep := range endpoints {
		if visited[ep] {
			continue
		}

		if b.IsObligatoryPoint(ep) {
			sq := &b.Squares[ep.I][ep.J]
			if sq.Len == 2 && sq.Cells[0].Type == catalogue.MissingConnection && sq.Cells[1].Type == catalogue.MissingConnection {
				return board.ErrDeadEnd
			}
		}

		forbidden, hasForbidden := forbiddenTarget(b, ep)

		var cls astar.Classification
		for _, other := range endpoints {
			if other == ep {
				continue
			}
			if hasForbidden && other == forbidden {
				continue
			}
			cls[other.I][other.J] = astar.Target
		}

		target, ok := astar.FindPath(ep, &cls, resolverFor(b))
		if !ok {
			return board.ErrDeadEnd
		}
		visited[ep] = true
		visited[target] = true
	}
	return nil
}

func resolverFor(b *board.Board) astar.Resolver {
	return func(pos geom.Position) astar.ClassValue {
		if b.HasNormalCell(pos) {
			return astar.Wall
		}
		return astar.Clear
	}
}

// collectEndpoints returns the level's fixed open points plus every
// square currently holding exactly one (unpaired) missing connection.
func collectEndpoints(b *board.Board) []geom.Position {
	endpoints := append([]geom.Position(nil), b.OpenPoints...)
	for i := 0; i < geom.Width; i++ {
		for j := 0; j < geom.Height; j++ {
			sq := &b.Squares[i][j]
			if sq.Len == 1 && sq.Cells[0].Type == catalogue.MissingConnection {
				endpoints = append(endpoints, geom.Position{I: i, J: j})
			}
		}
	}
	return endpoints
}

// forbiddenTarget traces the partial path already attached to ep, when
// ep is a missing connection rather than an obligatory point (spec.md
// §4.5: "if not a point"), so that endpoint never counts as a valid
// target for itself -- it is already wired to whatever it traces to.
func forbiddenTarget(b *board.Board, ep geom.Position) (geom.Position, bool) {
	if b.IsObligatoryPoint(ep) {
		return geom.Position{}, false
	}
	sq := &b.Squares[ep.I][ep.J]
	if sq.Len == 0 {
		return geom.Position{}, false
	}
	dir := sq.Cells[0].Connections[0]
	terminus, _, open := walkPath(b, ep, dir)
	if open {
		return geom.Position{}, false
	}
	return terminus, true
}

// walkPath follows the connected path leaving origin in direction dir,
// taking at each normal cell the connection that is not the reverse of
// the direction just travelled (no backtracking), until it reaches a
// Point, a dead (unfilled) missing connection, an open square, or
// returns to origin. Shared by the loop check (which only cares whether
// it returns to origin) and the dead-end check's forbidden-target trace.
func walkPath(b *board.Board, origin geom.Position, dir geom.Direction) (terminus geom.Position, returnedToOrigin bool, open bool) {
	cur := origin.Add(dir.Delta())
	came := dir
	for step := 0; step < maxWalkSteps; step++ {
		if !cur.InBounds() {
			return cur, false, false
		}
		if cur == origin {
			return cur, true, false
		}
		cell := b.TopNormalCell(cur)
		if cell == nil {
			return cur, false, true
		}
		if cell.Type == catalogue.Point {
			return cur, false, false
		}
		next, found := nextDirection(cell.Connections, came)
		if !found {
			return cur, false, false
		}
		came = next
		cur = cur.Add(next.Delta())
	}
	return geom.Position{}, false, false
}

func nextDirection(connections []geom.Direction, arrivedVia geom.Direction) (geom.Direction, bool) {
	backtrack := arrivedVia.Reverse()
	for _, d := range connections {
		if d != backtrack {
			return d, true
		}
	}
	return 0, false
}
