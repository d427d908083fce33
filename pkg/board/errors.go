package board

// ErrorKind is one of the plain-value error kinds raised by the
// pre-placement validator and the post-placement checks. Modelled as a
// string-backed type satisfying error rather than ad-hoc fmt.Errorf
// strings, so callers can compare with errors.Is / == and the DFS can
// branch on the exact failure without string matching.
type ErrorKind string

func (e ErrorKind) Error() string { return string(e) }

const (
	ErrOutOfBounds                       ErrorKind = "out of bounds"
	ErrSuperposedTiles                   ErrorKind = "superposed tiles"
	ErrTileNotMatchingMissingConnections ErrorKind = "tile does not satisfy missing connection"
	ErrTileNotMatchingLevelHints         ErrorKind = "tile does not match level hints"
	ErrTripleMissingConnectionTile       ErrorKind = "triple missing connection tile"
	ErrIsolatedEmptyTile                 ErrorKind = "isolated empty tile"
	ErrDeadEnd                           ErrorKind = "dead end"
	ErrLoopPath                          ErrorKind = "loop path"
	ErrNoPieceToUndo                     ErrorKind = "no piece placed to undo"
	ErrPieceAlreadyPlaced                ErrorKind = "piece already placed"
	ErrInvalidDoubleMissingConnection    ErrorKind = "invalid double missing connection"
)
