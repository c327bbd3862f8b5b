package goosecore

import "errors"

var (
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidMove   = errors.New("invalid move text")
	ErrInvalidFEN    = errors.New("invalid FEN")

	// ErrFromSquareEmpty is returned by MakeMove when no piece stands on the origin square.
	ErrFromSquareEmpty = errors.New("from square is empty")

	// ErrIllegalSelfCheck is returned by MakeMove when the move leaves the mover's king attacked.
	// The position has still been mutated and must be discarded.
	ErrIllegalSelfCheck = errors.New("move leaves own king in check")

	// ErrIllegalMove is returned when move text does not name a legal move in the position.
	ErrIllegalMove = errors.New("illegal move")
)
