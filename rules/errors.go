package rules

import "errors"

var (
	ErrInvalidSquare = errors.New("rules: square out of range")
	ErrInvalidPiece  = errors.New("rules: invalid piece")
	ErrTooManyKings  = errors.New("rules: more than one king for a side")
	ErrInvalidFEN    = errors.New("rules: invalid FEN")
	ErrInvalidMove   = errors.New("rules: invalid move")
)
