package uttt

import "errors"

var (
	ErrInvalidCell     = errors.New("invalid cell")
	ErrIllegalMove     = errors.New("illegal move")
	ErrInvalidBoard    = errors.New("invalid sub-board index")
	ErrInvalidNotation = errors.New("invalid position notation")
)
