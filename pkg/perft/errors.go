package perft

import "errors"

var (
	ErrInvalidDepth = errors.New("invalid depth")
	ErrStopped      = errors.New("count stopped")
)
