package uttt

import (
	"fmt"
	"strings"
)

// Index of one of the 81 cells, board*9 + micro
type Cell uint8

const NoCell Cell = 255

// Enum for the squares (same for the smaller ones)
const (
	A3 int = iota
	B3
	C3
	A2
	B2
	C2
	A1
	B1
	C1
)

// Create a cell, based on sub-board and micro cell indexes
func NewCell(board, micro int) Cell {
	return Cell(board*9 + micro)
}

// Index of the sub-board this cell belongs to
func (c Cell) Board() int {
	return int(c) / 9
}

// Position of the cell inside its sub-board, also the sub-board the
// opponent is sent to after playing here
func (c Cell) Micro() int {
	return int(c) % 9
}

func (c Cell) Valid() bool {
	return c < CellCount
}

// Get string representation of the cell, will contain
// a/b/c 1/2/3 as coorinates, for example board = 7,
// micro = 2 -> <board part><micro part> -> B1c3
//
//	     	A    B    C
//			 0 | 1 | 2	3
//			-----------
//			 3 | 4 | 5	2
//			-----------
//		     6 | 7 | 8	1
func (c Cell) String() string {
	if !c.Valid() {
		return "(none)"
	}

	bi, si := c.Board(), c.Micro()
	builder := strings.Builder{}
	builder.WriteByte('A' + byte(bi%3))
	builder.WriteByte('3' - byte(bi/3))
	builder.WriteByte('a' + byte(si%3))
	builder.WriteByte('3' - byte(si/3))
	return builder.String()
}

// Convert given cell notation (as produced by Cell.String) to a Cell
func ParseCell(str string) (Cell, error) {
	if len(str) != 4 {
		return NoCell, fmt.Errorf("%w: %q", ErrInvalidCell, str)
	}

	// Make sure the coordinates are within the range
	_cmp := func(i int, letter byte) bool {
		return (str[i] >= letter && str[i] <= letter+2) &&
			(str[i+1] >= '1' && str[i+1] <= '3')
	}

	if !_cmp(0, 'A') || !_cmp(2, 'a') {
		return NoCell, fmt.Errorf("%w: %q", ErrInvalidCell, str)
	}

	return NewCell(
		int((str[0]-'A')+('3'-str[1])*3),
		int((str[2]-'a')+('3'-str[3])*3)), nil
}

// Parse whitespace separated cell notations, e.g. "B2b2 B2a3"
func ParseMoves(str string) ([]Cell, error) {
	fields := strings.Fields(str)
	cells := make([]Cell, len(fields))
	for i, f := range fields {
		c, err := ParseCell(f)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		cells[i] = c
	}
	return cells, nil
}
