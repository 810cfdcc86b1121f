package uttt

import (
	"math/bits"
	"strings"
)

// Number of cells on the whole board
const CellCount = 81

// 81-bit set, one bit per cell. Cells 0..63 live in lo, cells 64..80 in the
// lowest 17 bits of hi. Bits above cell 80 are always zero.
type Mask81 struct {
	lo uint64
	hi uint64
}

const _hiMask uint64 = 1<<(CellCount-64) - 1

var (
	// Every cell of the board
	FullMask = Mask81{lo: ^uint64(0), hi: _hiMask}

	_boardMasks [9]Mask81
)

func init() {
	for board := range 9 {
		for micro := range 9 {
			_boardMasks[board] = _boardMasks[board].With(NewCell(board, micro))
		}
	}
}

// Mask of the 9 cells of given sub-board
func BoardMask(board int) Mask81 {
	return _boardMasks[board]
}

// Mask with a single cell set
func CellMask(c Cell) Mask81 {
	if c < 64 {
		return Mask81{lo: 1 << c}
	}
	return Mask81{hi: 1 << (c - 64)}
}

// Build a mask from the given cells
func MaskOf(cells ...Cell) Mask81 {
	var m Mask81
	for _, c := range cells {
		m = m.With(c)
	}
	return m
}

// Check if the cell's bit is set
func (m Mask81) Has(c Cell) bool {
	if c < 64 {
		return m.lo&(1<<c) != 0
	}
	return m.hi&(1<<(c-64)) != 0
}

// Returns a copy of the mask with the cell's bit set
func (m Mask81) With(c Cell) Mask81 {
	if c < 64 {
		m.lo |= 1 << c
	} else {
		m.hi |= 1 << (c - 64)
	}
	return m
}

func (m Mask81) And(o Mask81) Mask81 {
	return Mask81{lo: m.lo & o.lo, hi: m.hi & o.hi}
}

func (m Mask81) Or(o Mask81) Mask81 {
	return Mask81{lo: m.lo | o.lo, hi: m.hi | o.hi}
}

// m & ^o
func (m Mask81) AndNot(o Mask81) Mask81 {
	return Mask81{lo: m.lo &^ o.lo, hi: m.hi &^ o.hi}
}

func (m Mask81) IsZero() bool {
	return m.lo|m.hi == 0
}

// Population count, number of set cells
func (m Mask81) OnesCount() int {
	return bits.OnesCount64(m.lo) + bits.OnesCount64(m.hi)
}

// Get the lowest set cell, NoCell if the mask is empty
func (m Mask81) Lowest() Cell {
	if m.lo != 0 {
		return Cell(bits.TrailingZeros64(m.lo))
	}
	if m.hi != 0 {
		return Cell(64 + bits.TrailingZeros64(m.hi))
	}
	return NoCell
}

// Returns the mask without its lowest set cell
func (m Mask81) PopLowest() Mask81 {
	if m.lo != 0 {
		m.lo &= m.lo - 1
	} else {
		m.hi &= m.hi - 1
	}
	return m
}

// All set cells in ascending order
func (m Mask81) Cells() []Cell {
	cells := make([]Cell, 0, m.OnesCount())
	for ; !m.IsZero(); m = m.PopLowest() {
		cells = append(cells, m.Lowest())
	}
	return cells
}

// Space separated cell notation of every set cell
func (m Mask81) String() string {
	if m.IsZero() {
		return "empty"
	}

	cells := m.Cells()
	strCells := make([]string, len(cells))
	for i, c := range cells {
		strCells[i] = c.String()
	}
	return strings.Join(strCells, " ")
}
