package uttt

import (
	"fmt"
	"strconv"
	"strings"
)

const StartingPosition string = "9/9/9/9/9/9/9/9/9 -"

// string notation for the occupancy of the board
// Much like the FEN representation of a chessboard, but since players
// aren't tracked, every taken cell is written as 'x':
//
//	X/X/X/X/X/X/X/X/X <forced>
//
// where `X` is one sub-board string, digits are runs of free cells.
// For example, let X be:
//
//	x | x |
//
// ----------
//
//	  | x |
//
// ----------
//
//	  |   | x
//
// then X format string would be:
//
//	xx2x3x
//
// <forced> - sub-board the next move must be made in, an integer
// between 0 and 8, or - if player can move anywhere
//
// Examples:
//
// * 9/9/9/9/9/9/9/9/9 -
//
// * 9/9/5x3/9/9/9/9/9/9 5
func (s State) Notation() string {
	builder := strings.Builder{}

	for board := range 9 {
		counter := 0
		for micro := range 9 {
			if !s.occupied.Has(NewCell(board, micro)) {
				counter++
				continue
			}
			if counter > 0 {
				builder.WriteString(strconv.Itoa(counter))
				counter = 0
			}
			builder.WriteByte('x')
		}

		if counter > 0 {
			builder.WriteString(strconv.Itoa(counter))
		}
		if board != 8 {
			builder.WriteByte('/')
		}
	}

	builder.WriteByte(' ')
	if s.forced == FreeChoice {
		builder.WriteByte('-')
	} else {
		builder.WriteByte('0' + byte(s.forced))
	}

	return builder.String()
}

// Create the state from given notation string, "startpos" is accepted
// as an alias for the empty board
func ParseNotation(notation string) (State, error) {
	if notation == "startpos" {
		notation = StartingPosition
	}

	sections := strings.Fields(notation)
	if len(sections) != 2 {
		return State{}, fmt.Errorf("%w: expected 2 sections, got %d", ErrInvalidNotation, len(sections))
	}

	boards := strings.Split(sections[0], "/")
	if len(boards) != 9 {
		return State{}, fmt.Errorf("%w: expected 9 sub-boards, got %d", ErrInvalidNotation, len(boards))
	}

	var occupied Mask81
	for board, str := range boards {
		micro := 0
		for _, r := range str {
			switch {
			case r == 'x':
				if micro < 9 {
					occupied = occupied.With(NewCell(board, micro))
				}
				micro++
			case r >= '1' && r <= '9':
				micro += int(r - '0')
			default:
				return State{}, fmt.Errorf("%w: unexpected %q in sub-board %d", ErrInvalidNotation, r, board)
			}
		}
		if micro != 9 {
			return State{}, fmt.Errorf("%w: sub-board %d describes %d cells", ErrInvalidNotation, board, micro)
		}
	}

	forced := FreeChoice
	if sections[1] != "-" {
		v, err := strconv.Atoi(sections[1])
		if err != nil {
			return State{}, fmt.Errorf("%w: forced sub-board %q", ErrInvalidNotation, sections[1])
		}
		forced = v
	}

	return StateOf(occupied, forced)
}
