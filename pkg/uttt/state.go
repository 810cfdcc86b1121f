package uttt

import "fmt"

// Forced value meaning the player may move in any sub-board that isn't full
const FreeChoice = -1

// Occupancy of the board plus the sub-board the next move is forced into.
// Player identity isn't tracked: a State is all that's needed to know
// which moves are legal, but not who made them. States are values, Apply
// never mutates the receiver.
type State struct {
	occupied Mask81
	forced   int8
}

// Empty board, free choice
func NewState() State {
	return State{forced: FreeChoice}
}

// Build a state from raw parts, used for setting up arbitrary positions
func StateOf(occupied Mask81, forced int) (State, error) {
	if forced < FreeChoice || forced > 8 {
		return State{}, fmt.Errorf("%w: %d", ErrInvalidBoard, forced)
	}
	if !occupied.AndNot(FullMask).IsZero() {
		return State{}, fmt.Errorf("%w: occupied mask has bits above cell %d", ErrInvalidCell, CellCount-1)
	}
	return State{occupied: occupied, forced: int8(forced)}, nil
}

// Replay the given move notation from the empty board, verifying legality
func StateFromMoves(moves string) (State, error) {
	cells, err := ParseMoves(moves)
	if err != nil {
		return State{}, err
	}

	s := NewState()
	for i, c := range cells {
		if s, err = s.Play(c); err != nil {
			return State{}, fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return s, nil
}

// Getters
func (s State) Occupied() Mask81 {
	return s.occupied
}

// Sub-board index the next move must be made in, or FreeChoice. Note that a
// forced sub-board which is already full still behaves as free choice in Legal.
func (s State) Forced() int {
	return int(s.forced)
}

// Number of moves played so far
func (s State) Plies() int {
	return s.occupied.OnesCount()
}

// Mask of every cell legal as the next move
func (s State) Legal() Mask81 {
	if s.forced != FreeChoice {
		if free := _boardMasks[s.forced].AndNot(s.occupied); !free.IsZero() {
			return free
		}
	}
	// Full sub-boards contribute nothing, their bits are all occupied
	return FullMask.AndNot(s.occupied)
}

// Check if given move is legal
func (s State) IsLegal(c Cell) bool {
	return c.Valid() && s.Legal().Has(c)
}

// Make a move, accepts any cell, doesn't check legality
func (s State) Apply(c Cell) State {
	return State{
		occupied: s.occupied.With(c),
		forced:   int8(c.Micro()),
	}
}

// Verifies legality of given move, then if it's valid, returns the state after it
func (s State) Play(c Cell) (State, error) {
	if !s.IsLegal(c) {
		return s, fmt.Errorf("%w: %s, possible moves=[%s]", ErrIllegalMove, c, s.Legal())
	}
	return s.Apply(c), nil
}

// All states reachable with a single legal move, in ascending cell order
func (s State) Children() []State {
	legal := s.Legal()
	children := make([]State, 0, legal.OnesCount())
	for ; !legal.IsZero(); legal = legal.PopLowest() {
		children = append(children, s.Apply(legal.Lowest()))
	}
	return children
}

func (s State) String() string {
	return s.Notation()
}
