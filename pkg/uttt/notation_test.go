package uttt

import (
	"errors"
	"testing"
)

func TestNotation(t *testing.T) {
	tests := []struct {
		moves    string
		notation string
	}{
		{"", StartingPosition},
		{"C3c2", "9/9/5x3/9/9/9/9/9/9 5"},
		{"A3a3 A3b3", "xx7/9/9/9/9/9/9/9/9 1"},
		{"C1c1 C1a3 A3c1", "8x/9/9/9/9/9/9/9/x7x 8"},
	}

	for _, tc := range tests {
		s, err := StateFromMoves(tc.moves)
		if err != nil {
			t.Fatalf("StateFromMoves(%q): %v", tc.moves, err)
		}
		if got := s.Notation(); got != tc.notation {
			t.Errorf("%q: notation=%q, want=%q", tc.moves, got, tc.notation)
		}

		parsed, err := ParseNotation(tc.notation)
		if err != nil {
			t.Fatalf("ParseNotation(%q): %v", tc.notation, err)
		}
		if parsed != s {
			t.Errorf("ParseNotation(%q)=%q, want=%q", tc.notation, parsed, s)
		}
	}
}

func TestParseNotationStartpos(t *testing.T) {
	s, err := ParseNotation("startpos")
	if err != nil || s != NewState() {
		t.Errorf("startpos=%q, %v", s, err)
	}
}

func TestParseNotationInvalid(t *testing.T) {
	tests := []struct {
		notation string
		err      error
	}{
		{"9/9/9/9/9/9/9/9/9", ErrInvalidNotation},
		{"9/9/9/9/9/9/9/9 -", ErrInvalidNotation},
		{"9/9/9/9/9/9/9/9/8 -", ErrInvalidNotation},
		{"9/9/9/9/9/9/9/9/xxxxxxxxxx -", ErrInvalidNotation},
		{"9/9/9/9/o8/9/9/9/9 -", ErrInvalidNotation},
		{"9/9/9/9/9/9/9/9/9 a", ErrInvalidNotation},
		{"9/9/9/9/9/9/9/9/9 9", ErrInvalidBoard},
	}

	for _, tc := range tests {
		if _, err := ParseNotation(tc.notation); !errors.Is(err, tc.err) {
			t.Errorf("ParseNotation(%q) err=%v, want %v", tc.notation, err, tc.err)
		}
	}
}
