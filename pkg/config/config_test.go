package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/uttt-perft/pkg/uttt"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "perft.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
min_depth: 2
max_depth: 6
threads: 4
split_depth: 3
cumulative: true
moves: "B2b2 B2a1"
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MinDepth != 2 || cfg.MaxDepth != 6 || cfg.Threads != 4 || cfg.SplitDepth != 3 || !cfg.Cumulative {
		t.Errorf("cfg=%+v", cfg)
	}
	// Untouched keys keep their defaults
	if cfg.Position != "startpos" || cfg.MovetimeMs != -1 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Errorf("level=%v, want=%v", cfg.Level(), zerolog.DebugLevel)
	}

	s, err := cfg.State()
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if s.Plies() != 2 || s.Forced() != uttt.A1 {
		t.Errorf("state=%s", s)
	}

	limits := cfg.Limits(5)
	if limits.Depth != 5 || limits.NThreads != 4 || limits.SplitDepth != 3 {
		t.Errorf("limits=%v", limits)
	}
}

func TestLoadPositionAndMoves(t *testing.T) {
	path := writeConfig(t, `
position: "9/9/5x3/9/9/9/9/9/9 5"
moves: "C2b2"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, _ := cfg.State()
	if want := "9/9/5x3/9/9/9/9/9/9 5"; s.Notation() == want || s.Forced() != 4 {
		t.Errorf("moves not applied: %s", s)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []string{
		"min_depth: -1",
		"min_depth: 5\nmax_depth: 3",
		"threads: 0",
		"split_depth: -2",
		"log_level: loud",
		"position: nonsense",
		"moves: \"C3c2 A3a3\"",
	}

	for _, content := range tests {
		_, err := Load(writeConfig(t, content))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%q: err=%v, want %v", content, err, ErrInvalidConfig)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err=%v, want %v", err, os.ErrNotExist)
	}
}
