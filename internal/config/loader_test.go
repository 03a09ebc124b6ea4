package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadChompEmbeddedDefault(t *testing.T) {
	cfg, err := LoadChomp("")
	if err != nil {
		t.Fatalf("LoadChomp(\"\") returned error: %v", err)
	}

	if !cfg.ClassicBugCompatible {
		t.Error("default config should enable classic_bug_compatible")
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("default lives = %d, want 3", cfg.Gameplay.Lives)
	}
	if len(cfg.Levels) < 4 {
		t.Fatalf("default config has %d levels, want >= 4", len(cfg.Levels))
	}
	if cfg.Levels[0].FrightTicks == 0 {
		t.Error("level 1 should have a fright window")
	}
	if last := cfg.Levels[len(cfg.Levels)-1]; last.FrightTicks != 0 {
		t.Errorf("last level fright_ticks = %d, want 0", last.FrightTicks)
	}
}

func TestLoadChompCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	body := `
classic_bug_compatible: false
gameplay:
  lives: 7
levels:
  - phase_ticks: [100, 0]
    fright_ticks: 42
    release_ticks: [0, 1, 2, 3]
    speeds:
      player: 50
      ghost: 50
      fright_player: 50
      fright_ghost: 50
      eaten_ghost: 50
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadChomp(path)
	if err != nil {
		t.Fatalf("LoadChomp(%s) returned error: %v", path, err)
	}
	if cfg.ClassicBugCompatible {
		t.Error("custom config should disable classic_bug_compatible")
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, want 7", cfg.Gameplay.Lives)
	}
	if cfg.Levels[0].FrightTicks != 42 {
		t.Errorf("fright_ticks = %d, want 42", cfg.Levels[0].FrightTicks)
	}
}

func TestLoadChompMissingCustomPath(t *testing.T) {
	if _, err := LoadChomp("/nonexistent/chomp.yaml"); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestLevelAtClamps(t *testing.T) {
	cfg := DefaultChompConfig()
	last := cfg.Levels[len(cfg.Levels)-1]

	if got := cfg.LevelAt(999); got.FrightTicks != last.FrightTicks {
		t.Error("LevelAt past the table should clamp to the last row")
	}
	if got := cfg.LevelAt(-1); got.FrightTicks != cfg.Levels[0].FrightTicks {
		t.Error("LevelAt(-1) should clamp to the first row")
	}
}

func TestApplyChompPreset(t *testing.T) {
	cfg := DefaultChompConfig()
	baseFright := cfg.Levels[0].FrightTicks

	ApplyChompPreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("easy lives = %d, want 5", cfg.Gameplay.Lives)
	}
	if cfg.Levels[0].FrightTicks <= baseFright {
		t.Error("easy preset should extend the fright window")
	}

	cfg = DefaultChompConfig()
	ApplyChompPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("hard lives = %d, want 2", cfg.Gameplay.Lives)
	}
	if cfg.Levels[0].FrightTicks >= baseFright {
		t.Error("hard preset should shrink the fright window")
	}
}
