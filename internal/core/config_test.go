package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("default screen = %dx%d, expected 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != 8 || cfg.StartLevel != 1 {
		t.Errorf("default tick rate %d, start level %d", cfg.TickRate, cfg.StartLevel)
	}
	if cfg.Seed != 0 {
		t.Errorf("default seed should be left to the shell, got %d", cfg.Seed)
	}
}

func TestSetColoredIgnoresOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(-1, 0, 'x', ColorRed)
	s.SetColored(4, 1, 'x', ColorRed)
	s.SetColored(3, 1, 'y', ColorRed)

	if got := s.Get(3, 1); got != 'y' {
		t.Errorf("Get(3, 1) = %q, expected 'y'", got)
	}
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, expected blank", got)
	}
}
