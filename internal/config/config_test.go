package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.DataDir != "media" {
		t.Errorf("data dir: got %q, want %q", cfg.DataDir, "media")
	}
	if len(cfg.BetMenu) != 3 || cfg.BetMenu[0] != 5 || cfg.BetMenu[1] != 25 || cfg.BetMenu[2] != 50 {
		t.Errorf("bet menu: got %v, want [5 25 50]", cfg.BetMenu)
	}
	if cfg.Debug {
		t.Error("debug should default to off")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BLACKJACK_DATA_DIR", "/tmp/games")
	t.Setenv("BLACKJACK_BET_MENU", "1,2,3,4")
	t.Setenv("BLACKJACK_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.DataDir != "/tmp/games" {
		t.Errorf("data dir: got %q", cfg.DataDir)
	}
	if len(cfg.BetMenu) != 4 {
		t.Errorf("bet menu: got %v", cfg.BetMenu)
	}
	if !cfg.Debug {
		t.Error("expected debug on")
	}
}
