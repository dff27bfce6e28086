package config

import (
	"os"
	"path/filepath"
	"testing"

	"dungeonforge/pkg/engine/world"
)

func TestDefaultIsComplete(t *testing.T) {
	cfg := Default()

	if cfg.Map.BaseWidth <= 0 || cfg.Map.BaseHeight <= 0 {
		t.Error("map dimensions must be positive")
	}
	if cfg.Rooms.MinSize > cfg.Rooms.MaxSize {
		t.Error("room min size exceeds max size")
	}
	if len(cfg.Rooms.TypeWeights) == 0 {
		t.Error("room type weights missing")
	}
	if cfg.Rooms.TypeWeights[world.RoomStandard] <= 0 {
		t.Error("standard rooms need a positive weight")
	}
	if cfg.Enemies.Cap < cfg.Enemies.MaxBase {
		t.Error("enemy cap below base budget")
	}
	if len(cfg.Exits.Kinds) == 0 {
		t.Error("exit kinds missing")
	}
	if cfg.Placement.MinStartDistance <= 0 {
		t.Error("min start distance must be positive")
	}
	if len(cfg.Biomes) == 0 {
		t.Error("biome table missing")
	}
}

func TestLoadOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := []byte("map:\n  base_width: 100\nenemies:\n  cap: 99\n")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Map.BaseWidth != 100 {
		t.Errorf("expected overridden width 100, got %d", cfg.Map.BaseWidth)
	}
	if cfg.Enemies.Cap != 99 {
		t.Errorf("expected overridden cap 99, got %d", cfg.Enemies.Cap)
	}
	// Untouched fields keep their defaults.
	if cfg.Map.BaseHeight != Default().Map.BaseHeight {
		t.Errorf("unexpected height override: %d", cfg.Map.BaseHeight)
	}
	if len(cfg.Exits.Kinds) != len(Default().Exits.Kinds) {
		t.Error("exit kinds should keep defaults")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
