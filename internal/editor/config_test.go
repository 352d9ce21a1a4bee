package editor

import (
	"errors"
	"testing"

	"github.com/samdwyer/roomplanner/internal/catalog"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ROOMPLANNER_ROOM_WIDTH", "6")
	t.Setenv("ROOMPLANNER_FLOOR", "wood")
	t.Setenv("ROOMPLANNER_SEED", "99")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}
	if cfg.RoomWidth != 6 {
		t.Errorf("Expected width 6, got %v", cfg.RoomWidth)
	}
	if cfg.FloorMaterial != "wood" {
		t.Errorf("Expected wood floor, got %q", cfg.FloorMaterial)
	}
	if cfg.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", cfg.Seed)
	}
	if cfg.RoomBreadth != DefaultConfig().RoomBreadth {
		t.Errorf("Expected default breadth, got %v", cfg.RoomBreadth)
	}
}

func TestConfigFromEnvRejectsBadNumbers(t *testing.T) {
	t.Setenv("ROOMPLANNER_DOOR_SIZE", "wide")

	if _, err := ConfigFromEnv(); err == nil {
		t.Error("Expected an error for a non-numeric door size")
	}
}

func TestConfigValidate(t *testing.T) {
	materials := catalog.MustLoadRegistry()

	if err := DefaultConfig().Validate(materials); err != nil {
		t.Errorf("Default config should be valid, got %v", err)
	}

	cfg := DefaultConfig()
	cfg.Sky = "stone"
	if err := cfg.Validate(materials); !errors.Is(err, catalog.ErrUnsupportedSurface) {
		t.Errorf("Expected ErrUnsupportedSurface, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.CeilingMaterial = ""
	if err := cfg.Validate(materials); err != nil {
		t.Errorf("An empty ceiling should be valid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.ResizeStep = 0
	if err := cfg.Validate(materials); err == nil {
		t.Error("Expected an error for a zero resize step")
	}
}
