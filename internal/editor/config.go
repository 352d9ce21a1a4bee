package editor

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/roomplanner/internal/catalog"
)

// Config holds editor defaults. Every field can be overridden through a
// ROOMPLANNER_* environment variable.
type Config struct {
	// Footprint of rooms inserted from the editor, unless clamped by neighbours.
	RoomWidth   float64
	RoomBreadth float64

	// Opening size ratio used for new doors and windows.
	DoorSize   float64
	WindowSize float64

	// ResizeStep is how much one grow or shrink keystroke changes a dimension.
	ResizeStep float64

	// GenerateRooms is how many rooms one generate command adds. Seed makes
	// generated plans reproducible; 0 seeds from the clock.
	GenerateRooms int
	Seed          int64

	FloorMaterial   string
	WallMaterial    string
	CeilingMaterial string
	Sky             string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		RoomWidth:       4,
		RoomBreadth:     4,
		DoorSize:        0.5,
		WindowSize:      0.5,
		ResizeStep:      0.5,
		GenerateRooms:   6,
		FloorMaterial:   "planks",
		WallMaterial:    "stone",
		CeilingMaterial: "wood",
		Sky:             "sky_noon",
	}
}

// ConfigFromEnv starts from DefaultConfig and applies any ROOMPLANNER_*
// variables that are set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	floats := []struct {
		key string
		dst *float64
	}{
		{"ROOMPLANNER_ROOM_WIDTH", &cfg.RoomWidth},
		{"ROOMPLANNER_ROOM_BREADTH", &cfg.RoomBreadth},
		{"ROOMPLANNER_DOOR_SIZE", &cfg.DoorSize},
		{"ROOMPLANNER_WINDOW_SIZE", &cfg.WindowSize},
		{"ROOMPLANNER_RESIZE_STEP", &cfg.ResizeStep},
	}
	for _, f := range floats {
		v := os.Getenv(f.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = parsed
	}

	ints := []struct {
		key string
		dst *int64
	}{
		{"ROOMPLANNER_SEED", &cfg.Seed},
	}
	for _, i := range ints {
		v := os.Getenv(i.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", i.key, err)
		}
		*i.dst = parsed
	}
	if v := os.Getenv("ROOMPLANNER_GENERATE_ROOMS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid ROOMPLANNER_GENERATE_ROOMS: %w", err)
		}
		cfg.GenerateRooms = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"ROOMPLANNER_FLOOR", &cfg.FloorMaterial},
		{"ROOMPLANNER_WALL", &cfg.WallMaterial},
		{"ROOMPLANNER_CEILING", &cfg.CeilingMaterial},
		{"ROOMPLANNER_SKY", &cfg.Sky},
	}
	for _, s := range strs {
		if v, ok := os.LookupEnv(s.key); ok {
			*s.dst = v
		}
	}

	return cfg, nil
}

// Validate checks the configured materials against the catalog.
func (c Config) Validate(materials *catalog.Registry) error {
	checks := []struct {
		id      string
		surface catalog.Surface
	}{
		{c.FloorMaterial, catalog.SurfaceFloor},
		{c.WallMaterial, catalog.SurfaceWall},
		{c.CeilingMaterial, catalog.SurfaceCeiling},
		{c.Sky, catalog.SurfaceSky},
	}
	for _, check := range checks {
		if err := materials.Validate(check.id, check.surface); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.GenerateRooms < 1 {
		return fmt.Errorf("config: generate rooms must be at least 1, got %d", c.GenerateRooms)
	}
	if c.ResizeStep <= 0 {
		return fmt.Errorf("config: resize step must be positive, got %v", c.ResizeStep)
	}
	return nil
}
