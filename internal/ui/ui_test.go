package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"

	"github.com/samdwyer/roomplanner/internal/camera"
	"github.com/samdwyer/roomplanner/internal/catalog"
	"github.com/samdwyer/roomplanner/internal/floorplan"
	"github.com/samdwyer/roomplanner/internal/geometry"
	"github.com/samdwyer/roomplanner/internal/telemetry"
)

// newPlan builds A at the origin with B to the north, a window in A's west
// wall and a crate south of A's centre.
func newPlan(t *testing.T) (*floorplan.Map, *floorplan.Room) {
	t.Helper()
	ctx := context.Background()
	m := floorplan.NewMap(floorplan.WithTracer(telemetry.NoopTracer()))
	materials := floorplan.UniformMaterials("planks", "wood", "stone")

	a, err := m.InsertRoom(ctx, "A", 4, 4, materials, floorplan.North, 0, 0.5)
	if err != nil {
		t.Fatalf("InsertRoom(A) failed: %v", err)
	}
	if _, err := m.InsertRoom(ctx, "B", 4, 4, materials, floorplan.North, a.ID(), 0.5); err != nil {
		t.Fatalf("InsertRoom(B) failed: %v", err)
	}
	if err := m.AddWindow(ctx, a.ID(), floorplan.West, 0.5, 0.5, floorplan.NoMaterial); err != nil {
		t.Fatalf("AddWindow failed: %v", err)
	}
	crate := geometry.Cuboid(0.5, 0.5, 0.5, mgl64.Vec3{})
	if _, err := m.PlaceObject(ctx, a.ID(), "crate", crate, mgl64.Vec3{0, 0, -1}, floorplan.PlacementGround); err != nil {
		t.Fatalf("PlaceObject failed: %v", err)
	}
	return m, a
}

func TestViewportRoundTrip(t *testing.T) {
	vp := FitViewport(orb.Bound{Min: orb.Point{-10, -10}, Max: orb.Point{10, 10}}, 80, 20)

	if vp.Scale != 0.5 {
		t.Errorf("Expected 0.5 units per column, got %v", vp.Scale)
	}
	for _, cell := range [][2]int{{0, 0}, {40, 10}, {79, 19}} {
		col, row, ok := vp.Cell(vp.World(cell[0], cell[1]))
		if !ok || col != cell[0] || row != cell[1] {
			t.Errorf("Round trip of %v gave %d,%d,%v", cell, col, row, ok)
		}
	}

	// West (+x) is drawn on the left, north (+z) at the top.
	west, _, _ := vp.Cell(orb.Point{5, 0})
	east, _, _ := vp.Cell(orb.Point{-5, 0})
	if west >= east {
		t.Errorf("Expected west left of east, got %d and %d", west, east)
	}
	_, north, _ := vp.Cell(orb.Point{0, 5})
	_, south, _ := vp.Cell(orb.Point{0, -5})
	if north >= south {
		t.Errorf("Expected north above south, got %d and %d", north, south)
	}

	if _, _, ok := vp.Cell(orb.Point{100, 0}); ok {
		t.Error("Expected a far point to be off screen")
	}
}

func TestSampleAt(t *testing.T) {
	m, a := newPlan(t)
	rooms := m.Rooms()

	tests := []struct {
		name string
		p    orb.Point
		kind CellKind
		wall floorplan.Direction
	}{
		{"floor", orb.Point{0, 0}, CellFloor, 0},
		{"door to B", orb.Point{0, 1.9}, CellDoor, floorplan.North},
		{"beside the door", orb.Point{1.5, 1.9}, CellWall, floorplan.North},
		{"window", orb.Point{1.9, 0}, CellWindow, floorplan.West},
		{"beside the window", orb.Point{1.9, 1.5}, CellWall, floorplan.West},
		{"east wall", orb.Point{-1.9, 0}, CellWall, floorplan.East},
		{"crate", orb.Point{0, -1}, CellObject, 0},
		{"gap between rooms", orb.Point{0, 2.3}, CellEmpty, 0},
	}

	for _, tt := range tests {
		s := SampleAt(rooms, tt.p)
		if s.Kind != tt.kind {
			t.Errorf("%s: kind = %d, want %d", tt.name, s.Kind, tt.kind)
			continue
		}
		if tt.kind == CellEmpty {
			continue
		}
		if s.Room.ID() != a.ID() {
			t.Errorf("%s: room = %d, want %d", tt.name, s.Room.ID(), a.ID())
		}
		if (tt.kind == CellWall || tt.kind == CellDoor || tt.kind == CellWindow) && s.Wall != tt.wall {
			t.Errorf("%s: wall = %s, want %s", tt.name, s.Wall, tt.wall)
		}
	}

	if s := SampleAt(rooms, orb.Point{0, 0}); s.Material != "planks" {
		t.Errorf("Expected planks floor, got %q", s.Material)
	}
}

func TestRendererDrawsPlan(t *testing.T) {
	m, a := newPlan(t)

	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := newScreen(sim)
	if err != nil {
		t.Fatalf("newScreen failed: %v", err)
	}
	defer screen.Close()
	sim.SetSize(80, 24)

	r := NewRenderer(screen, catalog.MustLoadRegistry())
	bounds := orb.Bound{Min: orb.Point{-10, -10}, Max: orb.Point{10, 10}}
	cam := camera.NewExplorationCamera(camera.ModeExplore, m)
	r.Render(View{
		Rooms:    m.Rooms(),
		Selected: a.ID(),
		Wall:     floorplan.North,
		Bounds:   bounds,
		Camera:   cam.ViewState(),
		Status:   "hello",
	})

	vp := FitViewport(bounds, 80, 24-statusLines)
	col, row, ok := vp.Cell(orb.Point{0, 0})
	if !ok {
		t.Fatal("Expected the origin on screen")
	}
	if ch, _, _, _ := sim.GetContent(col, row); ch != '@' {
		t.Errorf("Expected the camera at the origin, got %q", ch)
	}

	col, row, _ = vp.Cell(orb.Point{1, 1})
	if ch, _, _, _ := sim.GetContent(col, row); ch != '=' {
		t.Errorf("Expected planks floor, got %q", ch)
	}

	var status strings.Builder
	for x := 0; x < 80; x++ {
		ch, _, _, _ := sim.GetContent(x, 24-statusLines)
		status.WriteRune(ch)
	}
	if !strings.Contains(status.String(), "[explore]") || !strings.Contains(status.String(), "A 4x4") {
		t.Errorf("Unexpected status line %q", status.String())
	}
	if ch, _, _, _ := sim.GetContent(0, 23); ch != 'h' {
		t.Errorf("Expected message on the last line, got %q", ch)
	}
}
