package camera

import (
	"context"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/roomplanner/internal/floorplan"
	"github.com/samdwyer/roomplanner/internal/geometry"
	"github.com/samdwyer/roomplanner/internal/telemetry"
)

func testMaterials() floorplan.Materials {
	return floorplan.UniformMaterials("planks", "wood", "stone")
}

// newPlan builds a main room A at the origin with room B north of it.
func newPlan(t *testing.T, withB bool) (*floorplan.Map, *floorplan.Room) {
	t.Helper()
	m := floorplan.NewMap(floorplan.WithTracer(telemetry.NoopTracer()))
	a, err := m.InsertRoom(context.Background(), "A", 4, 4, testMaterials(), floorplan.North, 0, 0.5)
	if err != nil {
		t.Fatalf("InsertRoom(A) failed: %v", err)
	}
	if withB {
		if _, err := m.InsertRoom(context.Background(), "B", 4, 4, testMaterials(), floorplan.North, a.ID(), 0.5); err != nil {
			t.Fatalf("InsertRoom(B) failed: %v", err)
		}
	}
	return m, a
}

func walk(c Camera, controls Controls, steps int) {
	for i := 0; i < steps; i++ {
		c.Update(controls)
	}
}

func TestNewPicksCameraForMode(t *testing.T) {
	m, _ := newPlan(t, false)
	for _, mode := range []Mode{ModeDesign, ModeExplore, ModeRoam} {
		if got := New(mode, m).Mode(); got != mode {
			t.Errorf("New(%s).Mode() = %s", mode, got)
		}
	}
}

func TestExploreWalksThroughDoorway(t *testing.T) {
	m, _ := newPlan(t, true)
	cam := NewExplorationCamera(ModeExplore, m)

	walk(cam, Controls{Forward: true}, 100)

	pos := cam.Position()
	if pos[2] <= 4 {
		t.Errorf("Expected to reach room B, got %v", pos)
	}
	if pos[1] != EyeHeight {
		t.Errorf("Expected eye height %v, got %v", EyeHeight, pos[1])
	}
}

func TestExploreStopsAtSolidWall(t *testing.T) {
	m, _ := newPlan(t, false)
	cam := NewExplorationCamera(ModeExplore, m)

	walk(cam, Controls{Forward: true}, 100)

	if pos := cam.Position(); pos[2] >= 2 || pos[2] < 1.5 {
		t.Errorf("Expected to stop at the north wall, got %v", pos)
	}
}

func TestExploreBlockedByObject(t *testing.T) {
	m, a := newPlan(t, false)
	cube := geometry.Cuboid(1, 1, 1, mgl64.Vec3{})
	if _, err := m.PlaceObject(context.Background(), a.ID(), "table", cube, mgl64.Vec3{0, 0, 1}, floorplan.PlacementGround); err != nil {
		t.Fatalf("PlaceObject failed: %v", err)
	}
	cam := NewExplorationCamera(ModeExplore, m)

	walk(cam, Controls{Forward: true}, 50)

	if pos := cam.Position(); pos[2] >= 0.5 {
		t.Errorf("Expected the table to block the camera, got %v", pos)
	}
}

func TestExploreResetsWhenFarFromRooms(t *testing.T) {
	m, _ := newPlan(t, false)
	cam := NewExplorationCamera(ModeExplore, m)
	cam.MoveTo(mgl64.Vec3{20, 5, 20})

	if pos := cam.Position(); pos[1] != EyeHeight {
		t.Errorf("MoveTo should keep eye height, got %v", pos)
	}

	cam.Update(Controls{Forward: true})

	if pos := cam.Position(); !pos.ApproxEqual(mgl64.Vec3{0, EyeHeight, 0}) {
		t.Errorf("Expected reset to the start, got %v", pos)
	}
}

func TestExploreOnEmptyPlanIsUnconstrained(t *testing.T) {
	m := floorplan.NewMap(floorplan.WithTracer(telemetry.NoopTracer()))
	cam := NewExplorationCamera(ModeExplore, m)

	walk(cam, Controls{Forward: true}, 200)

	if pos := cam.Position(); math.Abs(pos[2]-10) > 1e-6 {
		t.Errorf("Expected z=10 after 200 free steps, got %v", pos)
	}
}

func TestRoamStaysInBounds(t *testing.T) {
	m, _ := newPlan(t, false)
	cam := NewExplorationCamera(ModeRoam, m)

	walk(cam, Controls{Up: true}, 200)

	pos := cam.Position()
	if pos[1] >= RoamBounds.Y.Max || pos[1] < RoamBounds.Y.Max-FloatSpeed {
		t.Errorf("Expected to stop just under the roam ceiling, got %v", pos)
	}

	walk(cam, Controls{Down: true}, 400)
	if pos := cam.Position(); pos[1] <= RoamBounds.Y.Min {
		t.Errorf("Expected to stay above the floor, got %v", pos)
	}
}

func TestLookTurnsAndClampsPitch(t *testing.T) {
	cam := NewExplorationCamera(ModeRoam, nil)

	// 300 degrees of input at the look speed is a quarter turn.
	cam.Update(Controls{Yaw: 300})
	if f := cam.Forward(); f.Sub(mgl64.Vec3{-1, 0, 0}).Len() > 1e-9 {
		t.Errorf("Expected to face east, got %v", f)
	}

	walk(cam, Controls{Pitch: 50}, 20)
	if f := cam.Forward(); math.Abs(f.Dot(worldUp)) >= maxPitchDot {
		t.Errorf("Pitch was not clamped: %v", f)
	}
	if l := cam.Forward().Len(); math.Abs(l-1) > 1e-9 {
		t.Errorf("Forward is not a unit vector: %v", l)
	}
}

func TestDesignPanAndZoom(t *testing.T) {
	cam := NewDesignCamera()

	cam.Update(Controls{Left: true})
	if pos := cam.Position(); !pos.ApproxEqual(mgl64.Vec3{PanSpeed, DesignHeight, 0}) {
		t.Errorf("Expected pan to +x, got %v", pos)
	}
	vs := cam.ViewState()
	if !vs.Target.ApproxEqual(mgl64.Vec3{PanSpeed, DesignHeight - 1, 0}) {
		t.Errorf("Expected target below the camera, got %v", vs.Target)
	}

	walk(cam, Controls{ZoomIn: true}, 500)
	if cam.Size() != MinViewSize {
		t.Errorf("Expected zoom clamped to %v, got %v", MinViewSize, cam.Size())
	}
	walk(cam, Controls{ZoomOut: true}, 500)
	if cam.Size() != MaxViewSize {
		t.Errorf("Expected zoom clamped to %v, got %v", MaxViewSize, cam.Size())
	}
}

func TestDesignVisibleRooms(t *testing.T) {
	m, _ := newPlan(t, true)
	cam := NewDesignCamera()

	if got := len(cam.VisibleRooms(m)); got != m.Len() {
		t.Errorf("Expected all %d rooms visible, got %d", m.Len(), got)
	}

	walk(cam, Controls{ZoomIn: true}, 500)
	walk(cam, Controls{Right: true}, 100)
	if got := cam.VisibleRooms(m); len(got) != 0 {
		t.Errorf("Expected no rooms visible after panning away, got %d", len(got))
	}
}
