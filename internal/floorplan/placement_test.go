package floorplan

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/samdwyer/roomplanner/internal/collision"
	"github.com/samdwyer/roomplanner/internal/geometry"
	"github.com/samdwyer/roomplanner/internal/telemetry"
)

func unitCube() geometry.Mesh {
	return geometry.Cuboid(1, 1, 1, mgl64.Vec3{})
}

func newFurnishedMap(t *testing.T) (*Map, *Room) {
	t.Helper()
	m := NewMap(WithTracer(telemetry.NoopTracer()))
	a := mustInsert(t, m, "A", 4, 4, North, 0)
	return m, a
}

func TestPlaceObjectOnGround(t *testing.T) {
	m, a := newFurnishedMap(t)

	obj, err := m.PlaceObject(context.Background(), a.ID(), "table", unitCube(), mgl64.Vec3{0, 0.7, 0}, PlacementGround)
	if err != nil {
		t.Fatalf("PlaceObject failed: %v", err)
	}
	if obj.ID == uuid.Nil {
		t.Error("Expected a generated object id")
	}
	if math.Abs(obj.Collider().Y.Min) > epsilon {
		t.Errorf("Expected object resting on the floor, got %v", obj.Collider())
	}
	if len(a.Objects()) != 1 {
		t.Fatalf("Expected 1 object, got %d", len(a.Objects()))
	}

	hit, _, ok := a.ObjectAt(collision.RoomBounds(0.1, 0.1, mgl64.Vec3{0, 1, 0}), uuid.Nil)
	if !ok || hit.ID != obj.ID {
		t.Error("Expected ObjectAt to find the table")
	}
	if _, _, ok := a.ObjectAt(collision.RoomBounds(0.1, 0.1, mgl64.Vec3{0, 1, 0}), obj.ID); ok {
		t.Error("Expected the skipped object to be ignored")
	}
}

func TestPlaceObjectPushesAwayFromOthers(t *testing.T) {
	m, a := newFurnishedMap(t)
	ctx := context.Background()

	if _, err := m.PlaceObject(ctx, a.ID(), "table", unitCube(), mgl64.Vec3{}, PlacementGround); err != nil {
		t.Fatalf("PlaceObject failed: %v", err)
	}

	chair, err := m.PlaceObject(ctx, a.ID(), "chair", unitCube(), mgl64.Vec3{0.8, 0, 0}, PlacementGround)
	if err != nil {
		t.Fatalf("PlaceObject failed: %v", err)
	}
	want := mgl64.Vec3{0.8 + 0.2 + objectPadding, 0, 0}
	if !chair.Position.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("Chair at %v, want %v", chair.Position, want)
	}

	// Same spot as the table: the push is purely vertical and is discarded.
	_, err = m.PlaceObject(ctx, a.ID(), "stool", unitCube(), mgl64.Vec3{}, PlacementGround)
	if !errors.Is(err, ErrObjectOverlap) {
		t.Errorf("Expected ErrObjectOverlap, got %v", err)
	}
	if len(a.Objects()) != 2 {
		t.Errorf("Expected 2 objects, got %d", len(a.Objects()))
	}
}

func TestPlaceObjectOutsideRoom(t *testing.T) {
	m, a := newFurnishedMap(t)

	_, err := m.PlaceObject(context.Background(), a.ID(), "sofa", unitCube(), mgl64.Vec3{5, 0, 0}, PlacementGround)
	if !errors.Is(err, ErrObjectOutside) {
		t.Fatalf("Expected ErrObjectOutside, got %v", err)
	}
	if KindOf(err) != KindStructural {
		t.Errorf("Expected structural error, got %v", KindOf(err))
	}
	if _, err := m.PlaceObject(context.Background(), 42, "sofa", unitCube(), mgl64.Vec3{}, PlacementGround); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Expected ErrRoomNotFound, got %v", err)
	}
}

func TestPlaceObjectOnCeilingAndWall(t *testing.T) {
	m, a := newFurnishedMap(t)
	ctx := context.Background()
	small := geometry.Cuboid(0.4, 0.4, 0.4, mgl64.Vec3{})

	lamp, err := m.PlaceObject(ctx, a.ID(), "lamp", small, mgl64.Vec3{0, 0, 0}, PlacementCeiling)
	if err != nil {
		t.Fatalf("PlaceObject(ceiling) failed: %v", err)
	}
	if math.Abs(lamp.Collider().Y.Max-geometry.RoomHeight) > epsilon {
		t.Errorf("Expected lamp hanging from the ceiling, got %v", lamp.Collider())
	}

	picture, err := m.PlaceObject(ctx, a.ID(), "picture", small, mgl64.Vec3{1, 0, 0.2}, PlacementWall)
	if err != nil {
		t.Fatalf("PlaceObject(wall) failed: %v", err)
	}
	c := picture.Collider()
	if math.Abs(c.X.Max-(2-geometry.WallThickness)) > epsilon {
		t.Errorf("Expected picture against the west wall, got %v", c)
	}
	if c.Y.Min < geometry.DoorwayClearance {
		t.Errorf("Expected picture above the doorway clearance, got %v", c)
	}
}

func TestRemoveObject(t *testing.T) {
	m, a := newFurnishedMap(t)

	obj, err := m.PlaceObject(context.Background(), a.ID(), "table", unitCube(), mgl64.Vec3{}, PlacementGround)
	if err != nil {
		t.Fatalf("PlaceObject failed: %v", err)
	}
	if err := m.RemoveObject(a.ID(), obj.ID); err != nil {
		t.Fatalf("RemoveObject failed: %v", err)
	}
	if len(a.Objects()) != 0 {
		t.Errorf("Expected no objects, got %d", len(a.Objects()))
	}
	if err := m.RemoveObject(a.ID(), obj.ID); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("Expected ErrObjectNotFound, got %v", err)
	}
}
