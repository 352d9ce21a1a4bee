package collision

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRegistryUpsertReplaces(t *testing.T) {
	r := NewRegistry()
	r.Upsert(1, RoomBounds(4, 4, mgl64.Vec3{}))
	r.Upsert(1, RoomBounds(4, 4, mgl64.Vec3{20, 0, 0}))

	if r.Len() != 1 {
		t.Fatalf("Expected 1 entry, got %d", r.Len())
	}

	// The old collider must be gone from the index as well.
	if _, ok := r.OverlapsAny(RoomBounds(2, 2, mgl64.Vec3{}), 0); ok {
		t.Error("Stale collider still reported after upsert")
	}
	if _, ok := r.OverlapsAny(RoomBounds(2, 2, mgl64.Vec3{20, 0, 0}), 0); !ok {
		t.Error("Expected overlap with the updated collider")
	}

	got, ok := r.Get(1)
	if !ok || got.X.Min != 18 {
		t.Errorf("Get(1) = (%v,%v)", got, ok)
	}
}

func TestRegistryOverlapsAnyReturnsLowestID(t *testing.T) {
	r := NewRegistry()
	r.Upsert(3, RoomBounds(4, 4, mgl64.Vec3{2, 0, 0}))
	r.Upsert(1, RoomBounds(4, 4, mgl64.Vec3{-2, 0, 0}))
	r.Upsert(2, RoomBounds(4, 4, mgl64.Vec3{0, 0, 50}))

	hit, ok := r.OverlapsAny(RoomBounds(2, 2, mgl64.Vec3{}), 0)
	if !ok {
		t.Fatal("Expected an overlap")
	}
	if hit.RoomID != 1 {
		t.Errorf("Expected room 1 first, got %d", hit.RoomID)
	}
	if hit.Overlap.X.Min != -1 || hit.Overlap.X.Max != 0 {
		t.Errorf("Unexpected overlap interval %v", hit.Overlap)
	}

	hit, ok = r.OverlapsAny(RoomBounds(2, 2, mgl64.Vec3{}), 1)
	if !ok || hit.RoomID != 3 {
		t.Errorf("Expected room 3 when excluding room 1, got (%v,%v)", hit.RoomID, ok)
	}
}

func TestRegistryIgnoresTouchingRooms(t *testing.T) {
	r := NewRegistry()
	r.Upsert(1, RoomBounds(4, 4, mgl64.Vec3{}))

	if _, ok := r.OverlapsAny(RoomBounds(4, 4, mgl64.Vec3{4, 0, 0}), 0); ok {
		t.Error("Expected touching rooms not to overlap")
	}
}

func TestRegistryLocate(t *testing.T) {
	r := NewRegistry()
	r.Upsert(1, RoomBounds(4, 4, mgl64.Vec3{}))
	r.Upsert(2, RoomBounds(4, 4, mgl64.Vec3{0, 0, 4.6}))

	camera := RoomBounds(0.1, 0.1, mgl64.Vec3{0, 1, 4})
	id, ok := r.Locate(camera)
	if !ok || id != 2 {
		t.Errorf("Locate = (%d,%v), want (2,true)", id, ok)
	}

	if _, ok := r.Locate(RoomBounds(0.1, 0.1, mgl64.Vec3{0, 1, 2.3})); ok {
		t.Error("Expected the gap between rooms to be outside the map")
	}

	// A zero width collider still produces a valid search rectangle.
	if _, ok := r.Locate(RoomBounds(0, 0, mgl64.Vec3{0, 1, 0})); ok {
		t.Error("Expected a zero width collider never to overlap")
	}
}

func TestRegistryCandidatesComeFromIndex(t *testing.T) {
	r := NewRegistry()
	r.Upsert(7, RoomBounds(4, 4, mgl64.Vec3{2, 0, 0}))
	r.Upsert(2, RoomBounds(4, 4, mgl64.Vec3{-2, 0, 0}))
	r.Upsert(5, RoomBounds(4, 4, mgl64.Vec3{0, 0, 50}))

	got := r.candidates(RoomBounds(2, 2, mgl64.Vec3{}))
	if len(got) != 2 || got[0] != 2 || got[1] != 7 {
		t.Errorf("candidates = %v, want [2 7]", got)
	}
	if got := r.candidates(RoomBounds(2, 2, mgl64.Vec3{0, 0, -50})); len(got) != 0 {
		t.Errorf("Expected no candidates far from every room, got %v", got)
	}
}
