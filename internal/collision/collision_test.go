package collision

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/roomplanner/internal/geometry"
)

const epsilon = 1e-9

func box(x0, x1, y0, y1, z0, z1 float64) AABB {
	return AABB{X: Interval{x0, x1}, Y: Interval{y0, y1}, Z: Interval{z0, z1}}
}

func vecNear(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, epsilon)
}

func TestBoundsFromVertices(t *testing.T) {
	m := geometry.Cuboid(2, 4, 3, mgl64.Vec3{1, 0, -1})
	b := BoundsFromVertices(m.Vertices)

	want := box(0, 2, 0, 3, -3, 1)
	if !vecNear(b.Min(), want.Min()) || !vecNear(b.Max(), want.Max()) {
		t.Errorf("Bounds %v, want %v", b, want)
	}

	if got := BoundsFromVertices(nil); got != (AABB{}) {
		t.Errorf("Expected zero box for empty buffer, got %v", got)
	}
}

func TestBoundsFromVerticesUpdatesMinAndMaxIndependently(t *testing.T) {
	// Second vertex lowers x and raises z at once.
	vertices := make([]float64, 2*geometry.VertexSize)
	copy(vertices[0:3], []float64{1, 1, 1})
	copy(vertices[geometry.VertexSize:geometry.VertexSize+3], []float64{-1, 2, 5})

	b := BoundsFromVertices(vertices)
	want := box(-1, 1, 1, 2, 1, 5)
	if b != want {
		t.Errorf("Bounds %v, want %v", b, want)
	}
}

func TestRoomBoundsEnclosesRoomGeometry(t *testing.T) {
	for width := 1; width <= 10; width++ {
		for breadth := 1; breadth <= 10; breadth++ {
			w, b := float64(width), float64(breadth)
			bounds := RoomBounds(w, b, mgl64.Vec3{})

			meshes := map[string]geometry.Mesh{
				"floor":      geometry.Floor(w, b),
				"front wall": geometry.FrontWall(w),
				"side wall":  geometry.SideWall(b),
			}
			for name, m := range meshes {
				if !FitsWithin(MeshBounds(m), mgl64.Vec3{}, bounds) {
					t.Fatalf("%s for %dx%d escapes room bounds %v", name, width, breadth, bounds)
				}
			}
		}
	}
}

func TestOverlapIsSymmetric(t *testing.T) {
	boxes := []AABB{
		box(0, 2, 0, 2, 0, 2),
		box(1, 3, 1, 3, 1, 3),
		box(2, 4, 0, 2, 0, 2), // touches the first on x
		box(-5, 5, -1, 0.5, -5, 5),
		box(10, 11, 10, 11, 10, 11),
		box(0.5, 1.5, 0.5, 0.5, 0.5, 1.5), // flat
	}

	for i, a := range boxes {
		for j, b := range boxes {
			ab, okAB := Overlap(a, b)
			ba, okBA := Overlap(b, a)
			if okAB != okBA || ab != ba {
				t.Errorf("Overlap(%d,%d)=(%v,%v) but Overlap(%d,%d)=(%v,%v)", i, j, ab, okAB, j, i, ba, okBA)
			}
		}
	}
}

func TestOverlapWithSelf(t *testing.T) {
	solid := box(0, 1, 0, 2, 0, 3)
	got, ok := Overlap(solid, solid)
	if !ok || got != solid {
		t.Errorf("Overlap(a,a) = (%v,%v), want (%v,true)", got, ok, solid)
	}

	flat := box(0, 1, 0, 0, 0, 3)
	if _, ok := Overlap(flat, flat); ok {
		t.Error("Expected a zero volume box not to overlap itself")
	}
}

func TestOverlapTouchingIsNotOverlap(t *testing.T) {
	a := RoomBounds(4, 4, mgl64.Vec3{0, 0, 0})
	b := RoomBounds(4, 4, mgl64.Vec3{4, 0, 0})
	if _, ok := Overlap(a, b); ok {
		t.Error("Expected rooms sharing an edge not to overlap")
	}
}

func TestOverlapAdjustment(t *testing.T) {
	overlap := box(1, 3, 0, 1, -2, 1)

	got := OverlapAdjustment(overlap, mgl64.Vec3{1, 0, -1}, 0.5)
	want := mgl64.Vec3{2.5, 0, -1.5}
	if !vecNear(got, want) {
		t.Errorf("OverlapAdjustment = %v, want %v", got, want)
	}

	// Plan directions skip y and map their second component onto z.
	got = PlanarOverlapAdjustment(overlap, mgl64.Vec2{0, 1}, 0)
	want = mgl64.Vec3{0, 0, 1}
	if !vecNear(got, want) {
		t.Errorf("PlanarOverlapAdjustment = %v, want %v", got, want)
	}
}

func TestAxisDifferenceUsesAbsoluteValues(t *testing.T) {
	// ||2| - |-3|| = 1, not the interval length 5.
	if got := AxisDifference(Interval{-3, 2}, 0); math.Abs(got-1) > epsilon {
		t.Errorf("AxisDifference = %v, want 1", got)
	}
}

func TestColliderAdjustment(t *testing.T) {
	collider := box(0, 2, 0, 2, 0, 2)
	overlap := box(0, 1, 1, 2, 0, 0.5)

	got := ColliderAdjustment(overlap, collider, 0)
	// x: min matches -> west (+), y: min differs -> up (+), z: min matches -> south (-)
	want := mgl64.Vec3{1, 1, -0.5}
	if !vecNear(got, want) {
		t.Errorf("ColliderAdjustment = %v, want %v", got, want)
	}
}

func TestGroundEscapeAdjustment(t *testing.T) {
	collided := box(-1, 1, 0, 1, -1, 1)
	collider := box(0, 2, 0, 1, -1, 1)
	overlap, ok := Overlap(collider, collided)
	if !ok {
		t.Fatal("Expected test boxes to overlap")
	}

	got := GroundEscapeAdjustment(overlap, collider, collided, 0)
	if got[0] <= 0 || math.Abs(got[1]) > epsilon || math.Abs(got[2]) > epsilon {
		t.Errorf("Expected a pure +x push, got %v", got)
	}
}

func TestGroundEscapeAdjustmentFallbacks(t *testing.T) {
	// Same centre, away from the origin: push towards the origin.
	a := box(1, 3, 0, 2, 1, 3)
	got := GroundEscapeAdjustment(a, a, a, 0)
	if got[0] >= 0 || got[2] >= 0 {
		t.Errorf("Expected push towards origin, got %v", got)
	}

	// Same centre on the origin: fixed diagonal direction.
	o := box(-1, 1, -1, 1, -1, 1)
	got = GroundEscapeAdjustment(box(-1, 2, -1, 2, -1, 2), o, o, 0)
	if got[0] <= 0 || got[1] <= 0 || got[2] <= 0 {
		t.Errorf("Expected positive diagonal push, got %v", got)
	}
}

func TestPlacementAdjustments(t *testing.T) {
	floating := box(-0.5, 0.5, 0.7, 1.2, -0.5, 0.5)
	if got := GroundAdjustment(floating, 0); !vecNear(got, mgl64.Vec3{0, -0.7, 0}) {
		t.Errorf("GroundAdjustment = %v, want (0,-0.7,0)", got)
	}
	resting := box(-0.5, 0.5, 0, 1, -0.5, 0.5)
	if got := GroundAdjustment(resting, 0); got != (mgl64.Vec3{}) {
		t.Errorf("Expected no adjustment for a resting object, got %v", got)
	}
	nearly := box(-0.5, 0.5, -0.00001, 1, -0.5, 0.5)
	if got := GroundAdjustment(nearly, 0); got[1] != minGroundNudge {
		t.Errorf("Expected minimum nudge, got %v", got)
	}

	lamp := box(-0.2, 0.2, 0, 0.5, -0.2, 0.2)
	if got := CeilingAdjustment(lamp); !vecNear(got, mgl64.Vec3{0, geometry.RoomHeight - 0.5, 0}) {
		t.Errorf("CeilingAdjustment = %v", got)
	}
}

func TestWallAdjustment(t *testing.T) {
	// Centre leans towards +x: snaps against the +x wall.
	picture := box(0.5, 1.5, 0, 1, -0.2, 0.2)
	got := WallAdjustment(picture, 6, 4)
	moved := picture.Offset(got)

	if math.Abs(moved.X.Max-(3-geometry.WallThickness)) > epsilon {
		t.Errorf("Expected object against +x wall, got %v", moved)
	}
	if moved.Y.Min < geometry.DoorwayClearance || moved.Y.Min > geometry.RoomHeight-wallMountCeilingGap {
		t.Errorf("Wall mounted object base %v outside allowed band", moved.Y.Min)
	}
	if !FitsWithin(moved, mgl64.Vec3{}, RoomBounds(6, 4, mgl64.Vec3{})) {
		t.Errorf("Wall mounted object %v does not fit the room", moved)
	}

	// Centre leans towards -z: snaps against the -z wall.
	shelf := box(-0.2, 0.2, 2, 2.5, -1.5, -0.5)
	moved = shelf.Offset(WallAdjustment(shelf, 6, 4))
	if math.Abs(moved.Z.Min-(-2+geometry.WallThickness)) > epsilon {
		t.Errorf("Expected object against -z wall, got %v", moved)
	}
}

func TestFitsWithinUsesRoomPosition(t *testing.T) {
	bounds := RoomBounds(4, 4, mgl64.Vec3{10, 0, 0})
	local := box(-1, 1, 0, 1, -1, 1)

	if !FitsWithin(local, mgl64.Vec3{10, 0, 0}, bounds) {
		t.Error("Expected local collider to fit once offset")
	}
	if FitsWithin(local, mgl64.Vec3{}, bounds) {
		t.Error("Expected collider at origin to fall outside a room at x=10")
	}
}
