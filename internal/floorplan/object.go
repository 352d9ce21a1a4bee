package floorplan

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/samdwyer/roomplanner/internal/collision"
	"github.com/samdwyer/roomplanner/internal/geometry"
)

// Placement decides how an object is settled when it is placed.
type Placement int

const (
	// PlacementGround rests the object on the floor.
	PlacementGround Placement = iota
	// PlacementCeiling hangs the object from the ceiling.
	PlacementCeiling
	// PlacementWall snaps the object against the nearest wall.
	PlacementWall
)

// String returns the lower case name of the placement.
func (p Placement) String() string {
	switch p {
	case PlacementGround:
		return "ground"
	case PlacementCeiling:
		return "ceiling"
	case PlacementWall:
		return "wall"
	default:
		return "unknown"
	}
}

// objectPadding separates objects pushed apart during placement.
const objectPadding = 0.01

// RoomObject is a piece of furniture inside a room. Position is room-local.
type RoomObject struct {
	ID        uuid.UUID
	Name      string
	Mesh      geometry.Mesh
	Position  mgl64.Vec3
	Placement Placement
}

// Collider returns the room-local bounds of the object.
func (o RoomObject) Collider() collision.AABB {
	return collision.MeshBounds(o.Mesh).Offset(o.Position)
}

// Objects returns the objects placed in the room.
func (r *Room) Objects() []RoomObject {
	objects := make([]RoomObject, len(r.objects))
	copy(objects, r.objects)
	return objects
}

// ObjectAt returns the first object whose world space collider overlaps
// collider. The object with id skip is ignored.
func (r *Room) ObjectAt(collider collision.AABB, skip uuid.UUID) (RoomObject, collision.AABB, bool) {
	for _, o := range r.objects {
		if o.ID == skip {
			continue
		}
		if overlap, ok := collision.Overlap(collider, o.Collider().Offset(r.position)); ok {
			return o, overlap, true
		}
	}
	return RoomObject{}, collision.AABB{}, false
}

func (r *Room) removeObject(id uuid.UUID) bool {
	for i, o := range r.objects {
		if o.ID == id {
			r.objects = append(r.objects[:i], r.objects[i+1:]...)
			return true
		}
	}
	return false
}
