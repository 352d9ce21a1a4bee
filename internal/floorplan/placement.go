package floorplan

import (
	"context"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomplanner/internal/collision"
	"github.com/samdwyer/roomplanner/internal/geometry"
)

// PlaceObject puts an object into a room. The object is first settled onto
// the floor, the ceiling or the nearest wall. If it then overlaps another
// object it is pushed away once; it must end up clear of other objects and
// inside the room.
func (m *Map) PlaceObject(ctx context.Context, roomID int, name string, mesh geometry.Mesh, position mgl64.Vec3, placement Placement) (RoomObject, error) {
	_, span := m.tracer.Start(ctx, "floorplan.place_object")
	defer span.End()

	span.SetAttributes(
		attribute.Int("room.id", roomID),
		attribute.String("object.name", name),
		attribute.String("object.placement", placement.String()),
	)

	obj, err := m.placeObject(roomID, name, mesh, position, placement)
	if err != nil {
		return RoomObject{}, finish(span, err)
	}
	span.SetAttributes(attribute.String("object.id", obj.ID.String()))
	return obj, nil
}

func (m *Map) placeObject(roomID int, name string, mesh geometry.Mesh, position mgl64.Vec3, placement Placement) (RoomObject, error) {
	const op = "place_object"
	room, err := m.lookup(op, roomID)
	if err != nil {
		return RoomObject{}, err
	}

	obj := RoomObject{
		ID:        uuid.New(),
		Name:      name,
		Mesh:      mesh,
		Position:  position,
		Placement: placement,
	}

	switch placement {
	case PlacementCeiling:
		obj.Position = obj.Position.Add(collision.CeilingAdjustment(obj.Collider()))
	case PlacementWall:
		obj.Position = obj.Position.Add(collision.WallAdjustment(obj.Collider(), room.width, room.breadth))
	default:
		obj.Position = obj.Position.Add(collision.GroundAdjustment(obj.Collider(), 0))
	}

	world := obj.Collider().Offset(room.position)
	if other, overlap, ok := room.ObjectAt(world, uuid.Nil); ok {
		var push mgl64.Vec3
		if placement == PlacementGround {
			push = collision.GroundEscapeAdjustment(overlap, world, other.Collider().Offset(room.position), objectPadding)
			push[1] = 0
		} else {
			push = collision.ColliderAdjustment(overlap, world, objectPadding)
		}
		obj.Position = obj.Position.Add(push)

		if _, _, ok := room.ObjectAt(obj.Collider().Offset(room.position), uuid.Nil); ok {
			return RoomObject{}, editError(op, roomID, ErrObjectOverlap)
		}
	}

	if !collision.FitsWithin(obj.Collider(), room.position, room.Bounds()) {
		return RoomObject{}, editError(op, roomID, ErrObjectOutside)
	}

	room.objects = append(room.objects, obj)
	return obj, nil
}

// RemoveObject takes an object out of a room.
func (m *Map) RemoveObject(roomID int, id uuid.UUID) error {
	const op = "remove_object"
	room, err := m.lookup(op, roomID)
	if err != nil {
		return err
	}
	if !room.removeObject(id) {
		return editError(op, roomID, ErrObjectNotFound)
	}
	return nil
}
