// Package floorplan maintains the graph of adjacent rooms that makes up a plan,
// along with the doors, windows and objects inside those rooms.
package floorplan

import (
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/roomplanner/internal/collision"
	"github.com/samdwyer/roomplanner/internal/telemetry"
)

// Map is the room graph of one plan. Rooms live in an arena keyed by id and
// refer to their neighbours by id. A Map is not safe for concurrent use.
type Map struct {
	rooms    map[int]*Room
	root     int
	lastID   int
	registry *collision.Registry
	tracer   trace.Tracer
}

// Option configures a Map.
type Option func(*Map)

// WithTracer sets the tracer used for edit spans.
func WithTracer(t trace.Tracer) Option {
	return func(m *Map) {
		m.tracer = t
	}
}

// NewMap creates an empty plan.
func NewMap(opts ...Option) *Map {
	m := &Map{
		rooms:    make(map[int]*Room),
		registry: collision.NewRegistry(),
		tracer:   telemetry.Tracer("floorplan"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// IsEmpty reports whether the plan has no rooms.
func (m *Map) IsEmpty() bool {
	return m.root == 0
}

// Len returns the number of rooms.
func (m *Map) Len() int {
	return len(m.rooms)
}

// Root returns the first room of the plan.
func (m *Map) Root() (*Room, bool) {
	return m.Room(m.root)
}

// Room returns the room with the given id.
func (m *Map) Room(id int) (*Room, bool) {
	r, ok := m.rooms[id]
	return r, ok
}

// Rooms returns every room ordered by id.
func (m *Map) Rooms() []*Room {
	return m.filter(func(*Room) bool { return true })
}

// LocateRoom returns the room whose collider overlaps box.
func (m *Map) LocateRoom(box collision.AABB) (*Room, bool) {
	id, ok := m.registry.Locate(box)
	if !ok {
		return nil, false
	}
	return m.Room(id)
}

// AvailableAnchorRooms returns the rooms with at least one free wall. The room
// with id withoutID is left out; pass 0 to keep every room.
func (m *Map) AvailableAnchorRooms(withoutID int) []*Room {
	return m.filter(func(r *Room) bool {
		return !r.isFull && r.id != withoutID
	})
}

// RoomsNotFull returns the rooms with at least one free wall.
func (m *Map) RoomsNotFull() []*Room {
	return m.filter(func(r *Room) bool { return !r.isFull })
}

// DisjointNeighbours returns the rooms with more than one neighbour where at
// least one neighbour sits behind a solid wall. A door can be added there.
func (m *Map) DisjointNeighbours() []*Room {
	return m.filter(func(r *Room) bool {
		return r.NeighbourCount() > 1 && len(r.SolidWalls(true)) > 0
	})
}

// RoomsWithUnlinkedSolidWalls returns the rooms with a solid exterior wall. A
// window can be added there.
func (m *Map) RoomsWithUnlinkedSolidWalls() []*Room {
	return m.filter(func(r *Room) bool {
		return !r.isFull && len(r.SolidWalls(false)) > 0
	})
}

// FreePlotDirections returns the walls of a room with no neighbour.
func (m *Map) FreePlotDirections(roomID int) ([]Direction, error) {
	r, err := m.lookup("free_plots", roomID)
	if err != nil {
		return nil, err
	}
	return r.FreePlots(), nil
}

// SolidWalls returns the solid walls of a room, with or without a neighbour.
func (m *Map) SolidWalls(roomID int, withNeighbour bool) ([]Direction, error) {
	r, err := m.lookup("solid_walls", roomID)
	if err != nil {
		return nil, err
	}
	return r.SolidWalls(withNeighbour), nil
}

// CheckLinks verifies the structural invariants of the plan: links are
// symmetric, doors face doors, windows face nothing, colliders are current
// and no two footprints overlap.
func (m *Map) CheckLinks() error {
	rooms := m.Rooms()
	for _, r := range rooms {
		for _, d := range Directions {
			id := r.neighbours[d]
			if id == 0 {
				if r.walls[d] == Door {
					return fmt.Errorf("%w: room %d has a %s door without a neighbour", ErrInconsistentGraph, r.id, d)
				}
				continue
			}
			other, ok := m.rooms[id]
			if !ok {
				return fmt.Errorf("%w: room %d links to missing room %d", ErrInconsistentGraph, r.id, id)
			}
			if other.neighbours[d.Opposite()] != r.id {
				return fmt.Errorf("%w: room %d links %s to %d but not back", ErrInconsistentGraph, r.id, d, id)
			}
			if r.walls[d] == Window {
				return fmt.Errorf("%w: room %d has a %s window onto room %d", ErrInconsistentGraph, r.id, d, id)
			}
			if (r.walls[d] == Door) != (other.walls[d.Opposite()] == Door) {
				return fmt.Errorf("%w: door between rooms %d and %d is one-sided", ErrInconsistentGraph, r.id, id)
			}
		}

		box, ok := m.registry.Get(r.id)
		if !ok || box != r.Bounds() {
			return fmt.Errorf("%w: collider for room %d is stale", ErrInconsistentGraph, r.id)
		}
		if hit, ok := m.registry.OverlapsAny(box, r.id); ok {
			return fmt.Errorf("%w: rooms %d and %d overlap", ErrInconsistentGraph, r.id, hit.RoomID)
		}
	}
	return nil
}

func (m *Map) filter(keep func(*Room) bool) []*Room {
	result := make([]*Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		if keep(r) {
			result = append(result, r)
		}
	}
	slices.SortFunc(result, func(a, b *Room) int { return a.id - b.id })
	return result
}

func (m *Map) lookup(op string, id int) (*Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return nil, editError(op, id, ErrRoomNotFound)
	}
	return r, nil
}

// finish records err on span and hands it back.
func finish(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
