package floorplan

import (
	"context"

	"github.com/go-gl/mathgl/mgl64"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomplanner/internal/collision"
	"github.com/samdwyer/roomplanner/internal/geometry"
)

// Entrance room settings, created alongside the first room of a plan.
const (
	EntranceName              = "mainEntrance"
	EntranceFloor    Material = "grass"
	entranceDoorSize          = 0.5
)

// resizePadding leaves a hair of clearance after a resize is pushed clear of
// another room.
const resizePadding = 0.001

// InsertRoom adds a room to the plan. The first room is placed at the origin,
// marked as main and given an entrance room to its south; dir, anchorID and
// doorSize are ignored for it. Every later room is placed against wall dir of
// the anchor room, with a door of doorSize between them, and is linked to any
// other room it ends up next to.
func (m *Map) InsertRoom(ctx context.Context, name string, width, breadth float64, materials Materials, dir Direction, anchorID int, doorSize float64) (*Room, error) {
	_, span := m.tracer.Start(ctx, "floorplan.insert_room")
	defer span.End()

	span.SetAttributes(
		attribute.String("room.name", name),
		attribute.Float64("room.width", width),
		attribute.Float64("room.breadth", breadth),
		attribute.String("room.direction", dir.String()),
		attribute.Int("room.anchor_id", anchorID),
	)

	var room *Room
	var err error
	if m.IsEmpty() {
		room, err = m.insertMain(name, width, breadth, materials)
	} else {
		room, err = m.insertRoom(name, width, breadth, materials, dir, anchorID, doorSize)
	}
	if err != nil {
		return nil, finish(span, err)
	}

	span.SetAttributes(
		attribute.Int("room.id", room.id),
		attribute.Int("map.room_count", len(m.rooms)),
	)
	return room, nil
}

func (m *Map) insertMain(name string, width, breadth float64, materials Materials) (*Room, error) {
	const op = "insert_room"
	if !validDimensions(width, breadth) {
		return nil, editError(op, 0, ErrInvalidDimensions)
	}

	main := newRoom(m.lastID+1, name, width, breadth, materials, mgl64.Vec3{})
	main.isMain = true
	m.lastID = main.id
	m.rooms[main.id] = main
	m.root = main.id
	m.registry.Upsert(main.id, main.Bounds())

	entrance := UniformMaterials(EntranceFloor, NoMaterial, materials.Walls[South])
	if _, err := m.insertRoom(EntranceName, width, breadth, entrance, South, main.id, entranceDoorSize); err != nil {
		// Unreachable on an empty plan.
		return nil, err
	}
	return main, nil
}

func (m *Map) insertRoom(name string, width, breadth float64, materials Materials, dir Direction, anchorID int, doorSize float64) (*Room, error) {
	const op = "insert_room"
	if !validDimensions(width, breadth) {
		return nil, editError(op, 0, ErrInvalidDimensions)
	}
	if !dir.Valid() {
		return nil, editError(op, 0, ErrUnknownDirection)
	}
	if !validRatio(doorSize) {
		return nil, editError(op, 0, ErrInvalidRatio)
	}
	anchor, err := m.lookup(op, anchorID)
	if err != nil {
		return nil, err
	}
	if _, taken := anchor.Neighbour(dir); taken {
		return nil, editError(op, anchorID, ErrHasNeighbour)
	}

	position := placeAgainst(anchor, width, breadth, dir)
	if _, ok := m.registry.OverlapsAny(collision.RoomBounds(width, breadth, position), 0); ok {
		return nil, editError(op, 0, ErrOverlap)
	}

	found := m.adjacentRooms(anchor, dir)

	room := newRoom(m.lastID+1, name, width, breadth, materials, position)
	m.lastID = room.id
	m.rooms[room.id] = room

	door := Opening{Size: doorSize, Offset: DefaultOpeningOffset}
	m.link(anchor, room, dir, &door)
	m.linkFound(room, found)
	m.registry.Upsert(room.id, room.Bounds())
	return room, nil
}

// ResizeRoom changes the footprint of a room. A dimension pinned by a
// neighbour keeps its current value whatever is requested. The room grows
// away from the origin; if that runs into another room, it is pushed once
// towards its free side before giving up.
func (m *Map) ResizeRoom(ctx context.Context, roomID int, width, breadth float64) error {
	_, span := m.tracer.Start(ctx, "floorplan.resize_room")
	defer span.End()

	span.SetAttributes(
		attribute.Int("room.id", roomID),
		attribute.Float64("room.width", width),
		attribute.Float64("room.breadth", breadth),
	)
	return finish(span, m.resizeRoom(roomID, width, breadth))
}

func (m *Map) resizeRoom(roomID int, width, breadth float64) error {
	const op = "resize_room"
	room, err := m.lookup(op, roomID)
	if err != nil {
		return err
	}
	if room.isMain {
		return editError(op, roomID, ErrRoomLocked)
	}
	if !validDimensions(width, breadth) {
		return editError(op, roomID, ErrInvalidDimensions)
	}

	if room.ClampedWidth() {
		width = room.width
	}
	if room.ClampedBreadth() {
		breadth = room.breadth
	}

	position := room.position
	if width != room.width {
		position[0] += awayFromOrigin(room.position[0]) * (width - room.width) / 2
	}
	if breadth != room.breadth {
		position[2] += awayFromOrigin(room.position[2]) * (breadth - room.breadth) / 2
	}

	hit, ok := m.registry.OverlapsAny(collision.RoomBounds(width, breadth, position), room.id)
	if ok {
		free := room.freeDirection()
		position = position.Add(collision.PlanarOverlapAdjustment(hit.Overlap, free.Vec2(), resizePadding))
		if _, ok := m.registry.OverlapsAny(collision.RoomBounds(width, breadth, position), room.id); ok {
			return editError(op, roomID, ErrOverlap)
		}
	}

	room.width = width
	room.breadth = breadth
	room.position = position
	room.Build()
	m.registry.Upsert(room.id, room.Bounds())
	return nil
}

// freeDirection is the side a resized room may be pushed towards: away from
// the neighbour pinning its width, or else away from the one pinning its
// breadth.
func (r *Room) freeDirection() Direction {
	if r.ClampedWidth() {
		if r.neighbours[North] != 0 {
			return South
		}
		return North
	}
	if r.neighbours[West] != 0 {
		return East
	}
	return West
}

// MoveRoom detaches a room and attaches it against wall dir of another room.
// Only rooms with at most one neighbour can move, and the wall they attach to
// must match them in length.
func (m *Map) MoveRoom(ctx context.Context, roomID, anchorID int, dir Direction) error {
	_, span := m.tracer.Start(ctx, "floorplan.move_room")
	defer span.End()

	span.SetAttributes(
		attribute.Int("room.id", roomID),
		attribute.Int("room.anchor_id", anchorID),
		attribute.String("room.direction", dir.String()),
	)
	return finish(span, m.moveRoom(roomID, anchorID, dir))
}

func (m *Map) moveRoom(roomID, anchorID int, dir Direction) error {
	const op = "move_room"
	room, err := m.lookup(op, roomID)
	if err != nil {
		return err
	}
	anchor, err := m.lookup(op, anchorID)
	if err != nil {
		return err
	}
	if !dir.Valid() {
		return editError(op, roomID, ErrUnknownDirection)
	}
	if room.isMain {
		return editError(op, roomID, ErrRoomLocked)
	}
	if !room.CanBeMoved() || anchor.id == room.id {
		return editError(op, roomID, ErrNotMovable)
	}
	if dir == North || dir == South {
		if room.width != anchor.width {
			return editError(op, roomID, ErrDimensionMismatch)
		}
	} else if room.breadth != anchor.breadth {
		return editError(op, roomID, ErrDimensionMismatch)
	}
	if id, taken := anchor.Neighbour(dir); taken && id != room.id {
		return editError(op, anchorID, ErrHasNeighbour)
	}

	position := placeAgainst(anchor, room.width, room.breadth, dir)
	if _, ok := m.registry.OverlapsAny(collision.RoomBounds(room.width, room.breadth, position), room.id); ok {
		return editError(op, roomID, ErrOverlap)
	}

	m.unlinkAll(room)
	found := m.adjacentRooms(anchor, dir, room.id)

	room.position = position
	door := Opening{Size: entranceDoorSize, Offset: DefaultOpeningOffset}
	m.link(anchor, room, dir, &door)
	m.linkFound(room, found)
	m.registry.Upsert(room.id, room.Bounds())
	return nil
}

// AddDoor cuts a door into a wall shared with a neighbour, on both sides. An
// empty material keeps the current wall material.
func (m *Map) AddDoor(ctx context.Context, roomID int, dir Direction, size, offset float64, material Material) error {
	_, span := m.tracer.Start(ctx, "floorplan.add_door")
	defer span.End()

	span.SetAttributes(openingAttributes(roomID, dir, size, offset)...)
	return finish(span, m.addDoor(roomID, dir, size, offset, material))
}

func (m *Map) addDoor(roomID int, dir Direction, size, offset float64, material Material) error {
	const op = "add_door"
	room, err := m.lookup(op, roomID)
	if err != nil {
		return err
	}
	if !dir.Valid() {
		return editError(op, roomID, ErrUnknownDirection)
	}
	if !validRatio(size) || !validRatio(offset) {
		return editError(op, roomID, ErrInvalidRatio)
	}
	id, ok := room.Neighbour(dir)
	if !ok {
		return editError(op, roomID, ErrNoNeighbour)
	}
	other, ok := m.rooms[id]
	if !ok {
		return editError(op, roomID, ErrInconsistentGraph)
	}
	if room.walls[dir] == Window || other.walls[dir.Opposite()] == Window {
		return editError(op, roomID, ErrInvalidTransition)
	}

	opening := Opening{Size: size, Offset: offset}
	room.setWall(dir, Door, opening)
	other.setWall(dir.Opposite(), Door, opening)
	if material != NoMaterial {
		room.materials.Walls[dir] = material
	}
	room.Build()
	other.Build()
	return nil
}

// AddWindow cuts a window into an exterior wall.
func (m *Map) AddWindow(ctx context.Context, roomID int, dir Direction, size, offset float64, material Material) error {
	_, span := m.tracer.Start(ctx, "floorplan.add_window")
	defer span.End()

	span.SetAttributes(openingAttributes(roomID, dir, size, offset)...)
	return finish(span, m.addWindow(roomID, dir, size, offset, material))
}

func (m *Map) addWindow(roomID int, dir Direction, size, offset float64, material Material) error {
	const op = "add_window"
	room, err := m.lookup(op, roomID)
	if err != nil {
		return err
	}
	if !dir.Valid() {
		return editError(op, roomID, ErrUnknownDirection)
	}
	if !validRatio(size) || !validRatio(offset) {
		return editError(op, roomID, ErrInvalidRatio)
	}
	if _, ok := room.Neighbour(dir); ok {
		return editError(op, roomID, ErrHasNeighbour)
	}
	if room.walls[dir] == Door {
		return editError(op, roomID, ErrInvalidTransition)
	}

	room.setWall(dir, Window, Opening{Size: size, Offset: offset})
	if material != NoMaterial {
		room.materials.Walls[dir] = material
	}
	room.Build()
	return nil
}

// AddWall closes a door or window. Closing a door also closes it on the
// neighbour's side; the two rooms stay linked.
func (m *Map) AddWall(ctx context.Context, roomID int, dir Direction, material Material) error {
	_, span := m.tracer.Start(ctx, "floorplan.add_wall")
	defer span.End()

	span.SetAttributes(
		attribute.Int("room.id", roomID),
		attribute.String("wall.direction", dir.String()),
	)
	return finish(span, m.addWall(roomID, dir, material))
}

func (m *Map) addWall(roomID int, dir Direction, material Material) error {
	const op = "add_wall"
	room, err := m.lookup(op, roomID)
	if err != nil {
		return err
	}
	if !dir.Valid() {
		return editError(op, roomID, ErrUnknownDirection)
	}

	if room.walls[dir] == Door {
		if other, ok := m.rooms[room.neighbours[dir]]; ok {
			other.setWall(dir.Opposite(), Solid, Opening{})
			other.Build()
		}
	}
	room.setWall(dir, Solid, Opening{})
	if material != NoMaterial {
		room.materials.Walls[dir] = material
	}
	room.Build()
	return nil
}

// UpdateFloorMaterial changes the floor material of a room.
func (m *Map) UpdateFloorMaterial(roomID int, material Material) error {
	return m.updateMaterials("update_floor", roomID, func(mat *Materials) {
		mat.Floor = material
	})
}

// UpdateWallMaterial changes the material of one wall of a room.
func (m *Map) UpdateWallMaterial(roomID int, dir Direction, material Material) error {
	if !dir.Valid() {
		return editError("update_wall", roomID, ErrUnknownDirection)
	}
	return m.updateMaterials("update_wall", roomID, func(mat *Materials) {
		mat.Walls[dir] = material
	})
}

// UpdateCeilingMaterial changes the ceiling material of a room. NoMaterial
// removes the ceiling.
func (m *Map) UpdateCeilingMaterial(roomID int, material Material) error {
	return m.updateMaterials("update_ceiling", roomID, func(mat *Materials) {
		mat.Ceiling = material
	})
}

func (m *Map) updateMaterials(op string, roomID int, update func(*Materials)) error {
	room, err := m.lookup(op, roomID)
	if err != nil {
		return err
	}
	update(&room.materials)
	room.Build()
	return nil
}

// link makes a and b neighbours, b lying in direction dir of a. A non-nil door
// opens both walls. Windows on the linked walls are closed.
func (m *Map) link(a, b *Room, dir Direction, door *Opening) {
	back := dir.Opposite()
	a.neighbours[dir] = b.id
	b.neighbours[back] = a.id

	switch {
	case door != nil:
		a.setWall(dir, Door, *door)
		b.setWall(back, Door, *door)
	default:
		if a.walls[dir] == Window {
			a.setWall(dir, Solid, Opening{})
		}
		if b.walls[back] == Window {
			b.setWall(back, Solid, Opening{})
		}
	}

	a.refreshFull()
	b.refreshFull()
	a.Build()
	b.Build()
}

// linkFound links room to rooms found next to it by adjacentRooms. A room
// whose facing wall is already taken is left alone.
func (m *Map) linkFound(room *Room, found []visit) {
	for _, v := range found {
		tags, err := DirectionalTags(v.plot)
		if err != nil {
			continue
		}
		if room.neighbours[tags.Primary] != 0 || v.room.neighbours[tags.Secondary] != 0 {
			continue
		}
		m.link(room, v.room, tags.Primary, nil)
	}
}

// unlinkAll removes every link of room, closing the walls on both sides.
func (m *Map) unlinkAll(room *Room) {
	for _, d := range room.NeighbourDirections() {
		other := m.rooms[room.neighbours[d]]
		other.neighbours[d.Opposite()] = 0
		other.setWall(d.Opposite(), Solid, Opening{})
		other.refreshFull()
		other.Build()

		room.neighbours[d] = 0
		room.setWall(d, Solid, Opening{})
	}
	room.refreshFull()
	room.Build()
}

// placeAgainst returns the position of a width x breadth room placed against
// wall dir of anchor, leaving a wall thickness of gap on each side.
func placeAgainst(anchor *Room, width, breadth float64, dir Direction) mgl64.Vec3 {
	gap := geometry.WallThickness * 2
	var offset float64
	if dir == North || dir == South {
		offset = anchor.breadth/2 + breadth/2 + gap
	} else {
		offset = anchor.width/2 + width/2 + gap
	}
	step := dir.Vec2().Mul(offset)
	return anchor.position.Add(mgl64.Vec3{step[0], 0, step[1]})
}

func validDimensions(width, breadth float64) bool {
	return width >= MinDimension && width <= MaxDimension &&
		breadth >= MinDimension && breadth <= MaxDimension
}

// awayFromOrigin returns the sign that moves v away from the origin. Zero
// counts as positive.
func awayFromOrigin(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func openingAttributes(roomID int, dir Direction, size, offset float64) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("room.id", roomID),
		attribute.String("wall.direction", dir.String()),
		attribute.Float64("opening.size", size),
		attribute.Float64("opening.offset", offset),
	}
}
