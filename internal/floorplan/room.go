package floorplan

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/roomplanner/internal/collision"
	"github.com/samdwyer/roomplanner/internal/geometry"
)

// Room dimension limits in metres.
const (
	MinDimension = 1.0
	MaxDimension = 10.0
)

// Part is one renderable piece of a room, in room-local coordinates.
type Part struct {
	Name     string
	Material Material
	Mesh     geometry.Mesh
}

// Room is a rectangular room on the plan. Rooms are only created and changed
// through a Map, which keeps neighbour links and colliders in step.
type Room struct {
	id       int
	name     string
	width    float64
	breadth  float64
	position mgl64.Vec3

	walls      [4]WallType
	openings   [4]Opening
	neighbours [4]int // room ids, 0 for none

	materials Materials
	isFull    bool
	isMain    bool

	parts   []Part
	objects []RoomObject
}

func newRoom(id int, name string, width, breadth float64, materials Materials, position mgl64.Vec3) *Room {
	r := &Room{
		id:        id,
		name:      name,
		width:     width,
		breadth:   breadth,
		position:  position,
		materials: materials,
	}
	r.Build()
	return r
}

// ID returns the room id. Ids start at 1.
func (r *Room) ID() int { return r.id }

// Name returns the room name.
func (r *Room) Name() string { return r.name }

// Width returns the extent of the room along x.
func (r *Room) Width() float64 { return r.width }

// Breadth returns the extent of the room along z.
func (r *Room) Breadth() float64 { return r.breadth }

// Position returns the centre of the room floor.
func (r *Room) Position() mgl64.Vec3 { return r.position }

// WallType returns the state of the wall facing d.
func (r *Room) WallType(d Direction) WallType { return r.walls[d] }

// Opening returns the door or window ratios of the wall facing d.
func (r *Room) Opening(d Direction) Opening { return r.openings[d] }

// Neighbour returns the id of the room beyond the wall facing d.
func (r *Room) Neighbour(d Direction) (int, bool) {
	id := r.neighbours[d]
	return id, id != 0
}

// Materials returns the surface materials of the room.
func (r *Room) Materials() Materials { return r.materials }

// IsFull reports whether every wall has a neighbour.
func (r *Room) IsFull() bool { return r.isFull }

// IsMain reports whether this is the first room of the plan.
func (r *Room) IsMain() bool { return r.isMain }

// HasCeiling reports whether the room is built with a ceiling.
func (r *Room) HasCeiling() bool { return r.materials.Ceiling != NoMaterial }

// NeighbourDirections returns the walls that have a neighbour.
func (r *Room) NeighbourDirections() []Direction {
	var result []Direction
	for _, d := range Directions {
		if r.neighbours[d] != 0 {
			result = append(result, d)
		}
	}
	return result
}

// NeighbourCount returns the number of linked neighbours.
func (r *Room) NeighbourCount() int {
	return len(r.NeighbourDirections())
}

// FreePlots returns the walls with no neighbour beyond them.
func (r *Room) FreePlots() []Direction {
	var result []Direction
	for _, d := range Directions {
		if r.neighbours[d] == 0 {
			result = append(result, d)
		}
	}
	return result
}

// SolidWalls returns the solid walls that have a neighbour when withNeighbour
// is set, or that have none otherwise.
func (r *Room) SolidWalls(withNeighbour bool) []Direction {
	var result []Direction
	for _, d := range Directions {
		if r.walls[d] == Solid && (r.neighbours[d] != 0) == withNeighbour {
			result = append(result, d)
		}
	}
	return result
}

// WallsOfType returns the walls in state t.
func (r *Room) WallsOfType(t WallType) []Direction {
	var result []Direction
	for _, d := range Directions {
		if r.walls[d] == t {
			result = append(result, d)
		}
	}
	return result
}

// CanBeMoved reports whether the room may be detached and re-anchored.
func (r *Room) CanBeMoved() bool {
	return !r.isMain && r.NeighbourCount() <= 1
}

// ClampedWidth reports whether a north or south neighbour pins the width.
func (r *Room) ClampedWidth() bool {
	return r.neighbours[North] != 0 || r.neighbours[South] != 0
}

// ClampedBreadth reports whether an east or west neighbour pins the breadth.
func (r *Room) ClampedBreadth() bool {
	return r.neighbours[East] != 0 || r.neighbours[West] != 0
}

// Bounds returns the room collider.
func (r *Room) Bounds() collision.AABB {
	return collision.RoomBounds(r.width, r.breadth, r.position)
}

// Collider returns the room collider grown by padding on every side of the
// footprint.
func (r *Room) Collider(padding float64) collision.AABB {
	return collision.RoomBounds(r.width+padding*2, r.breadth+padding*2, r.position)
}

// Parts returns the renderable pieces of the room.
func (r *Room) Parts() []Part {
	parts := make([]Part, len(r.parts))
	copy(parts, r.parts)
	return parts
}

// Mesh returns every part of the room merged into one mesh.
func (r *Room) Mesh() geometry.Mesh {
	meshes := make([]geometry.Mesh, len(r.parts))
	for i, p := range r.parts {
		meshes[i] = p.Mesh
	}
	return geometry.Join(meshes...)
}

// DoorwayColliders returns a world space collider for the gap of every door.
// Each collider straddles the space between this room and its neighbour.
func (r *Room) DoorwayColliders() []collision.AABB {
	var result []collision.AABB
	for _, d := range r.WallsOfType(Door) {
		o := r.openings[d]
		var m geometry.Mesh
		if d == North || d == South {
			m = geometry.FrontDoorOpening(r.width, o.Size, o.Offset, geometry.DefaultBarrier)
		} else {
			m = geometry.SideDoorOpening(r.sideWallLength(), o.Size, o.Offset, geometry.DefaultBarrier)
		}
		gap := r.wallCenter(d).Add(r.outward(d).Mul(geometry.WallThickness * 1.5))
		result = append(result, collision.MeshBounds(m).Offset(r.position.Add(gap)))
	}
	return result
}

// OpeningExtent returns the world space interval covered by the door or
// window in wall d: along x for north and south walls, along z otherwise.
func (r *Room) OpeningExtent(d Direction) (collision.Interval, bool) {
	if r.walls[d] == Solid {
		return collision.Interval{}, false
	}
	o := r.openings[d]
	if d == North || d == South {
		c, h := geometry.OpeningSpan(r.width, o.Size, o.Offset)
		x := r.position[0] + c
		return collision.Interval{Min: x - h, Max: x + h}, true
	}
	c, h := geometry.OpeningSpan(r.sideWallLength(), o.Size, o.Offset)
	z := r.position[2] + c
	return collision.Interval{Min: z - h, Max: z + h}, true
}

// Build regenerates every part of the room from its current state.
func (r *Room) Build() {
	parts := make([]Part, 0, 6)
	parts = append(parts, Part{
		Name:     "floor",
		Material: r.materials.Floor,
		Mesh:     geometry.Floor(r.width, r.breadth),
	})
	if r.HasCeiling() {
		parts = append(parts, Part{
			Name:     "ceiling",
			Material: r.materials.Ceiling,
			Mesh:     geometry.Ceiling(r.width, r.breadth),
		})
	}
	for _, d := range Directions {
		parts = append(parts, Part{
			Name:     d.String() + " wall",
			Material: r.materials.Walls[d],
			Mesh:     r.wallMesh(d).Translate(r.wallCenter(d)),
		})
	}
	r.parts = parts
}

func (r *Room) wallMesh(d Direction) geometry.Mesh {
	o := r.openings[d]
	front := d == North || d == South

	switch {
	case r.walls[d] == Door && front:
		return geometry.FrontDoorway(r.width, o.Size, o.Offset)
	case r.walls[d] == Door:
		return geometry.SideDoorway(r.sideWallLength(), o.Size, o.Offset)
	case r.walls[d] == Window && front:
		return geometry.FrontWindow(r.width, o.Size, o.Offset)
	case r.walls[d] == Window:
		return geometry.SideWindow(r.sideWallLength(), o.Size, o.Offset)
	case front:
		return geometry.FrontWall(r.width)
	default:
		return geometry.SideWall(r.sideWallLength())
	}
}

// sideWallLength is the span of an east or west wall, which fits between the
// north and south walls.
func (r *Room) sideWallLength() float64 {
	return r.breadth - geometry.WallThickness*2
}

// wallCenter returns the room-local centre of the wall facing d.
func (r *Room) wallCenter(d Direction) mgl64.Vec3 {
	halfWidth := r.width/2 - geometry.WallThickness/2
	halfBreadth := r.breadth/2 - geometry.WallThickness/2
	out := r.outward(d)
	return mgl64.Vec3{out[0] * halfWidth, 0, out[2] * halfBreadth}
}

// outward returns the unit vector pointing out of the room through wall d.
func (r *Room) outward(d Direction) mgl64.Vec3 {
	p := d.Plot()
	return mgl64.Vec3{float64(p.X), 0, float64(p.Z)}
}

func (r *Room) refreshFull() {
	r.isFull = len(r.FreePlots()) == 0
}

func (r *Room) setWall(d Direction, t WallType, o Opening) {
	r.walls[d] = t
	if t == Solid {
		o = Opening{}
	}
	r.openings[d] = o
}
