package geometry

import "github.com/go-gl/mathgl/mgl64"

// Opening ratio limits. Size is the fraction of the wall the opening spans,
// offset is the fraction along the wall where its centre sits.
const (
	MinOpeningSize   = 0.2
	MaxOpeningSize   = 0.8
	MinOpeningOffset = 0.25
	MaxOpeningOffset = 0.75

	// DefaultBarrier thickens door colliders so a camera box passing through
	// registers, and narrows them so they stay clear of the pillars.
	DefaultBarrier = 0.5
)

// opening describes how a wall is split around a door or window. Offsets are
// measured from the wall centre; the near pillar sits on the positive side of
// the wall axis.
type opening struct {
	center    float64
	half      float64
	near, far float64
	halfWall  float64
}

func layoutOpening(wallWidth, size, offset float64) opening {
	size = min(MaxOpeningSize, max(MinOpeningSize, size))
	offset = min(MaxOpeningOffset, max(MinOpeningOffset, offset))

	halfWall := wallWidth / 2
	center := offset * wallWidth
	half := size * center
	if offset > 0.5 {
		// Keeps the opening inside the wall as the centre nears the far edge.
		half = size * (1 - offset) * wallWidth
	}

	return opening{
		center:   halfWall - center,
		half:     half,
		near:     center - half,
		far:      wallWidth - center - half,
		halfWall: halfWall,
	}
}

// OpeningSpan returns the centre and half width of an opening along the wall
// axis, measured from the wall centre.
func OpeningSpan(wallWidth, size, offset float64) (center, half float64) {
	o := layoutOpening(wallWidth, size, offset)
	return o.center, o.half
}

func (o opening) nearOffset() float64 { return o.halfWall - o.near/2 }
func (o opening) farOffset() float64  { return o.far/2 - o.halfWall }

// FrontDoorway builds a wall along the x axis with a doorway cut into it: two
// full-height pillars and a lintel above the gap.
func FrontDoorway(wallWidth, size, offset float64) Mesh {
	o := layoutOpening(wallWidth, size, offset)
	return Join(
		Cuboid(o.near, WallThickness, RoomHeight, mgl64.Vec3{o.nearOffset(), 0, 0}),
		Cuboid(o.half*2, WallThickness, RoomHeight-DoorwayClearance, mgl64.Vec3{o.center, DoorwayClearance, 0}),
		Cuboid(o.far, WallThickness, RoomHeight, mgl64.Vec3{o.farOffset(), 0, 0}),
	)
}

// SideDoorway builds a wall along the z axis with a doorway cut into it.
func SideDoorway(wallWidth, size, offset float64) Mesh {
	o := layoutOpening(wallWidth, size, offset)
	return Join(
		Cuboid(WallThickness, o.near, RoomHeight, mgl64.Vec3{0, 0, o.nearOffset()}),
		Cuboid(WallThickness, o.half*2, RoomHeight-DoorwayClearance, mgl64.Vec3{0, DoorwayClearance, o.center}),
		Cuboid(WallThickness, o.far, RoomHeight, mgl64.Vec3{0, 0, o.farOffset()}),
	)
}

// FrontWindow builds a wall along the x axis with a window: two pillars plus a
// block below and a block above the glazing.
func FrontWindow(wallWidth, size, offset float64) Mesh {
	o := layoutOpening(wallWidth, size, offset)
	block := RoomHeight / WindowLiftDivider
	return Join(
		Cuboid(o.near, WallThickness, RoomHeight, mgl64.Vec3{o.nearOffset(), 0, 0}),
		Cuboid(o.half*2, WallThickness, block, mgl64.Vec3{o.center, 0, 0}),
		Cuboid(o.half*2, WallThickness, block, mgl64.Vec3{o.center, RoomHeight - block, 0}),
		Cuboid(o.far, WallThickness, RoomHeight, mgl64.Vec3{o.farOffset(), 0, 0}),
	)
}

// SideWindow builds a wall along the z axis with a window.
func SideWindow(wallWidth, size, offset float64) Mesh {
	o := layoutOpening(wallWidth, size, offset)
	block := RoomHeight / WindowLiftDivider
	return Join(
		Cuboid(WallThickness, o.near, RoomHeight, mgl64.Vec3{0, 0, o.nearOffset()}),
		Cuboid(WallThickness, o.half*2, block, mgl64.Vec3{0, 0, o.center}),
		Cuboid(WallThickness, o.half*2, block, mgl64.Vec3{0, RoomHeight - block, o.center}),
		Cuboid(WallThickness, o.far, RoomHeight, mgl64.Vec3{0, 0, o.farOffset()}),
	)
}

// FrontDoorOpening builds a block filling the passable gap of a front
// doorway. It is never rendered; it only serves as a collider.
func FrontDoorOpening(wallWidth, size, offset, barrier float64) Mesh {
	o := layoutOpening(wallWidth, size, offset)
	return Cuboid(
		max(0, o.half*2-barrier),
		WallThickness+barrier,
		DoorwayClearance,
		mgl64.Vec3{o.center, 0, 0},
	)
}

// SideDoorOpening is the side-wall counterpart of FrontDoorOpening.
func SideDoorOpening(wallWidth, size, offset, barrier float64) Mesh {
	o := layoutOpening(wallWidth, size, offset)
	return Cuboid(
		WallThickness+barrier,
		max(0, o.half*2-barrier),
		DoorwayClearance,
		mgl64.Vec3{0, 0, o.center},
	)
}
