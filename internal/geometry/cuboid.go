package geometry

import "github.com/go-gl/mathgl/mgl64"

// Room dimensions shared by the builders and the collision engine.
const (
	RoomHeight           = 3.0
	FloorHeight          = 0.03
	WallThickness        = 0.3
	WindowLiftDivider    = 4.0
	DoorwayHeightDivider = 2.0
)

// DoorwayClearance is the height of the passable gap under a door lintel.
const DoorwayClearance = RoomHeight / DoorwayHeightDivider

// Cuboid builds an axis-aligned box centred on offset in x/z whose base rests
// on offset.y. Faces are emitted front, back, top, bottom, left, right.
func Cuboid(width, breadth, height float64, offset mgl64.Vec3) Mesh {
	x := width / 2
	z := breadth / 2
	ox, oz := offset[0], offset[2]
	y0 := offset[1]
	y1 := offset[1] + height

	front := face(
		[4]mgl64.Vec3{{x + ox, y0, -z + oz}, {-x + ox, y0, -z + oz}, {-x + ox, y1, -z + oz}, {x + ox, y1, -z + oz}},
		mgl64.Vec3{0, 0, -1}, fullUV)
	back := face(
		[4]mgl64.Vec3{{x + ox, y0, z + oz}, {-x + ox, y0, z + oz}, {-x + ox, y1, z + oz}, {x + ox, y1, z + oz}},
		mgl64.Vec3{0, 0, 1}, fullUV)
	top := face(
		[4]mgl64.Vec3{{x + ox, y1, -z + oz}, {x + ox, y1, z + oz}, {-x + ox, y1, z + oz}, {-x + ox, y1, -z + oz}},
		mgl64.Vec3{0, 1, 0}, fullUV)
	bottom := face(
		[4]mgl64.Vec3{{x + ox, y0, -z + oz}, {x + ox, y0, z + oz}, {-x + ox, y0, z + oz}, {-x + ox, y0, -z + oz}},
		mgl64.Vec3{0, -1, 0}, fullUV)
	left := face(
		[4]mgl64.Vec3{{x + ox, y0, -z + oz}, {x + ox, y0, z + oz}, {x + ox, y1, z + oz}, {x + ox, y1, -z + oz}},
		mgl64.Vec3{1, 0, 0}, fullUV)
	right := face(
		[4]mgl64.Vec3{{-x + ox, y0, -z + oz}, {-x + ox, y0, z + oz}, {-x + ox, y1, z + oz}, {-x + ox, y1, -z + oz}},
		mgl64.Vec3{-1, 0, 0}, fullUV)

	return Join(front, back, top, bottom, left, right)
}

// FrontWall builds a solid wall running along the x axis.
func FrontWall(wallWidth float64) Mesh {
	return Cuboid(wallWidth, WallThickness, RoomHeight, mgl64.Vec3{})
}

// SideWall builds a solid wall running along the z axis.
func SideWall(wallWidth float64) Mesh {
	return Cuboid(WallThickness, wallWidth, RoomHeight, mgl64.Vec3{})
}

// Floor builds the floor slab. The footprint is inset by twice the wall
// thickness so the walls sit on its edges, and its top face is at y=0.
func Floor(width, breadth float64) Mesh {
	return Cuboid(
		width-WallThickness*2,
		breadth-WallThickness*2,
		FloorHeight,
		mgl64.Vec3{0, -FloorHeight, 0},
	)
}

// Ceiling builds the ceiling slab, flush with the top of the walls.
func Ceiling(width, breadth float64) Mesh {
	return Cuboid(
		width-WallThickness*2,
		breadth-WallThickness*2,
		FloorHeight,
		mgl64.Vec3{0, RoomHeight - FloorHeight, 0},
	)
}
