package geometry

import "github.com/go-gl/mathgl/mgl64"

// DefaultSkyBoxSize is the edge length used when no size is given.
const DefaultSkyBoxSize = 100.0

// SkyBox builds a cube centred on the origin whose faces point inwards. Each
// face samples one cell of a 4x3 cross-shaped texture atlas.
func SkyBox(size float64) Mesh {
	if size <= 0 {
		size = DefaultSkyBoxSize
	}
	h := size / 2

	front := face(
		[4]mgl64.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}},
		mgl64.Vec3{0, 0, 1},
		cell(1, 1))
	back := face(
		[4]mgl64.Vec3{{h, -h, h}, {-h, -h, h}, {-h, h, h}, {h, h, h}},
		mgl64.Vec3{0, 0, -1},
		cell(3, 1))
	top := face(
		[4]mgl64.Vec3{{h, h, -h}, {h, h, h}, {-h, h, h}, {-h, h, -h}},
		mgl64.Vec3{0, -1, 0},
		cell(1, 2))
	bottom := face(
		[4]mgl64.Vec3{{h, -h, -h}, {h, -h, h}, {-h, -h, h}, {-h, -h, -h}},
		mgl64.Vec3{0, 1, 0},
		cell(1, 0))
	left := face(
		[4]mgl64.Vec3{{h, -h, -h}, {h, -h, h}, {h, h, h}, {h, h, -h}},
		mgl64.Vec3{-1, 0, 0},
		cell(0, 1))
	right := face(
		[4]mgl64.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}},
		mgl64.Vec3{1, 0, 0},
		cell(2, 1))

	return Join(front, back, top, bottom, left, right)
}

// cell returns the UV corners of atlas cell (col, row), counted from the
// bottom-left of a 4 column by 3 row grid.
func cell(col, row int) [4]mgl64.Vec2 {
	u0 := float64(col) / 4
	u1 := float64(col+1) / 4
	v0 := float64(row) / 3
	v1 := float64(row+1) / 3
	return [4]mgl64.Vec2{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}
}
