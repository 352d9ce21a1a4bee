// Package collision provides axis-aligned bounding boxes, overlap tests,
// push-out adjustments and a registry of room colliders.
package collision

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/roomplanner/internal/geometry"
)

// Interval is a closed range on one axis.
type Interval struct {
	Min, Max float64
}

// Length returns Max - Min.
func (i Interval) Length() float64 {
	return i.Max - i.Min
}

// Center returns the midpoint of the interval.
func (i Interval) Center() float64 {
	return i.Min + (i.Max-i.Min)/2
}

// AABB is an axis-aligned bounding box made of three independent intervals.
type AABB struct {
	X, Y, Z Interval
}

// FromMinMax builds a box from its two extreme corners.
func FromMinMax(lo, hi mgl64.Vec3) AABB {
	return AABB{
		X: Interval{lo[0], hi[0]},
		Y: Interval{lo[1], hi[1]},
		Z: Interval{lo[2], hi[2]},
	}
}

// Min returns the minimum corner.
func (b AABB) Min() mgl64.Vec3 {
	return mgl64.Vec3{b.X.Min, b.Y.Min, b.Z.Min}
}

// Max returns the maximum corner.
func (b AABB) Max() mgl64.Vec3 {
	return mgl64.Vec3{b.X.Max, b.Y.Max, b.Z.Max}
}

// Center returns the centre point of the box.
func (b AABB) Center() mgl64.Vec3 {
	return mgl64.Vec3{b.X.Center(), b.Y.Center(), b.Z.Center()}
}

// Axis returns the interval for axis 0 (x), 1 (y) or 2 (z).
func (b AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// HasVolume reports whether the box is non-degenerate on every axis.
func (b AABB) HasVolume() bool {
	return b.X.Length() > 0 && b.Y.Length() > 0 && b.Z.Length() > 0
}

// Offset returns the box translated by offset.
func (b AABB) Offset(offset mgl64.Vec3) AABB {
	return AABB{
		X: Interval{b.X.Min + offset[0], b.X.Max + offset[0]},
		Y: Interval{b.Y.Min + offset[1], b.Y.Max + offset[1]},
		Z: Interval{b.Z.Min + offset[2], b.Z.Max + offset[2]},
	}
}

// String formats the box as min..max per axis.
func (b AABB) String() string {
	return fmt.Sprintf("x[%.3f,%.3f] y[%.3f,%.3f] z[%.3f,%.3f]",
		b.X.Min, b.X.Max, b.Y.Min, b.Y.Max, b.Z.Min, b.Z.Max)
}

// BoundsFromVertices returns the smallest box enclosing the positions of an
// interleaved vertex buffer. An empty buffer yields the zero box.
func BoundsFromVertices(vertices []float64) AABB {
	if len(vertices) < geometry.VertexSize {
		return AABB{}
	}

	lo := mgl64.Vec3{vertices[0], vertices[1], vertices[2]}
	hi := lo
	for i := geometry.VertexSize; i+geometry.VertexSize <= len(vertices); i += geometry.VertexSize {
		for axis := 0; axis < 3; axis++ {
			v := vertices[i+geometry.PositionOffset+axis]
			if v < lo[axis] {
				lo[axis] = v
			}
			if v > hi[axis] {
				hi[axis] = v
			}
		}
	}
	return FromMinMax(lo, hi)
}

// MeshBounds is BoundsFromVertices for a mesh.
func MeshBounds(m geometry.Mesh) AABB {
	return BoundsFromVertices(m.Vertices)
}

// RoomBounds derives a room collider from its footprint and position. The
// vertical extent is fixed: from just below the floor up to the room height.
func RoomBounds(width, breadth float64, position mgl64.Vec3) AABB {
	halfWidth := width / 2
	halfBreadth := breadth / 2
	return AABB{
		X: Interval{position[0] - halfWidth, position[0] + halfWidth},
		Y: Interval{-geometry.FloorHeight, geometry.RoomHeight},
		Z: Interval{position[2] - halfBreadth, position[2] + halfBreadth},
	}
}

// Overlap returns the intersection of two boxes. Boxes that are separated or
// merely touch on any axis do not overlap.
func Overlap(a, b AABB) (AABB, bool) {
	if a.X.Min > b.X.Max || a.Y.Min > b.Y.Max || a.Z.Min > b.Z.Max {
		return AABB{}, false
	}

	var result AABB
	for axis := 0; axis < 3; axis++ {
		ia, ib := a.Axis(axis), b.Axis(axis)
		in := Interval{max(ia.Min, ib.Min), min(ia.Max, ib.Max)}
		if in.Min >= in.Max {
			return AABB{}, false
		}
		switch axis {
		case 0:
			result.X = in
		case 1:
			result.Y = in
		case 2:
			result.Z = in
		}
	}
	return result, true
}

// FitsWithin reports whether a room-local collider, once moved to the room's
// position, lies inside the room bounds on all three axes.
func FitsWithin(collider AABB, roomPosition mgl64.Vec3, roomBounds AABB) bool {
	c := collider.Offset(roomPosition)
	return c.X.Min >= roomBounds.X.Min && c.X.Max <= roomBounds.X.Max &&
		c.Y.Min >= roomBounds.Y.Min && c.Y.Max <= roomBounds.Y.Max &&
		c.Z.Min >= roomBounds.Z.Min && c.Z.Max <= roomBounds.Z.Max
}
