package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/roomplanner/internal/geometry"
)

// minGroundNudge keeps ground adjustments from vanishing into float noise.
const minGroundNudge = 0.0001

// wallMountCeilingGap is how far below the ceiling a wall mounted object may start.
const wallMountCeilingGap = 0.3

// AxisDifference returns ||max| - |min|| plus padding. It is the magnitude used
// by every adjustment in this package.
func AxisDifference(axis Interval, padding float64) float64 {
	return math.Abs(math.Abs(axis.Max)-math.Abs(axis.Min)) + padding
}

// OverlapAdjustment returns the translation that resolves overlap along the
// axes where direction is non-zero, scaled by direction.
func OverlapAdjustment(overlap AABB, direction mgl64.Vec3, padding float64) mgl64.Vec3 {
	var adjustment mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		if direction[axis] != 0 {
			adjustment[axis] = AxisDifference(overlap.Axis(axis), padding) * direction[axis]
		}
	}
	return adjustment
}

// PlanarOverlapAdjustment is OverlapAdjustment for a plan direction (x, z).
// The vertical axis is never adjusted.
func PlanarOverlapAdjustment(overlap AABB, direction mgl64.Vec2, padding float64) mgl64.Vec3 {
	var adjustment mgl64.Vec3
	if direction[0] != 0 {
		adjustment[0] = AxisDifference(overlap.X, padding) * direction[0]
	}
	if direction[1] != 0 {
		adjustment[2] = AxisDifference(overlap.Z, padding) * direction[1]
	}
	return adjustment
}

// ColliderAdjustment pushes collider out along all three axes. On each axis
// the push goes west (+x), down (-y) or south (-z) when the collider's minimum
// coincides with the overlap's minimum, and the opposite way otherwise.
func ColliderAdjustment(overlap, collider AABB, padding float64) mgl64.Vec3 {
	dx := AxisDifference(overlap.X, padding)
	dy := AxisDifference(overlap.Y, padding)
	dz := AxisDifference(overlap.Z, padding)

	var adjustment mgl64.Vec3
	if overlap.X.Min == collider.X.Min {
		adjustment[0] = dx
	} else {
		adjustment[0] = -dx
	}
	if overlap.Y.Min == collider.Y.Min {
		adjustment[1] = -dy
	} else {
		adjustment[1] = dy
	}
	if overlap.Z.Min == collider.Z.Min {
		adjustment[2] = -dz
	} else {
		adjustment[2] = dz
	}
	return adjustment
}

// GroundEscapeAdjustment pushes collider away from the object it collided
// with, along the line between their centres. Coinciding centres fall back to
// the direction towards the origin, then to (1,1,1).
func GroundEscapeAdjustment(overlap, collider, collided AABB, padding float64) mgl64.Vec3 {
	direction := collider.Center().Sub(collided.Center())
	if direction.LenSqr() == 0 {
		direction = mgl64.Vec3{}.Sub(collider.Center())
		if direction.LenSqr() == 0 {
			direction = mgl64.Vec3{1, 1, 1}
		}
	}
	direction = direction.Normalize()

	return mgl64.Vec3{
		AxisDifference(overlap.X, padding) * direction[0],
		AxisDifference(overlap.Y, padding) * direction[1],
		AxisDifference(overlap.Z, padding) * direction[2],
	}
}

// GroundAdjustment returns the vertical shift that rests collider on
// groundLevel.
func GroundAdjustment(collider AABB, groundLevel float64) mgl64.Vec3 {
	diff := groundLevel - collider.Y.Min
	if diff > 0 {
		diff = max(minGroundNudge, diff)
	} else if diff < 0 {
		diff = min(-minGroundNudge, diff)
	}
	return mgl64.Vec3{0, diff, 0}
}

// CeilingAdjustment returns the vertical shift that hangs collider from the
// ceiling.
func CeilingAdjustment(collider AABB) mgl64.Vec3 {
	return mgl64.Vec3{0, geometry.RoomHeight - collider.Y.Max, 0}
}

// WallAdjustment snaps a room-local collider against the inner face of the
// wall it is nearest to. The dominant horizontal axis of the collider centre
// picks the wall pair and its sign picks the wall. The base is lifted between
// the doorway clearance and just below the ceiling.
func WallAdjustment(collider AABB, width, breadth float64) mgl64.Vec3 {
	center := collider.Center()

	lowest := geometry.DoorwayClearance
	highest := geometry.RoomHeight - wallMountCeilingGap
	base := min(highest, max(lowest, collider.Y.Min))
	dy := base - collider.Y.Min

	innerX := width/2 - geometry.WallThickness
	innerZ := breadth/2 - geometry.WallThickness

	if math.Abs(center[0]) > math.Abs(center[2]) {
		if center[0] >= 0 {
			return mgl64.Vec3{innerX - collider.X.Max, dy, 0}
		}
		return mgl64.Vec3{-innerX - collider.X.Min, dy, 0}
	}
	if center[2] >= 0 {
		return mgl64.Vec3{0, dy, innerZ - collider.Z.Max}
	}
	return mgl64.Vec3{0, dy, -innerZ - collider.Z.Min}
}
