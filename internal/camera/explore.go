package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/samdwyer/roomplanner/internal/collision"
	"github.com/samdwyer/roomplanner/internal/floorplan"
	"github.com/samdwyer/roomplanner/internal/geometry"
)

// Exploration camera settings.
const (
	EyeHeight  = 1.0
	MoveSpeed  = 0.05
	FloatSpeed = 0.2
	LookSpeed  = 0.3

	// RoomRange is how far from a room the explore camera may stray before
	// it is sent back to the start.
	RoomRange = 5.0

	roomMargin     = 0.1
	cameraPadding  = 0.1
	fieldOfView    = 1.0
	nearPlane      = 0.1
	farPlane       = 100.0
	roamHalfExtent = 50.0
	roamCeiling    = 30.0
	maxPitchDot    = 0.99

	epsilon = 1e-9
)

var worldUp = mgl64.Vec3{0, 1, 0}

// RoamBounds is the box the roam camera must stay strictly inside.
var RoamBounds = collision.FromMinMax(
	mgl64.Vec3{-roamHalfExtent, geometry.FloorHeight, -roamHalfExtent},
	mgl64.Vec3{roamHalfExtent, roamCeiling, roamHalfExtent},
)

// Result of testing a camera position against the plan.
type placement int

const (
	positionClear placement = iota
	positionBlocked
	positionOutside
)

// ExplorationCamera is a first person camera. In explore mode it walks at
// eye height and only leaves a room through a doorway. In roam mode it
// floats anywhere inside RoamBounds.
type ExplorationCamera struct {
	mode     Mode
	plan     Plan
	position mgl64.Vec3
	forward  mgl64.Vec3
}

// NewExplorationCamera returns a camera at the start position looking north.
func NewExplorationCamera(mode Mode, plan Plan) *ExplorationCamera {
	if mode != ModeRoam {
		mode = ModeExplore
	}
	return &ExplorationCamera{
		mode:     mode,
		plan:     plan,
		position: startPosition(),
		forward:  mgl64.Vec3{0, 0, 1},
	}
}

func startPosition() mgl64.Vec3 {
	return mgl64.Vec3{0, EyeHeight, 0}
}

// Mode implements Camera.
func (e *ExplorationCamera) Mode() Mode { return e.mode }

// Position returns the camera position.
func (e *ExplorationCamera) Position() mgl64.Vec3 { return e.position }

// Forward returns the unit view direction.
func (e *ExplorationCamera) Forward() mgl64.Vec3 { return e.forward }

// MoveTo places the camera without any collision checks.
func (e *ExplorationCamera) MoveTo(pos mgl64.Vec3) {
	e.position = pos
	if e.mode == ModeExplore {
		e.position[1] = EyeHeight
	}
}

// Collider returns the camera box at its current position.
func (e *ExplorationCamera) Collider(padding float64) collision.AABB {
	return collision.RoomBounds(padding, padding, e.position)
}

// Update moves the camera by one step and then applies look rotation.
func (e *ExplorationCamera) Update(c Controls) {
	forward := e.forward
	if e.mode == ModeExplore {
		forward[1] = 0
		if forward.LenSqr() > epsilon {
			forward = forward.Normalize()
		}
	}
	strafe := forward.Cross(worldUp)

	var move mgl64.Vec3
	if c.Left {
		move = move.Sub(strafe)
	}
	if c.Right {
		move = move.Add(strafe)
	}
	if c.Forward {
		move = move.Add(forward)
	}
	if c.Backward {
		move = move.Sub(forward)
	}
	if e.mode == ModeRoam {
		if c.Up {
			move = move.Add(worldUp)
		}
		if c.Down {
			move = move.Sub(worldUp)
		}
	}

	if move.LenSqr() > epsilon {
		speed := MoveSpeed
		if e.mode == ModeRoam {
			speed = FloatSpeed
		}
		saved := e.position
		e.position = e.position.Add(move.Normalize().Mul(speed))
		if e.mode == ModeExplore {
			e.position[1] = EyeHeight
		}

		switch e.check() {
		case positionBlocked:
			e.position = saved
		case positionOutside:
			e.position = startPosition()
		}
	}

	e.look(c.Yaw, c.Pitch)
}

func (e *ExplorationCamera) look(yaw, pitch float64) {
	if yaw != 0 {
		rot := mgl64.Rotate3DY(-mgl64.DegToRad(yaw) * LookSpeed)
		e.forward = rot.Mul3x1(e.forward).Normalize()
	}
	if pitch != 0 {
		strafe := e.forward.Cross(worldUp)
		if strafe.LenSqr() <= epsilon {
			return
		}
		rot := mgl64.HomogRotate3D(-mgl64.DegToRad(pitch)*LookSpeed, strafe.Normalize())
		next := rot.Mul4x1(e.forward.Vec4(0)).Vec3().Normalize()
		if math.Abs(next.Dot(worldUp)) < maxPitchDot {
			e.forward = next
		}
	}
}

func (e *ExplorationCamera) check() placement {
	if e.mode == ModeRoam {
		if strictlyInside(e.position, RoamBounds) {
			return positionClear
		}
		return positionBlocked
	}
	if e.plan == nil || e.plan.IsEmpty() {
		return positionClear
	}
	return e.checkExplore()
}

func (e *ExplorationCamera) checkExplore() placement {
	rooms := e.plan.Rooms()
	room, ok := e.closestRoom(rooms)
	if !ok {
		return positionOutside
	}

	if e.inRoom(room) {
		if _, _, hit := room.ObjectAt(e.Collider(cameraPadding), uuid.Nil); hit {
			return positionBlocked
		}
		return positionClear
	}

	collider := e.Collider(cameraPadding)
	for _, r := range rooms {
		for _, door := range r.DoorwayColliders() {
			if _, ok := collision.Overlap(collider, door); ok {
				return positionClear
			}
		}
	}
	return positionBlocked
}

// closestRoom returns the room the camera is in, or failing that the nearest
// room centre within RoomRange.
func (e *ExplorationCamera) closestRoom(rooms []*floorplan.Room) (*floorplan.Room, bool) {
	var best *floorplan.Room
	bestDistance := RoomRange
	for _, r := range rooms {
		if e.inRoom(r) {
			return r, true
		}
		if d := e.position.Sub(r.Position()).Len(); d < bestDistance {
			best, bestDistance = r, d
		}
	}
	return best, best != nil
}

// inRoom ignores height and keeps a small margin inside the room bounds.
func (e *ExplorationCamera) inRoom(r *floorplan.Room) bool {
	b := r.Bounds()
	x, z := e.position[0], e.position[2]
	return b.X.Min+roomMargin < x && x < b.X.Max-roomMargin &&
		b.Z.Min+roomMargin < z && z < b.Z.Max-roomMargin
}

func strictlyInside(p mgl64.Vec3, b collision.AABB) bool {
	return b.X.Min < p[0] && p[0] < b.X.Max &&
		b.Y.Min < p[1] && p[1] < b.Y.Max &&
		b.Z.Min < p[2] && p[2] < b.Z.Max
}

// ViewState implements Camera.
func (e *ExplorationCamera) ViewState() ViewState {
	target := e.position.Add(e.forward)
	return ViewState{
		Mode:       e.mode,
		Eye:        e.position,
		Target:     target,
		Up:         worldUp,
		View:       mgl64.LookAtV(e.position, target, worldUp),
		Projection: mgl64.Perspective(fieldOfView, 1, nearPlane, farPlane),
	}
}
